package main

import (
	"fmt"
	"io"

	"github.com/scott-cotton/cli"
	"github.com/signadot/yamlops/algebra"
)

func convertMain(cfg *ConvertConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Convert.Parse(cc, args)
	if err != nil {
		return err
	}
	to := cfg.To
	if to == "" {
		to = engineIR
		if cfg.Engine == engineIR {
			to = engineYAML
		}
	}
	to, err = engineByName(to)
	if err != nil {
		return err
	}
	ye, ie := yamlEngine(cfg.MainConfig), irEngine(cfg.MainConfig)
	switch {
	case cfg.Engine == engineYAML && to == engineIR:
		return convertFiles(cfg, cc, ye, ie, args)
	case cfg.Engine == engineIR && to == engineYAML:
		return convertFiles(cfg, cc, ie, ye, args)
	case cfg.Engine == engineYAML:
		return convertFiles(cfg, cc, ye, ye, args)
	case cfg.Engine == engineIR:
		return convertFiles(cfg, cc, ie, ie, args)
	}
	return fmt.Errorf("%w: cannot convert from %s to %s", cli.ErrUsage, cfg.Engine, to)
}

func convertFiles[T, U any](cfg *ConvertConfig, cc *cli.Context, from *engine[T], to *engine[U], files []string) error {
	var w io.Writer = cc.Out
	n := 0
	return eachDocs(cc, from, files, func(file string, docs []T) error {
		if n > 0 {
			if err := writeString(w, cfg.separator()); err != nil {
				return err
			}
		}
		n++
		res, err := convertSafe(from.ops, to.ops, docs)
		if err != nil {
			return err
		}
		return to.dump(w, res)
	})
}

// convertSafe converts docs, returning contract violations as errors.
func convertSafe[T, U any](from algebra.Ops[T], to algebra.Ops[U], docs []T) (res []U, err error) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		rErr, ok := r.(error)
		if !ok {
			panic(r)
		}
		err = rErr
	}()
	return convertDocs(from, to, docs), nil
}
