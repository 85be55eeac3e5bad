package main

import (
	"bytes"
	"fmt"

	jsonpatch "github.com/evanphx/json-patch"
	"github.com/scott-cotton/cli"
	"github.com/signadot/yamlops/algebra"
	"github.com/signadot/yamlops/encode"
	"github.com/signadot/yamlops/format"
	"github.com/signadot/yamlops/ir"
	"github.com/signadot/yamlops/irops"
	"github.com/signadot/yamlops/parse"
	"gopkg.in/yaml.v3"
)

func patch(cfg *PatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Patch.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: patch requires a json patch argument", cli.ErrUsage)
	}
	jp, err := getPatch(cfg, cc, args[0])
	if err != nil {
		return err
	}
	return withEngine(cfg.MainConfig,
		func(e *engine[*yaml.Node]) error { return patchFiles(cfg, cc, e, jp, args[1:]) },
		func(e *engine[*ir.Node]) error { return patchFiles(cfg, cc, e, jp, args[1:]) })
}

// getPatch reads the patch operations from arg, a file or with -s the patch
// itself, in JSON or YAML.
func getPatch(cfg *PatchConfig, cc *cli.Context, arg string) (jsonpatch.Patch, error) {
	var (
		d   = []byte(arg)
		f   = format.YAMLFormat
		err error
	)
	if !cfg.String {
		d, err = readInput(cc, arg)
		if err != nil {
			return nil, err
		}
		f = format.FromPath(arg)
	}
	node, err := parse.Parse(d, parse.ParseFormat(f))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	buf := bytes.NewBuffer(nil)
	if err := encode.Encode(node, buf, encode.EncodeFormat(format.JSONFormat), encode.EncodeWire(true)); err != nil {
		return nil, err
	}
	jp, err := jsonpatch.DecodePatch(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	return jp, nil
}

func patchFiles[T any](cfg *PatchConfig, cc *cli.Context, e *engine[T], jp jsonpatch.Patch, files []string) error {
	n := 0
	return eachDocs(cc, e, files, func(_ string, docs []T) error {
		if n > 0 {
			if err := writeString(cc.Out, cfg.separator()); err != nil {
				return err
			}
		}
		n++
		res := make([]T, len(docs))
		for i, doc := range docs {
			d, err := jsonOf(e.ops, doc)
			if err != nil {
				return err
			}
			out, err := jp.Apply(d)
			if err != nil {
				return fmt.Errorf("document %d: %w", i, err)
			}
			node, err := parse.Parse(out, parse.ParseJSON())
			if err != nil {
				return err
			}
			res[i] = algebra.Convert[*ir.Node, T](irops.New(), e.ops, node)
		}
		return e.dump(cc.Out, res)
	})
}
