package main

import (
	"io"

	"github.com/scott-cotton/cli"
	"github.com/signadot/yamlops/ir"
	"gopkg.in/yaml.v3"
)

func sortMain(cfg *SortConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Sort.Parse(cc, args)
	if err != nil {
		return err
	}
	return withEngine(cfg.MainConfig,
		func(e *engine[*yaml.Node]) error { return sortFiles(cfg, cc.Out, cc, e, args) },
		func(e *engine[*ir.Node]) error { return sortFiles(cfg, cc.Out, cc, e, args) })
}

func sortFiles[T any](cfg *SortConfig, w io.Writer, cc *cli.Context, e *engine[T], files []string) error {
	n := 0
	return eachDocs(cc, e, files, func(_ string, docs []T) error {
		if n > 0 {
			if err := writeString(w, cfg.separator()); err != nil {
				return err
			}
		}
		n++
		sorted := make([]T, len(docs))
		for i, doc := range docs {
			sorted[i] = e.sortKeys(doc)
		}
		return e.dump(w, sorted)
	})
}

func writeString(w io.Writer, s string) error {
	if s == "" {
		return nil
	}
	_, err := io.WriteString(w, s)
	return err
}
