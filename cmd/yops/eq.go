package main

import (
	"fmt"

	jsonpatch "github.com/evanphx/json-patch"
	"github.com/scott-cotton/cli"
	"github.com/signadot/yamlops/ir"
	"gopkg.in/yaml.v3"
)

func eq(cfg *EqConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Eq.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: eq requires 2 args, got %v", cli.ErrUsage, args)
	}
	var same bool
	err = withEngine(cfg.MainConfig,
		func(e *engine[*yaml.Node]) (err error) {
			same, err = eqFiles(cfg, cc, e, args[0], args[1])
			return err
		},
		func(e *engine[*ir.Node]) (err error) {
			same, err = eqFiles(cfg, cc, e, args[0], args[1])
			return err
		})
	if err != nil {
		return err
	}
	if !same {
		theLog.Info("documents differ", "a", args[0], "b", args[1])
		return cli.ExitCodeErr(1)
	}
	return nil
}

func eqFiles[T any](cfg *EqConfig, cc *cli.Context, e *engine[T], a, b string) (bool, error) {
	aDocs, err := loadFile(cc, e, a)
	if err != nil {
		return false, err
	}
	bDocs, err := loadFile(cc, e, b)
	if err != nil {
		return false, err
	}
	if len(aDocs) != len(bDocs) {
		return false, nil
	}
	for i := range aDocs {
		same, err := eqDocs(cfg, e, aDocs[i], bDocs[i])
		if err != nil {
			return false, fmt.Errorf("document %d: %w", i, err)
		}
		if !same {
			return false, nil
		}
	}
	return true, nil
}

func eqDocs[T any](cfg *EqConfig, e *engine[T], a, b T) (bool, error) {
	if !cfg.Unordered {
		return e.ops.Equal(a, b), nil
	}
	aJSON, err := jsonOf(e.ops, a)
	if err != nil {
		return false, err
	}
	bJSON, err := jsonOf(e.ops, b)
	if err != nil {
		return false, err
	}
	return jsonpatch.Equal(aJSON, bJSON), nil
}
