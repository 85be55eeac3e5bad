package main

import (
	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{Engine: engineYAML}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, []*cli.Opt{
		{
			Name:        "o",
			Description: "output file (default stdout)",
			Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
		},
		{
			Name:        "I",
			Aliases:     []string{"ifmt"},
			Description: "input format: yaml/y, json/j",
			Type:        cli.NamedFuncOpt(cfg.fmtFunc(&cfg.InFormat), "(format)"),
		},
		{
			Name:        "O",
			Aliases:     []string{"ofmt"},
			Description: "output format: yaml/y, json/j",
			Type:        cli.NamedFuncOpt(cfg.fmtFunc(&cfg.OutFormat), "(format)"),
		}}...)

	return cli.NewCommandAt(&cfg.Main, "yops").
		WithSynopsis("yops [opts] command [opts]").
		WithDescription("yops sorts, converts and compares yaml trees with two tree engines.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return yopsMain(cfg, cc, args)
		}).
		WithSubs(
			SortCommand(cfg),
			ConvertCommand(cfg),
			CheckCommand(cfg),
			TreeCommand(cfg),
			EqCommand(cfg),
			PatchCommand(cfg))
}

func SortCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &SortConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Sort, "sort").
		WithAliases("s").
		WithSynopsis("sort [files]").
		WithDescription("sort mapping keys recursively").
		WithRun(func(cc *cli.Context, args []string) error {
			return sortMain(cfg, cc, args)
		})
}

func ConvertCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ConvertConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Convert, "convert").
		WithAliases("c", "conv").
		WithSynopsis("convert [-to yaml3|ir] [files]").
		WithDescription("convert documents from the selected engine to another one").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return convertMain(cfg, cc, args)
		})
}

func CheckCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &CheckConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Check, "check").
		WithAliases("ck").
		WithSynopsis("check [files]").
		WithDescription("check that documents survive a round trip through the ir engine").
		WithRun(func(cc *cli.Context, args []string) error {
			return check(cfg, cc, args)
		})
}

func TreeCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &TreeConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Tree, "tree").
		WithAliases("t").
		WithSynopsis("tree [files]").
		WithDescription("print the node kinds of documents as a tree").
		WithRun(func(cc *cli.Context, args []string) error {
			return tree(cfg, cc, args)
		})
}

func EqCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &EqConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Eq, "eq").
		WithSynopsis("eq [-unordered] a b").
		WithDescription("compare two documents structurally, exit status 1 when they differ").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return eq(cfg, cc, args)
		})
}

func PatchCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &PatchConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Patch, "patch").
		WithAliases("p").
		WithSynopsis("patch [-s] <jsonpatch> [files]").
		WithDescription("apply an RFC 6902 json patch to documents").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return patch(cfg, cc, args)
		})
}
