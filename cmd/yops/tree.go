package main

import (
	"fmt"
	"strconv"

	"github.com/scott-cotton/cli"
	"github.com/signadot/yamlops/algebra"
	"github.com/signadot/yamlops/ir"
	"github.com/xlab/treeprint"
	"gopkg.in/yaml.v3"
)

func tree(cfg *TreeConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Tree.Parse(cc, args)
	if err != nil {
		return err
	}
	return withEngine(cfg.MainConfig,
		func(e *engine[*yaml.Node]) error { return treeFiles(cc, e, args) },
		func(e *engine[*ir.Node]) error { return treeFiles(cc, e, args) })
}

func treeFiles[T any](cc *cli.Context, e *engine[T], files []string) error {
	return eachDocs(cc, e, files, func(file string, docs []T) error {
		root := treeprint.NewWithRoot(file)
		for i, doc := range docs {
			addTree(e.ops, root, "doc "+strconv.Itoa(i), doc)
		}
		_, err := fmt.Fprint(cc.Out, root.String())
		return err
	})
}

// addTree adds node under t, labelled with label and its kind.
func addTree[T any](ops algebra.Ops[T], t treeprint.Tree, label string, node T) {
	kind := ops.Kind(node)
	switch kind {
	case algebra.SequenceKind:
		br := t.AddMetaBranch(kind.String(), label)
		items, err := ops.GetStream(node)
		if err != nil {
			return
		}
		i := 0
		for item := range items {
			addTree(ops, br, "["+strconv.Itoa(i)+"]", item)
			i++
		}
	case algebra.MappingKind:
		br := t.AddMetaBranch(kind.String(), label)
		entries, err := ops.GetMapValues(node)
		if err != nil {
			return
		}
		for k, v := range entries {
			key, err := ops.GetStringValue(k)
			if err != nil {
				key = ops.Kind(k).String()
			}
			addTree(ops, br, key, v)
		}
	case algebra.ScalarKind:
		v, _ := ops.GetStringValue(node)
		if p, ok := ops.Payload(node); ok {
			switch p.Type {
			case algebra.NumberPayload:
				v += " (number)"
			case algebra.BoolPayload:
				v += " (bool)"
			}
		}
		t.AddMetaNode(kind.String(), label+": "+v)
	default:
		t.AddMetaNode(kind.String(), label)
	}
}
