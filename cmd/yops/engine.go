package main

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/scott-cotton/cli"
	"github.com/signadot/yamlops/algebra"
	"github.com/signadot/yamlops/encode"
	"github.com/signadot/yamlops/format"
	"github.com/signadot/yamlops/ir"
	"github.com/signadot/yamlops/irops"
	"github.com/signadot/yamlops/parse"
	"github.com/signadot/yamlops/yamlnode"
	"gopkg.in/yaml.v3"
)

const (
	engineYAML = "yaml3"
	engineIR   = "ir"
)

func engineByName(name string) (string, error) {
	switch strings.ToLower(name) {
	case "", "yaml3", "yaml", "y":
		return engineYAML, nil
	case "ir", "i":
		return engineIR, nil
	}
	return "", fmt.Errorf("%w: unknown engine %q, expected yaml3 or ir", cli.ErrUsage, name)
}

// engine reads and writes the documents of one tree engine.
type engine[T any] struct {
	name     string
	ops      algebra.Ops[T]
	load     func(d []byte) ([]T, error)
	dump     func(w io.Writer, docs []T) error
	sortKeys func(node T) T
}

func yamlEngine(cfg *MainConfig) *engine[*yaml.Node] {
	opts := []yamlnode.Option{yamlnode.WithFlowStyle(cfg.WireOut)}
	if cfg.Indent > 0 {
		opts = append(opts, yamlnode.WithIndent(cfg.Indent))
	}
	ops := yamlnode.New(opts...)
	return &engine[*yaml.Node]{
		name: engineYAML,
		ops:  ops,
		load: func(d []byte) ([]*yaml.Node, error) {
			node, err := yamlnode.Load(bytes.NewReader(d))
			if err != nil {
				return nil, err
			}
			if node.Kind == yaml.DocumentNode {
				return node.Content, nil
			}
			return []*yaml.Node{node}, nil
		},
		dump: func(w io.Writer, docs []*yaml.Node) error {
			if cfg.outFormat().IsJSON() {
				return dumpIR(cfg, w, convertDocs[*yaml.Node, *ir.Node](ops, irops.New(), docs))
			}
			if len(docs) == 1 {
				return ops.Dump(w, docs[0])
			}
			return ops.Dump(w, &yaml.Node{Kind: yaml.DocumentNode, Content: docs})
		},
		sortKeys: func(node *yaml.Node) *yaml.Node {
			return yamlnode.SortMappingKeys(node, strings.Compare)
		},
	}
}

func irEngine(cfg *MainConfig) *engine[*ir.Node] {
	ops := irops.New()
	return &engine[*ir.Node]{
		name: engineIR,
		ops:  ops,
		load: func(d []byte) ([]*ir.Node, error) {
			node, err := parse.Parse(d, cfg.parseOpts()...)
			if err != nil {
				return nil, err
			}
			if node.Type != ir.StreamType {
				return []*ir.Node{node}, nil
			}
			var docs []*ir.Node
			for doc := range node.Items() {
				docs = append(docs, doc)
			}
			return docs, nil
		},
		dump: func(w io.Writer, docs []*ir.Node) error {
			return dumpIR(cfg, w, docs)
		},
		sortKeys: func(node *ir.Node) *ir.Node {
			return algebra.SortKeys[*ir.Node](ops, node, strings.Compare)
		},
	}
}

func dumpIR(cfg *MainConfig, w io.Writer, docs []*ir.Node) error {
	node := ir.FromDocs(docs)
	if len(docs) == 1 {
		node = docs[0]
	}
	if err := encode.Encode(node, w, cfg.encOpts()...); err != nil {
		return err
	}
	return nil
}

func convertDocs[T, U any](from algebra.Ops[T], to algebra.Ops[U], docs []T) []U {
	res := make([]U, 0, len(docs))
	for _, doc := range docs {
		res = append(res, algebra.Convert(from, to, doc))
	}
	return res
}

// withEngine runs the function matching the selected engine.
func withEngine(cfg *MainConfig, fy func(*engine[*yaml.Node]) error, fi func(*engine[*ir.Node]) error) error {
	if cfg.Engine == engineIR {
		return fi(irEngine(cfg))
	}
	return fy(yamlEngine(cfg))
}

func readInput(cc *cli.Context, path string) ([]byte, error) {
	var r io.Reader
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("could not open %q: %w", path, err)
		}
		defer f.Close()
		r = f
	} else {
		r = cc.In
	}
	d, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading %q: %w", path, err)
	}
	return d, nil
}

func loadFile[T any](cc *cli.Context, e *engine[T], file string) ([]T, error) {
	d, err := readInput(cc, file)
	if err != nil {
		return nil, err
	}
	docs, err := e.load(d)
	if err != nil {
		return nil, fmt.Errorf("error decoding %s: %w", file, err)
	}
	return docs, nil
}

// eachDocs loads every input, standard input when there are no files, and
// passes its documents to f.
func eachDocs[T any](cc *cli.Context, e *engine[T], files []string, f func(file string, docs []T) error) error {
	if len(files) == 0 {
		files = []string{"-"}
	}
	for _, file := range files {
		docs, err := loadFile(cc, e, file)
		if err != nil {
			return err
		}
		if err := f(file, docs); err != nil {
			return fmt.Errorf("error processing %s: %w", file, err)
		}
	}
	return nil
}

// jsonOf renders doc as compact JSON.
func jsonOf[T any](ops algebra.Ops[T], doc T) ([]byte, error) {
	node, err := convertSafe[T, *ir.Node](ops, irops.New(), []T{doc})
	if err != nil {
		return nil, err
	}
	buf := bytes.NewBuffer(nil)
	if err := encode.Encode(node[0], buf, encode.EncodeFormat(format.JSONFormat), encode.EncodeWire(true)); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// separator returns what to write between the output of consecutive files.
func (cfg *MainConfig) separator() string {
	if cfg.outFormat().IsYAML() {
		return "---\n"
	}
	return ""
}
