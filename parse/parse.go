// Package parse reads YAML and JSON text into IR nodes.
//
// A document holding a single value parses to that value, an empty document
// to ir.Empty, and several documents to a stream. Quoted scalars are tagged
// as strings; plain scalars keep their text untyped.
package parse

import (
	"fmt"

	"github.com/signadot/yamlops/debug"
	"github.com/signadot/yamlops/format"
	"github.com/signadot/yamlops/ir"
)

func Parse(d []byte, opts ...ParseOption) (*ir.Node, error) {
	pOpts := &parseOpts{format: format.YAMLFormat}
	for _, f := range opts {
		f(pOpts)
	}
	var docs []*ir.Node
	var err error
	switch pOpts.format {
	case format.YAMLFormat:
		docs, err = parseYAML(d)
	case format.JSONFormat:
		docs, err = parseJSON(d)
	default:
		return nil, fmt.Errorf("%w: format %s", ErrUnsupported, pOpts.format)
	}
	if err != nil {
		return nil, err
	}
	var res *ir.Node
	switch len(docs) {
	case 0:
		res = ir.Empty()
	case 1:
		res = docs[0]
	default:
		res = ir.FromDocs(docs)
	}
	if debug.Parse() {
		debug.Logf("parsed %s %s\n", res.Type, debug.Tree{Node: res})
	}
	return res, nil
}

func ParseString(s string, opts ...ParseOption) (*ir.Node, error) {
	return Parse([]byte(s), opts...)
}
