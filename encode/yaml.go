package encode

import (
	"fmt"
	"io"

	"github.com/goccy/go-yaml"
	"github.com/signadot/yamlops/ir"
)

// rawScalar is written as its text, letting the YAML reader resolve it.
type rawScalar string

func (r rawScalar) MarshalYAML() ([]byte, error) {
	return []byte(r), nil
}

func encodeYAML(node *ir.Node, w io.Writer, es *EncState) error {
	opts := []yaml.EncodeOption{
		yaml.Indent(es.indent),
		yaml.UseLiteralStyleIfMultiline(!es.wire),
	}
	if es.wire {
		opts = append(opts, yaml.Flow(true))
	}
	docs := []*ir.Node{node}
	if node.Type == ir.StreamType {
		docs = nil
		for doc := range node.Items() {
			docs = append(docs, doc)
		}
	}
	for i, doc := range docs {
		if i > 0 {
			if err := writeString(w, "---\n"); err != nil {
				return err
			}
		}
		v, err := yamlValue(doc)
		if err != nil {
			return err
		}
		d, err := yaml.MarshalWithOptions(v, opts...)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrEncoding, err)
		}
		if _, err := w.Write(d); err != nil {
			return err
		}
	}
	return nil
}

func yamlValue(node *ir.Node) (any, error) {
	switch node.Type {
	case ir.EmptyType:
		return nil, nil
	case ir.ScalarType:
		return yamlScalar(node), nil
	case ir.ArrayType:
		res := make([]any, 0, node.Len())
		for item := range node.Items() {
			v, err := yamlValue(item)
			if err != nil {
				return nil, err
			}
			res = append(res, v)
		}
		return res, nil
	case ir.ObjectType:
		res := make(yaml.MapSlice, 0, node.Len())
		for k, v := range node.Entries() {
			if k.Type != ir.ScalarType && k.Type != ir.EmptyType {
				return nil, fmt.Errorf("%w: %s key", ErrEncoding, k.Type)
			}
			yv, err := yamlValue(v)
			if err != nil {
				return nil, err
			}
			var yk any
			if k.Type == ir.ScalarType {
				yk = yamlScalar(k)
			}
			res = append(res, yaml.MapItem{Key: yk, Value: yv})
		}
		return res, nil
	default:
		return nil, fmt.Errorf("%w: nested %s", ErrEncoding, node.Type)
	}
}

func yamlScalar(node *ir.Node) any {
	switch {
	case node.Number != nil:
		return rawScalar(node.String)
	case node.Bool != nil:
		return *node.Bool
	case node.Tag == ir.StrTag:
		return node.String
	}
	s := node.String
	if _, ok := plainNumber(s); ok {
		return rawScalar(s)
	}
	if _, ok := plainBool(s); ok || plainNull(s) || plainSpecialFloat(s) {
		return rawScalar(s)
	}
	return s
}
