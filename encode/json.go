package encode

import (
	"fmt"
	"io"
	"strings"

	"github.com/go-json-experiment/json/jsontext"
	"github.com/signadot/yamlops/ir"
)

func encodeJSON(node *ir.Node, w io.Writer, es *EncState) error {
	var opts []jsontext.Options
	if !es.wire {
		opts = append(opts, jsontext.Multiline(true), jsontext.WithIndent(indentString(es.indent)))
	}
	enc := jsontext.NewEncoder(w, opts...)
	if node.Type != ir.StreamType {
		return encodeJSONValue(enc, node)
	}
	for doc := range node.Items() {
		if err := encodeJSONValue(enc, doc); err != nil {
			return err
		}
	}
	return nil
}

func indentString(n int) string {
	return strings.Repeat(" ", max(n, 0))
}

func encodeJSONValue(enc *jsontext.Encoder, node *ir.Node) error {
	switch node.Type {
	case ir.EmptyType:
		return enc.WriteToken(jsontext.Null)
	case ir.ScalarType:
		return encodeJSONScalar(enc, node)
	case ir.ArrayType:
		if err := enc.WriteToken(jsontext.BeginArray); err != nil {
			return err
		}
		for item := range node.Items() {
			if err := encodeJSONValue(enc, item); err != nil {
				return err
			}
		}
		return enc.WriteToken(jsontext.EndArray)
	case ir.ObjectType:
		if err := enc.WriteToken(jsontext.BeginObject); err != nil {
			return err
		}
		for k, v := range node.Entries() {
			if k.Type != ir.ScalarType {
				return fmt.Errorf("%w: %s key in json", ErrEncoding, k.Type)
			}
			if err := enc.WriteToken(jsontext.String(k.String)); err != nil {
				return err
			}
			if err := encodeJSONValue(enc, v); err != nil {
				return err
			}
		}
		return enc.WriteToken(jsontext.EndObject)
	default:
		return fmt.Errorf("%w: nested %s", ErrEncoding, node.Type)
	}
}

func encodeJSONScalar(enc *jsontext.Encoder, node *ir.Node) error {
	switch {
	case node.Number != nil:
		return enc.WriteValue(jsontext.Value(node.Number.String()))
	case node.Bool != nil:
		return enc.WriteToken(jsontext.Bool(*node.Bool))
	case node.Tag == ir.StrTag:
		return enc.WriteToken(jsontext.String(node.String))
	}
	s := node.String
	if d, ok := plainNumber(s); ok {
		return enc.WriteValue(jsontext.Value(d.String()))
	}
	if b, ok := plainBool(s); ok {
		return enc.WriteToken(jsontext.Bool(b))
	}
	if plainNull(s) {
		return enc.WriteToken(jsontext.Null)
	}
	return enc.WriteToken(jsontext.String(s))
}
