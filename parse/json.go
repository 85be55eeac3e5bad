package parse

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/go-json-experiment/json/jsontext"
	"github.com/signadot/yamlops/ir"
)

func parseJSON(d []byte) ([]*ir.Node, error) {
	dec := jsontext.NewDecoder(bytes.NewReader(d))
	var docs []*ir.Node
	for dec.PeekKind() != 0 {
		doc, err := jsonValue(dec)
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}
	if _, err := dec.ReadToken(); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}
	return docs, nil
}

func jsonValue(dec *jsontext.Decoder) (*ir.Node, error) {
	switch dec.PeekKind() {
	case '{':
		if _, err := dec.ReadToken(); err != nil {
			return nil, jsonErr(err)
		}
		var kvs []ir.KeyVal
		for dec.PeekKind() != '}' {
			tok, err := dec.ReadToken()
			if err != nil {
				return nil, jsonErr(err)
			}
			// tok is voided by the next read.
			key := tok.String()
			v, err := jsonValue(dec)
			if err != nil {
				return nil, err
			}
			kvs = append(kvs, ir.KeyVal{Key: ir.FromString(key), Val: v})
		}
		if _, err := dec.ReadToken(); err != nil {
			return nil, jsonErr(err)
		}
		return ir.FromKeyVals(kvs), nil
	case '[':
		if _, err := dec.ReadToken(); err != nil {
			return nil, jsonErr(err)
		}
		items := []*ir.Node{}
		for dec.PeekKind() != ']' {
			v, err := jsonValue(dec)
			if err != nil {
				return nil, err
			}
			items = append(items, v)
		}
		if _, err := dec.ReadToken(); err != nil {
			return nil, jsonErr(err)
		}
		return ir.FromSlice(items), nil
	case '"':
		tok, err := dec.ReadToken()
		if err != nil {
			return nil, jsonErr(err)
		}
		return ir.FromString(tok.String()), nil
	case 'n':
		if _, err := dec.ReadToken(); err != nil {
			return nil, jsonErr(err)
		}
		return ir.Empty(), nil
	case 't', 'f', '0':
		v, err := dec.ReadValue()
		if err != nil {
			return nil, jsonErr(err)
		}
		return ir.FromPlain(string(v)), nil
	default:
		_, err := dec.ReadToken()
		if err == nil || errors.Is(err, io.EOF) {
			err = io.ErrUnexpectedEOF
		}
		return nil, jsonErr(err)
	}
}

func jsonErr(err error) error {
	return fmt.Errorf("%w: %w", ErrParse, err)
}
