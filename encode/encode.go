package encode

import (
	"errors"
	"fmt"
	"io"

	"github.com/signadot/yamlops/format"
	"github.com/signadot/yamlops/ir"
)

var ErrEncoding = errors.New("encoding error")

type EncState struct {
	indent int
	format format.Format
	wire   bool
}

// Encode writes node to w in the selected format, YAML by default. Streams
// are written as one document per item.
func Encode(node *ir.Node, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{
		indent: 2,
	}
	for _, opt := range opts {
		opt(es)
	}
	if node == nil {
		node = ir.Empty()
	}
	switch es.format {
	case format.YAMLFormat:
		return encodeYAML(node, w, es)
	case format.JSONFormat:
		return encodeJSON(node, w, es)
	default:
		return fmt.Errorf("%w: unsupported format %s", ErrEncoding, es.format)
	}
}

func writeString(w io.Writer, s string) error {
	_, err := w.Write([]byte(s))
	return err
}
