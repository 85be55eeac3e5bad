package encode

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/signadot/yamlops/format"
	"github.com/signadot/yamlops/ir"
)

func sample() *ir.Node {
	return ir.FromKeyVals([]ir.KeyVal{
		{Key: ir.FromString("a"), Val: ir.FromInt(1)},
		{Key: ir.FromString("s"), Val: ir.FromString("42")},
		{Key: ir.FromString("p"), Val: ir.FromPlain("x")},
	})
}

func TestEncodeYAMLScalars(t *testing.T) {
	got := MustString(sample())
	want := "a: 1\ns: \"42\"\np: x"
	if got != want {
		t.Errorf("got\n%s\nwant\n%s", got, want)
	}
}

func TestEncodeYAMLWire(t *testing.T) {
	n := ir.FromKeyVals([]ir.KeyVal{
		{Key: ir.FromString("a"), Val: ir.FromSlice([]*ir.Node{ir.FromInt(1), ir.FromBool(true)})},
	})
	got := MustString(n, EncodeWire(true))
	if strings.Contains(got, "\n") {
		t.Errorf("wire output spans lines: %q", got)
	}
}

func TestEncodeJSON(t *testing.T) {
	n := ir.FromKeyVals([]ir.KeyVal{
		{Key: ir.FromString("a"), Val: ir.FromInt(1)},
		{Key: ir.FromString("b"), Val: ir.FromSlice([]*ir.Node{ir.FromBool(true), ir.FromPlain("x"), ir.FromPlain("2.5")})},
		{Key: ir.FromString("c"), Val: ir.FromString("42")},
		{Key: ir.FromString("d"), Val: ir.Empty()},
	})
	got := MustString(n, EncodeFormat(format.JSONFormat), EncodeWire(true))
	want := `{"a":1,"b":[true,"x",2.5],"c":"42","d":null}`
	if got != want {
		t.Errorf("got %s want %s", got, want)
	}
}

func TestEncodeStream(t *testing.T) {
	n := ir.FromDocs([]*ir.Node{ir.FromInt(1), ir.FromString("b")})
	if got, want := MustString(n), "1\n---\nb"; got != want {
		t.Errorf("yaml: got %q want %q", got, want)
	}
	got := MustString(n, EncodeFormat(format.JSONFormat))
	if want := "1\n\"b\""; got != want {
		t.Errorf("json: got %q want %q", got, want)
	}
}

func TestEncodeJSONKeyError(t *testing.T) {
	n := ir.FromKeyVals([]ir.KeyVal{
		{Key: ir.FromSlice(nil), Val: ir.FromInt(1)},
	})
	err := Encode(n, bytes.NewBuffer(nil), EncodeFormat(format.JSONFormat))
	if !errors.Is(err, ErrEncoding) {
		t.Errorf("expected ErrEncoding, got %v", err)
	}
}
