package encode

import "github.com/signadot/yamlops/format"

type EncodeOption func(*EncState)

func EncodeFormat(f format.Format) EncodeOption {
	return func(es *EncState) { es.format = f }
}

// EncodeIndent sets the number of spaces per nesting level.
func EncodeIndent(n int) EncodeOption {
	return func(es *EncState) { es.indent = n }
}

// EncodeWire selects compact single line output: flow style for YAML,
// no indentation for JSON.
func EncodeWire(v bool) EncodeOption {
	return func(es *EncState) { es.wire = v }
}
