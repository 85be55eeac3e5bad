package yamlnode

import "gopkg.in/yaml.v3"

type Option func(*Ops)

// WithFlowStyle makes created sequences and mappings use flow style.
func WithFlowStyle(v bool) Option {
	return func(o *Ops) { o.flow = v }
}

// WithScalarStyle sets the style of created strings, such as
// yaml.DoubleQuotedStyle.
func WithScalarStyle(s yaml.Style) Option {
	return func(o *Ops) { o.scalarStyle = s }
}

// WithIndent sets the indentation used by Dump.
func WithIndent(n int) Option {
	return func(o *Ops) { o.indent = n }
}
