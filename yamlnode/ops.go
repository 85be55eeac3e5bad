package yamlnode

import (
	"iter"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/signadot/yamlops/algebra"
	"github.com/signadot/yamlops/debug"
	"github.com/signadot/yamlops/internal/omap"
	"gopkg.in/yaml.v3"
)

type Ops struct {
	flow        bool
	scalarStyle yaml.Style
	indent      int
}

var (
	_ algebra.Ops[*yaml.Node]        = (*Ops)(nil)
	_ algebra.ListMerger[*yaml.Node] = (*Ops)(nil)
	_ algebra.MapMerger[*yaml.Node]  = (*Ops)(nil)
)

func New(opts ...Option) *Ops {
	o := &Ops{indent: 2}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

func fail(err error, format string, args ...any) error {
	return algebra.Fail[*yaml.Node](err, format, args...)
}

func describe(n *yaml.Node) string {
	n = resolve(n)
	switch {
	case isEmpty(n):
		return "empty"
	case n.Kind == yaml.ScalarNode:
		return strconv.Quote(n.Value)
	case n.Kind == yaml.SequenceNode:
		return "sequence"
	case n.Kind == yaml.MappingNode:
		return "mapping"
	case n.Kind == yaml.DocumentNode:
		return "stream"
	}
	return "node of kind " + strconv.Itoa(int(n.Kind))
}

func (o *Ops) style() yaml.Style {
	if o.flow {
		return yaml.FlowStyle
	}
	return 0
}

func (o *Ops) Empty() *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: nullTag, Value: "null"}
}

func (o *Ops) CreateNumeric(n decimal.Decimal) *yaml.Node {
	v := n.String()
	tag := intTag
	if strings.Contains(v, ".") {
		tag = floatTag
	}
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: tag, Value: v}
}

func (o *Ops) CreateBoolean(b bool) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: boolTag, Value: strconv.FormatBool(b)}
}

func (o *Ops) CreateString(s string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: strTag, Value: s, Style: o.scalarStyle}
}

func scalar(n *yaml.Node) (*yaml.Node, bool) {
	n = resolve(n)
	if n == nil || n.Kind != yaml.ScalarNode || isEmpty(n) {
		return nil, false
	}
	return n, true
}

func parseNumber(v string) (decimal.Decimal, bool) {
	d, err := decimal.NewFromString(v)
	return d, err == nil
}

// parseInt also reads the prefixed and underscored forms yaml.v3 resolves
// to !!int, such as 0x1F or 1_000.
func parseInt(v string) (decimal.Decimal, bool) {
	if d, ok := parseNumber(v); ok {
		return d, true
	}
	if i, err := strconv.ParseInt(v, 0, 64); err == nil {
		return decimal.NewFromInt(i), true
	}
	return decimal.Decimal{}, false
}

func parseBool(v string) (bool, bool) {
	switch {
	case strings.EqualFold(v, "true"):
		return true, true
	case strings.EqualFold(v, "false"):
		return false, true
	}
	return false, false
}

func (o *Ops) GetNumberValue(node *yaml.Node) (decimal.Decimal, error) {
	n, ok := scalar(node)
	if !ok {
		return decimal.Decimal{}, fail(algebra.ErrNotANumber, "%s", describe(node))
	}
	if d, ok := parseNumber(n.Value); ok {
		return d, nil
	}
	return decimal.Decimal{}, fail(algebra.ErrNotANumber, "%s", describe(n))
}

func (o *Ops) GetBooleanValue(node *yaml.Node) (bool, error) {
	n, ok := scalar(node)
	if !ok {
		return false, fail(algebra.ErrNotABoolean, "%s", describe(node))
	}
	if b, ok := parseBool(n.Value); ok {
		return b, nil
	}
	return false, fail(algebra.ErrNotABoolean, "%s", describe(n))
}

func (o *Ops) GetStringValue(node *yaml.Node) (string, error) {
	n, ok := scalar(node)
	if !ok {
		return "", fail(algebra.ErrNotAScalar, "%s", describe(node))
	}
	return n.Value, nil
}

func (o *Ops) CreateList(items iter.Seq[*yaml.Node]) *yaml.Node {
	res := &yaml.Node{Kind: yaml.SequenceNode, Tag: seqTag, Style: o.style()}
	for item := range items {
		res.Content = append(res.Content, item)
	}
	return res
}

func (o *Ops) CreateMap(pairs iter.Seq2[*yaml.Node, *yaml.Node]) *yaml.Node {
	m := omap.New[*yaml.Node, *yaml.Node](Strategy, 0)
	for k, v := range pairs {
		m.Set(k, v)
	}
	return o.mapping(m, o.style())
}

func (o *Ops) mapping(m *omap.Map[*yaml.Node, *yaml.Node], style yaml.Style) *yaml.Node {
	res := &yaml.Node{
		Kind:    yaml.MappingNode,
		Tag:     mapTag,
		Style:   style,
		Content: make([]*yaml.Node, 0, 2*m.Len()),
	}
	for k, v := range m.All() {
		res.Content = append(res.Content, k, v)
	}
	return res
}

func (o *Ops) GetStream(node *yaml.Node) (iter.Seq[*yaml.Node], error) {
	n := resolve(node)
	if isEmpty(n) {
		return func(func(*yaml.Node) bool) {}, nil
	}
	if n.Kind != yaml.SequenceNode {
		return nil, fail(algebra.ErrNotASequence, "%s", describe(n))
	}
	return func(yield func(*yaml.Node) bool) {
		for _, c := range n.Content {
			if !yield(resolve(c)) {
				return
			}
		}
	}, nil
}

func (o *Ops) GetMapValues(node *yaml.Node) (iter.Seq2[*yaml.Node, *yaml.Node], error) {
	n := resolve(node)
	if isEmpty(n) {
		return func(func(*yaml.Node, *yaml.Node) bool) {}, nil
	}
	if n.Kind != yaml.MappingNode {
		return nil, fail(algebra.ErrNotAMapping, "%s", describe(n))
	}
	return entries(n), nil
}

func entries(n *yaml.Node) iter.Seq2[*yaml.Node, *yaml.Node] {
	return func(yield func(*yaml.Node, *yaml.Node) bool) {
		for i := 0; i+1 < len(n.Content); i += 2 {
			if !yield(resolve(n.Content[i]), resolve(n.Content[i+1])) {
				return
			}
		}
	}
}

func (o *Ops) GetGeneric(node, key *yaml.Node) (*yaml.Node, error) {
	entries, err := o.GetMapValues(node)
	if err != nil {
		return nil, err
	}
	for k, v := range entries {
		if Equal(k, key) {
			return v, nil
		}
	}
	return o.Empty(), nil
}

// Remove returns a copy of a mapping without the entries whose scalar key
// has the value key. Anything else is returned as is.
func (o *Ops) Remove(node *yaml.Node, key string) *yaml.Node {
	n := resolve(node)
	if n == nil || n.Kind != yaml.MappingNode {
		return node
	}
	m := omap.New[*yaml.Node, *yaml.Node](Strategy, len(n.Content)/2)
	for i := 0; i+1 < len(n.Content); i += 2 {
		m.Set(n.Content[i], n.Content[i+1])
	}
	if !m.Delete(o.CreateString(key)) {
		return node
	}
	res := *n
	res.Anchor = ""
	res.Content = make([]*yaml.Node, 0, 2*m.Len())
	for k, v := range m.All() {
		res.Content = append(res.Content, k, v)
	}
	return &res
}

func (o *Ops) MergeToList(list, value *yaml.Node) (*yaml.Node, error) {
	return o.MergeToListAll(list, []*yaml.Node{value})
}

func (o *Ops) MergeToListAll(list *yaml.Node, values []*yaml.Node) (*yaml.Node, error) {
	n := resolve(list)
	style := o.style()
	var content []*yaml.Node
	switch {
	case isEmpty(n):
	case n.Kind == yaml.SequenceNode:
		style = n.Style
		content = make([]*yaml.Node, 0, len(n.Content)+len(values))
		content = append(content, n.Content...)
	default:
		return nil, algebra.FailPartial(list, algebra.ErrNotAList, "%s", describe(n))
	}
	content = append(content, values...)
	if debug.Merge() {
		debug.Logf("list merge of %d values into %d\n", len(values), len(content)-len(values))
	}
	return &yaml.Node{Kind: yaml.SequenceNode, Tag: seqTag, Style: style, Content: content}, nil
}

func (o *Ops) MergeToMap(m, key, value *yaml.Node) (*yaml.Node, error) {
	return o.MergeToMapAll(m, func(yield func(*yaml.Node, *yaml.Node) bool) {
		yield(key, value)
	})
}

// MergeToMapAll upserts pairs into a copy of m. Existing keys keep their
// position and new keys are appended.
func (o *Ops) MergeToMapAll(m *yaml.Node, pairs iter.Seq2[*yaml.Node, *yaml.Node]) (*yaml.Node, error) {
	n := resolve(m)
	style := o.style()
	res := omap.New[*yaml.Node, *yaml.Node](Strategy, 0)
	switch {
	case isEmpty(n):
	case n.Kind == yaml.MappingNode:
		style = n.Style
		for k, v := range entries(n) {
			res.Set(k, v)
		}
	default:
		return nil, algebra.FailPartial(m, algebra.ErrNotAMap, "%s", describe(n))
	}
	before := res.Len()
	for k, v := range pairs {
		res.Set(k, v)
	}
	if debug.Merge() {
		debug.Logf("map merge into %d entries, now %d\n", before, res.Len())
	}
	return o.mapping(res, style), nil
}

func (o *Ops) Kind(node *yaml.Node) algebra.Kind {
	n := resolve(node)
	if isEmpty(n) {
		return algebra.EmptyKind
	}
	switch n.Kind {
	case yaml.ScalarNode:
		return algebra.ScalarKind
	case yaml.SequenceNode:
		return algebra.SequenceKind
	case yaml.MappingNode:
		return algebra.MappingKind
	case yaml.DocumentNode:
		return algebra.StreamKind
	}
	return algebra.Kind(-1)
}

func (o *Ops) Payload(node *yaml.Node) (algebra.Payload, bool) {
	n, ok := scalar(node)
	if !ok || n.Style&(yaml.SingleQuotedStyle|yaml.DoubleQuotedStyle|yaml.LiteralStyle|yaml.FoldedStyle) != 0 {
		return algebra.Payload{}, false
	}
	switch n.ShortTag() {
	case intTag:
		if d, ok := parseInt(n.Value); ok {
			return algebra.Payload{Type: algebra.NumberPayload, Number: d}, true
		}
	case floatTag:
		if d, ok := parseNumber(n.Value); ok {
			return algebra.Payload{Type: algebra.NumberPayload, Number: d}, true
		}
	case boolTag:
		if b, ok := parseBool(n.Value); ok {
			return algebra.Payload{Type: algebra.BoolPayload, Bool: b}, true
		}
	}
	return algebra.Payload{}, false
}

func (o *Ops) Hash(node *yaml.Node) uint64 { return Hash(node) }
func (o *Ops) Equal(a, b *yaml.Node) bool  { return Equal(a, b) }
