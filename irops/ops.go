package irops

import (
	"iter"
	"slices"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/signadot/yamlops/algebra"
	"github.com/signadot/yamlops/debug"
	"github.com/signadot/yamlops/internal/omap"
	"github.com/signadot/yamlops/ir"
)

type Ops struct {
	maxDepth int
}

var (
	_ algebra.Ops[*ir.Node]        = (*Ops)(nil)
	_ algebra.ListMerger[*ir.Node] = (*Ops)(nil)
	_ algebra.MapMerger[*ir.Node]  = (*Ops)(nil)
)

func New(opts ...Option) *Ops {
	o := &Ops{maxDepth: ir.MaxOverlayDepth}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

func fail(err error, format string, args ...any) error {
	return algebra.Fail[*ir.Node](err, format, args...)
}

func (o *Ops) Empty() *ir.Node { return ir.Empty() }

func (o *Ops) CreateNumeric(n decimal.Decimal) *ir.Node { return ir.FromNumber(n) }
func (o *Ops) CreateBoolean(b bool) *ir.Node            { return ir.FromBool(b) }
func (o *Ops) CreateString(s string) *ir.Node           { return ir.FromString(s) }

func (o *Ops) GetNumberValue(node *ir.Node) (decimal.Decimal, error) {
	if node.Type != ir.ScalarType {
		return decimal.Decimal{}, fail(algebra.ErrNotANumber, "%s", node.Type)
	}
	if node.Number != nil {
		return *node.Number, nil
	}
	d, err := decimal.NewFromString(node.String)
	if err != nil {
		return decimal.Decimal{}, fail(algebra.ErrNotANumber, "%q", node.String)
	}
	return d, nil
}

func (o *Ops) GetBooleanValue(node *ir.Node) (bool, error) {
	if node.Type != ir.ScalarType {
		return false, fail(algebra.ErrNotABoolean, "%s", node.Type)
	}
	if node.Bool != nil {
		return *node.Bool, nil
	}
	switch {
	case strings.EqualFold(node.String, "true"):
		return true, nil
	case strings.EqualFold(node.String, "false"):
		return false, nil
	}
	return false, fail(algebra.ErrNotABoolean, "%q", node.String)
}

func (o *Ops) GetStringValue(node *ir.Node) (string, error) {
	if node.Type != ir.ScalarType {
		return "", fail(algebra.ErrNotAScalar, "%s", node.Type)
	}
	return node.String, nil
}

func (o *Ops) CreateList(items iter.Seq[*ir.Node]) *ir.Node {
	return ir.FromSlice(slices.Collect(items))
}

func (o *Ops) CreateMap(pairs iter.Seq2[*ir.Node, *ir.Node]) *ir.Node {
	return ir.FromKeyVals(keyVals(pairs))
}

func keyVals(pairs iter.Seq2[*ir.Node, *ir.Node]) []ir.KeyVal {
	var kvs []ir.KeyVal
	for k, v := range pairs {
		kvs = append(kvs, ir.KeyVal{Key: k, Val: v})
	}
	return kvs
}

func (o *Ops) GetStream(node *ir.Node) (iter.Seq[*ir.Node], error) {
	if node.Type != ir.ArrayType {
		return nil, fail(algebra.ErrNotASequence, "%s", node.Type)
	}
	return node.Items(), nil
}

func (o *Ops) GetMapValues(node *ir.Node) (iter.Seq2[*ir.Node, *ir.Node], error) {
	if node.Type != ir.ObjectType {
		return nil, fail(algebra.ErrNotAMapping, "%s", node.Type)
	}
	return node.Entries(), nil
}

func (o *Ops) GetGeneric(node, key *ir.Node) (*ir.Node, error) {
	if node.Type != ir.ObjectType {
		return nil, fail(algebra.ErrNotAMapping, "%s", node.Type)
	}
	if v := node.Get(key); v != nil {
		return v, nil
	}
	return ir.Empty(), nil
}

// Remove returns a concrete object without the entries whose scalar key has
// the lexical form key. Anything else is returned as is.
func (o *Ops) Remove(node *ir.Node, key string) *ir.Node {
	if node.Type != ir.ObjectType {
		return node
	}
	m := omap.New[*ir.Node, *ir.Node](ir.Strategy, node.Len())
	for k, v := range node.Entries() {
		m.Set(k, v)
	}
	if !m.Delete(ir.FromString(key)) {
		return node
	}
	kvs := make([]ir.KeyVal, 0, m.Len())
	for k, v := range m.All() {
		kvs = append(kvs, ir.KeyVal{Key: k, Val: v})
	}
	return ir.FromKeyVals(kvs)
}

func (o *Ops) MergeToList(list, value *ir.Node) (*ir.Node, error) {
	return o.MergeToListAll(list, []*ir.Node{value})
}

func (o *Ops) MergeToListAll(list *ir.Node, values []*ir.Node) (*ir.Node, error) {
	switch list.Type {
	case ir.EmptyType:
		return ir.FromSlice(values), nil
	case ir.ArrayType:
		res := ir.Overlay(list, ir.FromSlice(values), o.maxDepth)
		if debug.Merge() {
			debug.Logf("list merge of %d values, overlay depth %d\n", len(values), res.Depth())
		}
		return res, nil
	default:
		return nil, algebra.FailPartial(list, algebra.ErrNotAList, "%s", list.Type)
	}
}

func (o *Ops) MergeToMap(m, key, value *ir.Node) (*ir.Node, error) {
	return o.mergeToMap(m, []ir.KeyVal{{Key: key, Val: value}})
}

func (o *Ops) MergeToMapAll(m *ir.Node, pairs iter.Seq2[*ir.Node, *ir.Node]) (*ir.Node, error) {
	return o.mergeToMap(m, keyVals(pairs))
}

func (o *Ops) mergeToMap(m *ir.Node, kvs []ir.KeyVal) (*ir.Node, error) {
	switch m.Type {
	case ir.EmptyType:
		return ir.FromKeyVals(kvs), nil
	case ir.ObjectType:
		res := ir.Overlay(m, ir.FromKeyVals(kvs), o.maxDepth)
		if debug.Merge() {
			debug.Logf("map merge of %d entries, overlay depth %d\n", len(kvs), res.Depth())
		}
		return res, nil
	default:
		return nil, algebra.FailPartial(m, algebra.ErrNotAMap, "%s", m.Type)
	}
}

func (o *Ops) Kind(node *ir.Node) algebra.Kind {
	switch node.Type {
	case ir.EmptyType:
		return algebra.EmptyKind
	case ir.ScalarType:
		return algebra.ScalarKind
	case ir.ArrayType:
		return algebra.SequenceKind
	case ir.ObjectType:
		return algebra.MappingKind
	case ir.StreamType:
		return algebra.StreamKind
	}
	return algebra.Kind(-1)
}

func (o *Ops) Payload(node *ir.Node) (algebra.Payload, bool) {
	switch {
	case node.Type != ir.ScalarType:
		return algebra.Payload{}, false
	case node.Number != nil:
		return algebra.Payload{Type: algebra.NumberPayload, Number: *node.Number}, true
	case node.Bool != nil:
		return algebra.Payload{Type: algebra.BoolPayload, Bool: *node.Bool}, true
	}
	return algebra.Payload{}, false
}

func (o *Ops) Hash(node *ir.Node) uint64 { return node.Hash() }
func (o *Ops) Equal(a, b *ir.Node) bool  { return ir.Equal(a, b) }
