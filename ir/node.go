package ir

import (
	"iter"
	"slices"
	"strconv"

	"github.com/shopspring/decimal"
)

// StrTag marks scalars which are strings regardless of how their lexical form
// reads: programmatic strings and quoted strings from parsed text.
const StrTag = "!!str"

// Node is an immutable tree value. Scalars keep their lexical form in String;
// scalars created from typed values also keep the typed payload in Number or
// Bool. Composite content is read through Len, Items, Entries and Get.
//
// Nodes must not be modified once built: overlays and other trees may share
// them.
type Node struct {
	Type Type
	Tag  string

	String string
	Number *decimal.Decimal
	Bool   *bool

	fields []*Node
	values []*Node

	// overlay view, see Overlay
	base, over *Node
	depth      int
}

type KeyVal struct {
	Key *Node
	Val *Node
}

// Empty returns a new node for "no value". All Empty nodes are equal.
func Empty() *Node {
	return &Node{Type: EmptyType}
}

// FromString returns a string scalar.
func FromString(v string) *Node {
	return &Node{Type: ScalarType, Tag: StrTag, String: v}
}

// FromPlain returns an untyped scalar whose meaning is left to its reader,
// as for plain scalars in parsed text.
func FromPlain(v string) *Node {
	return &Node{Type: ScalarType, String: v}
}

func FromNumber(d decimal.Decimal) *Node {
	return &Node{
		Type:   ScalarType,
		String: d.String(),
		Number: &d,
	}
}

func FromInt(v int64) *Node {
	return FromNumber(decimal.NewFromInt(v))
}

func FromFloat(f float64) *Node {
	return FromNumber(decimal.NewFromFloat(f))
}

func FromBool(v bool) *Node {
	return &Node{
		Type:   ScalarType,
		String: strconv.FormatBool(v),
		Bool:   &v,
	}
}

func FromSlice(ySlice []*Node) *Node {
	return &Node{
		Type:   ArrayType,
		values: slices.Clone(ySlice),
	}
}

// FromDocs returns a stream of documents.
func FromDocs(docs []*Node) *Node {
	return &Node{
		Type:   StreamType,
		values: slices.Clone(docs),
	}
}

// FromKeyVals returns an object with the given entries. Structurally equal
// keys collapse to the position of their first occurrence with the value of
// their last. A nil key is treated as Empty.
func FromKeyVals(kvs []KeyVal) *Node {
	res := &Node{Type: ObjectType}
	idx := newIndex(len(kvs))
	for i := range kvs {
		kv := &kvs[i]
		key := kv.Key
		if key == nil {
			key = Empty()
		}
		val := kv.Val
		if val == nil {
			val = Empty()
		}
		idx.Set(key, val)
	}
	res.fields = make([]*Node, 0, idx.Len())
	res.values = make([]*Node, 0, idx.Len())
	for k, v := range idx.All() {
		res.fields = append(res.fields, k)
		res.values = append(res.values, v)
	}
	return res
}

func (y *Node) IsEmpty() bool {
	return y.Type == EmptyType
}

// IsTyped reports whether y is a scalar built from a typed value.
func (y *Node) IsTyped() bool {
	return y.Type == ScalarType && (y.Number != nil || y.Bool != nil)
}

// IsOverlay reports whether y is a lazily merged view.
func (y *Node) IsOverlay() bool {
	return y.base != nil
}

func (y *Node) Len() int {
	if y.base == nil {
		return len(y.values)
	}
	n := 0
	switch y.Type {
	case ObjectType:
		for range y.Entries() {
			n++
		}
	default:
		for range y.Items() {
			n++
		}
	}
	return n
}

// Items yields the items of an array or the documents of a stream.
func (y *Node) Items() iter.Seq[*Node] {
	return func(yield func(*Node) bool) {
		if y.base != nil {
			for v := range y.base.Items() {
				if !yield(v) {
					return
				}
			}
			for v := range y.over.Items() {
				if !yield(v) {
					return
				}
			}
			return
		}
		if y.Type == ObjectType {
			return
		}
		for _, v := range y.values {
			if !yield(v) {
				return
			}
		}
	}
}

// Entries yields the key value pairs of an object in order.
func (y *Node) Entries() iter.Seq2[*Node, *Node] {
	return func(yield func(*Node, *Node) bool) {
		if y.base != nil {
			y.overlayEntries(yield)
			return
		}
		if y.Type != ObjectType {
			return
		}
		for i, f := range y.fields {
			if !yield(f, y.values[i]) {
				return
			}
		}
	}
}

// Get returns the value of key in an object, or nil.
func (y *Node) Get(key *Node) *Node {
	if y.base != nil {
		if v := y.over.Get(key); v != nil {
			return v
		}
		return y.base.Get(key)
	}
	if y.Type != ObjectType {
		return nil
	}
	for i, f := range y.fields {
		if Equal(f, key) {
			return y.values[i]
		}
	}
	return nil
}

// GetString returns the value of the first entry whose scalar key has the
// lexical form field, or nil.
func (y *Node) GetString(field string) *Node {
	for k, v := range y.Entries() {
		if k.Type == ScalarType && k.String == field {
			return v
		}
	}
	return nil
}

// slice returns the concrete children of y, materializing overlays.
func (y *Node) slice() (fields, values []*Node) {
	if y.base == nil {
		return y.fields, y.values
	}
	if y.Type == ObjectType {
		for k, v := range y.Entries() {
			fields = append(fields, k)
			values = append(values, v)
		}
		return fields, values
	}
	return nil, slices.Collect(y.Items())
}
