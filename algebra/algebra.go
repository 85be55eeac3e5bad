package algebra

import (
	"iter"

	"github.com/shopspring/decimal"
)

// Kind is the shape of a node as seen through an Ops.
type Kind int

const (
	EmptyKind Kind = iota
	ScalarKind
	SequenceKind
	MappingKind
	StreamKind
)

func (k Kind) String() string {
	s, ok := map[Kind]string{
		EmptyKind:    "Empty",
		ScalarKind:   "Scalar",
		SequenceKind: "Sequence",
		MappingKind:  "Mapping",
		StreamKind:   "Stream",
	}[k]
	if ok {
		return s
	}
	return "<unknown kind>"
}

// PayloadType says which typed value a scalar was built from.
type PayloadType int

const (
	NumberPayload PayloadType = iota + 1
	BoolPayload
)

// Payload is the typed value preserved by a scalar created with
// CreateNumeric or CreateBoolean.
type Payload struct {
	Type   PayloadType
	Number decimal.Decimal
	Bool   bool
}

// Ops is the tree algebra over an engine's node type T.
//
// Nodes are treated as immutable: every operation returning a node returns a
// new node or a view over unmodified nodes.
type Ops[T any] interface {
	// Empty returns the sentinel for "no value", distinct from an empty
	// sequence or mapping.
	Empty() T

	CreateNumeric(n decimal.Decimal) T
	CreateBoolean(b bool) T
	CreateString(s string) T

	// GetNumberValue returns the numeric payload of a typed scalar or
	// parses the lexical form of an untyped one.
	GetNumberValue(node T) (decimal.Decimal, error)
	// GetBooleanValue returns the boolean payload of a typed scalar or
	// parses "true"/"false" in any case.
	GetBooleanValue(node T) (bool, error)
	GetStringValue(node T) (string, error)

	CreateList(items iter.Seq[T]) T
	// CreateMap builds a mapping; structurally equal keys collapse and the
	// last value wins.
	CreateMap(pairs iter.Seq2[T, T]) T

	GetStream(node T) (iter.Seq[T], error)
	GetMapValues(node T) (iter.Seq2[T, T], error)
	// GetGeneric looks up key by structural equality. A missing key yields
	// Empty and no error.
	GetGeneric(node, key T) (T, error)

	// Remove drops the entry whose scalar key is lexically equal to key.
	// Nodes which are not mappings are returned unchanged, so callers cannot
	// tell a wrong node type from a missing key.
	Remove(node T, key string) T

	MergeToList(list, value T) (T, error)
	MergeToMap(m, key, value T) (T, error)

	Kind(node T) Kind
	Payload(node T) (Payload, bool)

	// Hash and Equal define structural equality: scalars compare by lexical
	// form, sequences and mappings positionally.
	Hash(node T) uint64
	Equal(a, b T) bool
}

// ListMerger is implemented by engines that can append several values in one
// step.
type ListMerger[T any] interface {
	MergeToListAll(list T, values []T) (T, error)
}

// MapMerger is implemented by engines that can upsert several entries in one
// step.
type MapMerger[T any] interface {
	MergeToMapAll(m T, pairs iter.Seq2[T, T]) (T, error)
}
