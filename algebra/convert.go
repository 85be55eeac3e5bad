package algebra

import (
	"github.com/signadot/yamlops/debug"
)

// Convert rebuilds node, read through from, as a tree of the engine behind
// to.
//
// Scalars carrying a typed payload are rebuilt with the matching typed
// constructor. Untyped scalars are inferred: a numeric parse is tried first,
// then a case insensitive boolean parse, and the lexical string otherwise. The
// inference is lossy on purpose: an untyped "true" becomes a boolean and an
// untyped "42" becomes a number.
//
// Empty converts to the target's Empty. Convert panics with an error wrapping
// ErrContract when node is a stream of documents or has an unknown kind.
func Convert[T, U any](from Ops[T], to Ops[U], node T) U {
	kind := from.Kind(node)
	if debug.Convert() {
		debug.Logf("convert %s\n", kind)
	}
	switch kind {
	case EmptyKind:
		return to.Empty()
	case ScalarKind:
		return convertScalar(from, to, node)
	case SequenceKind:
		items, err := from.GetStream(node)
		if err != nil {
			panic(contractf("sequence not readable: %v", err))
		}
		return to.CreateList(func(yield func(U) bool) {
			for item := range items {
				if !yield(Convert(from, to, item)) {
					return
				}
			}
		})
	case MappingKind:
		entries, err := from.GetMapValues(node)
		if err != nil {
			panic(contractf("mapping not readable: %v", err))
		}
		return to.CreateMap(func(yield func(U, U) bool) {
			for k, v := range entries {
				if !yield(Convert(from, to, k), Convert(from, to, v)) {
					return
				}
			}
		})
	case StreamKind:
		panic(contractf("a stream of documents cannot be converted"))
	default:
		panic(contractf("unconvertible node of kind %s", kind))
	}
}

func convertScalar[T, U any](from Ops[T], to Ops[U], node T) U {
	if p, ok := from.Payload(node); ok {
		switch p.Type {
		case NumberPayload:
			return to.CreateNumeric(p.Number)
		case BoolPayload:
			return to.CreateBoolean(p.Bool)
		}
	}
	if n, err := from.GetNumberValue(node); err == nil {
		return to.CreateNumeric(n)
	}
	if b, err := from.GetBooleanValue(node); err == nil {
		return to.CreateBoolean(b)
	}
	s, err := from.GetStringValue(node)
	if err != nil {
		panic(contractf("scalar without lexical value: %v", err))
	}
	return to.CreateString(s)
}
