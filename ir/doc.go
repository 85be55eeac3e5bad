// Package ir provides the intermediate representation behind the irops
// engine: an immutable tree of *Node values.
//
// # Node Types
//
// The Type field indicates the node's type:
//
//   - EmptyType: the "no value" sentinel returned by Empty
//   - ScalarType: a leaf; the lexical form lives in String
//   - ArrayType: ordered items
//   - ObjectType: ordered key value entries with structurally unique keys
//   - StreamType: a list of documents
//
// # Scalars
//
// Every scalar has a lexical form. Scalars built with FromNumber, FromInt,
// FromFloat or FromBool additionally keep the typed payload in Number or
// Bool, and their lexical form is derived from it. Scalars read from text
// carry no payload: plain ones are built with FromPlain, quoted ones with
// FromString, which tags them with StrTag so that encoders keep them strings.
//
// # Creating Nodes
//
//	node := ir.FromString("hello")
//	num := ir.FromInt(42)
//	obj := ir.FromKeyVals([]ir.KeyVal{
//	    {Key: ir.FromString("key"), Val: ir.FromString("value")},
//	})
//	arr := ir.FromSlice([]*ir.Node{ir.FromInt(1), ir.FromInt(2)})
//
// # Overlays
//
// Overlay builds a view of an array or object with another layered on top,
// sharing both. Reading an overlay through Items, Entries or Get synthesizes
// the merged content; Flatten materializes it. Overlay chains are bounded by
// a maximum depth past which they are flattened.
//
// # Comparison and Hashing
//
// Equal and Hash are structural. Scalars compare by lexical form alone.
// Objects compare entry by entry in order, so key order matters. Strategy
// packages both for hash maps keyed by nodes.
//
// # Thread Safety
//
// Nodes are never modified after construction and may be read from
// multiple goroutines.
package ir
