// Package algebra defines the tree algebra: a contract over opaque,
// immutable, tree shaped values which lets typed encoders and decoders read
// and write trees without knowing which engine backs them.
//
// # Shapes
//
// Every node seen through an Ops has one Kind:
//
//   - EmptyKind: "no value yet", never equal to an empty sequence or mapping
//   - ScalarKind: a leaf with a lexical form, possibly carrying a typed
//     Payload (number or boolean) when built with CreateNumeric or
//     CreateBoolean
//   - SequenceKind: ordered items
//   - MappingKind: ordered entries with structurally unique keys
//   - StreamKind: a list of independent documents
//
// # Engines
//
// Two engines implement Ops:
//
//   - github.com/signadot/yamlops/yamlnode over gopkg.in/yaml.v3 nodes,
//     merging eagerly by rebuilding the mapping or sequence
//   - github.com/signadot/yamlops/irops over *ir.Node, merging lazily with
//     overlay views
//
// Callers hold an Ops[T], never an engine type.
//
// # Equality
//
// Structural equality compares scalars by lexical form only, so a numeric 5
// equals the string "5". Sequences compare element by element and mappings
// entry by entry, in order: two mappings holding the same entries in a
// different order are not equal. The order sensitivity is kept for
// compatibility and may change.
//
// # Conversion and sorting
//
// Convert rebuilds a tree under another engine, inferring types of untyped
// scalars. SortKeys orders mapping entries by key for stable output.
//
// # Errors
//
// Accessors fail with an *Error wrapping one of ErrNotAScalar,
// ErrNotASequence, ErrNotAMapping, ErrNotANumber, ErrNotABoolean, ErrNotAList
// or ErrNotAMap, possibly with a partial result (see Partial). Converting a
// stream panics with an error wrapping ErrContract.
package algebra
