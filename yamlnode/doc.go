// Package yamlnode implements algebra.Ops over gopkg.in/yaml.v3 nodes.
//
// Empty is a !!null scalar, so null values read from text are Empty as well.
// Typed scalars are scalars tagged !!int, !!float or !!bool; yaml.v3 tags
// plain scalars as it loads them, so loaded numbers and booleans are typed.
// A stream of documents is a DocumentNode holding one root per document.
// Aliases are read through to the node they name.
//
// Merges are eager: MergeToList and MergeToMap build a new node holding a
// copy of the existing content plus the update. Nodes given to this package
// are never modified.
//
// Empty is accepted wherever a sequence or a mapping is read, as a sequence
// or mapping without content.
package yamlnode
