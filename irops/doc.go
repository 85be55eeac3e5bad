// Package irops implements algebra.Ops over *ir.Node.
//
// Merges are lazy: MergeToList and MergeToMap return an overlay view of the
// node merged into and a fresh node holding the new content, sharing rather
// than copying the former. Reads through GetStream, GetMapValues and
// GetGeneric synthesize the merged content, and overlay chains are flattened
// once they reach the configured depth.
//
// Text is read with package parse and written with package encode.
package irops
