// Package encode encodes IR nodes to YAML or JSON text.
//
// # Usage
//
//	node := ir.FromKeyVals([]ir.KeyVal{
//	    {Key: ir.FromString("name"), Val: ir.FromString("alice")},
//	    {Key: ir.FromString("age"), Val: ir.FromInt(30)},
//	})
//	err := encode.Encode(node, os.Stdout)
//
//	// JSON, compact
//	err = encode.Encode(node, w, encode.EncodeFormat(format.JSONFormat), encode.EncodeWire(true))
//
// Scalars are written according to what is known about them. Typed numbers
// and booleans are written as such, strings are quoted where their text
// would otherwise read as another type, and untyped scalars are written as
// their text reads.
//
// # Related Packages
//
//   - github.com/signadot/yamlops/ir - IR representation
//   - github.com/signadot/yamlops/parse - Parse text to IR
package encode
