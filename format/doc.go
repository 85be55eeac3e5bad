// Package format names the text formats trees are read from and written to.
//
// # Usage
//
//	f, err := format.ParseFormat("json")
//	node, err := parse.Parse(data, parse.ParseFormat(f))
//	err = encode.Encode(node, os.Stdout, encode.EncodeFormat(f))
//
// # Related Packages
//
//   - github.com/signadot/yamlops/parse - Parse text to IR
//   - github.com/signadot/yamlops/encode - Encode IR to text
package format
