// Package codec encodes Go values into trees and decodes them back through
// any algebra.Ops, so the same value can be written under either engine.
//
//	type Person struct {
//	    Name string `yops:"name"`
//	    Age  int    `yops:"age,omitempty"`
//	}
//
//	node, err := codec.Encode(irops.New(), Person{Name: "alice", Age: 30})
//	var p Person
//	err = codec.Decode(irops.New(), node, &p)
//
// Supported types are booleans, integers, floats, strings, decimal.Decimal,
// encoding.TextMarshaler implementations, slices, arrays, maps with string,
// integer or text keys, structs and pointers to any of these. Struct fields
// are named by the yops tag, falling back to the Go field name; "-" skips a
// field and omitempty drops zero values. Nil pointers are omitted.
package codec
