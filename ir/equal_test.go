package ir

import "testing"

func TestEqual(t *testing.T) {
	tests := []struct {
		name     string
		a, b     *Node
		expected bool
	}{
		{"typed == untyped", FromInt(5), FromPlain("5"), true},
		{"number == string", FromInt(5), FromString("5"), true},
		{"bool == string", FromBool(false), FromString("false"), true},
		{"lexical differs", FromFloat(5.5), FromPlain("5.50"), false},
		{"scalar != array", FromString("a"), FromSlice([]*Node{FromString("a")}), false},
		{"empty array != empty object", FromSlice(nil), FromKeyVals(nil), false},
		{"array order",
			FromSlice([]*Node{FromInt(1), FromInt(2)}),
			FromSlice([]*Node{FromInt(2), FromInt(1)}),
			false},
		{"array equal",
			FromSlice([]*Node{FromInt(1), FromString("x")}),
			FromSlice([]*Node{FromPlain("1"), FromPlain("x")}),
			true},
		{"object order",
			obj("k1", FromInt(1), "k2", FromInt(2)),
			obj("k2", FromInt(2), "k1", FromInt(1)),
			false},
		{"object equal",
			obj("k1", FromInt(1), "k2", obj("x", FromBool(true))),
			obj("k1", FromPlain("1"), "k2", obj("x", FromPlain("true"))),
			true},
		{"object length",
			obj("k1", FromInt(1)),
			obj("k1", FromInt(1), "k2", FromInt(2)),
			false},
		{"stream != array",
			FromDocs([]*Node{FromInt(1)}),
			FromSlice([]*Node{FromInt(1)}),
			false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Equal(tt.a, tt.b); got != tt.expected {
				t.Errorf("Equal() = %t, want %t", got, tt.expected)
			}
			if got := Equal(tt.b, tt.a); got != tt.expected {
				t.Errorf("Equal(b, a) = %t, want %t", got, tt.expected)
			}
			if tt.expected && tt.a.Hash() != tt.b.Hash() {
				t.Errorf("equal nodes hash differently")
			}
		})
	}
}

func TestHashOrderSensitive(t *testing.T) {
	a := obj("k1", FromInt(1), "k2", FromInt(2))
	b := obj("k2", FromInt(2), "k1", FromInt(1))
	if a.Hash() == b.Hash() {
		t.Errorf("reordered objects hash equally")
	}
}
