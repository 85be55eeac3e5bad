package ir

import (
	"slices"
	"testing"

	"github.com/shopspring/decimal"
)

func obj(kvs ...any) *Node {
	var res []KeyVal
	for i := 0; i < len(kvs); i += 2 {
		res = append(res, KeyVal{Key: FromString(kvs[i].(string)), Val: kvs[i+1].(*Node)})
	}
	return FromKeyVals(res)
}

func keys(y *Node) []string {
	var res []string
	for k := range y.Entries() {
		res = append(res, k.String)
	}
	return res
}

func TestFromKeyValsLastWins(t *testing.T) {
	y := FromKeyVals([]KeyVal{
		{Key: FromString("a"), Val: FromInt(1)},
		{Key: FromString("b"), Val: FromInt(2)},
		{Key: FromInt(1), Val: FromInt(3)},
		{Key: FromPlain("a"), Val: FromInt(4)},
	})
	if got, want := keys(y), []string{"a", "b", "1"}; !slices.Equal(got, want) {
		t.Errorf("keys %v want %v", got, want)
	}
	if v := y.GetString("a"); v == nil || v.String != "4" {
		t.Errorf("a: got %v", v)
	}
	if v := y.Get(FromString("1")); v == nil || v.String != "3" {
		t.Errorf("1: got %v", v)
	}
	if y.Get(FromString("z")) != nil {
		t.Errorf("expected missing key")
	}
}

func TestTypedScalars(t *testing.T) {
	n := FromNumber(decimal.RequireFromString("12.50"))
	if !n.IsTyped() || n.String != "12.5" {
		t.Errorf("number %q typed=%t", n.String, n.IsTyped())
	}
	b := FromBool(true)
	if !b.IsTyped() || b.String != "true" || !*b.Bool {
		t.Errorf("bool %q", b.String)
	}
	if FromPlain("12").IsTyped() || FromString("x").IsTyped() {
		t.Errorf("untyped scalars reported typed")
	}
	if FromString("x").Tag != StrTag || FromPlain("x").Tag != "" {
		t.Errorf("tags")
	}
}

func TestEmptyDistinct(t *testing.T) {
	for _, n := range []*Node{FromSlice(nil), FromKeyVals(nil), FromString(""), FromDocs(nil)} {
		if Equal(Empty(), n) || Empty().Hash() == n.Hash() {
			t.Errorf("empty equal to %s", n.Type)
		}
	}
	if !Equal(Empty(), &Node{Type: EmptyType}) {
		t.Errorf("empty not equal to itself")
	}
	e := Empty()
	e.Tag = "!x"
	e.String = "changed"
	if other := Empty(); other == e || other.Tag != "" || other.String != "" {
		t.Errorf("empty nodes share state")
	}
}
