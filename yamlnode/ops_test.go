package yamlnode

import (
	"errors"
	"slices"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
	"github.com/signadot/yamlops/algebra"
	"gopkg.in/yaml.v3"
)

func mustLoad(t *testing.T, s string) *yaml.Node {
	t.Helper()
	n, err := LoadString(s)
	if err != nil {
		t.Fatal(err)
	}
	return n
}

func mustDump(t *testing.T, o *Ops, n *yaml.Node) string {
	t.Helper()
	s, err := o.DumpString(n)
	if err != nil {
		t.Fatal(err)
	}
	return s
}

func TestLoadKinds(t *testing.T) {
	o := New()
	tests := []struct {
		in   string
		want algebra.Kind
	}{
		{"", algebra.EmptyKind},
		{"~\n", algebra.EmptyKind},
		{"null\n", algebra.EmptyKind},
		{"'null'\n", algebra.ScalarKind},
		{"[]\n", algebra.SequenceKind},
		{"{}\n", algebra.MappingKind},
		{"a\n---\nb\n", algebra.StreamKind},
	}
	for _, tt := range tests {
		if got := o.Kind(mustLoad(t, tt.in)); got != tt.want {
			t.Errorf("%q: got %s want %s", tt.in, got, tt.want)
		}
	}
}

func TestCreateAndDump(t *testing.T) {
	o := New()
	m := o.CreateMap(func(yield func(*yaml.Node, *yaml.Node) bool) {
		_ = yield(o.CreateString("num"), o.CreateNumeric(decimal.RequireFromString("1.50"))) &&
			yield(o.CreateString("str"), o.CreateString("42")) &&
			yield(o.CreateString("flag"), o.CreateBoolean(true)) &&
			yield(o.CreateString("none"), o.Empty()) &&
			yield(o.CreateString("num"), o.CreateNumeric(decimal.NewFromInt(2)))
	})
	got := mustDump(t, o, m)
	want := "num: 2\nstr: \"42\"\nflag: true\nnone: null\n"
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("dump (-want +got):\n%s", diff)
	}
}

func TestFlowStyle(t *testing.T) {
	o := New(WithFlowStyle(true))
	l := algebra.ListOf[*yaml.Node](o, o.CreateNumeric(decimal.NewFromInt(1)), o.CreateString("x"))
	if got := mustDump(t, o, l); got != "[1, x]\n" {
		t.Errorf("got %q", got)
	}
	// merged nodes keep the style of the node merged into
	block := mustLoad(t, "- a\n")
	merged, err := o.MergeToList(block, o.CreateString("b"))
	if err != nil {
		t.Fatal(err)
	}
	if got := mustDump(t, o, merged); got != "- a\n- b\n" {
		t.Errorf("got %q", got)
	}
}

func TestPayload(t *testing.T) {
	o := New()
	n := mustLoad(t, "a: 0x1F\nb: '3'\nc: True\nd: x\n")
	get := func(k string) *yaml.Node {
		v, err := o.GetGeneric(n, o.CreateString(k))
		if err != nil {
			t.Fatal(err)
		}
		return v
	}
	p, ok := o.Payload(get("a"))
	if !ok || p.Type != algebra.NumberPayload || !p.Number.Equal(decimal.NewFromInt(31)) {
		t.Errorf("a: %v %t", p, ok)
	}
	if _, ok := o.Payload(get("b")); ok {
		t.Errorf("quoted scalar has payload")
	}
	p, ok = o.Payload(get("c"))
	if !ok || p.Type != algebra.BoolPayload || !p.Bool {
		t.Errorf("c: %v %t", p, ok)
	}
	if _, err := o.GetNumberValue(get("d")); !errors.Is(err, algebra.ErrNotANumber) {
		t.Errorf("expected ErrNotANumber, got %v", err)
	}
	if v := get("zz"); o.Kind(v) != algebra.EmptyKind {
		t.Errorf("missing key: %s", o.Kind(v))
	}
}

func TestNumberText(t *testing.T) {
	o := New()
	n := mustLoad(t, `plain: 0x10
quoted: ['1_000', '0x10', '0o17', '0b11']
`)
	plain, _ := o.GetGeneric(n, o.CreateString("plain"))
	p, ok := o.Payload(plain)
	if !ok || !p.Number.Equal(decimal.NewFromInt(16)) {
		t.Errorf("plain 0x10: %v %t", p, ok)
	}
	quoted, _ := o.GetGeneric(n, o.CreateString("quoted"))
	items, err := o.GetStream(quoted)
	if err != nil {
		t.Fatal(err)
	}
	for item := range items {
		if _, ok := o.Payload(item); ok {
			t.Errorf("%s: quoted scalar has payload", item.Value)
		}
		if _, err := o.GetNumberValue(item); !errors.Is(err, algebra.ErrNotANumber) {
			t.Errorf("%s: expected ErrNotANumber, got %v", item.Value, err)
		}
	}
}

func TestRemoveDropsAnchor(t *testing.T) {
	o := New()
	n := mustLoad(t, `base: &b
  x: 1
  y: 2
ref: *b
`)
	base, _ := o.GetGeneric(n, o.CreateString("base"))
	trimmed := o.Remove(base, "y")
	if trimmed.Anchor != "" {
		t.Errorf("anchor kept: %q", trimmed.Anchor)
	}
	both := o.CreateList(slices.Values([]*yaml.Node{base, trimmed}))
	got := mustDump(t, o, both)
	if strings.Count(got, "&b") != 1 {
		t.Errorf("anchor written %d times:\n%s", strings.Count(got, "&b"), got)
	}
	if want := []string{"x"}; !slices.Equal(mapKeys(t, o, trimmed), want) {
		t.Errorf("keys %v", mapKeys(t, o, trimmed))
	}
	if o.Remove(base, "zz") != base {
		t.Errorf("remove of missing key copied")
	}
}

func mapKeys(t *testing.T, o *Ops, n *yaml.Node) []string {
	t.Helper()
	entries, err := o.GetMapValues(n)
	if err != nil {
		t.Fatal(err)
	}
	var keys []string
	for k := range entries {
		keys = append(keys, k.Value)
	}
	return keys
}

func TestEmptyLeniency(t *testing.T) {
	o := New()
	items, err := o.GetStream(o.Empty())
	if err != nil || len(slices.Collect(items)) != 0 {
		t.Errorf("stream of empty: %v", err)
	}
	if _, err := o.GetMapValues(o.Empty()); err != nil {
		t.Errorf("map values of empty: %v", err)
	}
	if _, err := o.GetStream(o.CreateString("x")); !errors.Is(err, algebra.ErrNotASequence) {
		t.Errorf("expected ErrNotASequence, got %v", err)
	}
	if _, err := o.GetMapValues(o.CreateList(slices.Values([]*yaml.Node{}))); !errors.Is(err, algebra.ErrNotAMapping) {
		t.Errorf("expected ErrNotAMapping, got %v", err)
	}
}

func TestMergeDoesNotModify(t *testing.T) {
	o := New()
	base := mustLoad(t, "a: 1\nb: 2\n")
	before := mustDump(t, o, base)
	m, err := o.MergeToMap(base, o.CreateString("a"), o.CreateString("x"))
	if err != nil {
		t.Fatal(err)
	}
	m, err = o.MergeToMap(m, o.CreateString("c"), o.CreateString("y"))
	if err != nil {
		t.Fatal(err)
	}
	if got := mustDump(t, o, m); got != "a: x\nb: 2\nc: \"y\"\n" && got != "a: x\nb: 2\nc: y\n" {
		t.Errorf("got %q", got)
	}
	if after := mustDump(t, o, base); after != before {
		t.Errorf("base modified: %q", after)
	}
}

func TestAliases(t *testing.T) {
	o := New()
	n := mustLoad(t, "a: &x {k: 1}\nb: *x\n")
	a, _ := o.GetGeneric(n, o.CreateString("a"))
	b, _ := o.GetGeneric(n, o.CreateString("b"))
	if !Equal(a, b) || o.Kind(b) != algebra.MappingKind {
		t.Errorf("alias not resolved")
	}
	sorted := SortMappingKeys(n, strings.Compare)
	if got := mustDump(t, o, sorted); strings.ContainsAny(got, "&*") {
		t.Errorf("anchors kept: %q", got)
	}
}

func TestSortMappingKeys(t *testing.T) {
	o := New()
	n := mustLoad(t, "b:\n  d: 1 # one\n  c: 2\na: [z, {y: 1, x: 2}]\n")
	got := mustDump(t, o, SortMappingKeys(n, strings.Compare))
	want := "a: [z, {x: 2, y: 1}]\nb:\n  c: 2\n  d: 1 # one\n"
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("sort (-want +got):\n%s", diff)
	}
}
