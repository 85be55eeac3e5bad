package omap

import (
	"slices"
	"strings"
	"testing"
)

// foldStrategy makes keys equal ignoring case and forces collisions by
// hashing only the length.
var foldStrategy = Funcs[string]{
	HashFunc:  func(s string) uint64 { return uint64(len(s)) },
	EqualFunc: strings.EqualFold,
}

func keys[V any](m *Map[string, V]) []string {
	var keys []string
	for k := range m.All() {
		keys = append(keys, k)
	}
	return keys
}

func TestSetKeepsPosition(t *testing.T) {
	m := New[string, int](foldStrategy, 0)
	m.Set("a", 1)
	m.Set("bb", 2)
	m.Set("c", 3)
	if isNew := m.Set("A", 10); isNew {
		t.Errorf("expected A to collide with a")
	}
	if got, want := keys(m), []string{"a", "bb", "c"}; !slices.Equal(got, want) {
		t.Errorf("got %v want %v", got, want)
	}
	v, ok := m.Get("a")
	if !ok || v != 10 {
		t.Errorf("got %d, %t", v, ok)
	}
	if m.Len() != 3 {
		t.Errorf("len %d", m.Len())
	}
}

func TestDelete(t *testing.T) {
	m := New[string, int](foldStrategy, 0)
	for i, k := range []string{"a", "b", "c", "d"} {
		m.Set(k, i)
	}
	if !m.Delete("B") {
		t.Fatalf("delete B")
	}
	if m.Delete("b") {
		t.Errorf("b deleted twice")
	}
	if got, want := keys(m), []string{"a", "c", "d"}; !slices.Equal(got, want) {
		t.Errorf("got %v want %v", got, want)
	}
	m.Set("b", 7)
	if got, want := keys(m), []string{"a", "c", "d", "b"}; !slices.Equal(got, want) {
		t.Errorf("got %v want %v", got, want)
	}
}

func TestCompact(t *testing.T) {
	m := New[string, int](foldStrategy, 0)
	var all []string
	for i := range 100 {
		k := strings.Repeat("x", i+1)
		all = append(all, k)
		m.Set(k, i)
	}
	for _, k := range all[:80] {
		m.Delete(k)
	}
	if m.Len() != 20 {
		t.Fatalf("len %d", m.Len())
	}
	if got := keys(m); !slices.Equal(got, all[80:]) {
		t.Errorf("got %v", got)
	}
	for i, k := range all[80:] {
		v, ok := m.Get(k)
		if !ok || v != 80+i {
			t.Errorf("%s: got %d, %t", k, v, ok)
		}
	}
}
