package algebra

import (
	"slices"

	"github.com/signadot/yamlops/debug"
)

// SortKeys returns a copy of node in which the entries of every mapping are
// ordered by cmp applied to the lexical form of their keys, recursing through
// sequences and mapping values. Keys which are not scalars compare as "".
// Other nodes are returned as is. The sort is not stable; ties are left to
// cmp.
func SortKeys[T any](ops Ops[T], node T, cmp func(a, b string) int) T {
	switch ops.Kind(node) {
	case SequenceKind:
		items, err := ops.GetStream(node)
		if err != nil {
			return node
		}
		var sorted []T
		for item := range items {
			sorted = append(sorted, SortKeys(ops, item, cmp))
		}
		return ops.CreateList(slices.Values(sorted))
	case MappingKind:
		entries, err := ops.GetMapValues(node)
		if err != nil {
			return node
		}
		type entry struct {
			lex  string
			k, v T
		}
		var es []entry
		for k, v := range entries {
			lex, _ := ops.GetStringValue(k)
			es = append(es, entry{lex: lex, k: k, v: SortKeys(ops, v, cmp)})
		}
		slices.SortFunc(es, func(a, b entry) int {
			return cmp(a.lex, b.lex)
		})
		if debug.Sort() {
			debug.Logf("sorted %d keys\n", len(es))
		}
		return ops.CreateMap(func(yield func(T, T) bool) {
			for _, e := range es {
				if !yield(e.k, e.v) {
					return
				}
			}
		})
	default:
		return node
	}
}
