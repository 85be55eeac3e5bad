package algebra

import (
	"iter"

	"github.com/signadot/yamlops/internal/omap"
)

// MergeList appends values to list, using the engine's bulk merge when it
// has one.
func MergeList[T any](ops Ops[T], list T, values ...T) (T, error) {
	if lm, ok := ops.(ListMerger[T]); ok {
		return lm.MergeToListAll(list, values)
	}
	for _, v := range values {
		next, err := ops.MergeToList(list, v)
		if err != nil {
			var zero T
			return zero, err
		}
		list = next
	}
	return list, nil
}

// MergeMap upserts pairs into m, using the engine's bulk merge when it has
// one.
func MergeMap[T any](ops Ops[T], m T, pairs iter.Seq2[T, T]) (T, error) {
	if mm, ok := ops.(MapMerger[T]); ok {
		return mm.MergeToMapAll(m, pairs)
	}
	for k, v := range pairs {
		next, err := ops.MergeToMap(m, k, v)
		if err != nil {
			var zero T
			return zero, err
		}
		m = next
	}
	return m, nil
}

// ListOf builds a sequence from items.
func ListOf[T any](ops Ops[T], items ...T) T {
	return ops.CreateList(func(yield func(T) bool) {
		for _, item := range items {
			if !yield(item) {
				return
			}
		}
	})
}

// MapLike is a keyed view over a mapping's entries.
type MapLike[T any] struct {
	ops Ops[T]
	m   *omap.Map[T, T]
}

// GetMap reads a mapping into a MapLike indexed by structural key equality.
func GetMap[T any](ops Ops[T], node T) (*MapLike[T], error) {
	entries, err := ops.GetMapValues(node)
	if err != nil {
		return nil, err
	}
	m := omap.New[T, T](ops, 0)
	for k, v := range entries {
		m.Set(k, v)
	}
	return &MapLike[T]{ops: ops, m: m}, nil
}

func (ml *MapLike[T]) Get(key T) (T, bool) {
	return ml.m.Get(key)
}

func (ml *MapLike[T]) GetString(key string) (T, bool) {
	return ml.m.Get(ml.ops.CreateString(key))
}

func (ml *MapLike[T]) Entries() iter.Seq2[T, T] {
	return ml.m.All()
}

func (ml *MapLike[T]) Len() int {
	return ml.m.Len()
}
