package ir

// Equal reports whether a and b are structurally equal.
//
// Scalars are equal when their lexical forms are, regardless of typed
// payload or tag. Arrays and streams compare item by item. Objects compare
// entry by entry in order, so objects holding the same entries in a different
// order are not equal.
func Equal(a, b *Node) bool {
	if a == b {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	if a.Type != b.Type {
		return false
	}
	switch a.Type {
	case EmptyType:
		return true
	case ScalarType:
		return a.String == b.String
	case ArrayType, StreamType:
		_, av := a.slice()
		_, bv := b.slice()
		return equalSlices(av, bv)
	case ObjectType:
		af, av := a.slice()
		bf, bv := b.slice()
		return equalSlices(af, bf) && equalSlices(av, bv)
	}
	return false
}

func equalSlices(a, b []*Node) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !Equal(a[i], b[i]) {
			return false
		}
	}
	return true
}
