package ir

import "fmt"

// MaxOverlayDepth is the default bound on overlay chains. Lookups through an
// overlay cost one step per level, so chains deeper than this are flattened
// into a concrete node before another level is added.
const MaxOverlayDepth = 16

// Overlay returns a view of base with over layered on top, without copying
// either. base and over must both be arrays or both be objects.
//
// For arrays the view yields the items of base followed by those of over.
// For objects, values in over take priority over structurally equal keys in
// base; entries are yielded in base order followed by the keys over
// introduces, which matches upserting over's entries into a copy of base.
//
// When base is already maxDepth levels deep it is flattened first.
func Overlay(base, over *Node, maxDepth int) *Node {
	if base.Type != over.Type {
		panic(fmt.Sprintf("ir: overlay of %s on %s", over.Type, base.Type))
	}
	switch base.Type {
	case ArrayType, ObjectType:
	default:
		panic(fmt.Sprintf("ir: cannot overlay %s", base.Type))
	}
	if base.depth >= max(maxDepth, 1) {
		base = base.Flatten()
	}
	over = over.Flatten()
	return &Node{
		Type:  base.Type,
		base:  base,
		over:  over,
		depth: base.depth + 1,
	}
}

// Depth is the length of the overlay chain behind y, 0 for concrete nodes.
func (y *Node) Depth() int {
	return y.depth
}

// Flatten returns a concrete node with the same content as y.
func (y *Node) Flatten() *Node {
	if y.base == nil {
		return y
	}
	fields, values := y.slice()
	return &Node{
		Type:   y.Type,
		fields: fields,
		values: values,
	}
}

func (y *Node) overlayEntries(yield func(*Node, *Node) bool) {
	for k, v := range y.base.Entries() {
		if ov := y.over.Get(k); ov != nil {
			v = ov
		}
		if !yield(k, v) {
			return
		}
	}
	for k, v := range y.over.Entries() {
		if y.base.Get(k) != nil {
			continue
		}
		if !yield(k, v) {
			return
		}
	}
}
