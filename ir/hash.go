package ir

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
	"github.com/signadot/yamlops/internal/omap"
)

// Hash returns a 64-bit structural hash of the node, stable across
// processes. Scalars hash by lexical form only, so typed and untyped scalars
// with the same text hash equally. Child hashes are combined positionally.
//
// It panics if n is nil.
func (n *Node) Hash() uint64 {
	if n == nil {
		panic("ir: Hash called on nil node")
	}
	h := xxhash.New()
	h.Write([]byte{byte(n.Type)})

	var b [8]byte
	switch n.Type {
	case EmptyType:
	case ScalarType:
		h.WriteString(n.String)
	case ArrayType, StreamType:
		for v := range n.Items() {
			binary.LittleEndian.PutUint64(b[:], v.Hash())
			h.Write(b[:])
		}
	case ObjectType:
		for k, v := range n.Entries() {
			binary.LittleEndian.PutUint64(b[:], k.Hash())
			h.Write(b[:])
			binary.LittleEndian.PutUint64(b[:], v.Hash())
			h.Write(b[:])
		}
	}
	return h.Sum64()
}

// Strategy hashes and compares nodes structurally, for use as map keys.
var Strategy omap.Strategy[*Node] = omap.Funcs[*Node]{
	HashFunc:  (*Node).Hash,
	EqualFunc: Equal,
}

func newIndex(n int) *omap.Map[*Node, *Node] {
	return omap.New[*Node, *Node](Strategy, n)
}
