package yamlnode

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
	"github.com/signadot/yamlops/internal/omap"
	"gopkg.in/yaml.v3"
)

const (
	nullTag  = "!!null"
	strTag   = "!!str"
	intTag   = "!!int"
	floatTag = "!!float"
	boolTag  = "!!bool"
	seqTag   = "!!seq"
	mapTag   = "!!map"
)

// Strategy hashes and compares nodes structurally.
var Strategy omap.Strategy[*yaml.Node] = omap.Funcs[*yaml.Node]{
	HashFunc:  Hash,
	EqualFunc: Equal,
}

// resolve follows aliases.
func resolve(n *yaml.Node) *yaml.Node {
	for n != nil && n.Kind == yaml.AliasNode {
		n = n.Alias
	}
	return n
}

func isEmpty(n *yaml.Node) bool {
	n = resolve(n)
	return n == nil || (n.Kind == yaml.ScalarNode && n.ShortTag() == nullTag)
}

// Hash returns a structural hash of n. Scalars hash by value only, children
// are combined positionally.
func Hash(n *yaml.Node) uint64 {
	n = resolve(n)
	h := xxhash.New()
	if isEmpty(n) {
		h.Write([]byte{0})
		return h.Sum64()
	}
	h.Write([]byte{byte(n.Kind)})
	if n.Kind == yaml.ScalarNode {
		h.WriteString(n.Value)
		return h.Sum64()
	}
	var b [8]byte
	for _, c := range n.Content {
		binary.LittleEndian.PutUint64(b[:], Hash(c))
		h.Write(b[:])
	}
	return h.Sum64()
}

// Equal reports whether a and b are structurally equal. Empty equals only
// Empty, other scalars are equal when their values are, and mappings compare
// entry by entry in order.
func Equal(a, b *yaml.Node) bool {
	a, b = resolve(a), resolve(b)
	if a == b {
		return true
	}
	ae, be := isEmpty(a), isEmpty(b)
	if ae || be {
		return ae && be
	}
	if a.Kind != b.Kind {
		return false
	}
	if a.Kind == yaml.ScalarNode {
		return a.Value == b.Value
	}
	if len(a.Content) != len(b.Content) {
		return false
	}
	for i := range a.Content {
		if !Equal(a.Content[i], b.Content[i]) {
			return false
		}
	}
	return true
}
