package yamlnode

import (
	"slices"

	"gopkg.in/yaml.v3"
)

// SortMappingKeys returns a copy of node in which every mapping is ordered
// by cmp applied to its scalar keys, recursing through sequences, mapping
// values and the documents of a stream. Styles, tags and comments are kept.
// Aliases are replaced by a sorted copy of the node they name, and anchors
// dropped.
func SortMappingKeys(node *yaml.Node, cmp func(a, b string) int) *yaml.Node {
	node = resolve(node)
	if node == nil {
		return nil
	}
	switch node.Kind {
	case yaml.SequenceNode, yaml.DocumentNode:
		res := *node
		res.Anchor = ""
		res.Content = make([]*yaml.Node, len(node.Content))
		for i, c := range node.Content {
			res.Content[i] = SortMappingKeys(c, cmp)
		}
		return &res
	case yaml.MappingNode:
		type pair struct{ k, v *yaml.Node }
		pairs := make([]pair, 0, len(node.Content)/2)
		for k, v := range entries(node) {
			pairs = append(pairs, pair{k: k, v: SortMappingKeys(v, cmp)})
		}
		slices.SortStableFunc(pairs, func(a, b pair) int {
			return cmp(keyValue(a.k), keyValue(b.k))
		})
		res := *node
		res.Anchor = ""
		res.Content = make([]*yaml.Node, 0, len(node.Content))
		for _, p := range pairs {
			res.Content = append(res.Content, p.k, p.v)
		}
		return &res
	default:
		if node.Anchor == "" {
			return node
		}
		res := *node
		res.Anchor = ""
		return &res
	}
}

func keyValue(k *yaml.Node) string {
	if k.Kind == yaml.ScalarNode && !isEmpty(k) {
		return k.Value
	}
	return ""
}
