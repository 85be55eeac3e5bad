package parse

import (
	"fmt"

	"github.com/goccy/go-yaml/ast"
	"github.com/goccy/go-yaml/parser"
	"github.com/goccy/go-yaml/token"
	"github.com/signadot/yamlops/ir"
)

type yamlState struct {
	anchors map[string]*ir.Node
}

func parseYAML(d []byte) ([]*ir.Node, error) {
	f, err := parser.ParseBytes(d, 0)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}
	st := &yamlState{anchors: map[string]*ir.Node{}}
	docs := make([]*ir.Node, 0, len(f.Docs))
	for _, doc := range f.Docs {
		if doc == nil || doc.Body == nil {
			docs = append(docs, ir.Empty())
			continue
		}
		node, err := st.node(doc.Body)
		if err != nil {
			return nil, err
		}
		docs = append(docs, node)
	}
	if len(docs) == 1 && docs[0].IsEmpty() {
		return nil, nil
	}
	return docs, nil
}

func (st *yamlState) node(n ast.Node) (*ir.Node, error) {
	switch n := n.(type) {
	case nil:
		return ir.Empty(), nil
	case *ast.NullNode, *ast.CommentGroupNode:
		return ir.Empty(), nil
	case *ast.StringNode:
		if n.Token != nil && (n.Token.Type == token.SingleQuoteType || n.Token.Type == token.DoubleQuoteType) {
			return ir.FromString(n.Value), nil
		}
		return ir.FromPlain(n.Value), nil
	case *ast.LiteralNode:
		if n.Value == nil {
			return ir.FromString(""), nil
		}
		return ir.FromString(n.Value.Value), nil
	case *ast.IntegerNode, *ast.FloatNode, *ast.BoolNode, *ast.InfinityNode, *ast.NanNode, *ast.MergeKeyNode:
		return ir.FromPlain(n.GetToken().Value), nil
	case *ast.TagNode:
		return st.tagged(n)
	case *ast.AnchorNode:
		res, err := st.node(n.Value)
		if err != nil {
			return nil, err
		}
		st.anchors[n.Name.GetToken().Value] = res
		return res, nil
	case *ast.AliasNode:
		name := n.Value.GetToken().Value
		res, ok := st.anchors[name]
		if !ok {
			return nil, fmt.Errorf("%w %q", ErrAlias, name)
		}
		return res, nil
	case *ast.MappingKeyNode:
		return st.node(n.Value)
	case *ast.MappingNode:
		kvs := make([]ir.KeyVal, 0, len(n.Values))
		for _, mv := range n.Values {
			kv, err := st.keyVal(mv)
			if err != nil {
				return nil, err
			}
			kvs = append(kvs, kv)
		}
		return ir.FromKeyVals(kvs), nil
	case *ast.MappingValueNode:
		kv, err := st.keyVal(n)
		if err != nil {
			return nil, err
		}
		return ir.FromKeyVals([]ir.KeyVal{kv}), nil
	case *ast.SequenceNode:
		items := make([]*ir.Node, 0, len(n.Values))
		for _, v := range n.Values {
			item, err := st.node(v)
			if err != nil {
				return nil, err
			}
			items = append(items, item)
		}
		return ir.FromSlice(items), nil
	default:
		return nil, fmt.Errorf("%w: %s at %s", ErrUnsupported, n.Type(), n.GetToken().Position)
	}
}

func (st *yamlState) keyVal(mv *ast.MappingValueNode) (ir.KeyVal, error) {
	k, err := st.node(mv.Key)
	if err != nil {
		return ir.KeyVal{}, err
	}
	v, err := st.node(mv.Value)
	if err != nil {
		return ir.KeyVal{}, err
	}
	return ir.KeyVal{Key: k, Val: v}, nil
}

func (st *yamlState) tagged(n *ast.TagNode) (*ir.Node, error) {
	res, err := st.node(n.Value)
	if err != nil {
		return nil, err
	}
	if res.Type != ir.ScalarType {
		return res, nil
	}
	tag := n.Start.Value
	if tag == ir.StrTag {
		return ir.FromString(res.String), nil
	}
	tagged := ir.FromPlain(res.String)
	tagged.Tag = tag
	return tagged, nil
}
