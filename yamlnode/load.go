package yamlnode

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/signadot/yamlops/debug"
	"gopkg.in/yaml.v3"
)

var ErrLoad = errors.New("yaml load error")

// Load reads every document from r. A single document yields its root, no
// document yields Empty, and several yield a stream.
func Load(r io.Reader) (*yaml.Node, error) {
	dec := yaml.NewDecoder(r)
	var roots []*yaml.Node
	for {
		var doc yaml.Node
		err := dec.Decode(&doc)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrLoad, err)
		}
		if len(doc.Content) == 0 {
			roots = append(roots, New().Empty())
			continue
		}
		roots = append(roots, doc.Content[0])
	}
	var res *yaml.Node
	switch len(roots) {
	case 0:
		res = New().Empty()
	case 1:
		res = roots[0]
	default:
		res = &yaml.Node{Kind: yaml.DocumentNode, Content: roots}
	}
	if debug.Parse() {
		debug.Logf("loaded %d documents\n", len(roots))
	}
	return res, nil
}

func LoadString(s string) (*yaml.Node, error) {
	return Load(strings.NewReader(s))
}

// Dump writes node to w, one document per root of a stream.
func (o *Ops) Dump(w io.Writer, node *yaml.Node) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(o.indent)
	docs := []*yaml.Node{node}
	if n := resolve(node); n != nil && n.Kind == yaml.DocumentNode {
		docs = n.Content
	}
	for _, doc := range docs {
		if doc == nil {
			doc = o.Empty()
		}
		if err := enc.Encode(doc); err != nil {
			return err
		}
	}
	return enc.Close()
}

func (o *Ops) DumpString(node *yaml.Node) (string, error) {
	buf := bytes.NewBuffer(nil)
	if err := o.Dump(buf, node); err != nil {
		return "", err
	}
	return buf.String(), nil
}
