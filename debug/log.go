package debug

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/signadot/yamlops/encode"
	"github.com/signadot/yamlops/ir"

	"gopkg.in/yaml.v3"
)

// Tree formats an *ir.Node with %s as compact YAML.
type Tree struct{ *ir.Node }

func (t Tree) String() string {
	buf := bytes.NewBuffer(nil)
	if err := encode.Encode(t.Node, buf, encode.EncodeWire(true)); err != nil {
		return fmt.Sprintf("[raw *ir.Node] %v", t.Node)
	}
	return strings.TrimSpace(buf.String())
}

// YAML formats a *yaml.Node with %s as YAML.
type YAML struct{ *yaml.Node }

func (y YAML) String() string {
	d, err := yaml.Marshal(y.Node)
	if err != nil {
		return fmt.Sprintf("[raw *yaml.Node] %v", y.Node)
	}
	return strings.TrimSpace(string(d))
}

// Logf writes a debug message to stderr. Tree arguments (*ir.Node and
// *yaml.Node) are rendered as YAML.
func Logf(msg string, args ...any) {
	for i := range args {
		switch x := args[i].(type) {
		case *ir.Node:
			args[i] = Tree{x}.String()
		case *yaml.Node:
			args[i] = YAML{x}.String()
		default:
		}
	}
	fmt.Fprintf(os.Stderr, msg, args...)
}
