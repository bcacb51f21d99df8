package encode

import (
	"encoding/json"

	"github.com/signadot/rpy-format/ir"
)

// docTree is the tree as exported to json and yaml.
type docTree struct {
	Header ir.Header `json:"header" yaml:"header"`
	Root   *docNode  `json:"root" yaml:"root"`
}

type docNode struct {
	Tag      string     `json:"tag" yaml:"tag"`
	Type     string     `json:"type" yaml:"type"`
	Class    string     `json:"class,omitempty" yaml:"class,omitempty"`
	Text     *string    `json:"text,omitempty" yaml:"text,omitempty"`
	Children []*docNode `json:"children,omitempty" yaml:"children,omitempty"`
}

func toDoc(tree *ir.Tree) *docTree {
	return &docTree{Header: tree.Header, Root: toDocNode(tree.Root)}
}

func toDocNode(n *ir.Node) *docNode {
	res := &docNode{Tag: n.Tag, Type: n.Type.String(), Class: n.Class}
	if n.Type == ir.ScalarType {
		text := n.Text
		res.Text = &text
	}
	for _, c := range n.Children {
		res.Children = append(res.Children, toDocNode(c))
	}
	return res
}

func encodeJSON(tree *ir.Tree, es *EncState) error {
	enc := json.NewEncoder(es.w)
	if es.pretty {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(toDoc(tree))
}
