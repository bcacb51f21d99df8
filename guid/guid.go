// Package guid indexes model elements by their "_id" member.
package guid

import (
	"github.com/google/uuid"

	"github.com/signadot/rpy-format/ir"
)

// DependsOnTag names object handles, whose _id refers to another element
// rather than naming the handle itself.
const DependsOnTag = "_dependsOn"

// Index maps GUID text, such as "GUID 4cd0f270-...", to the node owning it.
type Index map[string]*ir.Node

// Build indexes tree.  Nodes are visited in document order and a later
// node with the same GUID replaces an earlier one.
func Build(tree *ir.Tree) Index {
	x := Index{}
	x.Add(tree.Root)
	return x
}

// BuildAll indexes several trees, such as the files of a project in load
// order, into one index.
func BuildAll(trees ...*ir.Tree) Index {
	x := Index{}
	for _, t := range trees {
		x.Add(t.Root)
	}
	return x
}

// Add indexes the subtree rooted at root into x.
func (x Index) Add(root *ir.Node) {
	root.Walk(func(n *ir.Node) bool {
		if n.Tag == DependsOnTag {
			return true
		}
		if id, ok := n.ChildText(ir.IDTag); ok {
			x[id] = n
		}
		return true
	})
}

func (x Index) Lookup(id string) (*ir.Node, bool) {
	n, ok := x[id]
	return n, ok
}

// New returns GUID text for a new element.
func New() string {
	return "GUID " + uuid.NewString()
}
