package ir

import (
	"cmp"
	"strings"
)

// Compare orders nodes structurally by type, tag, class, text and then
// children in order.  Parent links are not considered.
func Compare(a, b *Node) int {
	if a == b {
		return 0
	}
	if a == nil {
		return -1
	}
	if b == nil {
		return 1
	}
	if c := cmp.Compare(a.Type, b.Type); c != 0 {
		return c
	}
	if c := strings.Compare(a.Tag, b.Tag); c != 0 {
		return c
	}
	if c := strings.Compare(a.Class, b.Class); c != 0 {
		return c
	}
	if c := strings.Compare(a.Text, b.Text); c != 0 {
		return c
	}
	n := min(len(a.Children), len(b.Children))
	for i := range n {
		if c := Compare(a.Children[i], b.Children[i]); c != 0 {
			return c
		}
	}
	return cmp.Compare(len(a.Children), len(b.Children))
}

func Equal(a, b *Node) bool {
	return Compare(a, b) == 0
}

// TreeEqual reports whether two trees have the same header and
// structurally equal roots.
func TreeEqual(a, b *Tree) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Header == b.Header && Equal(a.Root, b.Root)
}
