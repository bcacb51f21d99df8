package ir

import (
	"strconv"
	"strings"
)

// Path returns a dotted path from the root to y.  Repeated tags among
// siblings carry an index, as in "root._properties.Subjects.value[1]".
func (y *Node) Path() string {
	var parts []string
	for n := y; n != nil; n = n.Parent {
		parts = append(parts, n.pathElem())
	}
	var b strings.Builder
	for i := len(parts) - 1; i >= 0; i-- {
		b.WriteString(parts[i])
		if i > 0 {
			b.WriteByte('.')
		}
	}
	return b.String()
}

func (y *Node) pathElem() string {
	p := y.Parent
	if p == nil {
		return y.Tag
	}
	n, at := 0, 0
	for i, c := range p.Children {
		if c.Tag != y.Tag {
			continue
		}
		if i == y.ParentIndex {
			at = n
		}
		n++
	}
	if n == 1 {
		return y.Tag
	}
	return y.Tag + "[" + strconv.Itoa(at) + "]"
}
