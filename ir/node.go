package ir

import "slices"

type Node struct {
	Type        Type
	Parent      *Node
	ParentIndex int

	// Tag is the member name, or one of the reserved tags.
	Tag string
	// Class is the word following '{' for BlockType nodes.
	Class string
	// Text is the untrimmed scalar text, excluding the terminating ';'.
	Text string

	Children []*Node
}

func FromText(tag, text string) *Node {
	return &Node{Type: ScalarType, Tag: tag, Text: text}
}

func FromBlock(tag, class string, children ...*Node) *Node {
	res := &Node{Type: BlockType, Tag: tag, Class: class}
	for _, c := range children {
		res.Append(c)
	}
	return res
}

func FromElements(blocks ...*Node) *Node {
	res := &Node{Type: ElementsType, Tag: ElementsTag}
	for _, b := range blocks {
		b.Tag = ElementTag
		res.Append(b)
	}
	return res
}

func EmptyArray() *Node {
	return &Node{Type: EmptyArrayType, Tag: SizeTag}
}

func (y *Node) IsLeaf() bool {
	return y.Type.IsLeaf()
}

// Append adds c as the last child of y.
func (y *Node) Append(c *Node) *Node {
	c.Parent = y
	c.ParentIndex = len(y.Children)
	y.Children = append(y.Children, c)
	return y
}

// Insert places c at index i among the children of y.
func (y *Node) Insert(i int, c *Node) *Node {
	c.Parent = y
	y.Children = slices.Insert(y.Children, i, c)
	y.reindex(i)
	return y
}

// Remove detaches the child at index i and returns it.
func (y *Node) Remove(i int) *Node {
	c := y.Children[i]
	y.Children = slices.Delete(y.Children, i, i+1)
	y.reindex(i)
	c.Parent = nil
	c.ParentIndex = 0
	return c
}

func (y *Node) reindex(from int) {
	for i := from; i < len(y.Children); i++ {
		y.Children[i].ParentIndex = i
	}
}

// Child returns the first direct child tagged tag, or nil.
func (y *Node) Child(tag string) *Node {
	for _, c := range y.Children {
		if c.Tag == tag {
			return c
		}
	}
	return nil
}

// ChildText returns the text of the first direct scalar child tagged tag.
func (y *Node) ChildText(tag string) (string, bool) {
	c := y.Child(tag)
	if c == nil || c.Type != ScalarType {
		return "", false
	}
	return c.Text, true
}

// Values returns the array items of y, in order.
func (y *Node) Values() []*Node {
	var res []*Node
	for _, c := range y.Children {
		if c.Tag == ValueTag {
			res = append(res, c)
		}
	}
	return res
}

// Walk calls f on y and its descendants in document order.  Children of a
// node are skipped when f returns false for it.
func (y *Node) Walk(f func(*Node) bool) {
	if !f(y) {
		return
	}
	for _, c := range y.Children {
		c.Walk(f)
	}
}

func (y *Node) Clone() *Node {
	res := &Node{}
	return y.CloneTo(res)
}

func (y *Node) CloneTo(dst *Node) *Node {
	dst.Type = y.Type
	dst.Parent = y.Parent
	dst.ParentIndex = y.ParentIndex
	dst.Tag = y.Tag
	dst.Class = y.Class
	dst.Text = y.Text
	dst.Children = make([]*Node, len(y.Children))
	for i, yc := range y.Children {
		dc := &Node{}
		yc.CloneTo(dc)
		dc.Parent = dst
		dc.ParentIndex = i
		dst.Children[i] = dc
	}
	return dst
}

// Root returns the top most ancestor of y.
func (y *Node) Root() *Node {
	for y.Parent != nil {
		y = y.Parent
	}
	return y
}

// Depth is the number of ancestors of y.
func (y *Node) Depth() int {
	n := 0
	for p := y.Parent; p != nil; p = p.Parent {
		n++
	}
	return n
}
