package encode

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/signadot/rpy-format/debug"
	"github.com/signadot/rpy-format/format"
	"github.com/signadot/rpy-format/ir"
)

type EncState struct {
	indent string
	pretty bool
	format format.Format

	Color func(ir.Type, ColorAttr, string) string

	w   io.Writer
	err error
}

func newEncState(w io.Writer, opts []EncodeOption) *EncState {
	es := &EncState{indent: "\t", w: w}
	for _, opt := range opts {
		opt(es)
	}
	return es
}

// Encode writes tree to w in the selected format, by default the archive
// layout.
func Encode(tree *ir.Tree, w io.Writer, opts ...EncodeOption) error {
	if tree == nil || tree.Root == nil {
		return fmt.Errorf("%w: empty tree", ErrEncoding)
	}
	es := newEncState(w, opts)
	if debug.Encode() {
		debug.Logf("encode %s as %s\n", tree, es.format)
	}
	switch es.format {
	case format.RPYFormat:
		return encodeRPY(tree, es)
	case format.XMLFormat:
		return encodeXML(tree, es)
	case format.JSONFormat:
		return encodeJSON(tree, es)
	case format.YAMLFormat:
		return encodeYAML(tree, es)
	}
	return fmt.Errorf("%w: unsupported format %s", ErrEncoding, es.format)
}

// EncodeNode writes the member for node, as it would appear inside its
// parent block at the outermost indentation.  A root node is written as
// a bare block.
func EncodeNode(node *ir.Node, w io.Writer, opts ...EncodeOption) error {
	es := newEncState(w, opts)
	if !es.format.IsRPY() {
		return fmt.Errorf("%w: cannot encode a node fragment as %s", ErrEncoding, es.format)
	}
	if node.Parent == nil && node.Type == ir.BlockType {
		es.block(node, 0)
		es.writeString("\n")
		return es.err
	}
	es.members([]*ir.Node{node}, 0)
	return es.err
}

func encodeRPY(tree *ir.Tree, es *EncState) error {
	es.color(ir.BlockType, HeaderColor, tree.String())
	es.writeString("\n")
	es.block(tree.Root, 0)
	es.writeString("\n")
	return es.err
}

// block writes "{ Class " and the members of n, and leaves the output
// just after the closing brace.
func (es *EncState) block(n *ir.Node, depth int) {
	es.color(n.Type, SepColor, "{")
	es.writeString(" ")
	es.color(ir.BlockType, ClassColor, n.Class)
	es.writeString(" \n")
	es.members(n.Children, depth+1)
	es.writeIndent(depth)
	es.color(n.Type, SepColor, "}")
}

func (es *EncState) members(cs []*ir.Node, depth int) {
	for i := 0; i < len(cs); i++ {
		c := cs[i]
		switch {
		case c.Type == ir.EmptyArrayType:
			es.writeIndent(depth)
			es.field(c.Type, ir.SizeTag)
			es.count(c.Type, 0)
		case c.Type == ir.ElementsType:
			es.writeIndent(depth)
			es.field(c.Type, "elementList")
			es.count(c.Type, len(c.Children))
			for _, el := range c.Children {
				es.writeIndent(depth)
				es.block(el, depth)
				es.writeString("\n")
			}
		case c.Tag == ir.ValueTag:
			j := i + 1
			for j < len(cs) && cs[j].Tag == ir.ValueTag && isValue(cs[j]) {
				j++
			}
			es.array(cs[i:j], depth)
			i = j - 1
		default:
			es.writeIndent(depth)
			es.field(c.Type, c.Tag)
			es.value(c, depth)
			es.writeString("\n")
		}
	}
}

func isValue(n *ir.Node) bool {
	return n.Type == ir.ScalarType || n.Type == ir.BlockType
}

// array writes a run of value siblings as a size/value group.  Scalars
// share one line; blocks start on their own line at the member's
// indentation.
func (es *EncState) array(items []*ir.Node, depth int) {
	es.writeIndent(depth)
	es.field(ir.ScalarType, ir.SizeTag)
	es.count(ir.ScalarType, len(items))
	es.writeIndent(depth)
	es.field(ir.ScalarType, ir.ValueTag)
	open := true
	for _, item := range items {
		if item.Type == ir.BlockType {
			if open {
				es.writeString("\n")
			}
			es.writeIndent(depth)
			es.block(item, depth)
			es.writeString("\n")
			open = false
			continue
		}
		if !open {
			es.writeIndent(depth)
		}
		es.scalar(item)
		es.writeString(" ")
		open = true
	}
	if open {
		es.writeString("\n")
	}
}

func (es *EncState) value(c *ir.Node, depth int) {
	if c.Type == ir.BlockType {
		es.block(c, depth)
		return
	}
	es.scalar(c)
}

func (es *EncState) scalar(c *ir.Node) {
	es.color(ir.ScalarType, ValueColor, c.Text)
	es.color(ir.ScalarType, SepColor, ";")
}

// field writes "- name = ".
func (es *EncState) field(t ir.Type, name string) {
	es.color(t, SepColor, "-")
	es.writeString(" ")
	es.color(t, FieldColor, name)
	es.writeString(" ")
	es.color(t, SepColor, "=")
	es.writeString(" ")
}

func (es *EncState) count(t ir.Type, n int) {
	es.color(t, ValueColor, strconv.Itoa(n))
	es.color(t, SepColor, ";")
	es.writeString("\n")
}

func (es *EncState) writeIndent(depth int) {
	es.writeString(strings.Repeat(es.indent, depth))
}

func (es *EncState) color(t ir.Type, a ColorAttr, s string) {
	if es.Color != nil && s != "" {
		s = es.Color(t, a, s)
	}
	es.writeString(s)
}

func (es *EncState) writeString(s string) {
	if es.err != nil {
		return
	}
	_, es.err = io.WriteString(es.w, s)
}
