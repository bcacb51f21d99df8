package encode

import (
	"encoding/xml"

	"github.com/signadot/rpy-format/ir"
)

// encodeXML writes the element tree shape used by earlier tooling for
// these archives: the root element carries the header as attributes, and
// every node is an element named by its tag with a "type" attribute for
// blocks.  Empty arrays have no element.
func encodeXML(tree *ir.Tree, es *EncState) error {
	enc := xml.NewEncoder(es.w)
	if es.pretty {
		enc.Indent("", "  ")
	}
	h := tree.Header
	start := xml.StartElement{
		Name: xml.Name{Local: ir.RootTag},
		Attr: []xml.Attr{
			{Name: xml.Name{Local: "rhapsody_type"}, Value: h.Archive},
			{Name: xml.Name{Local: "rhapsody_version"}, Value: h.Version},
			{Name: xml.Name{Local: "rhapsody_lang"}, Value: h.Language},
			{Name: xml.Name{Local: "id"}, Value: h.ID},
			{Name: xml.Name{Local: "type"}, Value: tree.Root.Class},
		},
	}
	if err := xmlChildren(enc, start, tree.Root); err != nil {
		return err
	}
	if err := enc.Flush(); err != nil {
		return err
	}
	es.writeString("\n")
	return es.err
}

func xmlNode(enc *xml.Encoder, n *ir.Node) error {
	start := xml.StartElement{Name: xml.Name{Local: n.Tag}}
	switch n.Type {
	case ir.EmptyArrayType:
		return nil
	case ir.ScalarType:
		if err := enc.EncodeToken(start); err != nil {
			return err
		}
		if n.Text != "" {
			if err := enc.EncodeToken(xml.CharData(n.Text)); err != nil {
				return err
			}
		}
		return enc.EncodeToken(start.End())
	case ir.BlockType:
		start.Attr = []xml.Attr{{Name: xml.Name{Local: "type"}, Value: n.Class}}
	}
	return xmlChildren(enc, start, n)
}

func xmlChildren(enc *xml.Encoder, start xml.StartElement, n *ir.Node) error {
	if err := enc.EncodeToken(start); err != nil {
		return err
	}
	for _, c := range n.Children {
		if err := xmlNode(enc, c); err != nil {
			return err
		}
	}
	return enc.EncodeToken(start.End())
}
