package ir

// Header is the first line of an archive:
//
//	<Archive> version <Version> <Language> <ID>
type Header struct {
	Archive  string `json:"archive" yaml:"archive"`
	Version  string `json:"version" yaml:"version"`
	Language string `json:"language" yaml:"language"`
	ID       string `json:"id" yaml:"id"`
}

// Tree is one parsed archive file.  The tree owns its nodes.
type Tree struct {
	Header Header
	Root   *Node
}

func NewTree(h Header, class string) *Tree {
	return &Tree{
		Header: h,
		Root:   &Node{Type: BlockType, Tag: RootTag, Class: class},
	}
}

// String returns the header line of t.
func (t *Tree) String() string {
	h := t.Header
	return h.Archive + " version " + h.Version + " " + h.Language + " " + h.ID
}

func (t *Tree) Clone() *Tree {
	res := &Tree{Header: t.Header}
	if t.Root != nil {
		res.Root = t.Root.Clone()
	}
	return res
}
