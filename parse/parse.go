package parse

import (
	"errors"
	"os"
	"strconv"

	"github.com/signadot/rpy-format/debug"
	"github.com/signadot/rpy-format/ir"
	"github.com/signadot/rpy-format/token"
)

func Parse(d []byte, opts ...ParseOption) (*ir.Tree, error) {
	pOpts := &parseOpts{}
	for _, f := range opts {
		f(pOpts)
	}
	if pOpts.maxDepth <= 0 {
		pOpts.maxDepth = DefaultMaxDepth
	}
	p := &parser{d: token.Sanitize(d), opts: pOpts}
	return p.file()
}

func ParseString(s string, opts ...ParseOption) (*ir.Tree, error) {
	return Parse([]byte(s), opts...)
}

// ParseFile reads and parses the archive at path.
func ParseFile(path string, opts ...ParseOption) (*ir.Tree, error) {
	d, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if debug.Parse() {
		debug.Logf("parse %s (%d bytes)\n", path, len(d))
	}
	return Parse(d, append([]ParseOption{ParseFilename(path)}, opts...)...)
}

// parser holds the cursor for one document.
type parser struct {
	d    []byte
	off  int
	opts *parseOpts
	doc  *token.PosDoc
}

func (p *parser) file() (*ir.Tree, error) {
	h, err := p.header()
	if err != nil {
		return nil, err
	}
	root := &ir.Node{Tag: ir.RootTag}
	if err := p.block(root, 1); err != nil {
		return nil, err
	}
	p.skipSpace()
	if p.off != len(p.d) {
		return nil, p.errAt(ErrUnexpectedEndOfBlock, p.off)
	}
	return &ir.Tree{Header: h, Root: root}, nil
}

// header reads `<archive> version <version> <language> <id>`.
func (p *parser) header() (ir.Header, error) {
	var (
		h     ir.Header
		words [5]string
	)
	p.skipSpace()
	start := p.off
	for i := range words {
		if i > 0 && !p.skipSpace() {
			return h, p.errAt(ErrMalformedHeader, start)
		}
		words[i] = p.word()
		if words[i] == "" {
			return h, p.errAt(ErrMalformedHeader, start)
		}
	}
	if words[1] != "version" || !isVersion(words[2]) || !p.skipSpace() {
		return h, p.errAt(ErrMalformedHeader, start)
	}
	h.Archive = words[0]
	h.Version = words[2]
	h.Language = words[3]
	h.ID = words[4]
	return h, nil
}

func (p *parser) block(n *ir.Node, depth int) error {
	if depth > p.opts.maxDepth {
		return p.errAt(ErrNestingTooDeep, p.off)
	}
	p.skipSpace()
	start := p.off
	if !p.peek('{') {
		return p.errAt(ErrInvalidBlockStart, start)
	}
	p.off++
	p.skipSpace()
	class := p.word()
	if class == "" {
		return p.errAt(ErrInvalidBlockStart, start)
	}
	n.Type = ir.BlockType
	n.Class = class
	for {
		p.skipSpace()
		if p.off >= len(p.d) {
			return p.errAt(ErrUnexpectedEndOfBlock, p.off)
		}
		switch p.d[p.off] {
		case '}':
			p.off++
			return nil
		case '-':
			if err := p.member(n, depth); err != nil {
				return err
			}
		default:
			return p.errAt(ErrUnexpectedEndOfBlock, p.off)
		}
	}
}

// member reads one `- name = ...` statement into n.
func (p *parser) member(n *ir.Node, depth int) error {
	start := p.off
	name, ok := p.assignment()
	if !ok {
		return p.errAt(ErrUnexpectedEndOfBlock, start)
	}
	switch name {
	case ir.SizeTag:
		return p.array(n, depth)
	case "elementList":
		return p.elementList(n, depth)
	}
	c := &ir.Node{Tag: name}
	if err := p.value(c, depth); err != nil {
		return err
	}
	n.Append(c)
	return nil
}

// assignment consumes `- name =` and returns name.
func (p *parser) assignment() (string, bool) {
	if !p.peek('-') {
		return "", false
	}
	p.off++
	p.skipSpace()
	name := p.name()
	p.skipSpace()
	if name == "" || !p.peek('=') {
		return "", false
	}
	p.off++
	return name, true
}

func (p *parser) array(n *ir.Node, depth int) error {
	count, err := p.count(ErrInvalidSizeAttribute)
	if err != nil {
		return err
	}
	if count == 0 {
		n.Append(ir.EmptyArray())
		return nil
	}
	p.skipSpace()
	start := p.off
	if name, ok := p.assignment(); !ok || name != ir.ValueTag {
		return p.errAt(ErrInvalidValueAttribute, start)
	}
	for range count {
		c := &ir.Node{Tag: ir.ValueTag}
		if err := p.value(c, depth); err != nil {
			return err
		}
		n.Append(c)
	}
	return nil
}

func (p *parser) elementList(n *ir.Node, depth int) error {
	count, err := p.count(ErrInvalidSizeAttribute)
	if err != nil {
		return err
	}
	els := &ir.Node{Type: ir.ElementsType, Tag: ir.ElementsTag}
	for range count {
		c := &ir.Node{Tag: ir.ElementTag}
		if err := p.block(c, depth+1); err != nil {
			return err
		}
		els.Append(c)
	}
	n.Append(els)
	return nil
}

// count reads `INT ;`.
func (p *parser) count(bad error) (int, error) {
	p.skipSpace()
	start := p.off
	for p.off < len(p.d) && '0' <= p.d[p.off] && p.d[p.off] <= '9' {
		p.off++
	}
	digits := string(p.d[start:p.off])
	p.skipSpace()
	if digits == "" || !p.peek(';') {
		return 0, p.errAt(bad, start)
	}
	p.off++
	n, err := strconv.Atoi(digits)
	if err != nil {
		return 0, p.errAt(bad, start)
	}
	return n, nil
}

// value reads a block or a scalar into c.  Whitespace before a scalar is
// skipped; the remaining text up to ';' is kept verbatim.
func (p *parser) value(c *ir.Node, depth int) error {
	p.skipSpace()
	if p.peek('{') {
		return p.block(c, depth+1)
	}
	end, err := token.FindStatementEnd(p.d, p.off)
	if err != nil {
		return p.scanErr(err)
	}
	c.Type = ir.ScalarType
	c.Text = string(p.d[p.off:end])
	p.off = end + 1
	return nil
}

func (p *parser) peek(c byte) bool {
	return p.off < len(p.d) && p.d[p.off] == c
}

// skipSpace reports whether any whitespace was consumed.
func (p *parser) skipSpace() bool {
	start := p.off
	for p.off < len(p.d) && isSpace(p.d[p.off]) {
		p.off++
	}
	return p.off > start
}

func (p *parser) word() string {
	start := p.off
	for p.off < len(p.d) && !isSpace(p.d[p.off]) {
		p.off++
	}
	return string(p.d[start:p.off])
}

func (p *parser) name() string {
	start := p.off
	for p.off < len(p.d) && !isSpace(p.d[p.off]) && p.d[p.off] != '=' {
		p.off++
	}
	return string(p.d[start:p.off])
}

func (p *parser) errAt(err error, off int) error {
	if p.doc == nil {
		p.doc = token.NewPosDoc(p.d)
	}
	line, _ := p.doc.LineCol(off)
	return &Error{
		Err:      err,
		Filename: p.opts.filename,
		Line:     line,
		Off:      off,
	}
}

func (p *parser) scanErr(err error) error {
	var se *token.ScanErr
	if errors.As(err, &se) {
		return p.errAt(se.Err, se.Off)
	}
	return p.errAt(err, p.off)
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	}
	return false
}

func isVersion(v string) bool {
	for i := range len(v) {
		if v[i] != '.' && (v[i] < '0' || v[i] > '9') {
			return false
		}
	}
	return v != ""
}
