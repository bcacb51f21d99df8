package parse

import (
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/signadot/rpy-format/ir"
)

const hdr = "I-Logix-RPY-Archive version 8.5.2 C++ 1159120\n"

type flat struct {
	Path  string
	Type  ir.Type
	Class string
	Text  string
}

func flatten(root *ir.Node) []flat {
	var res []flat
	root.Walk(func(n *ir.Node) bool {
		res = append(res, flat{Path: n.Path(), Type: n.Type, Class: n.Class, Text: n.Text})
		return true
	})
	return res
}

func TestParseProjectScenario(t *testing.T) {
	tree, err := ParseString(hdr + "{ IProject - _id = GUID abc; - _myState = 8192; }")
	if err != nil {
		t.Fatal(err)
	}
	wantHdr := ir.Header{Archive: "I-Logix-RPY-Archive", Version: "8.5.2", Language: "C++", ID: "1159120"}
	if diff := cmp.Diff(wantHdr, tree.Header); diff != "" {
		t.Errorf("header (-want +got):\n%s", diff)
	}
	want := []flat{
		{Path: "root", Type: ir.BlockType, Class: "IProject"},
		{Path: "root._id", Type: ir.ScalarType, Text: "GUID abc"},
		{Path: "root._myState", Type: ir.ScalarType, Text: "8192"},
	}
	if diff := cmp.Diff(want, flatten(tree.Root)); diff != "" {
		t.Errorf("tree (-want +got):\n%s", diff)
	}
}

func TestParseArray(t *testing.T) {
	tree, err := ParseString(hdr + "{ C - size = 3; - value = 1; 2; 3; }")
	if err != nil {
		t.Fatal(err)
	}
	want := []flat{
		{Path: "root", Type: ir.BlockType, Class: "C"},
		{Path: "root.value[0]", Type: ir.ScalarType, Text: "1"},
		{Path: "root.value[1]", Type: ir.ScalarType, Text: "2"},
		{Path: "root.value[2]", Type: ir.ScalarType, Text: "3"},
	}
	if diff := cmp.Diff(want, flatten(tree.Root)); diff != "" {
		t.Errorf("tree (-want +got):\n%s", diff)
	}
}

func TestParseArrayOfBlocks(t *testing.T) {
	tree, err := ParseString(hdr + "{ C - size = 2; - value = { A - x = 1; } { B } }")
	if err != nil {
		t.Fatal(err)
	}
	want := []flat{
		{Path: "root", Type: ir.BlockType, Class: "C"},
		{Path: "root.value[0]", Type: ir.BlockType, Class: "A"},
		{Path: "root.value[0].x", Type: ir.ScalarType, Text: "1"},
		{Path: "root.value[1]", Type: ir.BlockType, Class: "B"},
	}
	if diff := cmp.Diff(want, flatten(tree.Root)); diff != "" {
		t.Errorf("tree (-want +got):\n%s", diff)
	}
}

func TestParseElementList(t *testing.T) {
	tree, err := ParseString(hdr + "{ C - elementList = 2; { A } { B } }")
	if err != nil {
		t.Fatal(err)
	}
	want := []flat{
		{Path: "root", Type: ir.BlockType, Class: "C"},
		{Path: "root.elements", Type: ir.ElementsType},
		{Path: "root.elements.element[0]", Type: ir.BlockType, Class: "A"},
		{Path: "root.elements.element[1]", Type: ir.BlockType, Class: "B"},
	}
	if diff := cmp.Diff(want, flatten(tree.Root)); diff != "" {
		t.Errorf("tree (-want +got):\n%s", diff)
	}
}

func TestParseEmptyArray(t *testing.T) {
	tree, err := ParseString(hdr + "{ C - size = 0; - a = b; }")
	if err != nil {
		t.Fatal(err)
	}
	want := []flat{
		{Path: "root", Type: ir.BlockType, Class: "C"},
		{Path: "root.size", Type: ir.EmptyArrayType},
		{Path: "root.a", Type: ir.ScalarType, Text: "b"},
	}
	if diff := cmp.Diff(want, flatten(tree.Root)); diff != "" {
		t.Errorf("tree (-want +got):\n%s", diff)
	}
}

func TestParseScalarText(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: `- a = "Browser;";`, want: `"Browser;"`},
		{in: `- a = "Arial" 10 0 0 0 1 ;`, want: `"Arial" 10 0 0 0 1 `},
		{in: `- a = ;`, want: ``},
		{in: "- a = \"two\nlines\";", want: "\"two\nlines\""},
		{in: `- a = "esc \"q;\" x";`, want: `"esc \"q;\" x"`},
	}
	for _, tc := range tests {
		tree, err := ParseString(hdr + "{ C " + tc.in + " }")
		if err != nil {
			t.Errorf("%q: %v", tc.in, err)
			continue
		}
		got, _ := tree.Root.ChildText("a")
		if got != tc.want {
			t.Errorf("%q: got %q want %q", tc.in, got, tc.want)
		}
	}
}

func TestParseStripsInvalidCharacters(t *testing.T) {
	tree, err := ParseString(hdr + "{ C - a = x\x00y\x07z; }")
	if err != nil {
		t.Fatal(err)
	}
	if got, _ := tree.Root.ChildText("a"); got != "xyz" {
		t.Errorf("got %q", got)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		in   string
		err  error
		line int
	}{
		{name: "empty", in: "", err: ErrMalformedHeader, line: 1},
		{name: "no version", in: "A 8.5 C++ 1\n{ C }", err: ErrMalformedHeader, line: 1},
		{name: "bad version", in: "A version x C++ 1\n{ C }", err: ErrMalformedHeader, line: 1},
		{name: "block start", in: hdr + "\nIProject }", err: ErrInvalidBlockStart, line: 3},
		{name: "no class", in: hdr + "{ ", err: ErrInvalidBlockStart, line: 2},
		{name: "terminator", in: hdr + "{ C\n- a = b\n}", err: ErrMissingTerminator, line: 3},
		{name: "quote", in: hdr + "{ C\n- a = \"b;\n}", err: ErrUnterminatedQuote, line: 3},
		{name: "size", in: hdr + "{ C\n- size = x;\n}", err: ErrInvalidSizeAttribute, line: 3},
		{name: "size no semi", in: hdr + "{ C\n- size = 3\n}", err: ErrInvalidSizeAttribute, line: 3},
		{name: "element count", in: hdr + "{ C\n- elementList = ;\n}", err: ErrInvalidSizeAttribute, line: 3},
		{name: "value", in: hdr + "{ C\n- size = 1;\n- values = 1;\n}", err: ErrInvalidValueAttribute, line: 4},
		{name: "end of block", in: hdr + "{ C\n- a = b;\n", err: ErrUnexpectedEndOfBlock, line: 4},
		{name: "stray", in: hdr + "{ C\n  a = b;\n}", err: ErrUnexpectedEndOfBlock, line: 3},
		{name: "trailing", in: hdr + "{ C }\n{ D }", err: ErrUnexpectedEndOfBlock, line: 3},
		{name: "element not block", in: hdr + "{ C\n- elementList = 1;\nx;\n}", err: ErrInvalidBlockStart, line: 4},
		{name: "short array", in: hdr + "{ C\n- size = 2;\n- value = 1;\n}", err: ErrMissingTerminator, line: 5},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tree, err := ParseString(tc.in, ParseFilename("x.sbs"))
			if tree != nil {
				t.Errorf("partial tree returned")
			}
			if !errors.Is(err, tc.err) {
				t.Fatalf("got %v want %v", err, tc.err)
			}
			if !errors.Is(err, ErrParse) {
				t.Errorf("%v does not match ErrParse", err)
			}
			var pe *Error
			if !errors.As(err, &pe) {
				t.Fatalf("not a *Error: %T", err)
			}
			if pe.Line != tc.line {
				t.Errorf("line %d want %d (%v)", pe.Line, tc.line, err)
			}
			if !strings.HasPrefix(err.Error(), "x.sbs:") {
				t.Errorf("filename missing from %q", err.Error())
			}
		})
	}
}

func TestParseMaxDepth(t *testing.T) {
	in := hdr + "{ C - a = { C - b = { C - c = { C } } } }"
	if _, err := ParseString(in, ParseMaxDepth(4)); err != nil {
		t.Fatalf("depth 4: %v", err)
	}
	_, err := ParseString(in, ParseMaxDepth(3))
	if !errors.Is(err, ErrNestingTooDeep) {
		t.Fatalf("got %v", err)
	}
}

func TestParseDeterministic(t *testing.T) {
	d, err := os.ReadFile("testdata/Project.rpy")
	if err != nil {
		t.Fatal(err)
	}
	a, err := Parse(d)
	if err != nil {
		t.Fatal(err)
	}
	b, err := Parse(d)
	if err != nil {
		t.Fatal(err)
	}
	if !ir.TreeEqual(a, b) {
		t.Fatal("two parses of the same input differ")
	}
}

func TestParseFile(t *testing.T) {
	tree, err := ParseFile("testdata/Project.rpy")
	if err != nil {
		t.Fatal(err)
	}
	if tree.Root.Class != "IProject" {
		t.Errorf("class %q", tree.Root.Class)
	}
	if got, _ := tree.Root.ChildText("_Name"); got != `"Browser;"` {
		t.Errorf("_Name %q", got)
	}
	colors := tree.Root.Child("_UserColors")
	if n := len(colors.Values()); n != 16 {
		t.Errorf("got %d colors", n)
	}
	subjects := tree.Root.Child("_properties").Child("Subjects").Values()
	if len(subjects) != 2 {
		t.Fatalf("got %d subjects", len(subjects))
	}
	els := subjects[0].Child(ir.ElementsTag)
	if els == nil || len(els.Children) != 2 {
		t.Fatalf("bad element list %+v", els)
	}
	style, _ := els.Children[1].Child("m_name").ChildText("m_style")
	if style != `"Arial" 10 0 0 0 1 ` {
		t.Errorf("m_style %q", style)
	}
	if e := subjects[1].Child(ir.ElementsTag); e == nil || len(e.Children) != 0 {
		t.Errorf("empty element list not kept")
	}
	if _, err := ParseFile("testdata/missing.rpy"); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("got %v", err)
	}
}
