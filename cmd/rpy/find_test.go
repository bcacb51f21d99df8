package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/signadot/rpy-format/query"
)

func TestFindIn(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, filepath.Join(dir, "A.cls"), hdr+`{ IClass 
	- _id = GUID a;
	- _name = "Motor";
}
`)
	b := writeFile(t, filepath.Join(dir, "B.cls"), hdr+`{ IClass 
	- _id = GUID b;
	- _name = "Pump";
}
`)
	q, err := query.Compile(`Tag == "_name"`)
	if err != nil {
		t.Fatal(err)
	}
	out := bytes.NewBuffer(nil)
	if err := findIn(&FindConfig{MainConfig: &MainConfig{}}, nil, out, q, []string{a, b}); err != nil {
		t.Fatal(err)
	}
	want := a + ": root._name\n" + b + ": root._name\n"
	if diff := cmp.Diff(want, out.String()); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}

	out.Reset()
	q, err = query.Compile(`unquote(Child("_name")) == "Pump"`)
	if err != nil {
		t.Fatal(err)
	}
	cfg := &FindConfig{MainConfig: &MainConfig{}, Print: true}
	if err := findIn(cfg, nil, out, q, []string{a, b}); err != nil {
		t.Fatal(err)
	}
	want = b + ": root\n{ IClass \n\t- _id = GUID b;\n\t- _name = \"Pump\";\n}\n"
	if diff := cmp.Diff(want, out.String()); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestFindInStdin(t *testing.T) {
	q, err := query.Compile(`Class == "C"`)
	if err != nil {
		t.Fatal(err)
	}
	out := bytes.NewBuffer(nil)
	in := strings.NewReader(hdr + "{ C \n}\n")
	if err := findIn(&FindConfig{MainConfig: &MainConfig{}}, in, out, q, nil); err != nil {
		t.Fatal(err)
	}
	if out.String() != "-: root\n" {
		t.Errorf("got %q", out.String())
	}
}
