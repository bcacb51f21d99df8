package deps

import (
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/signadot/rpy-format/encode"
	"github.com/signadot/rpy-format/guid"
	"github.com/signadot/rpy-format/ir"
	"github.com/signadot/rpy-format/parse"
)

const hdr = "I-Logix-RPY-Archive version 8.5.2 C++ 1159120\n"

var (
	stamp = time.Date(2024, time.March, 5, 9, 7, 2, 0, time.UTC)
	clock = WithClock(func() time.Time { return stamp })
	req   = Requirement{GUID: "GUID r", Name: "Req", Subsystem: "Reqs"}
)

func mustParse(t *testing.T, s string) *ir.Tree {
	t.Helper()
	tree, err := parse.ParseString(s)
	if err != nil {
		t.Fatal(err)
	}
	return tree
}

func TestAddRequirementDependency(t *testing.T) {
	tree := mustParse(t, hdr+"{ IProject \n\t- _id = GUID p;\n}\n")
	added, err := AddRequirementDependency(tree, "GUID d", req, clock)
	if err != nil {
		t.Fatal(err)
	}
	if !added {
		t.Fatal("not added")
	}
	want := hdr + `{ IProject 
	- _id = GUID p;
	- Dependencies = { IRPYContainer 
		- size = 1;
		- value = 
		{ IDependency 
			- _id = GUID d;
			- _myState = 2048;
			- _name = "Req";
			- _modifiedTimeWeak = 3.052024::9.07.02;
			- _dependsOn = { INObjectHandle 
				- _m2Class = "IRequirement";
				- _filename = "";
				- _subsystem = "Reqs";
				- _class = "";
				- _name = "Req";
				- _id = GUID r;
			}
		}
	}
}
`
	got := encode.MustString(tree)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	back := mustParse(t, got)
	if !ir.TreeEqual(tree, back) {
		t.Errorf("re-parsed tree differs")
	}
}

func TestAddIdempotent(t *testing.T) {
	tree := mustParse(t, hdr+"{ IProject \n\t- Dependencies = { IRPYContainer \n\t\t- size = 0;\n\t}\n}\n")
	for i, want := range []bool{true, false} {
		added, err := AddRequirementDependency(tree, "GUID d", req, clock)
		if err != nil {
			t.Fatal(err)
		}
		if added != want {
			t.Errorf("call %d: added=%v", i, added)
		}
	}
	deps := tree.Root.Child(DependenciesTag)
	if n := len(deps.Values()); n != 1 {
		t.Errorf("got %d dependencies", n)
	}
	if n := len(deps.Children); n != 1 {
		t.Errorf("got %d container members", n)
	}
}

func TestAddKeepsRunContiguous(t *testing.T) {
	src := hdr + `{ IProject 
	- Dependencies = { IRPYContainer 
		- size = 1;
		- value = 
		{ IDependency 
			- _id = GUID a;
		}
		- _trailer = 1;
	}
}
`
	tree := mustParse(t, src)
	if _, err := AddRequirementDependency(tree, "GUID b", req, clock); err != nil {
		t.Fatal(err)
	}
	deps := tree.Root.Child(DependenciesTag)
	var tags []string
	for _, c := range deps.Children {
		tags = append(tags, c.Tag)
	}
	if diff := cmp.Diff([]string{"value", "value", "_trailer"}, tags); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	if !Has(deps, "GUID a") || !Has(deps, "GUID b") {
		t.Errorf("missing dependency")
	}
}

func TestDependsOnNotIndexed(t *testing.T) {
	tree := mustParse(t, hdr+"{ IProject \n\t- _id = GUID p;\n}\n")
	if _, err := AddRequirementDependency(tree, "GUID d", req, clock); err != nil {
		t.Fatal(err)
	}
	idx := guid.Build(tree)
	if n, ok := idx.Lookup("GUID d"); !ok || n.Class != DependencyClass {
		t.Errorf("dependency not indexed")
	}
	if _, ok := idx.Lookup("GUID r"); ok {
		t.Errorf("handle indexed")
	}
}

func TestNotContainer(t *testing.T) {
	tree := mustParse(t, hdr+"{ IProject \n\t- Dependencies = none;\n}\n")
	_, err := AddRequirementDependency(tree, "GUID d", req)
	if !errors.Is(err, ErrNotContainer) {
		t.Errorf("got %v", err)
	}
}

func TestTimestamp(t *testing.T) {
	ts := time.Date(2023, time.December, 31, 23, 59, 9, 0, time.UTC)
	if got := Timestamp(ts); got != "12.312023::23.59.09" {
		t.Errorf("got %q", got)
	}
}

func TestQuote(t *testing.T) {
	if got := quote(`a "b"`); got != `"a \"b\""` {
		t.Errorf("got %s", got)
	}
}

func TestAddRejectsUnreadableValues(t *testing.T) {
	tests := []struct {
		name string
		id   string
		req  Requirement
	}{
		{"name ends in backslash", "GUID d", Requirement{GUID: "GUID r", Name: `C:\`}},
		{"subsystem ends in backslash", "GUID d", Requirement{GUID: "GUID r", Name: "Req", Subsystem: `Reqs\`}},
		{"id with terminator", "GUID d;", req},
		{"id with quote", `GUID "d"`, req},
		{"id opening block", "{ X", req},
		{"empty id", "", req},
		{"padded id", " GUID d", req},
		{"requirement with terminator", "GUID d", Requirement{GUID: "GUID r; - x = 1", Name: "Req"}},
		{"requirement with quote", "GUID d", Requirement{GUID: `GUID "r`, Name: "Req"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tree := mustParse(t, hdr+"{ IProject \n\t- _id = GUID p;\n}\n")
			before := encode.MustString(tree)
			added, err := AddRequirementDependency(tree, tt.id, tt.req, clock)
			if !errors.Is(err, ErrInvalidField) {
				t.Fatalf("got added=%v err=%v", added, err)
			}
			if diff := cmp.Diff(before, encode.MustString(tree)); diff != "" {
				t.Errorf("tree modified (-want +got):\n%s", diff)
			}
		})
	}
}

func TestAddRoundTripsQuotedText(t *testing.T) {
	reqs := []Requirement{
		{GUID: "GUID r", Name: `a "quoted; name"`, Subsystem: `C:\models\reqs`},
		{GUID: "GUID r", Name: `back\slash`, Subsystem: `say \"hi\"`},
		{GUID: "GUID r", Name: "", Subsystem: ""},
	}
	for _, r := range reqs {
		tree := mustParse(t, hdr+"{ IProject \n\t- _id = GUID p;\n}\n")
		if _, err := AddRequirementDependency(tree, "GUID d", r, clock); err != nil {
			t.Fatalf("%+v: %v", r, err)
		}
		back, err := parse.ParseString(encode.MustString(tree))
		if err != nil {
			t.Fatalf("%+v: rendering does not parse: %v", r, err)
		}
		if !ir.TreeEqual(tree, back) {
			t.Errorf("%+v: re-parsed tree differs", r)
		}
		dep := back.Root.Child(DependenciesTag).Values()[0]
		if got, _ := dep.ChildText("_name"); got != quote(r.Name) {
			t.Errorf("_name %s, want %s", got, quote(r.Name))
		}
	}
}
