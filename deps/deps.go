// Package deps edits the dependency records of an archive tree.
package deps

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/signadot/rpy-format/guid"
	"github.com/signadot/rpy-format/ir"
)

const (
	DependenciesTag  = "Dependencies"
	ContainerClass   = "IRPYContainer"
	DependencyClass  = "IDependency"
	HandleClass      = "INObjectHandle"
	RequirementClass = "IRequirement"
	DependencyState  = "2048"
	ModifiedTimeTag  = "_modifiedTimeWeak"
)

var (
	ErrNotContainer = errors.New("dependencies member is not a block")
	ErrInvalidField = errors.New("value cannot be written as a member")
)

// Requirement names the element a dependency points at.
type Requirement struct {
	GUID      string
	Name      string
	Subsystem string
}

type opts struct {
	now func() time.Time
}

type Option func(*opts)

// WithClock sets the time source for the modification stamp.
func WithClock(now func() time.Time) Option {
	return func(o *opts) { o.now = now }
}

// AddRequirementDependency records in tree a dependency with identifier id
// on req.  The Dependencies container of the root block is created when
// absent.  If a dependency with identifier id is already present the tree
// is left unchanged and false is returned.
func AddRequirementDependency(tree *ir.Tree, id string, req Requirement, options ...Option) (bool, error) {
	o := &opts{now: time.Now}
	for _, opt := range options {
		opt(o)
	}
	if tree == nil || tree.Root == nil {
		return false, fmt.Errorf("%w: empty tree", ErrNotContainer)
	}
	if err := check(id, req); err != nil {
		return false, err
	}
	deps := tree.Root.Child(DependenciesTag)
	if deps == nil {
		deps = ir.FromBlock(DependenciesTag, ContainerClass, ir.EmptyArray())
		tree.Root.Append(deps)
	}
	if deps.Type != ir.BlockType {
		return false, fmt.Errorf("%w: %s", ErrNotContainer, deps.Path())
	}
	if Has(deps, id) {
		return false, nil
	}
	// the count is implied by the value run once it is non empty.
	for i := len(deps.Children) - 1; i >= 0; i-- {
		c := deps.Children[i]
		if c.Type == ir.EmptyArrayType || c.Type == ir.ScalarType && c.Tag == ir.SizeTag {
			deps.Remove(i)
		}
	}
	at := len(deps.Children)
	if vs := deps.Values(); len(vs) > 0 {
		at = vs[len(vs)-1].ParentIndex + 1
	}
	deps.Insert(at, dependency(id, req, o.now()))
	return true, nil
}

// Has reports whether the dependency container deps holds a record with
// identifier id.
func Has(deps *ir.Node, id string) bool {
	for _, v := range deps.Values() {
		if t, ok := v.ChildText(ir.IDTag); ok && strings.TrimSpace(t) == id {
			return true
		}
	}
	return false
}

// check rejects values that would not parse back as written.  Identifiers
// are written unquoted; quoted text may not end in a backslash.
func check(id string, req Requirement) error {
	for _, f := range []struct{ name, v string }{{"id", id}, {"requirement GUID", req.GUID}} {
		switch {
		case f.v == "" || f.v != strings.TrimSpace(f.v):
			return fmt.Errorf("%w: %s %q is empty or padded", ErrInvalidField, f.name, f.v)
		case strings.ContainsAny(f.v, `;"`):
			return fmt.Errorf("%w: %s %q contains ';' or '\"'", ErrInvalidField, f.name, f.v)
		case f.v[0] == '{':
			return fmt.Errorf("%w: %s %q starts with '{'", ErrInvalidField, f.name, f.v)
		}
	}
	for _, f := range []struct{ name, v string }{{"name", req.Name}, {"subsystem", req.Subsystem}} {
		if strings.HasSuffix(f.v, `\`) {
			return fmt.Errorf("%w: %s %q ends with a backslash", ErrInvalidField, f.name, f.v)
		}
	}
	return nil
}

func dependency(id string, req Requirement, t time.Time) *ir.Node {
	name := quote(req.Name)
	return ir.FromBlock(ir.ValueTag, DependencyClass,
		ir.FromText(ir.IDTag, id),
		ir.FromText("_myState", DependencyState),
		ir.FromText("_name", name),
		ir.FromText(ModifiedTimeTag, Timestamp(t)),
		ir.FromBlock(guid.DependsOnTag, HandleClass,
			ir.FromText("_m2Class", quote(RequirementClass)),
			ir.FromText("_filename", quote("")),
			ir.FromText("_subsystem", quote(req.Subsystem)),
			ir.FromText("_class", quote("")),
			ir.FromText("_name", name),
			ir.FromText(ir.IDTag, req.GUID),
		),
	)
}

// Timestamp formats t as M.DDYYYY::H.MM.SS, the modification stamp
// layout of the modeling tool.
func Timestamp(t time.Time) string {
	return fmt.Sprintf("%d.%02d%04d::%d.%02d.%02d",
		int(t.Month()), t.Day(), t.Year(), t.Hour(), t.Minute(), t.Second())
}

func quote(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `\"`) + `"`
}
