// Package query selects nodes of an archive tree with boolean
// expressions.
//
// Expressions are written in the expr language
// (https://expr-lang.org) and are evaluated once per node against an
// [Env], for example
//
//	Class == "IClass" && unquote(Child("_name")) == "Motor"
package query

import (
	"fmt"
	"strings"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/signadot/rpy-format/ir"
)

// Env is the environment of an expression evaluated at one node.
type Env struct {
	Tag   string
	Class string
	Text  string
	Path  string
	Leaf  bool
	Depth int

	node *ir.Node
}

// Child returns the trimmed text of the scalar member tag of the current
// node, or "".
func (e Env) Child(tag string) string {
	if e.node == nil {
		return ""
	}
	v, _ := e.node.ChildText(tag)
	return strings.TrimSpace(v)
}

func newEnv(n *ir.Node) Env {
	return Env{
		Tag:   n.Tag,
		Class: n.Class,
		Text:  n.Text,
		Path:  n.Path(),
		Leaf:  n.IsLeaf(),
		Depth: n.Depth(),
		node:  n,
	}
}

type Query struct {
	src string
	prg *vm.Program
}

func Compile(src string) (*Query, error) {
	prg, err := expr.Compile(src, exprOpts()...)
	if err != nil {
		return nil, fmt.Errorf("query %q: %w", src, err)
	}
	return &Query{src: src, prg: prg}, nil
}

func (q *Query) String() string {
	return q.src
}

// Match evaluates q at n.
func (q *Query) Match(n *ir.Node) (bool, error) {
	res, err := expr.Run(q.prg, newEnv(n))
	if err != nil {
		return false, err
	}
	return res.(bool), nil
}

// Find returns the nodes under root, root included, that q matches, in
// document order.
func (q *Query) Find(root *ir.Node) ([]*ir.Node, error) {
	var (
		res []*ir.Node
		err error
	)
	root.Walk(func(n *ir.Node) bool {
		if err != nil {
			return false
		}
		var ok bool
		ok, err = q.Match(n)
		if ok {
			res = append(res, n)
		}
		return err == nil
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

func exprOpts() []expr.Option {
	return []expr.Option{
		expr.Env(Env{}),
		expr.AsBool(),
		expr.Function("unquote", func(params ...any) (any, error) {
			s := strings.TrimSpace(params[0].(string))
			if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
				s = strings.ReplaceAll(s[1:len(s)-1], `\"`, `"`)
			}
			return s, nil
		},
			new(func(string) string)),
	}
}
