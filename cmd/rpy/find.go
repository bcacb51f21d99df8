package main

import (
	"fmt"
	"io"

	"github.com/signadot/rpy-format/encode"
	"github.com/signadot/rpy-format/format"
	"github.com/signadot/rpy-format/ir"
	"github.com/signadot/rpy-format/query"

	"github.com/scott-cotton/cli"
)

func find(cfg *FindConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Find.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: find requires an expression", cli.ErrUsage)
	}
	q, err := query.Compile(args[0])
	if err != nil {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	return findIn(cfg, cc.In, cc.Out, q, args[1:])
}

// findIn writes "file: path" for each node matching q in files, followed
// by the node itself with -p.
func findIn(cfg *FindConfig, in io.Reader, w io.Writer, q *query.Query, files []string) error {
	opts := append(cfg.encOpts(w), encode.EncodeFormat(format.RPYFormat))
	return eachArchive(cfg.MainConfig, in, files, func(path string, tree *ir.Tree) error {
		nodes, err := q.Find(tree.Root)
		if err != nil {
			return fmt.Errorf("error querying %s with %s: %w", path, q, err)
		}
		for _, n := range nodes {
			if _, err := fmt.Fprintf(w, "%s: %s\n", path, n.Path()); err != nil {
				return err
			}
			if !cfg.Print {
				continue
			}
			if err := encode.EncodeNode(n, w, opts...); err != nil {
				return err
			}
		}
		return nil
	})
}
