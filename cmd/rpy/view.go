package main

import (
	"fmt"

	"github.com/signadot/rpy-format/encode"
	"github.com/signadot/rpy-format/ir"

	"github.com/scott-cotton/cli"
)

func view(cfg *ViewConfig, cc *cli.Context, args []string) error {
	args, err := cfg.View.Parse(cc, args)
	if err != nil {
		return err
	}
	opts := cfg.encOpts(cc.Out)
	return eachArchive(cfg.MainConfig, cc.In, args, func(path string, tree *ir.Tree) error {
		if err := encode.Encode(tree, cc.Out, opts...); err != nil {
			return fmt.Errorf("error encoding %s: %w", path, err)
		}
		return nil
	})
}
