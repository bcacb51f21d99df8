package main

import (
	"fmt"

	"github.com/signadot/rpy-format/encode"
	"github.com/signadot/rpy-format/ir"

	"github.com/scott-cotton/cli"
)

func dump(cfg *DumpConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Dump.Parse(cc, args)
	if err != nil {
		return err
	}
	opts := cfg.encOpts(cc.Out)
	n := 0
	return eachArchive(cfg.MainConfig, cc.In, args, func(path string, tree *ir.Tree) error {
		if n > 0 {
			if _, err := cc.Out.Write([]byte("\n")); err != nil {
				return err
			}
		}
		n++
		if err := encode.Encode(tree, cc.Out, opts...); err != nil {
			return fmt.Errorf("error encoding %s: %w", path, err)
		}
		return nil
	})
}
