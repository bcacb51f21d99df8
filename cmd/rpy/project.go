package main

import (
	"fmt"

	"github.com/signadot/rpy-format/parse"
	"github.com/signadot/rpy-format/project"

	"github.com/scott-cotton/cli"
)

func listProject(cfg *ProjectConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Project.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 1 {
		return fmt.Errorf("%w: project requires one project file, got %v", cli.ErrUsage, args)
	}
	store, err := cfg.load(args[0], !cfg.NoDeps)
	if err != nil {
		return err
	}
	for _, path := range store.Paths() {
		e := store.Entry(path)
		if cfg.Changed {
			changed, err := store.Changed(path)
			if err != nil {
				return err
			}
			if !changed {
				continue
			}
		}
		fmt.Fprintf(cc.Out, "%s\t%s\t%x\n", path, e.Tree.Root.Class, e.Digest[:8])
	}
	return nil
}

func (cfg *MainConfig) load(path string, deps bool) (*project.Store, error) {
	return project.Load(path,
		project.WithLogger(theLog),
		project.WithDependencies(deps),
		project.WithParseOptions(parse.ParseMaxDepth(cfg.MaxDepth)))
}
