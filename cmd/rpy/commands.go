package main

import (
	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, []*cli.Opt{
		&cli.Opt{
			Name:        "o",
			Description: "output file (default stdout)",
			Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
		},
		&cli.Opt{
			Name:        "O",
			Aliases:     []string{"ofmt"},
			Description: "output format: rpy/r, xml/x, json/j, yaml/y",
			Type:        cli.NamedFuncOpt(cfg.fmtFunc(&cfg.OutFormat), "(format)"),
		}}...)

	return cli.NewCommandAt(&cfg.Main, "rpy").
		WithSynopsis("rpy [opts] command [opts]").
		WithDescription("rpy is a tool for working with modeling tool archive files.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return rpyMain(cfg, cc, args)
		}).
		WithSubs(
			ViewCommand(cfg),
			DumpCommand(cfg),
			CheckCommand(cfg),
			ProjectCommand(cfg),
			GuidCommand(cfg),
			FindCommand(cfg),
			AddDepCommand(cfg))
}

func ViewCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ViewConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.View, "view").
		WithAliases("v").
		WithOpts(opts...).
		WithSynopsis("view [files]").
		WithDescription("view archive files, in color on a terminal").
		WithRun(func(cc *cli.Context, args []string) error {
			return view(cfg, cc, args)
		})
}

func DumpCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DumpConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Dump, "dump").
		WithSynopsis("dump [-pretty] [files]").
		WithDescription("dump archive trees as xml, json or yaml (see -O)").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return dump(cfg, cc, args)
		})
}

func CheckCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &CheckConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Check, "check").
		WithAliases("c").
		WithSynopsis("check [-d] [-s] [files or dirs]").
		WithDescription(checkDescription).
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return check(cfg, cc, args)
		})
}

const checkDescription = `check verifies that archive files survive a parse and re-render.

Directories are searched recursively for files matching
'**/*.{rpy,sbs,cls,cmp}'.  Each file is parsed and rendered again; by
default the rendering must reproduce the file byte for byte.  With -s
only the re-parsed tree must equal the original tree.

check exits with status 1 if any file fails.  With -d a patch from the
file to its rendering is printed for each failure.`

func ProjectCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ProjectConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Project, "project").
		WithAliases("p", "proj").
		WithSynopsis("project [-n] [-changed] <file.rpy>").
		WithDescription("load a project and the unit files it references and list them").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return listProject(cfg, cc, args)
		})
}

func GuidCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &GuidConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Guid, "guid").
		WithAliases("g").
		WithSynopsis("guid -new | guid <guid> <file>").
		WithDescription("locate the element with a given GUID in a file or project").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return findGUID(cfg, cc, args)
		})
}

func FindCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &FindConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Find, "find").
		WithAliases("f").
		WithSynopsis("find [-p] <expr> [files]").
		WithDescription(findDescription).
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return find(cfg, cc, args)
		})
}

const findDescription = `find prints the paths of the nodes matching a boolean expression.

The expression is evaluated at each node with the variables

  Tag, Class, Text, Path  string
  Leaf                    bool
  Depth                   int

and the functions Child(tag), giving the text of a scalar member, and
unquote(s).  For example

  rpy find 'Class == "IClass" && unquote(Child("_name")) == "Motor"' M.cls`

func AddDepCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &AddDepConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.AddDep, "add-dep").
		WithAliases("dep").
		WithSynopsis("add-dep [-id guid] -req guid -name name [-subsystem s] [-n] <file>").
		WithDescription("add a dependency on a requirement to an archive file").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return addDep(cfg, cc, args)
		})
}
