package main

import (
	"fmt"
	"io"
	"os"

	"github.com/signadot/rpy-format/encode"
	"github.com/signadot/rpy-format/format"
	"github.com/signadot/rpy-format/parse"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	Color    bool `cli:"name=color desc='encode with color'"`
	Verbose  bool `cli:"name=v aliases=verbose desc='log skipped references'"`
	MaxDepth int  `cli:"name=depth desc='maximum block nesting'"`

	OutFormat *format.Format

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) fmtFunc(fps ...**format.Format) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := format.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		for _, fp := range fps {
			*fp = &f
		}
		return f, nil
	})
}

func (cfg *MainConfig) parseOpts(filename string) []parse.ParseOption {
	return []parse.ParseOption{
		parse.ParseFilename(filename),
		parse.ParseMaxDepth(cfg.MaxDepth),
	}
}

func (cfg *MainConfig) outFormat() format.Format {
	if cfg.OutFormat != nil {
		return *cfg.OutFormat
	}
	return format.RPYFormat
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	res := []encode.EncodeOption{
		encode.EncodeFormat(cfg.outFormat()),
	}
	if cfg.Color {
		res = append(res, encode.EncodeColors(encode.NewColors()))
		return res
	}
	if cfg.Main == nil {
		return res
	}
	colorsSet := false
	for _, opt := range cfg.Main.Opts {
		if opt.Name != "color" {
			continue
		}
		colorsSet = opt.Value != nil
		break
	}
	if colorsSet {
		return res
	}
	f, ok := w.(*os.File)
	if !ok {
		return res
	}
	if isatty.IsTerminal(f.Fd()) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
	}
	return res
}

type ViewConfig struct {
	*MainConfig

	Indent string `cli:"name=indent desc='indentation per level (default tab)'"`
	View   *cli.Command
}

func (cfg *ViewConfig) encOpts(w io.Writer) []encode.EncodeOption {
	res := cfg.MainConfig.encOpts(w)
	if cfg.Indent != "" {
		res = append(res, encode.EncodeIndent(cfg.Indent))
	}
	return res
}

type DumpConfig struct {
	*MainConfig

	Pretty bool `cli:"name=pretty desc='indent xml and json output'"`
	Dump   *cli.Command
}

func (cfg *DumpConfig) encOpts(w io.Writer) []encode.EncodeOption {
	res := cfg.MainConfig.encOpts(w)
	if cfg.OutFormat == nil {
		res = append(res, encode.EncodeFormat(format.XMLFormat))
	}
	return append(res, encode.EncodePretty(cfg.Pretty))
}

type CheckConfig struct {
	*MainConfig

	Diff       bool `cli:"name=d aliases=diff desc='print a patch for each failing file'"`
	Structural bool `cli:"name=s desc='compare trees rather than bytes'"`
	Check      *cli.Command
}

type ProjectConfig struct {
	*MainConfig

	NoDeps  bool `cli:"name=n desc='do not follow unit references'"`
	Changed bool `cli:"name=changed desc='list only files changed on disk since loading'"`
	Project *cli.Command
}

type GuidConfig struct {
	*MainConfig

	New  bool `cli:"name=new desc='print a new GUID'"`
	Guid *cli.Command
}

type FindConfig struct {
	*MainConfig

	Print bool `cli:"name=p desc='print matching nodes'"`
	Find  *cli.Command
}

type AddDepConfig struct {
	*MainConfig

	ID        string `cli:"name=id desc='GUID of the new dependency (default generated)'"`
	Req       string `cli:"name=req desc='GUID of the requirement'"`
	Name      string `cli:"name=name desc='name of the requirement'"`
	Subsystem string `cli:"name=subsystem desc='subsystem of the requirement'"`
	DryRun    bool   `cli:"name=n desc='print the result instead of writing the file'"`
	AddDep    *cli.Command
}
