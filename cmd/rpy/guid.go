package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/signadot/rpy-format/encode"
	"github.com/signadot/rpy-format/format"
	"github.com/signadot/rpy-format/guid"
	"github.com/signadot/rpy-format/ir"
	"github.com/signadot/rpy-format/project"

	"github.com/scott-cotton/cli"
)

func findGUID(cfg *GuidConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Guid.Parse(cc, args)
	if err != nil {
		return err
	}
	if cfg.New {
		fmt.Fprintln(cc.Out, guid.New())
		return nil
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: guid requires a GUID and a file, got %v", cli.ErrUsage, args)
	}
	where, node, err := locateGUID(cfg.MainConfig, cc.In, args[1], guidText(args[0]))
	if err != nil {
		return err
	}
	fmt.Fprintf(cc.Out, "%s: %s\n", where, node.Path())
	opts := append(cfg.encOpts(cc.Out), encode.EncodeFormat(format.RPYFormat))
	return encode.EncodeNode(node, cc.Out, opts...)
}

// guidText adds the "GUID " prefix carried by _id members when id lacks it.
func guidText(id string) string {
	if strings.HasPrefix(id, "GUID ") {
		return id
	}
	return "GUID " + id
}

// locateGUID returns the file and node holding id.  The last file in
// load order holding id wins, as within a file.
func locateGUID(cfg *MainConfig, in io.Reader, path, id string) (string, *ir.Node, error) {
	paths, trees, err := cfg.archives(in, path)
	if err != nil {
		return "", nil, err
	}
	var (
		where string
		node  *ir.Node
	)
	for i, tree := range trees {
		if n, ok := guid.Build(tree).Lookup(id); ok {
			where, node = paths[i], n
		}
	}
	if node == nil {
		return "", nil, fmt.Errorf("%s not found in %s", id, path)
	}
	return where, node, nil
}

// archives returns the file at path, or the whole project when path is a
// project file with a companion directory.
func (cfg *MainConfig) archives(in io.Reader, path string) ([]string, []*ir.Tree, error) {
	if strings.EqualFold(filepath.Ext(path), project.ProjectExt) {
		if fi, err := os.Stat(project.Dir(path)); err == nil && fi.IsDir() {
			store, err := cfg.load(path, true)
			if err != nil {
				return nil, nil, err
			}
			return store.Paths(), store.Trees(), nil
		}
	}
	tree, err := getArchive(cfg, in, path)
	if err != nil {
		return nil, nil, fmt.Errorf("error decoding %s: %w", path, err)
	}
	return []string{path}, []*ir.Tree{tree}, nil
}
