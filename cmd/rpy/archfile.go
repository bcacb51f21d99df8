package main

import (
	"fmt"
	"io"
	"os"

	"github.com/signadot/rpy-format/ir"
	"github.com/signadot/rpy-format/parse"
)

// readArchive reads the file at path, or in when path is "-".
func readArchive(in io.Reader, path string) ([]byte, error) {
	var r io.Reader
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	} else {
		r = in
	}
	d, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading %q: %w", path, err)
	}
	return d, nil
}

func getArchive(cfg *MainConfig, in io.Reader, path string) (*ir.Tree, error) {
	d, err := readArchive(in, path)
	if err != nil {
		return nil, err
	}
	return parse.Parse(d, cfg.parseOpts(path)...)
}

// eachArchive calls f with the tree of each file in paths, or of stdin
// when paths is empty.
func eachArchive(cfg *MainConfig, in io.Reader, paths []string, f func(string, *ir.Tree) error) error {
	if len(paths) == 0 {
		paths = []string{"-"}
	}
	for _, path := range paths {
		tree, err := getArchive(cfg, in, path)
		if err != nil {
			return fmt.Errorf("error decoding %s: %w", path, err)
		}
		if err := f(path, tree); err != nil {
			return err
		}
	}
	return nil
}
