package main

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/signadot/rpy-format/deps"
	"github.com/signadot/rpy-format/encode"
	"github.com/signadot/rpy-format/format"
	"github.com/signadot/rpy-format/guid"

	"github.com/scott-cotton/cli"
)

func addDep(cfg *AddDepConfig, cc *cli.Context, args []string) error {
	args, err := cfg.AddDep.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 1 {
		return fmt.Errorf("%w: add-dep requires one file, got %v", cli.ErrUsage, args)
	}
	if cfg.Req == "" || cfg.Name == "" {
		return fmt.Errorf("%w: add-dep requires -req and -name", cli.ErrUsage)
	}
	_, err = addDepFile(cfg, cc.In, cc.Out, args[0])
	return err
}

// addDepFile adds the configured dependency to file and writes the file
// back.  With -n, or when file is "-", the result goes to w instead.
func addDepFile(cfg *AddDepConfig, in io.Reader, w io.Writer, file string) (bool, error) {
	tree, err := getArchive(cfg.MainConfig, in, file)
	if err != nil {
		return false, fmt.Errorf("error decoding %s: %w", file, err)
	}
	id := cfg.ID
	if id == "" {
		id = guid.New()
	}
	req := deps.Requirement{
		GUID:      cfg.Req,
		Name:      cfg.Name,
		Subsystem: cfg.Subsystem,
	}
	added, err := deps.AddRequirementDependency(tree, id, req)
	if err != nil {
		return false, err
	}
	if cfg.DryRun || file == "-" {
		return added, encode.Encode(tree, w, cfg.encOpts(w)...)
	}
	if !added {
		theLog.Info("dependency already present", "file", file, "id", id)
		return false, nil
	}
	buf := bytes.NewBuffer(nil)
	if err := encode.Encode(tree, buf, encode.EncodeFormat(format.RPYFormat)); err != nil {
		return false, err
	}
	fi, err := os.Stat(file)
	if err != nil {
		return false, err
	}
	if err := os.WriteFile(file, buf.Bytes(), fi.Mode().Perm()); err != nil {
		return false, err
	}
	theLog.Info("added dependency", "file", file, "id", id)
	return true, nil
}
