package main

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"

	"github.com/signadot/rpy-format/encode"
	"github.com/signadot/rpy-format/format"
	"github.com/signadot/rpy-format/ir"
	"github.com/signadot/rpy-format/parse"
	"github.com/signadot/rpy-format/token"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/scott-cotton/cli"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

const archiveGlob = "**/*.{rpy,sbs,cls,cmp}"

func check(cfg *CheckConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Check.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: check requires files or directories", cli.ErrUsage)
	}
	files, err := expandArchives(args)
	if err != nil {
		return err
	}
	failed := 0
	for _, file := range files {
		d, err := os.ReadFile(file)
		if err != nil {
			return err
		}
		res, err := roundTrip(cfg, d, file)
		if err != nil {
			fmt.Fprintf(cc.Out, "%s: %v\n", file, err)
			failed++
			continue
		}
		if res.ok {
			theLog.Debug("round trip ok", "file", file)
			continue
		}
		failed++
		fmt.Fprintf(cc.Out, "%s: rendering differs\n", file)
		if cfg.Diff {
			if err := writePatch(cc.Out, res.in, res.out); err != nil {
				return err
			}
		}
	}
	theLog.Info("checked", "files", len(files), "failed", failed)
	if failed != 0 {
		return cli.ExitCodeErr(1)
	}
	return nil
}

// expandArchives replaces each directory in args by the archive files
// found under it.
func expandArchives(args []string) ([]string, error) {
	var res []string
	for _, arg := range args {
		fi, err := os.Stat(arg)
		if err != nil {
			return nil, err
		}
		if !fi.IsDir() {
			res = append(res, arg)
			continue
		}
		matches, err := doublestar.Glob(os.DirFS(arg), archiveGlob)
		if err != nil {
			return nil, fmt.Errorf("error searching %s: %w", arg, err)
		}
		sort.Strings(matches)
		for _, m := range matches {
			res = append(res, filepath.Join(arg, filepath.FromSlash(m)))
		}
	}
	return res, nil
}

type roundTripResult struct {
	ok  bool
	in  string
	out string
}

func roundTrip(cfg *CheckConfig, d []byte, file string) (*roundTripResult, error) {
	tree, err := parse.Parse(d, cfg.parseOpts(file)...)
	if err != nil {
		return nil, err
	}
	buf := bytes.NewBuffer(nil)
	if err := encode.Encode(tree, buf, encode.EncodeFormat(format.RPYFormat)); err != nil {
		return nil, err
	}
	res := &roundTripResult{
		in:  string(token.Sanitize(d)),
		out: buf.String(),
	}
	if !cfg.Structural {
		res.ok = res.in == res.out
		return res, nil
	}
	back, err := parse.Parse(buf.Bytes(), cfg.parseOpts(file)...)
	if err != nil {
		return nil, fmt.Errorf("rendering does not parse: %w", err)
	}
	res.ok = ir.TreeEqual(tree, back)
	return res, nil
}

func writePatch(w io.Writer, from, to string) error {
	dmp := diffpatch.New()
	diffs := dmp.DiffMain(from, to, true)
	diffs = dmp.DiffCleanupSemantic(diffs)
	patches := dmp.PatchMake(from, diffs)
	_, err := io.WriteString(w, dmp.PatchToText(patches))
	return err
}
