package project

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"lukechampine.com/blake3"

	"github.com/signadot/rpy-format/debug"
	"github.com/signadot/rpy-format/ir"
	"github.com/signadot/rpy-format/parse"
)

const (
	ProjectExt = ".rpy"
	DirSuffix  = "_rpy"

	FileNameTag = "fileName"
)

// unit classes and the suffix of the file each refers to.
var unitExts = map[string]string{
	"ISubsystem": ".sbs",
	"IClass":     ".cls",
	"IComponent": ".cmp",
}

// Dir returns the companion directory of the project file at path.
func Dir(path string) string {
	dir, base := filepath.Split(path)
	return filepath.Join(dir, strings.TrimSuffix(base, filepath.Ext(base))+DirSuffix)
}

// Load parses the project file at path and, unless disabled with
// WithDependencies(false), every unit file reachable from it.
//
// Unit references found in the project file resolve against the project's
// companion directory; references found in a unit file resolve against
// that file's directory.  A parse failure in any file aborts the load.
func Load(path string, opts ...LoadOption) (*Store, error) {
	lOpts := &loadOpts{deps: true}
	for _, opt := range opts {
		opt(lOpts)
	}
	if lOpts.logger == nil {
		lOpts.logger = slog.New(slog.DiscardHandler)
	}
	path = filepath.Clean(path)
	if !strings.EqualFold(filepath.Ext(path), ProjectExt) {
		return nil, fmt.Errorf("%w: %s", ErrInvalidProjectFile, path)
	}
	dir := Dir(path)
	fi, err := os.Stat(dir)
	if err != nil || !fi.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrMissingProjectDirectory, dir)
	}
	l := &loader{
		store: NewStore(),
		opts:  lOpts,
	}
	l.store.Project = path
	tree, err := l.load(path)
	if err != nil {
		return nil, err
	}
	if lOpts.deps {
		if err := l.scan(tree, dir); err != nil {
			return nil, err
		}
	}
	return l.store, nil
}

type loader struct {
	store *Store
	opts  *loadOpts
}

func (l *loader) load(path string) (*ir.Tree, error) {
	if debug.Load() {
		debug.Logf("load %s\n", path)
	}
	d, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	pOpts := append([]parse.ParseOption{parse.ParseFilename(path)}, l.opts.parseOpts...)
	tree, err := parse.Parse(d, pOpts...)
	if err != nil {
		return nil, err
	}
	l.store.add(&Entry{Path: path, Tree: tree, Digest: blake3.Sum256(d)})
	return tree, nil
}

func (l *loader) scan(tree *ir.Tree, base string) error {
	var err error
	tree.Root.Walk(func(n *ir.Node) bool {
		if err != nil {
			return false
		}
		ref, ok := Reference(n, base)
		if !ok {
			return true
		}
		err = l.follow(ref)
		return true
	})
	return err
}

func (l *loader) follow(path string) error {
	if l.store.Has(path) {
		return nil
	}
	fi, err := os.Stat(path)
	if err != nil || !fi.Mode().IsRegular() {
		l.opts.logger.Debug("skipping unresolved unit", "path", path)
		if debug.Load() {
			debug.Logf("skip %s\n", path)
		}
		return nil
	}
	tree, err := l.load(path)
	if err != nil {
		return err
	}
	return l.scan(tree, filepath.Dir(path))
}

// Reference returns the path of the unit file that n refers to, resolved
// against base.  Only unit blocks with a non empty quoted fileName member
// refer to a file.
func Reference(n *ir.Node, base string) (string, bool) {
	if n.Type != ir.BlockType {
		return "", false
	}
	ext, ok := unitExts[n.Class]
	if !ok {
		return "", false
	}
	v, ok := n.ChildText(FileNameTag)
	if !ok {
		return "", false
	}
	name, ok := unquote(strings.TrimSpace(v))
	if !ok || name == "" {
		return "", false
	}
	return filepath.Join(base, name+ext), true
}

func unquote(v string) (string, bool) {
	if len(v) < 2 || v[0] != '"' || v[len(v)-1] != '"' {
		return "", false
	}
	return v[1 : len(v)-1], true
}
