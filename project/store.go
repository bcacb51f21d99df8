package project

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"lukechampine.com/blake3"

	"github.com/signadot/rpy-format/encode"
	"github.com/signadot/rpy-format/format"
	"github.com/signadot/rpy-format/ir"
)

// Entry is one loaded file.  Digest is the BLAKE3 sum of the bytes the
// tree was parsed from, or last saved as.
type Entry struct {
	Path   string
	Tree   *ir.Tree
	Digest [32]byte
}

// Store maps file paths to their trees.  Each path is present at most
// once.
type Store struct {
	Project string

	entries map[string]*Entry
	order   []string
}

func NewStore() *Store {
	return &Store{entries: map[string]*Entry{}}
}

// add inserts e unless its path is already present, and reports whether
// it did.
func (s *Store) add(e *Entry) bool {
	if _, ok := s.entries[e.Path]; ok {
		return false
	}
	s.entries[e.Path] = e
	s.order = append(s.order, e.Path)
	return true
}

func (s *Store) Has(path string) bool {
	_, ok := s.entries[path]
	return ok
}

func (s *Store) Entry(path string) *Entry {
	return s.entries[path]
}

func (s *Store) Get(path string) *ir.Tree {
	e := s.entries[path]
	if e == nil {
		return nil
	}
	return e.Tree
}

func (s *Store) Len() int {
	return len(s.order)
}

// Paths returns the loaded paths in load order, the project file first.
func (s *Store) Paths() []string {
	return append([]string(nil), s.order...)
}

// Trees returns the loaded trees in load order.
func (s *Store) Trees() []*ir.Tree {
	res := make([]*ir.Tree, len(s.order))
	for i, p := range s.order {
		res[i] = s.entries[p].Tree
	}
	return res
}

// Changed reports whether the file at path no longer holds the bytes it
// was loaded from.  A file that has been removed counts as changed.
func (s *Store) Changed(path string) (bool, error) {
	e := s.entries[path]
	if e == nil {
		return false, fmt.Errorf("%w: %s", ErrNotLoaded, path)
	}
	d, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return true, nil
	}
	if err != nil {
		return false, err
	}
	return blake3.Sum256(d) != e.Digest, nil
}

// Save encodes the tree held for path in the archive layout and writes it
// back to path.  Format options in opts are overridden.
func (s *Store) Save(path string, opts ...encode.EncodeOption) error {
	e := s.entries[path]
	if e == nil {
		return fmt.Errorf("%w: %s", ErrNotLoaded, path)
	}
	opts = append(opts[:len(opts):len(opts)], encode.EncodeFormat(format.RPYFormat))
	buf := bytes.NewBuffer(nil)
	if err := encode.Encode(e.Tree, buf, opts...); err != nil {
		return err
	}
	perm := fs.FileMode(0644)
	if fi, err := os.Stat(path); err == nil {
		perm = fi.Mode().Perm()
	}
	if err := os.WriteFile(path, buf.Bytes(), perm); err != nil {
		return err
	}
	e.Digest = blake3.Sum256(buf.Bytes())
	return nil
}
