package fxbmp

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
)

// FsSink writes the reconstructed tree below a root directory of an
// afero.Fs.
type FsSink struct {
	fs        afero.Fs
	root      string
	overwrite bool
}

// NewFsSink returns a sink writing below root. Existing files are only
// replaced if overwrite is set.
func NewFsSink(fs afero.Fs, root string, overwrite bool) *FsSink {
	if root == "" {
		root = "."
	}
	return &FsSink{
		fs:        fs,
		root:      filepath.Clean(root),
		overwrite: overwrite,
	}
}

// resolve maps name below the root and refuses anything escaping it.
func (s *FsSink) resolve(name string) (string, error) {
	p := filepath.Join(s.root, filepath.FromSlash(name))

	rel, err := filepath.Rel(s.root, p)
	if err != nil || rel == "." || rel == ".." || strings.HasPrefix(rel, ".."+string(os.PathSeparator)) {
		return "", fmt.Errorf("%s: illegal file path", name)
	}
	return p, nil
}

func (s *FsSink) Mkdir(dir string, entry DirEntry) error {
	p, err := s.resolve(dir)
	if err != nil {
		return err
	}

	if err := s.fs.MkdirAll(p, 0o755); err != nil {
		return err
	}
	return s.chtimes(p, entry)
}

func (s *FsSink) WriteFile(name string, data []byte, entry DirEntry) error {
	p, err := s.resolve(name)
	if err != nil {
		return err
	}

	if !s.overwrite {
		exists, err := afero.Exists(s.fs, p)
		if err != nil {
			return err
		}
		if exists {
			return fmt.Errorf("%s: %w", p, os.ErrExist)
		}
	}

	if err := s.fs.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return err
	}

	if err := s.write(p, data); err != nil {
		return err
	}
	return s.chtimes(p, entry)
}

func (s *FsSink) write(p string, data []byte) error {
	f, err := s.fs.OpenFile(p, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return err
	}
	defer f.Close()

	if _, err := f.Write(data); err != nil {
		return err
	}
	return f.Close()
}

func (s *FsSink) chtimes(p string, entry DirEntry) error {
	mtime := entry.ModTime()
	if mtime.IsZero() {
		return nil
	}
	return s.fs.Chtimes(p, mtime, mtime)
}
