package fxbmp

import (
	"fmt"
	"path"

	"github.com/aligator/fxbmp/checkpoint"
	"go.uber.org/zap"
)

// maxDepth is the deepest directory level the console creates: the root
// holds directories, which hold files.
const maxDepth = 1

// Sink receives the reconstructed tree. Paths are slash separated and
// relative to the destination.
// Generated mock using mockgen:
//  mockgen -source=walk.go -destination=sink_mock.go -package fxbmp
type Sink interface {
	Mkdir(dir string, entry DirEntry) error
	WriteFile(name string, data []byte, entry DirEntry) error
}

// Result summarizes a walk.
type Result struct {
	Dirs    int
	Files   int
	Skipped int

	// Warnings lists entries the console never writes, like files in the
	// root directory or nested directories.
	Warnings []string

	// Failures lists the entries which could not be reconstructed.
	Failures []*EntryError
}

func (r *Result) fail(p string, index int, err error) {
	zap.S().Errorw("could not reconstruct entry", "path", p, "index", index, "error", err, "at", checkpoint.Location(err))
	r.Failures = append(r.Failures, &EntryError{Path: p, Index: index, Err: err})
}

func (r *Result) warn(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	zap.S().Warn(msg)
	r.Warnings = append(r.Warnings, msg)
}

// Extract walks the volume and hands every directory and file to sink in
// slot order.
// Entries which can not be reconstructed are collected in Result.Failures
// and the walk goes on. A failing sink stops the walk.
func (v *Volume) Extract(sink Sink) (*Result, error) {
	root, err := v.ReadRootDir()
	if err != nil {
		return nil, err
	}

	res := &Result{}
	err = v.walk(root, 0, "", sink, res)
	return res, err
}

func (v *Volume) walk(dir []byte, depth int, dest string, sink Sink, res *Result) error {
	log := zap.S()

	for i := 0; i < len(dir)/EntrySize; i++ {
		e, err := decodeEntry(dir, i, v.codepage)
		if err != nil {
			res.fail(dest, i, err)
			continue
		}

		if e.IsEnd() {
			return nil
		}
		if e.IsDeleted() || e.IsDotEntry() {
			res.Skipped++
			continue
		}

		p := path.Join(dest, e.Name)
		if e.Name == "" {
			res.fail(p, i, checkpoint.Wrap(fmt.Errorf("slot %d has an empty name", i), ErrInvalidVolume))
			continue
		}

		if e.IsDir() {
			if depth >= maxDepth {
				res.warn("%s: directory nested deeper than %d level, skipped", p, maxDepth)
				res.Skipped++
				continue
			}

			sub, err := v.ReadDir(e)
			if err != nil {
				res.fail(p, i, err)
				continue
			}

			log.Debugw("directory", "path", p, "cluster", e.FirstCluster)
			if err := sink.Mkdir(p, e); err != nil {
				return checkpoint.Wrap(err, ErrSinkWrite)
			}
			res.Dirs++

			if err := v.walk(sub, depth+1, p, sink, res); err != nil {
				return err
			}
			continue
		}

		if depth == 0 {
			res.warn("%s: file in the root directory", p)
		}

		data, err := v.ReadFile(e)
		if err != nil {
			res.fail(p, i, err)
			continue
		}

		log.Debugw("file", "path", p, "cluster", e.FirstCluster, "size", e.FileSize)
		if err := sink.WriteFile(p, data, e); err != nil {
			return checkpoint.Wrap(err, ErrSinkWrite)
		}
		res.Files++
	}

	return nil
}
