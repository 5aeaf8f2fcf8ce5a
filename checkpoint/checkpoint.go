// Package checkpoint decorates errors with the file and line they passed
// through, so a failure deep inside a chain walk can be located from a single
// log line.
// Every error added to a checkpoint can still be checked by errors.Is and
// retrieved by errors.As.
package checkpoint

import (
	"errors"
	"fmt"
	"path/filepath"
	"runtime"
)

// From wraps err in a checkpoint carrying the caller's location.
// It returns nil if err == nil.
func From(err error) error {
	if err == nil {
		return nil
	}

	return newCheckpoint(nil, err)
}

// Wrap adds a checkpoint to prev which is described by err.
// Returns nil if prev == nil.
//
// err is usually a predefined sentinel:
//  var ErrChainCorrupt = errors.New("cluster chain is corrupt")
//
//  func walk() error {
//  	return checkpoint.Wrap(fmt.Errorf("cluster %d seen twice", c), ErrChainCorrupt)
//  }
// errors.Is then matches both ErrChainCorrupt and anything prev wraps.
func Wrap(prev, err error) error {
	if prev == nil {
		return nil
	}

	return newCheckpoint(prev, err)
}

func newCheckpoint(prev, err error) *checkpoint {
	// Skip newCheckpoint and the exported caller.
	_, file, line, ok := runtime.Caller(2)

	return &checkpoint{
		err:  err,
		prev: prev,

		callerOk: ok,
		file:     filepath.Base(file),
		line:     line,
	}
}

type checkpoint struct {
	err  error
	prev error

	callerOk bool
	file     string
	line     int
}

// Location returns "file:line" of the outermost checkpoint in err, or "" if
// err carries none.
func Location(err error) string {
	var c *checkpoint
	if !errors.As(err, &c) || !c.callerOk {
		return ""
	}
	return fmt.Sprintf("%s:%d", c.file, c.line)
}

func (e *checkpoint) Error() string {
	if e.prev == nil {
		return e.err.Error()
	}
	return fmt.Sprintf("%v: %v", e.err, e.prev)
}

func (e *checkpoint) Unwrap() error {
	return e.prev
}

func (e *checkpoint) Is(target error) bool {
	return errors.Is(e.err, target)
}

func (e *checkpoint) As(target interface{}) bool {
	return errors.As(e.err, target)
}
