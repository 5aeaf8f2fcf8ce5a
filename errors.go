package fxbmp

import (
	"errors"
	"fmt"
)

// These errors classify every failure of a traversal session.
var (
	ErrNotRecognized = errors.New("not a PC-FX backup memory image")
	ErrInvalidVolume = errors.New("invalid volume geometry")
	ErrOutOfBounds   = errors.New("read outside of the image")
	ErrChainCorrupt  = errors.New("cluster chain is corrupt")
	ErrSinkWrite     = errors.New("could not write to the sink")
)

// EntryError describes a directory entry whose content could not be
// reconstructed. The walk records it and continues with the next entry.
type EntryError struct {
	Path  string
	Index int
	Err   error
}

func (e *EntryError) Error() string {
	return fmt.Sprintf("entry %d (%s): %v", e.Index, e.Path, e.Err)
}

func (e *EntryError) Unwrap() error {
	return e.Err
}
