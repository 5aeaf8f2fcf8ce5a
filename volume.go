package fxbmp

import (
	"fmt"

	"github.com/aligator/fxbmp/checkpoint"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/japanese"
)

// Options change how a volume is opened.
type Options struct {
	// SkipChecks opens volumes whose OEM name is not one the console writes.
	SkipChecks bool

	// Codepage decodes entry names. Defaults to Shift-JIS.
	Codepage encoding.Encoding
}

// Volume is a traversal session over one in-memory image. It never modifies
// the image.
type Volume struct {
	img      image
	layout   *Layout
	fat      *FAT
	codepage encoding.Encoding
}

// New opens the PC-FX backup memory image b.
// It fails with ErrNotRecognized if the OEM name is not one of the console's.
func New(b []byte) (*Volume, error) {
	return NewWithOptions(b, Options{})
}

// NewSkipChecks opens b just like New but accepts any OEM name, which may
// allow you to read FAT12/16 images not written by the console.
// Use with caution!
func NewSkipChecks(b []byte) (*Volume, error) {
	return NewWithOptions(b, Options{SkipChecks: true})
}

// NewWithOptions opens b using opts.
func NewWithOptions(b []byte, opts Options) (*Volume, error) {
	layout, err := ParseLayout(b)
	if err != nil {
		return nil, err
	}

	if layout.Media == MediaNotRecognized && !opts.SkipChecks {
		return nil, checkpoint.Wrap(fmt.Errorf("OEM name %q", layout.OEMName), ErrNotRecognized)
	}

	codepage := opts.Codepage
	if codepage == nil {
		codepage = japanese.ShiftJIS
	}

	return &Volume{
		img:      image(b),
		layout:   layout,
		fat:      NewFAT(b, layout),
		codepage: codepage,
	}, nil
}

// Layout returns the geometry of the volume.
func (v *Volume) Layout() Layout {
	return *v.layout
}

// FAT returns the allocation table of the volume.
func (v *Volume) FAT() *FAT {
	return v.fat
}
