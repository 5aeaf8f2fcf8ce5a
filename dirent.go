package fxbmp

import (
	"bytes"
	"fmt"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/aligator/fxbmp/checkpoint"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/japanese"
)

// DirEntry is one decoded directory slot.
type DirEntry struct {
	Index  int
	Status byte

	// Name is BaseName with ".Ext" appended if Ext is not empty.
	Name     string
	BaseName string
	Ext      string

	Attribute    byte
	Time         uint16
	Date         uint16
	FirstCluster uint16
	FileSize     uint32
}

// IsEnd reports whether the slot terminates its directory.
func (e DirEntry) IsEnd() bool {
	return e.Status == entryEnd
}

// IsDeleted reports whether the slot belongs to a deleted entry.
func (e DirEntry) IsDeleted() bool {
	return e.Status == entryDeleted
}

// IsDotEntry reports whether e points to its own or its parent directory.
func (e DirEntry) IsDotEntry() bool {
	return e.Name == "." || e.Name == ".."
}

func (e DirEntry) IsDir() bool {
	return e.Attribute&AttrDirectory != 0
}

// ModTime combines the date and time words. It is the zero time if the
// date is invalid.
func (e DirEntry) ModTime() time.Time {
	return ModTime(e.Date, e.Time)
}

// DecodeEntry decodes slot index of the directory dir, with Shift-JIS names.
func DecodeEntry(dir []byte, index int) (DirEntry, error) {
	return decodeEntry(dir, index, japanese.ShiftJIS)
}

func decodeEntry(dir []byte, index int, codepage encoding.Encoding) (DirEntry, error) {
	slot, err := image(dir).slice(index*EntrySize, EntrySize)
	if err != nil {
		return DirEntry{}, checkpoint.Wrap(err, fmt.Errorf("directory slot %d", index))
	}

	e := DirEntry{Index: index, Status: slot[0]}
	if e.IsEnd() || e.IsDeleted() {
		return e, nil
	}

	h, err := readEntryHeader(slot)
	if err != nil {
		return e, checkpoint.Wrap(err, fmt.Errorf("directory slot %d", index))
	}

	name := make([]byte, 0, len(h.Name)+len(h.NameExtra))
	name = append(name, h.Name[:]...)
	name = append(name, h.NameExtra[:]...)

	e.BaseName = decodeName(name, codepage)
	e.Ext = decodeName(h.Ext[:], codepage)
	e.Name = e.BaseName
	if e.Ext != "" {
		e.Name += "." + e.Ext
	}

	e.Attribute = h.Attribute
	e.Time = h.Time
	e.Date = h.Date
	e.FirstCluster = h.FirstCluster
	e.FileSize = h.FileSize

	return e, nil
}

// decodeName decodes b with codepage and trims the NUL and space padding at
// its end. Names the codepage can not map are decoded with code page 437,
// which maps every byte.
func decodeName(b []byte, codepage encoding.Encoding) string {
	decoded, err := codepage.NewDecoder().Bytes(b)
	if err != nil || bytes.ContainsRune(decoded, utf8.RuneError) {
		decoded, _ = charmap.CodePage437.NewDecoder().Bytes(b)
	}

	return strings.TrimRightFunc(string(decoded), func(r rune) bool {
		return r == 0 || unicode.IsSpace(r)
	})
}
