package fxbmp

import (
	"os"
	"time"
)

// FileInfo returns an os.FileInfo view of e.
func (e DirEntry) FileInfo() os.FileInfo {
	return entryFileInfo{e}
}

type entryFileInfo struct {
	entry DirEntry
}

func (e entryFileInfo) Name() string {
	return e.entry.Name
}

func (e entryFileInfo) Size() int64 {
	return int64(e.entry.FileSize)
}

func (e entryFileInfo) Mode() os.FileMode {
	mode := os.FileMode(0o644)
	if e.entry.Attribute&AttrReadOnly != 0 {
		mode = 0o444
	}
	if e.IsDir() {
		return os.ModeDir | mode | 0o111
	}
	return mode
}

func (e entryFileInfo) ModTime() time.Time {
	return e.entry.ModTime()
}

func (e entryFileInfo) IsDir() bool {
	return e.entry.IsDir()
}

func (e entryFileInfo) Sys() interface{} {
	return e.entry
}
