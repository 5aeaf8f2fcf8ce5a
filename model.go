// File model contains the structs which match the on-disk structures of a
// PC-FX backup memory volume.

package fxbmp

import (
	"bytes"
	"encoding/binary"
)

// Offsets of the boot sector fields which are read. The PC-FX reads
// SectorsPerCluster as a 16 bit word, so it overlaps ReservedSectors.
const (
	offOEMName           = 0x03
	offBytesPerSector    = 0x0B
	offSectorsPerCluster = 0x0D
	offReservedSectors   = 0x0E
	offRootEntryCount    = 0x11
	offTotalSectors16    = 0x13
	offFATSize16         = 0x16

	oemNameLength = 8
)

// BPB holds the raw boot sector fields of a volume.
type BPB struct {
	OEMName           [oemNameLength]byte
	BytesPerSector    uint16
	SectorsPerCluster uint16
	ReservedSectors   uint16
	RootEntryCount    uint16
	TotalSectors16    uint16
	FATSize16         uint16
}

func readBPB(img image) (BPB, error) {
	var bpb BPB

	oem, err := img.slice(offOEMName, oemNameLength)
	if err != nil {
		return bpb, err
	}
	copy(bpb.OEMName[:], oem)

	fields := []struct {
		off int
		dst *uint16
	}{
		{offBytesPerSector, &bpb.BytesPerSector},
		{offSectorsPerCluster, &bpb.SectorsPerCluster},
		{offReservedSectors, &bpb.ReservedSectors},
		{offRootEntryCount, &bpb.RootEntryCount},
		{offTotalSectors16, &bpb.TotalSectors16},
		{offFATSize16, &bpb.FATSize16},
	}
	for _, f := range fields {
		if *f.dst, err = img.u16(f.off); err != nil {
			return bpb, err
		}
	}

	return bpb, nil
}

// Attribute bits of a directory entry.
const (
	AttrReadOnly  = 0x01
	AttrHidden    = 0x02
	AttrSystem    = 0x04
	AttrVolumeID  = 0x08
	AttrDirectory = 0x10
	AttrArchive   = 0x20
)

// EntrySize is the size of one directory slot.
const EntrySize = 0x20

// Values of the first byte of a directory slot.
const (
	entryEnd     = 0x00
	entryDeleted = 0xE5
)

// EntryHeader is one raw 32 byte directory slot. The PC-FX continues the
// 8 byte name in the 10 bytes which other FAT flavours reserve.
type EntryHeader struct {
	Name         [8]byte
	Ext          [3]byte
	Attribute    byte
	NameExtra    [10]byte
	Time         uint16
	Date         uint16
	FirstCluster uint16
	FileSize     uint32
}

func readEntryHeader(slot []byte) (EntryHeader, error) {
	var h EntryHeader
	err := binary.Read(bytes.NewReader(slot), binary.LittleEndian, &h)
	return h, err
}
