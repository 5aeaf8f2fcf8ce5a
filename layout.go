package fxbmp

import (
	"fmt"

	"github.com/aligator/fxbmp/checkpoint"
)

// FSType is the width of the FAT entries.
type FSType int

const (
	FAT12 FSType = iota + 1
	FAT16
)

// fat16Threshold is the data sector count above which a volume uses FAT16.
const fat16Threshold = 0xFFF

func (t FSType) String() string {
	switch t {
	case FAT12:
		return "FAT12"
	case FAT16:
		return "FAT16"
	default:
		return "unknown"
	}
}

func (t FSType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// Media tells which PC-FX memory a volume was dumped from.
type Media int

const (
	MediaNotRecognized Media = iota
	MediaInternal
	MediaExternal
)

// OEM names written by the console.
const (
	oemInternal = "PCFXSram"
	oemExternal = "PCFXCard"
)

// ClassifyMedia maps a boot sector OEM name to the memory it identifies.
func ClassifyMedia(oemName string) Media {
	switch oemName {
	case oemInternal:
		return MediaInternal
	case oemExternal:
		return MediaExternal
	default:
		return MediaNotRecognized
	}
}

func (m Media) String() string {
	switch m {
	case MediaInternal:
		return "internal"
	case MediaExternal:
		return "external"
	default:
		return "not recognized"
	}
}

func (m Media) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// Layout contains the geometry of a volume and the byte offsets derived
// from it. A cluster is always one sector long: SectorsPerCluster is parsed
// but the console never writes anything else than 1.
type Layout struct {
	OEMName string
	Media   Media

	SectorSize        uint16
	SectorsPerCluster uint16
	ReservedSectors   uint16
	FATSectors        uint16
	TotalSectors      uint16
	MaxRootDirEntries uint16

	RootDirSectors int
	DataSectors    int

	StartOfFAT     int
	StartOfRootDir int
	StartOfData    int

	FSType FSType
}

// ParseLayout reads the boot sector of b and derives the volume layout.
// It does not reject unknown OEM names; Media is MediaNotRecognized then.
func ParseLayout(b []byte) (*Layout, error) {
	bpb, err := readBPB(image(b))
	if err != nil {
		return nil, err
	}

	for i, c := range bpb.OEMName {
		if c >= 0x80 {
			return nil, checkpoint.Wrap(fmt.Errorf("byte %#x at OEM name offset %d is not ASCII", c, i), ErrInvalidVolume)
		}
	}

	if bpb.BytesPerSector == 0 {
		return nil, checkpoint.Wrap(fmt.Errorf("sector size is 0"), ErrInvalidVolume)
	}

	l := &Layout{
		OEMName:           string(bpb.OEMName[:]),
		SectorSize:        bpb.BytesPerSector,
		SectorsPerCluster: bpb.SectorsPerCluster,
		ReservedSectors:   bpb.ReservedSectors,
		FATSectors:        bpb.FATSize16,
		TotalSectors:      bpb.TotalSectors16,
		MaxRootDirEntries: bpb.RootEntryCount,
	}
	l.Media = ClassifyMedia(l.OEMName)

	sectorSize := int(l.SectorSize)
	rootDirSize := int(l.MaxRootDirEntries) * EntrySize
	l.RootDirSectors = (rootDirSize + sectorSize - 1) / sectorSize

	l.StartOfFAT = int(l.ReservedSectors) * sectorSize
	l.StartOfRootDir = (int(l.ReservedSectors) + int(l.FATSectors)) * sectorSize
	l.StartOfData = l.StartOfRootDir + l.RootDirSectors*sectorSize

	l.DataSectors = int(l.TotalSectors) - int(l.ReservedSectors) - int(l.FATSectors) - l.RootDirSectors
	if l.DataSectors < 0 {
		return nil, checkpoint.Wrap(fmt.Errorf("%d total sectors do not cover %d reserved, %d FAT and %d root directory sectors",
			l.TotalSectors, l.ReservedSectors, l.FATSectors, l.RootDirSectors), ErrInvalidVolume)
	}

	if l.DataSectors > fat16Threshold {
		l.FSType = FAT16
	} else {
		l.FSType = FAT12
	}

	return l, nil
}

// ClusterSize is the byte size of one cluster.
func (l *Layout) ClusterSize() int {
	return int(l.SectorSize)
}

// clusterOffset returns the byte offset of a data cluster. Data clusters
// start at 2.
func (l *Layout) clusterOffset(cluster uint32) int {
	return l.StartOfData + (int(cluster)-2)*l.ClusterSize()
}
