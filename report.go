package fxbmp

import (
	"fmt"
	"io"
	"math"
)

// Report summarizes the geometry and usage of a volume.
type Report struct {
	Media   Media  `json:"media" yaml:"media"`
	OEMName string `json:"oemName" yaml:"oemName"`

	SectorSize      int    `json:"sectorSize" yaml:"sectorSize"`
	TotalSectors    int    `json:"totalSectors" yaml:"totalSectors"`
	ReservedSectors int    `json:"reservedSectors" yaml:"reservedSectors"`
	FATSectors      int    `json:"fatSectors" yaml:"fatSectors"`
	RootDirSectors  int    `json:"rootDirSectors" yaml:"rootDirSectors"`
	DataSectors     int    `json:"dataSectors" yaml:"dataSectors"`
	FSType          FSType `json:"fsType" yaml:"fsType"`
	FreeSectors     int    `json:"freeSectors" yaml:"freeSectors"`

	MediaSizeKB int     `json:"mediaSizeKB" yaml:"mediaSizeKB"`
	UsableKB    float64 `json:"usableKB" yaml:"usableKB"`
	FreeKB      float64 `json:"freeKB" yaml:"freeKB"`
}

// Report computes the usage report of the volume.
func (v *Volume) Report() (*Report, error) {
	free, err := v.fat.FreeCount()
	if err != nil {
		return nil, err
	}

	l := v.layout
	sectorSize := int(l.SectorSize)
	return &Report{
		Media:           l.Media,
		OEMName:         l.OEMName,
		SectorSize:      sectorSize,
		TotalSectors:    int(l.TotalSectors),
		ReservedSectors: int(l.ReservedSectors),
		FATSectors:      int(l.FATSectors),
		RootDirSectors:  l.RootDirSectors,
		DataSectors:     l.DataSectors,
		FSType:          l.FSType,
		FreeSectors:     free,
		MediaSizeKB:     sectorSize * int(l.TotalSectors) / 1024,
		UsableKB:        kilobytes(sectorSize * l.DataSectors),
		FreeKB:          kilobytes(sectorSize * free),
	}, nil
}

func kilobytes(n int) float64 {
	return math.Round(float64(n)/1024*1000) / 1000
}

// PrintReport writes r in a human readable form to w.
func PrintReport(w io.Writer, r *Report) {
	switch r.Media {
	case MediaInternal:
		fmt.Fprintln(w, "INTERNAL SAVE FILE")
	case MediaExternal:
		fmt.Fprintln(w, "EXTERNAL SAVE FILE")
	default:
		fmt.Fprintf(w, "UNRECOGNIZED SAVE FILE (%q)\n", r.OEMName)
	}

	fmt.Fprintf(w, "Sector Size:          %d\n", r.SectorSize)
	fmt.Fprintf(w, "Total Sectors:        %d\n", r.TotalSectors)
	fmt.Fprintf(w, "Reserved Sectors:     %d\n", r.ReservedSectors)
	fmt.Fprintf(w, "FAT Sectors:          %d\n", r.FATSectors)
	fmt.Fprintf(w, "Root Dir Sectors:     %d\n", r.RootDirSectors)
	fmt.Fprintf(w, "Data Sectors:         %d\n", r.DataSectors)
	fmt.Fprintf(w, "Filesystem type:      %v\n", r.FSType)
	fmt.Fprintf(w, "Free Sectors:         %d\n", r.FreeSectors)
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Media Size (KB):      %4d\n", r.MediaSizeKB)
	fmt.Fprintf(w, "Usable Space (KB):    %8.3f\n", r.UsableKB)
	fmt.Fprintf(w, "Free Space (KB):      %8.3f\n", r.FreeKB)
}
