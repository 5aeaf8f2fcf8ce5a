package fxbmp

import (
	"fmt"

	"github.com/aligator/fxbmp/checkpoint"
)

type chainKind int

const (
	// rootRun is the fixed, contiguous root directory region. It is not
	// linked through the FAT.
	rootRun chainKind = iota
	// fatChain starts at a data cluster and follows the FAT.
	fatChain
)

// Chain is the ordered run of sectors holding a file or directory.
type Chain struct {
	kind    chainKind
	first   uint32
	sectors int
}

// RootChain returns the chain of the root directory, which occupies sectors
// consecutive sectors.
func RootChain(sectors int) Chain {
	return Chain{kind: rootRun, sectors: sectors}
}

// ClusterChain returns the FAT chain starting at cluster first.
func ClusterChain(first uint16) Chain {
	return Chain{kind: fatChain, first: uint32(first)}
}

// IsRoot reports whether c is the root directory region.
func (c Chain) IsRoot() bool {
	return c.kind == rootRun
}

func (c Chain) String() string {
	if c.IsRoot() {
		return fmt.Sprintf("root directory (%d sectors)", c.sectors)
	}
	return fmt.Sprintf("cluster chain at %d", c.first)
}

// Offsets returns the byte offset of every sector of c, in chain order.
// The root directory run never consults the FAT.
func (v *Volume) Offsets(c Chain) ([]int, error) {
	l := v.layout
	if c.IsRoot() {
		offsets := make([]int, c.sectors)
		for i := range offsets {
			offsets[i] = l.StartOfRootDir + i*int(l.SectorSize)
		}
		return offsets, nil
	}

	// A chain can not be longer than the volume. Anything longer loops.
	maxSteps := int(l.TotalSectors) + 1
	seen := make(map[uint32]bool)

	var offsets []int
	cluster := c.first
	for {
		if len(offsets) >= maxSteps {
			return nil, checkpoint.Wrap(fmt.Errorf("%v does not terminate within %d clusters", c, maxSteps), ErrChainCorrupt)
		}
		if cluster < 2 || int(cluster) >= l.DataSectors+2 {
			return nil, checkpoint.Wrap(fmt.Errorf("%v: cluster %#x after %d clusters is outside of the data region", c, cluster, len(offsets)), ErrChainCorrupt)
		}
		if seen[cluster] {
			return nil, checkpoint.Wrap(fmt.Errorf("%v: cluster %#x after %d clusters loops", c, cluster, len(offsets)), ErrChainCorrupt)
		}
		seen[cluster] = true

		offsets = append(offsets, l.clusterOffset(cluster))

		next, err := v.fat.Entry(cluster)
		if err != nil {
			return nil, checkpoint.Wrap(err, ErrChainCorrupt)
		}
		if next == EndOfChain {
			return offsets, nil
		}
		cluster = next
	}
}

// ReadChain concatenates the sectors of c.
func (v *Volume) ReadChain(c Chain) ([]byte, error) {
	offsets, err := v.Offsets(c)
	if err != nil {
		return nil, err
	}

	size := int(v.layout.SectorSize)
	out := make([]byte, 0, len(offsets)*size)
	for _, off := range offsets {
		chunk, err := v.img.slice(off, size)
		if err != nil {
			if c.IsRoot() {
				return nil, err
			}
			return nil, checkpoint.Wrap(err, ErrChainCorrupt)
		}
		out = append(out, chunk...)
	}

	return out, nil
}

// ReadFile returns the content of the file e, truncated to its declared size.
func (v *Volume) ReadFile(e DirEntry) ([]byte, error) {
	if e.FileSize == 0 && e.FirstCluster == 0 {
		return []byte{}, nil
	}

	data, err := v.ReadChain(ClusterChain(e.FirstCluster))
	if err != nil {
		return nil, err
	}

	if uint64(len(data)) < uint64(e.FileSize) {
		return nil, checkpoint.Wrap(fmt.Errorf("chain at %d holds %d bytes, entry declares %d", e.FirstCluster, len(data), e.FileSize), ErrChainCorrupt)
	}

	return data[:e.FileSize], nil
}

// ReadDir returns the raw slots of the directory e.
func (v *Volume) ReadDir(e DirEntry) ([]byte, error) {
	return v.ReadChain(ClusterChain(e.FirstCluster))
}

// ReadRootDir returns the raw slots of the root directory.
func (v *Volume) ReadRootDir() ([]byte, error) {
	return v.ReadChain(RootChain(v.layout.RootDirSectors))
}
