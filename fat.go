package fxbmp

// EndOfChain is the FAT value which terminates a cluster chain. The console
// writes the FAT12 marker on both FAT widths, so it is the only value
// treated as end of chain.
const EndOfChain = 0xFFF

// FAT is a read-only view over the first file allocation table of a volume.
type FAT struct {
	img     image
	start   int
	fsType  FSType
	entries int
}

// NewFAT returns the FAT of the volume b described by l.
func NewFAT(b []byte, l *Layout) *FAT {
	return &FAT{
		img:     image(b),
		start:   l.StartOfFAT,
		fsType:  l.FSType,
		entries: l.DataSectors,
	}
}

// Entry returns the value of FAT entry n.
// FAT16 entries are 2 bytes. FAT12 packs two entries into 3 bytes:
//  even n: byte[off] | (byte[off+1] & 0x0F) << 8
//  odd n:  byte[off+1] >> 4 | byte[off+2] << 4
// with off = start + n/2*3.
func (f *FAT) Entry(n uint32) (uint32, error) {
	if f.fsType == FAT16 {
		v, err := f.img.u16(f.start + int(n)*2)
		return uint32(v), err
	}

	b, err := f.img.slice(f.start+int(n/2)*3, 3)
	if err != nil {
		return 0, err
	}

	if n&1 == 0 {
		return uint32(b[0]) | uint32(b[1]&0x0F)<<8, nil
	}
	return uint32(b[1]>>4) | uint32(b[2])<<4, nil
}

// FreeCount returns the number of entries in [0, data sectors) which are 0.
func (f *FAT) FreeCount() (int, error) {
	free := 0
	for n := 0; n < f.entries; n++ {
		v, err := f.Entry(uint32(n))
		if err != nil {
			return 0, err
		}
		if v == 0 {
			free++
		}
	}
	return free, nil
}
