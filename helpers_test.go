package fxbmp

import (
	"bytes"
	"encoding/binary"
)

// Geometry of the images built by newTestImage. It matches a 128KB card:
// one reserved sector, one FAT sector, one root directory sector.
const (
	testSectorSize   = 512
	testTotalSectors = 256
	testImageSize    = testSectorSize * testTotalSectors
	testRootEntries  = 16
	testFATStart     = 1 * testSectorSize
	testRootStart    = 2 * testSectorSize
	testDataStart    = 3 * testSectorSize
	testDataSectors  = testTotalSectors - 3

	// 2001-08-20 10:32:02
	testDate = 0x2B14
	testTime = 0x5401
)

func put16(b []byte, off int, v uint16) {
	binary.LittleEndian.PutUint16(b[off:], v)
}

func put32(b []byte, off int, v uint32) {
	binary.LittleEndian.PutUint32(b[off:], v)
}

// newTestImage returns an empty volume with the given OEM name.
func newTestImage(oem string) []byte {
	b := make([]byte, testImageSize)
	b[0], b[1], b[2] = 0xEB, 0x3C, 0x90
	copy(b[3:11], oem)
	put16(b, 0x0B, testSectorSize)
	b[0x0D] = 1
	put16(b, 0x0E, 1)
	b[0x10] = 1
	put16(b, 0x11, testRootEntries)
	put16(b, 0x13, testTotalSectors)
	b[0x15] = 0xF8
	put16(b, 0x16, 1)

	fat := b[testFATStart:]
	setFAT12(fat, 0, 0xFF8)
	setFAT12(fat, 1, 0xFFF)
	return b
}

// setFAT12 packs v into entry n of the FAT12 table fat.
func setFAT12(fat []byte, n int, v uint16) {
	off := n / 2 * 3
	if n&1 == 0 {
		fat[off] = byte(v)
		fat[off+1] = fat[off+1]&0xF0 | byte(v>>8)&0x0F
	} else {
		fat[off+1] = fat[off+1]&0x0F | byte(v<<4)
		fat[off+2] = byte(v >> 4)
	}
}

func pad(s string, n int) []byte {
	b := bytes.Repeat([]byte{' '}, n)
	copy(b, s)
	return b
}

func putEntry(dir []byte, index int, name, ext string, attr byte, cluster uint16, size uint32) {
	slot := dir[index*EntrySize : (index+1)*EntrySize]
	copy(slot[0:8], pad(name, 8))
	copy(slot[8:11], pad(ext, 3))
	slot[0x0B] = attr
	put16(slot, 0x16, testTime)
	put16(slot, 0x18, testDate)
	put16(slot, 0x1A, cluster)
	put32(slot, 0x1C, size)
}

func rootDir(b []byte) []byte {
	return b[testRootStart : testRootStart+testRootEntries*EntrySize]
}

func clusterBytes(b []byte, c int) []byte {
	off := testDataStart + (c-2)*testSectorSize
	return b[off : off+testSectorSize]
}

func testFAT(b []byte) []byte {
	return b[testFATStart:testRootStart]
}

// newHelloImage returns a card holding SAVES/HELLO.TXT with "hello world".
func newHelloImage() []byte {
	b := newTestImage("PCFXSram")
	fat := testFAT(b)

	putEntry(rootDir(b), 0, "SAVES", "", AttrDirectory, 2, 0)
	setFAT12(fat, 2, EndOfChain)

	dir := clusterBytes(b, 2)
	putEntry(dir, 0, ".", "", AttrDirectory, 2, 0)
	putEntry(dir, 1, "..", "", AttrDirectory, 0, 0)
	putEntry(dir, 2, "HELLO", "TXT", AttrArchive, 3, 11)

	setFAT12(fat, 3, EndOfChain)
	copy(clusterBytes(b, 3), "hello world")
	return b
}

// Geometry of the images built by newFAT16TestImage. More than 0xFFF data
// sectors make the volume FAT16.
const (
	fat16TotalSectors = 0x1100
	fat16FATSectors   = 18
	fat16DataStart    = (1 + fat16FATSectors + 1) * testSectorSize
)

// newFAT16TestImage returns an empty FAT16 volume with the given OEM name.
func newFAT16TestImage(oem string) []byte {
	b := make([]byte, fat16TotalSectors*testSectorSize)
	b[0], b[1], b[2] = 0xEB, 0x3C, 0x90
	copy(b[3:11], oem)
	put16(b, 0x0B, testSectorSize)
	b[0x0D] = 1
	put16(b, 0x0E, 1)
	b[0x10] = 1
	put16(b, 0x11, testRootEntries)
	put16(b, 0x13, fat16TotalSectors)
	b[0x15] = 0xF8
	put16(b, 0x16, fat16FATSectors)

	setFAT16(fat16Table(b), 0, 0xFFF8)
	setFAT16(fat16Table(b), 1, 0xFFFF)
	return b
}

func fat16Table(b []byte) []byte {
	return b[testFATStart : testFATStart+fat16FATSectors*testSectorSize]
}

func setFAT16(fat []byte, n int, v uint16) {
	put16(fat, n*2, v)
}
