package fxbmp

import (
	"errors"
	"testing"
)

func TestFAT_Entry_FAT12RoundTrip(t *testing.T) {
	pairs := [][2]uint16{
		{0x000, 0x000},
		{0xFFF, 0xFFF},
		{0xABC, 0x123},
		{0x001, 0xF00},
		{0x0F0, 0x00F},
		{0xFF8, 0xFFF},
	}

	b := newTestImage("PCFXSram")
	l, err := ParseLayout(b)
	if err != nil {
		t.Fatal(err)
	}
	fat := NewFAT(b, l)

	for i, p := range pairs {
		n := 2 * (i + 1)
		setFAT12(testFAT(b), n, p[0])
		setFAT12(testFAT(b), n+1, p[1])
	}

	for i, p := range pairs {
		n := uint32(2 * (i + 1))
		for j, want := range p {
			got, err := fat.Entry(n + uint32(j))
			if err != nil {
				t.Fatalf("Entry(%d) unexpected error: %v", n+uint32(j), err)
			}
			if got != uint32(want) {
				t.Errorf("Entry(%d) = %#x, want %#x", n+uint32(j), got, want)
			}
		}
	}
}

func TestFAT_Entry_FAT12Packing(t *testing.T) {
	// Entries 0 and 1 of a typical table: 0xFF8 and 0xFFF packed as F8 FF FF.
	fat := &FAT{img: image{0xF8, 0xFF, 0xFF, 0x03, 0x40, 0x00}, fsType: FAT12, entries: 4}

	tests := []struct {
		n    uint32
		want uint32
	}{
		{n: 0, want: 0xFF8},
		{n: 1, want: 0xFFF},
		{n: 2, want: 0x003},
		{n: 3, want: 0x004},
	}
	for _, tt := range tests {
		got, err := fat.Entry(tt.n)
		if err != nil {
			t.Fatal(err)
		}
		if got != tt.want {
			t.Errorf("Entry(%d) = %#x, want %#x", tt.n, got, tt.want)
		}
	}
}

func TestFAT_Entry_FAT16(t *testing.T) {
	fat := &FAT{img: image{0xF8, 0xFF, 0xFF, 0xFF, 0x03, 0x00, 0x34, 0x12}, fsType: FAT16, entries: 4}

	want := []uint32{0xFFF8, 0xFFFF, 0x0003, 0x1234}
	for n, w := range want {
		got, err := fat.Entry(uint32(n))
		if err != nil {
			t.Fatal(err)
		}
		if got != w {
			t.Errorf("Entry(%d) = %#x, want %#x", n, got, w)
		}
	}

	if _, err := fat.Entry(4); !errors.Is(err, ErrOutOfBounds) {
		t.Errorf("Entry(4) error = %v, want %v", err, ErrOutOfBounds)
	}
}

func TestFAT_FreeCount(t *testing.T) {
	tests := []struct {
		name string
		used []int
		want int
	}{
		{
			name: "empty card",
			used: nil,
			want: testDataSectors - 2,
		},
		{
			name: "scattered clusters",
			used: []int{2, 3, 7, 100, 252},
			want: testDataSectors - 2 - 5,
		},
		{
			name: "clusters past the data sectors are not counted",
			used: []int{2, 253, 254},
			want: testDataSectors - 2 - 1,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := newTestImage("PCFXSram")
			for _, c := range tt.used {
				setFAT12(testFAT(b), c, EndOfChain)
			}

			v, err := New(b)
			if err != nil {
				t.Fatal(err)
			}

			got, err := v.FAT().FreeCount()
			if err != nil {
				t.Fatal(err)
			}
			if got != tt.want {
				t.Errorf("FreeCount() = %d, want %d", got, tt.want)
			}
		})
	}
}
