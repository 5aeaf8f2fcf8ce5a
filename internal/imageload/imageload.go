// Package imageload reads backup memory images from disk, decompressing
// zstd, gzip and xz archives on the fly.
package imageload

import (
	"bytes"
	"fmt"
	"io"

	"github.com/aligator/fxbmp/internal/logger"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/spf13/afero"
	"github.com/ulikunitz/xz"
)

// CardSize is the size of a PC-FX backup memory dump.
const CardSize = 128 * 1024

// maxImageSize bounds the decompressed size of an image.
const maxImageSize = 64 << 20

var (
	magicZstd = []byte{0x28, 0xB5, 0x2F, 0xFD}
	magicGzip = []byte{0x1F, 0x8B}
	magicXz   = []byte{0xFD, '7', 'z', 'X', 'Z', 0x00}
)

// Load reads the image at path from fs.
func Load(fs afero.Fs, path string) ([]byte, error) {
	log := logger.Logger()

	raw, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, err
	}

	b, err := Decompress(raw)
	if err != nil {
		return nil, fmt.Errorf("decompress %s: %w", path, err)
	}

	if len(b) != CardSize {
		log.Warnf("%s is %d bytes, a PC-FX card image is %d bytes", path, len(b), CardSize)
	}
	return b, nil
}

// Decompress returns b unpacked if it starts with a zstd, gzip or xz magic
// number, else b itself.
func Decompress(b []byte) ([]byte, error) {
	switch {
	case bytes.HasPrefix(b, magicZstd):
		dec, err := zstd.NewReader(nil, zstd.WithDecoderMaxMemory(maxImageSize))
		if err != nil {
			return nil, err
		}
		defer dec.Close()
		return dec.DecodeAll(b, nil)

	case bytes.HasPrefix(b, magicGzip):
		r, err := gzip.NewReader(bytes.NewReader(b))
		if err != nil {
			return nil, err
		}
		defer r.Close()
		return readLimited(r)

	case bytes.HasPrefix(b, magicXz):
		r, err := xz.NewReader(bytes.NewReader(b))
		if err != nil {
			return nil, err
		}
		return readLimited(r)

	default:
		return b, nil
	}
}

func readLimited(r io.Reader) ([]byte, error) {
	b, err := io.ReadAll(io.LimitReader(r, maxImageSize+1))
	if err != nil {
		return nil, err
	}
	if len(b) > maxImageSize {
		return nil, fmt.Errorf("image exceeds %d bytes", maxImageSize)
	}
	return b, nil
}
