//go:build cgo && gozstd

package compress

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/valyala/gozstd"
)

const gozstdLevel = 3

// Compress compresses the input data using the cgo Zstandard bindings.
func (c ZstdCompressor) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return gozstd.CompressLevel(nil, data, gozstdLevel), nil
}

// Decompress decompresses Zstd-compressed data using the cgo bindings.
func (c ZstdCompressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	out, err := gozstd.Decompress(nil, data)
	if err != nil {
		return nil, fmt.Errorf("zstd decompression failed: %w", err)
	}

	return out, nil
}

// DecompressSized decompresses Zstd data that must expand to exactly size
// bytes, streaming into a buffer of that size.
func (c ZstdCompressor) DecompressSized(data []byte, size int) ([]byte, error) {
	if len(data) == 0 {
		if size != 0 {
			return nil, sizeMismatch(0, size)
		}

		return nil, nil
	}

	if err := checkZstdSize(data, size); err != nil {
		return nil, err
	}

	r := gozstd.NewReader(bytes.NewReader(data))
	defer r.Release()

	out := make([]byte, size)
	n, err := io.ReadFull(r, out)
	if err != nil {
		if errors.Is(err, io.ErrUnexpectedEOF) || errors.Is(err, io.EOF) {
			return nil, sizeMismatch(n, size)
		}

		return nil, fmt.Errorf("zstd decompression failed: %w", err)
	}

	var extra [1]byte
	if m, _ := io.ReadFull(r, extra[:]); m > 0 {
		return nil, sizeMismatch(size+m, size)
	}

	return out, nil
}
