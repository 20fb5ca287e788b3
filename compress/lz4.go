package compress

import (
	"errors"
	"fmt"
	"sync"

	"github.com/pierrec/lz4/v4"

	"github.com/arloliu/lanedata/errs"
)

// lz4CompressorPool pools lz4.Compressor instances, which carry a hash table
// worth reusing.
var lz4CompressorPool = sync.Pool{
	New: func() any {
		return &lz4.Compressor{}
	},
}

const (
	// lz4MaxDecompressedSize bounds the retry loop in Decompress.
	lz4MaxDecompressedSize = 128 * 1024 * 1024

	// lz4MaxExpansion bounds decompressed/compressed size of one block: every
	// length extension byte adds at most 255 bytes of output.
	lz4MaxExpansion = 255
)

// LZ4Compressor provides LZ4 block compression for snapshot payload sections.
//
// LZ4 has the fastest decoder of the built-in codecs. A block does not store
// its decoded length; snapshots record it in the header, and DecompressSized
// uses it to decode into an exactly sized buffer.
type LZ4Compressor struct{}

var _ Codec = (*LZ4Compressor)(nil)

// NewLZ4Compressor creates a new LZ4 block compressor.
func NewLZ4Compressor() LZ4Compressor {
	return LZ4Compressor{}
}

// Compress compresses the input data as a single LZ4 block.
//
// Returns:
//   - []byte: Compressed data (nil if input is empty)
//   - error: Compression error if any
func (c LZ4Compressor) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}
	dst := make([]byte, lz4.CompressBlockBound(len(data)))

	lc, _ := lz4CompressorPool.Get().(*lz4.Compressor)
	defer lz4CompressorPool.Put(lc)

	n, err := lc.CompressBlock(data, dst)
	if err != nil {
		return nil, err
	}
	if n == 0 {
		// lz4 reports incompressible input as n == 0
		return lz4LiteralBlock(data), nil
	}

	return dst[:n], nil
}

// lz4LiteralBlock encodes data as a single literal-only LZ4 sequence.
func lz4LiteralBlock(data []byte) []byte {
	n := len(data)
	out := make([]byte, 0, n+n/255+2)

	if n < 15 {
		out = append(out, byte(n<<4))
	} else {
		out = append(out, 0xF0)
		rest := n - 15
		for rest >= 255 {
			out = append(out, 0xFF)
			rest -= 255
		}
		out = append(out, byte(rest))
	}

	return append(out, data...)
}

// Decompress decompresses a single LZ4 block.
//
// LZ4 blocks do not record their decompressed size, so the buffer starts at
// 4x the compressed size and doubles on ErrInvalidSourceShortBuffer until
// lz4MaxDecompressedSize is reached. Use DecompressSized when the size is known.
func (c LZ4Compressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	bufSize := len(data) * 4
	for bufSize <= lz4MaxDecompressedSize {
		buf := make([]byte, bufSize)
		n, err := lz4.UncompressBlock(data, buf)
		if err != nil {
			if errors.Is(err, lz4.ErrInvalidSourceShortBuffer) && bufSize < lz4MaxDecompressedSize {
				bufSize *= 2
				continue
			}

			return nil, err
		}

		return buf[:n], nil
	}

	return nil, lz4.ErrInvalidSourceShortBuffer
}

// DecompressSized decompresses a single LZ4 block that must expand to exactly
// size bytes.
func (c LZ4Compressor) DecompressSized(data []byte, size int) ([]byte, error) {
	if len(data) == 0 {
		if size != 0 {
			return nil, sizeMismatch(0, size)
		}

		return nil, nil
	}

	if size == 0 || size/lz4MaxExpansion > len(data) {
		return nil, fmt.Errorf("%w: %d byte lz4 block cannot expand to %d bytes", errs.ErrPayloadSizeMismatch, len(data), size)
	}

	buf := make([]byte, size)
	n, err := lz4.UncompressBlock(data, buf)
	if err != nil {
		if errors.Is(err, lz4.ErrInvalidSourceShortBuffer) {
			return nil, fmt.Errorf("%w: lz4 block does not fit %d bytes: %w", errs.ErrPayloadSizeMismatch, size, err)
		}

		return nil, err
	}
	if n != size {
		return nil, sizeMismatch(n, size)
	}

	return buf, nil
}
