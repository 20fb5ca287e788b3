package compress

import (
	"fmt"

	"github.com/arloliu/lanedata/errs"
	"github.com/arloliu/lanedata/format"
)

// Compressor compresses a snapshot payload section.
//
// A payload section is the concatenation of every lane's raw bytes for one
// readout cycle. ALPIDE streams are dominated by IDLE and region header words,
// so they usually compress well.
type Compressor interface {
	// Compress compresses data and returns the compressed result.
	//
	// Memory management:
	//   - Returned slice is owned by the caller (NoOp returns the input itself)
	//   - Input slice is not modified
	Compress(data []byte) ([]byte, error)
}

// Decompressor reverses a Compressor.
//
// Example:
//
//	decompressor := NewZstdCompressor()
//	raw, err := decompressor.Decompress(section)
//	if err != nil {
//	    return fmt.Errorf("decompress lane section: %w", err)
//	}
//
// Implementations in this package are safe for concurrent use.
type Decompressor interface {
	// Decompress decompresses data produced by the matching Compressor.
	//
	// Error conditions:
	//   - data is corrupted or truncated
	//   - data was compressed with a different algorithm
	Decompress(data []byte) ([]byte, error)
}

// SizedDecompressor decompresses data whose decompressed size is known in
// advance, such as a snapshot payload section whose size is in the header.
type SizedDecompressor interface {
	// DecompressSized decompresses data that must expand to exactly size bytes.
	//
	// The output buffer is allocated once with the given size. Data that would
	// expand beyond it fails without further allocation, wrapping
	// errs.ErrPayloadSizeMismatch.
	DecompressSized(data []byte, size int) ([]byte, error)
}

// Codec combines both compression and decompression capabilities.
type Codec interface {
	Compressor
	Decompressor
	SizedDecompressor
}

func sizeMismatch(got, want int) error {
	return fmt.Errorf("%w: decompressed %d bytes, want %d", errs.ErrPayloadSizeMismatch, got, want)
}

// CompressionStats describes the outcome of compressing one payload section.
type CompressionStats struct {
	// Algorithm identifies the compression algorithm used
	Algorithm format.CompressionType

	// OriginalSize is the size of input data before compression
	OriginalSize int64

	// CompressedSize is the size of data after compression
	CompressedSize int64
}

// CompressionRatio returns compressed size / original size.
//
// Returns 0.0 when the original size is zero.
func (s CompressionStats) CompressionRatio() float64 {
	if s.OriginalSize == 0 {
		return 0.0
	}

	return float64(s.CompressedSize) / float64(s.OriginalSize)
}

// SpaceSavings returns the space savings as a percentage (0-100%).
func (s CompressionStats) SpaceSavings() float64 {
	if s.OriginalSize == 0 {
		return 0.0
	}

	return (1.0 - s.CompressionRatio()) * 100.0
}

var builtinCodecs = map[format.CompressionType]Codec{
	format.CompressionNone: NewNoOpCompressor(),
	format.CompressionZstd: NewZstdCompressor(),
	format.CompressionS2:   NewS2Compressor(),
	format.CompressionLZ4:  NewLZ4Compressor(),
}

// GetCodec retrieves a built-in Codec for the specified compression type.
func GetCodec(compressionType format.CompressionType) (Codec, error) {
	if codec, ok := builtinCodecs[compressionType]; ok {
		return codec, nil
	}

	return nil, fmt.Errorf("%w: %s", errs.ErrInvalidCompression, compressionType)
}
