package compress

import (
	"fmt"

	"github.com/klauspost/compress/zstd"

	"github.com/arloliu/lanedata/errs"
)

// ZstdCompressor provides Zstandard compression for snapshot payload sections.
//
// It gives the best ratio of the built-in codecs and is the default for
// snapshots written to long-term storage.
//
// The implementation is selected at build time: klauspost/compress/zstd by
// default, valyala/gozstd when built with the gozstd tag and cgo.
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a new Zstd compressor with default settings.
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}

// checkZstdSize rejects data whose frame header declares a content size
// other than size, and data that cannot hold a frame for an empty section.
func checkZstdSize(data []byte, size int) error {
	if size == 0 {
		return fmt.Errorf("%w: %d compressed bytes for an empty section", errs.ErrPayloadSizeMismatch, len(data))
	}

	var h zstd.Header
	if err := h.Decode(data); err != nil {
		return fmt.Errorf("zstd decompression failed: %w", err)
	}
	if h.HasFCS && h.FrameContentSize != uint64(size) {
		return fmt.Errorf("%w: zstd frame declares %d bytes, want %d", errs.ErrPayloadSizeMismatch, h.FrameContentSize, size)
	}

	return nil
}
