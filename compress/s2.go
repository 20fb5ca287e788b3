package compress

import "github.com/klauspost/compress/s2"

// S2Compressor provides S2 compression for snapshot payload sections.
//
// S2 trades some ratio for much faster encoding than Zstd, which suits
// snapshots taken on every readout cycle. S2 blocks record their decoded
// length, so DecompressSized can reject a mismatching section before
// allocating its output.
type S2Compressor struct{}

var _ Codec = (*S2Compressor)(nil)

// NewS2Compressor creates a new S2 compressor.
func NewS2Compressor() S2Compressor {
	return S2Compressor{}
}

// Compress compresses the input data using S2 compression.
func (c S2Compressor) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return s2.Encode(nil, data), nil
}

// Decompress decompresses the input data using S2 decompression.
func (c S2Compressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return s2.Decode(nil, data)
}

// DecompressSized decompresses an S2 block that must decode to size bytes.
func (c S2Compressor) DecompressSized(data []byte, size int) ([]byte, error) {
	if len(data) == 0 {
		if size != 0 {
			return nil, sizeMismatch(0, size)
		}

		return nil, nil
	}

	n, err := s2.DecodedLen(data)
	if err != nil {
		return nil, err
	}
	if n != size {
		return nil, sizeMismatch(n, size)
	}

	return s2.Decode(make([]byte, size), data)
}
