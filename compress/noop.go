package compress

// NoOpCompressor passes data through unchanged.
//
// Useful when snapshots are written to storage that already compresses, or
// when the raw section must stay byte-identical to the lane payloads for
// inspection with a hex viewer.
type NoOpCompressor struct{}

var _ Codec = (*NoOpCompressor)(nil)

// NewNoOpCompressor creates a new no-operation compressor.
func NewNoOpCompressor() NoOpCompressor {
	return NoOpCompressor{}
}

// Compress returns data as-is. The result shares memory with the input.
func (c NoOpCompressor) Compress(data []byte) ([]byte, error) {
	return data, nil
}

// Decompress returns data as-is. The result shares memory with the input.
func (c NoOpCompressor) Decompress(data []byte) ([]byte, error) {
	return data, nil
}

// DecompressSized returns data as-is after checking its length.
func (c NoOpCompressor) DecompressSized(data []byte, size int) ([]byte, error) {
	if len(data) != size {
		return nil, sizeMismatch(len(data), size)
	}

	return data, nil
}
