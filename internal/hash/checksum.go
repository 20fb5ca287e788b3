package hash

import "github.com/cespare/xxhash/v2"

// Checksum computes the xxHash64 of data.
func Checksum(data []byte) uint64 {
	return xxhash.Sum64(data)
}

// Checksum32 returns the low 32 bits of the xxHash64 of data.
func Checksum32(data []byte) uint32 {
	return uint32(xxhash.Sum64(data)) //nolint:gosec
}

// Digest accumulates an xxHash64 over several writes.
type Digest struct {
	d *xxhash.Digest
}

// NewDigest returns an empty Digest.
func NewDigest() *Digest {
	return &Digest{d: xxhash.New()}
}

// Write adds data to the running hash.
func (d *Digest) Write(data []byte) {
	_, _ = d.d.Write(data)
}

// Sum64 returns the hash of everything written so far.
func (d *Digest) Sum64() uint64 {
	return d.d.Sum64()
}
