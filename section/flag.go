package section

import (
	"github.com/arloliu/lanedata/endian"
	"github.com/arloliu/lanedata/errs"
	"github.com/arloliu/lanedata/format"
)

// Flag is the packed option field at the start of the header.
type Flag struct {
	// Options packs the magic number (bits 4-15) and endianness (bit 1).
	// Bits 0, 2 and 3 are reserved and must be 0.
	Options uint16

	// Compression is the compression applied to the payload section.
	Compression format.CompressionType
}

// NewFlag creates a little-endian, Zstd-compressed flag.
func NewFlag() Flag {
	flag := Flag{
		Options:     MagicLaneSnapshotV1,
		Compression: format.CompressionZstd,
	}
	flag.WithLittleEndian()

	return flag
}

// IsLittleEndian returns whether multi-byte fields are little-endian.
func (f Flag) IsLittleEndian() bool {
	return (f.Options & EndiannessMask) == 0
}

// IsBigEndian returns whether multi-byte fields are big-endian.
func (f Flag) IsBigEndian() bool {
	return (f.Options & EndiannessMask) != 0
}

// WithLittleEndian sets little-endian byte order.
func (f *Flag) WithLittleEndian() {
	f.Options &= ^uint16(EndiannessMask)
}

// WithBigEndian sets big-endian byte order.
func (f *Flag) WithBigEndian() {
	f.Options |= EndiannessMask
}

// GetEndianEngine returns the engine matching the endianness bit.
func (f Flag) GetEndianEngine() endian.EndianEngine {
	return endian.EngineFor(f.IsBigEndian())
}

// GetMagicNumber returns the magic number from the Options field.
func (f Flag) GetMagicNumber() uint16 {
	return f.Options & MagicNumberMask
}

// IsValidMagicNumber checks if the magic number is valid.
func (f Flag) IsValidMagicNumber() bool {
	return f.GetMagicNumber() == MagicLaneSnapshotV1
}

// Validate checks the magic number, reserved bits and compression type.
func (f Flag) Validate() error {
	if !f.IsValidMagicNumber() {
		return errs.ErrInvalidMagicNumber
	}

	if f.Options&(ReservedLowMask|ReservedBitsMask) != 0 {
		return errs.ErrInvalidHeaderFlags
	}

	if !f.Compression.IsValid() {
		return errs.ErrInvalidCompression
	}

	return nil
}
