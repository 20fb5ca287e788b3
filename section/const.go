package section

import "math"

const (
	// Bit masks for Flag.Options
	ReservedLowMask  = 0x0001 // bit 0, must be 0
	EndiannessMask   = 0x0002 // bit 1, 0=little-endian, 1=big-endian
	ReservedBitsMask = 0x000C // bits 2-3, must be 0
	MagicNumberMask  = 0xFFF0 // bits 4-15

	// MagicLaneSnapshotV1 identifies a version 1 lane snapshot.
	MagicLaneSnapshotV1 = 0xFC10
)

// section sizes
const (
	HeaderSize     = 32         // fixed header size in bytes
	IndexEntrySize = 8          // fixed index entry size in bytes
	IndexOffset    = HeaderSize // byte offset where the index section starts

	// MaxSectionPayload is the largest uncompressed payload section.
	MaxSectionPayload = math.MaxUint32

	// IndexFlagsUnused is the value of the reserved index entry field in v1.
	IndexFlagsUnused = uint16(0x0000)
)
