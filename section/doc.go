// Package section defines the binary layout of a lane snapshot.
//
// A snapshot stores the payloads of all lanes of one readout cycle:
//
//	┌─────────────────────────────────────────────────────────┐
//	│ Header (32 bytes, fixed)                                │
//	├─────────────────────────────────────────────────────────┤
//	│ Index (LaneCount × 8 bytes)                             │
//	│  - one entry per lane, in lane order                    │
//	├─────────────────────────────────────────────────────────┤
//	│ Payload section (CompressedSize bytes)                  │
//	│  - lane payloads concatenated in lane order, then       │
//	│    compressed as a whole                                │
//	└─────────────────────────────────────────────────────────┘
//
// # Header Format
//
//	Bytes  | Field          | Type   | Description
//	-------|----------------|--------|----------------------------------
//	0-1    | Options        | uint16 | magic (bits 4-15), endianness (bit 1); always little-endian
//	2      | Compression    | uint8  | format.CompressionType of the payload section
//	3      | LaneCount      | uint8  | number of index entries
//	4-11   | Cycle          | uint64 | readout cycle number
//	12-19  | Timestamp      | int64  | unix microseconds
//	20-23  | PayloadSize    | uint32 | uncompressed payload section size
//	24-27  | CompressedSize | uint32 | stored payload section size
//	28-31  | Checksum       | uint32 | low 32 bits of xxHash64 of the uncompressed section
//
// # Index Entry Format
//
//	Bytes  | Field  | Type   | Description
//	-------|--------|--------|----------------------------------
//	0-1    | Lane   | uint16 | lane index
//	2-3    | Flags  | uint16 | reserved, 0
//	4-7    | Length | uint32 | lane payload length in bytes
//
// Lane offsets are not stored; they are the prefix sums of Length.
package section
