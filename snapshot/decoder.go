package snapshot

import (
	"fmt"
	"time"

	"github.com/arloliu/lanedata/compress"
	"github.com/arloliu/lanedata/errs"
	"github.com/arloliu/lanedata/format"
	"github.com/arloliu/lanedata/internal/hash"
	"github.com/arloliu/lanedata/lane"
	"github.com/arloliu/lanedata/section"
)

// Snapshot is a decoded lane snapshot.
//
// Lane views returned by Snapshot share memory with its decompressed payload
// section. With CompressionNone that section is the input slice passed to
// Decode, so the input must not be modified while the Snapshot is in use.
type Snapshot struct {
	header  section.Header
	entries []section.IndexEntry
	payload []byte
}

// Decode parses and verifies a snapshot.
//
// Verification covers the header flags, the lane count, the index and payload
// sizes, and the checksum of the decompressed payload section. The payload
// section is decompressed into a buffer of exactly the size recorded in the
// header; a section that expands beyond it is rejected without allocating
// more.
//
// Returns:
//   - *Snapshot: the decoded snapshot
//   - error: a wrapped errs sentinel describing the first failed check
func Decode(data []byte) (*Snapshot, error) {
	header, err := section.ParseHeader(data)
	if err != nil {
		return nil, err
	}

	if int(header.LaneCount) != lane.NumLanes {
		return nil, fmt.Errorf("%w: got %d, want %d", errs.ErrInvalidLaneCount, header.LaneCount, lane.NumLanes)
	}

	engine := header.Flag.GetEndianEngine()
	entries, total, err := section.ParseIndex(data[section.IndexOffset:], lane.NumLanes, engine)
	if err != nil {
		return nil, err
	}

	for i, e := range entries {
		if int(e.Lane) != i {
			return nil, fmt.Errorf("%w: entry %d names lane %d", errs.ErrInvalidIndexSize, i, e.Lane)
		}
	}

	if total != int(header.PayloadSize) {
		return nil, fmt.Errorf("%w: index sums to %d, header says %d", errs.ErrPayloadSizeMismatch, total, header.PayloadSize)
	}

	start := section.IndexOffset + lane.NumLanes*section.IndexEntrySize
	stored := data[start:]
	if len(stored) != int(header.CompressedSize) {
		return nil, fmt.Errorf("%w: section is %d bytes, header says %d", errs.ErrPayloadSizeMismatch, len(stored), header.CompressedSize)
	}

	codec, err := compress.GetCodec(header.Flag.Compression)
	if err != nil {
		return nil, err
	}

	payload, err := codec.DecompressSized(stored, int(header.PayloadSize))
	if err != nil {
		return nil, fmt.Errorf("decompress lane section: %w", err)
	}

	if sum := hash.Checksum32(payload); sum != header.Checksum {
		return nil, fmt.Errorf("%w: got %08x, want %08x", errs.ErrChecksumMismatch, sum, header.Checksum)
	}

	return &Snapshot{header: header, entries: entries, payload: payload}, nil
}

// IsSnapshot reports whether data starts with a valid snapshot header.
// It does not verify the payload.
func IsSnapshot(data []byte) bool {
	return section.IsSnapshot(data)
}

// Cycle returns the readout cycle the snapshot was taken in.
func (s *Snapshot) Cycle() uint64 {
	return s.header.Cycle
}

// Time returns the capture time with microsecond precision.
func (s *Snapshot) Time() time.Time {
	return s.header.Time()
}

// Compression returns the compression used for the payload section.
func (s *Snapshot) Compression() format.CompressionType {
	return s.header.Flag.Compression
}

// IsBigEndian reports whether the snapshot was written in big-endian order.
func (s *Snapshot) IsBigEndian() bool {
	return s.header.Flag.IsBigEndian()
}

// TotalBytes returns the combined length of all lane payloads.
func (s *Snapshot) TotalBytes() int {
	return len(s.payload)
}

// Lane returns a read-only view of lane index.
//
// Returns:
//   - []byte: the lane payload, empty for an idle lane
//   - error: *lane.IndexError when index is outside [0, NumLanes)
func (s *Snapshot) Lane(index int) ([]byte, error) {
	if err := lane.CheckIndex(index); err != nil {
		return nil, err
	}
	e := s.entries[index]
	end := e.Offset + int(e.Length)

	return s.payload[e.Offset:end:end], nil
}

// Restore replaces the contents of h with the snapshot lanes.
func (s *Snapshot) Restore(h *lane.Handler) error {
	h.Reset()
	for i, e := range s.entries {
		if e.Length == 0 {
			continue
		}
		if err := h.Append(i, s.payload[e.Offset:e.Offset+int(e.Length)]); err != nil {
			return err
		}
	}

	return nil
}
