package section

import (
	"time"

	"github.com/arloliu/lanedata/errs"
	"github.com/arloliu/lanedata/format"
)

// Header is the fixed-size section at the start of a snapshot.
type Header struct {
	// Cycle is the readout cycle the lanes were captured in.
	Cycle uint64 // byte offset 4-11
	// Timestamp is the capture time in unix microseconds.
	Timestamp int64 // byte offset 12-19
	// PayloadSize is the size of the uncompressed payload section.
	PayloadSize uint32 // byte offset 20-23
	// CompressedSize is the size of the payload section as stored.
	CompressedSize uint32 // byte offset 24-27
	// Checksum is the low 32 bits of the xxHash64 of the uncompressed payload section.
	Checksum uint32 // byte offset 28-31
	// LaneCount is the number of index entries.
	LaneCount uint8 // byte offset 3

	Flag Flag // byte offset 0-2
}

// NewHeader creates a header for the given cycle and capture time.
// Sizes and checksum are filled in by the encoder.
func NewHeader(cycle uint64, ts time.Time, laneCount uint8) *Header {
	return &Header{
		Cycle:     cycle,
		Timestamp: ts.UnixMicro(),
		LaneCount: laneCount,
		Flag:      NewFlag(),
	}
}

// Parse parses the header from exactly HeaderSize bytes.
//
// Returns:
//   - error: ErrInvalidHeaderSize if data is not 32 bytes, or flag validation errors
func (h *Header) Parse(data []byte) error {
	if len(data) != HeaderSize {
		return errs.ErrInvalidHeaderSize
	}

	h.Flag.Options = uint16(data[0]) | uint16(data[1])<<8
	h.Flag.Compression = format.CompressionType(data[2])
	h.LaneCount = data[3]

	if err := h.Flag.Validate(); err != nil {
		return err
	}

	engine := h.Flag.GetEndianEngine()
	h.Cycle = engine.Uint64(data[4:12])
	h.Timestamp = int64(engine.Uint64(data[12:20])) //nolint:gosec
	h.PayloadSize = engine.Uint32(data[20:24])
	h.CompressedSize = engine.Uint32(data[24:28])
	h.Checksum = engine.Uint32(data[28:32])

	return nil
}

// Bytes serializes the header.
func (h *Header) Bytes() []byte {
	return h.AppendTo(make([]byte, 0, HeaderSize))
}

// AppendTo appends the serialized header to dst.
func (h *Header) AppendTo(dst []byte) []byte {
	engine := h.Flag.GetEndianEngine()

	dst = append(dst, byte(h.Flag.Options), byte(h.Flag.Options>>8))
	dst = append(dst, byte(h.Flag.Compression), h.LaneCount)
	dst = engine.AppendUint64(dst, h.Cycle)
	dst = engine.AppendUint64(dst, uint64(h.Timestamp)) //nolint:gosec
	dst = engine.AppendUint32(dst, h.PayloadSize)
	dst = engine.AppendUint32(dst, h.CompressedSize)
	dst = engine.AppendUint32(dst, h.Checksum)

	return dst
}

// Time returns the capture time.
func (h *Header) Time() time.Time {
	return time.UnixMicro(h.Timestamp)
}

// ParseHeader parses a Header from the start of data.
func ParseHeader(data []byte) (Header, error) {
	if len(data) < HeaderSize {
		return Header{}, errs.ErrInvalidHeaderSize
	}

	h := Header{}
	if err := h.Parse(data[:HeaderSize]); err != nil {
		return Header{}, err
	}

	return h, nil
}

// IsSnapshot reports whether data starts with a valid snapshot header.
func IsSnapshot(data []byte) bool {
	_, err := ParseHeader(data)
	return err == nil
}
