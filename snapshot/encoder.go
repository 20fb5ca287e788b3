package snapshot

import (
	"fmt"
	"io"
	"time"

	"github.com/arloliu/lanedata/compress"
	"github.com/arloliu/lanedata/errs"
	"github.com/arloliu/lanedata/internal/hash"
	"github.com/arloliu/lanedata/internal/options"
	"github.com/arloliu/lanedata/internal/pool"
	"github.com/arloliu/lanedata/lane"
	"github.com/arloliu/lanedata/section"
)

// Encoder serializes lane handlers into snapshots.
//
// An Encoder may be reused for any number of cycles. It is not safe for
// concurrent use because Stats reflects the most recent Encode call.
type Encoder struct {
	cfg   *encoderConfig
	codec compress.Codec
	stats compress.CompressionStats
}

// NewEncoder creates an Encoder.
//
// Returns:
//   - *Encoder: ready encoder
//   - error: the first option error, wrapped with the option position
func NewEncoder(opts ...EncoderOption) (*Encoder, error) {
	cfg := defaultEncoderConfig()
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	codec, err := compress.GetCodec(cfg.compression)
	if err != nil {
		return nil, err
	}

	return &Encoder{cfg: cfg, codec: codec}, nil
}

// Encode serializes all lanes of h for the given cycle and capture time.
//
// The returned slice is owned by the caller and does not alias h.
func (e *Encoder) Encode(cycle uint64, ts time.Time, h *lane.Handler) ([]byte, error) {
	buf := pool.GetSnapshotBuffer()
	defer pool.PutSnapshotBuffer(buf)

	header := section.NewHeader(cycle, ts, lane.NumLanes)
	header.Flag.Compression = e.cfg.compression
	if e.cfg.bigEndian {
		header.Flag.WithBigEndian()
	}
	engine := header.Flag.GetEndianEngine()

	total := h.TotalBytes()
	if uint64(total) > section.MaxSectionPayload {
		return nil, fmt.Errorf("%w: %d bytes", errs.ErrPayloadTooLarge, total)
	}

	index := make([]byte, 0, lane.NumLanes*section.IndexEntrySize)
	buf.Grow(total)
	h.ForEach(func(i int, p *lane.Payload) {
		entry := section.IndexEntry{Lane: uint16(i), Length: uint32(p.Len())} //nolint:gosec
		index = entry.AppendTo(index, engine)
		_, _ = buf.Write(p.Payload())
	})

	raw := buf.Bytes()
	compressed, err := e.codec.Compress(raw)
	if err != nil {
		return nil, fmt.Errorf("compress lane section: %w", err)
	}

	header.PayloadSize = uint32(len(raw))           //nolint:gosec
	header.CompressedSize = uint32(len(compressed)) //nolint:gosec
	header.Checksum = hash.Checksum32(raw)

	out := make([]byte, 0, section.HeaderSize+len(index)+len(compressed))
	out = header.AppendTo(out)
	out = append(out, index...)
	out = append(out, compressed...)

	e.stats = compress.CompressionStats{
		Algorithm:      e.cfg.compression,
		OriginalSize:   int64(len(raw)),
		CompressedSize: int64(len(compressed)),
	}

	return out, nil
}

// EncodeTo encodes h and writes the snapshot to w.
func (e *Encoder) EncodeTo(w io.Writer, cycle uint64, ts time.Time, h *lane.Handler) (int64, error) {
	data, err := e.Encode(cycle, ts, h)
	if err != nil {
		return 0, err
	}
	n, err := w.Write(data)

	return int64(n), err
}

// Stats returns the compression statistics of the last Encode call.
func (e *Encoder) Stats() compress.CompressionStats {
	return e.stats
}
