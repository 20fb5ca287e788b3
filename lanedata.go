// Package lanedata buffers, decodes and records the byte streams of a
// 28-lane pixel detector readout.
//
// Each lane carries a stream of ALPIDE data words. Words are appended to a
// per-lane payload buffer as they arrive, decoded into pixel hits at the end
// of a readout cycle, and optionally persisted as a compressed snapshot.
//
// # Core Features
//
//   - Fixed set of 28 lane buffers with bounds-checked access
//   - ALPIDE word decoding into column/row pixel hits
//   - Compressed cycle snapshots (None, Zstd, S2, LZ4) with xxHash64 checksums
//   - Concurrent decoding of recorded frames
//
// # Basic Usage
//
// Buffering and decoding one cycle:
//
//	import "github.com/arloliu/lanedata"
//
//	proc, _ := lanedata.NewProcessor()
//	_ = proc.Append(3, words)
//	res := proc.Decode()
//	for _, h := range res.Hits() {
//	    fmt.Println(h) // Col: 12, Row: 40
//	}
//
// Recording the cycle:
//
//	enc, _ := lanedata.NewSnapshotEncoder()
//	data, _ := proc.Snapshot(enc, time.Now())
//	proc.EndCycle()
//
//	snap, _ := lanedata.DecodeSnapshot(data)
//	words, _ := snap.Lane(3)
//
// # Package Structure
//
// This package provides convenient top-level wrappers around the lane,
// readout and snapshot packages. For fine-grained control use those packages
// directly.
package lanedata

import (
	"github.com/arloliu/lanedata/alpide"
	"github.com/arloliu/lanedata/format"
	"github.com/arloliu/lanedata/lane"
	"github.com/arloliu/lanedata/readout"
	"github.com/arloliu/lanedata/snapshot"
)

// NumLanes is the number of lanes in a readout.
const NumLanes = lane.NumLanes

var defaultSnapshotOptions = []snapshot.EncoderOption{
	snapshot.WithLittleEndian(),
	snapshot.WithCompression(format.CompressionZstd),
}

// NewHandler creates an empty set of lane buffers.
func NewHandler(opts ...lane.HandlerOption) (*lane.Handler, error) {
	return lane.NewHandler(opts...)
}

// NewProcessor creates a cycle processor with a strict ALPIDE decoder.
func NewProcessor(opts ...readout.Option) (*readout.Processor, error) {
	return readout.NewProcessor(opts...)
}

// NewLenientProcessor creates a cycle processor that skips unknown words
// instead of failing the lane.
func NewLenientProcessor(opts ...readout.Option) (*readout.Processor, error) {
	d, err := alpide.NewDecoder(alpide.WithStrict(false))
	if err != nil {
		return nil, err
	}

	return readout.NewProcessor(append([]readout.Option{readout.WithDecoder(d)}, opts...)...)
}

// NewSnapshotEncoder creates a snapshot encoder with little-endian layout
// and Zstd compression. opts override the defaults.
func NewSnapshotEncoder(opts ...snapshot.EncoderOption) (*snapshot.Encoder, error) {
	return snapshot.NewEncoder(append(defaultSnapshotOptions[:len(defaultSnapshotOptions):len(defaultSnapshotOptions)], opts...)...)
}

// DecodeSnapshot parses and verifies a snapshot.
func DecodeSnapshot(data []byte) (*snapshot.Snapshot, error) {
	return snapshot.Decode(data)
}

// IsSnapshot reports whether data starts with a valid snapshot header.
func IsSnapshot(data []byte) bool {
	return snapshot.IsSnapshot(data)
}
