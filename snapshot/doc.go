// Package snapshot persists the lane payloads of one readout cycle.
//
// A snapshot is a self-describing byte slice: a fixed header carrying the
// cycle number, capture time and checksum, one index entry per lane, and the
// concatenated lane payloads compressed as a single section. See package
// section for the exact layout.
//
// Encoding:
//
//	enc, err := snapshot.NewEncoder(snapshot.WithCompression(format.CompressionS2))
//	if err != nil {
//	    return err
//	}
//	data, err := enc.Encode(cycle, time.Now(), handler)
//
// Decoding:
//
//	snap, err := snapshot.Decode(data)
//	if err != nil {
//	    return err
//	}
//	words, err := snap.Lane(3)
//
// A decoded Snapshot can be loaded back into a lane.Handler with Restore,
// which is how a recorded cycle is replayed through the decoder.
package snapshot
