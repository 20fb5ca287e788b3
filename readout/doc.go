// Package readout drives lane buffering and ALPIDE decoding for a detector
// readout.
//
// Processor handles a live stream one cycle at a time: words are appended to
// their lane as they arrive, the cycle is decoded and optionally snapshotted,
// and EndCycle clears the lanes for the next one.
//
//	proc, err := readout.NewProcessor(readout.WithLogger(logger))
//	if err != nil {
//	    return err
//	}
//	for chunk := range chunks {
//	    _ = proc.Append(chunk.Lane, chunk.Data) // invalid lanes are logged and skipped
//	}
//	res := proc.Decode()
//	proc.EndCycle()
//
// DecodeFrames handles recorded frames in bulk, decoding independent frames
// on a bounded set of goroutines.
//
// A decode failure on one lane never affects the other lanes of the cycle;
// failures are collected per lane in CycleResult.Errors.
package readout
