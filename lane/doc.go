// Package lane buffers the raw byte streams of a multi-lane readout link for
// one processing cycle.
//
// A Handler owns exactly NumLanes Payload buffers. A decoder selects a lane
// by index and appends bytes to it; a consumer later reads each lane's
// payload and resets the handler at the cycle boundary:
//
//	h, _ := lane.NewHandler()
//	if err := h.Append(3, []byte{0xA0, 0x01}); err != nil {
//	    var idxErr *lane.IndexError
//	    if errors.As(err, &idxErr) {
//	        // skip the sub-frame routed to lane idxErr.Index
//	    }
//	}
//	view, _ := h.LaneView(3)
//	h.Reset()
//
// Every index is validated; invalid indices produce an *IndexError, which
// also matches errs.ErrLaneIndexOutOfRange. Appends and resets never fail.
//
// # Views
//
// Payload.Payload and Handler.LaneView return slices that alias the buffer's
// storage. A view is valid until the next append or reset on the same lane.
// Use Payload.Clone for a copy that outlives the cycle.
//
// # Thread Safety
//
// Handler and Payload are not safe for concurrent mutation. Parallel decoders
// should each take their own Handler, for example from a HandlerPool.
package lane
