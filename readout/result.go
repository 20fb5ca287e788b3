package readout

import (
	"errors"
	"maps"
	"slices"

	"github.com/arloliu/lanedata/alpide"
	"github.com/arloliu/lanedata/hit"
	"github.com/arloliu/lanedata/lane"
)

// CycleResult holds the decoded hits of one readout cycle.
type CycleResult struct {
	Cycle uint64
	// Lanes maps each successfully decoded non-empty lane to its result.
	Lanes map[int]*alpide.Result
	// Errors maps lanes that failed to the failure. Keys may lie outside
	// [0, lane.NumLanes) when words addressed an invalid lane.
	Errors map[int]error
}

func newCycleResult(cycle uint64) *CycleResult {
	return &CycleResult{
		Cycle:  cycle,
		Lanes:  make(map[int]*alpide.Result),
		Errors: make(map[int]error),
	}
}

// Hits returns the hits of all decoded lanes sorted by column, then row.
func (r *CycleResult) Hits() []hit.PixelHit {
	var out []hit.PixelHit
	for _, i := range slices.Sorted(maps.Keys(r.Lanes)) {
		out = append(out, r.Lanes[i].Hits()...)
	}
	hit.Sort(out)

	return out
}

// HitCount returns the number of hits across all decoded lanes.
func (r *CycleResult) HitCount() int {
	n := 0
	for _, res := range r.Lanes {
		for i := range res.Chips {
			n += len(res.Chips[i].Hits)
		}
	}

	return n
}

// Err joins the per-lane errors in lane order, or returns nil.
func (r *CycleResult) Err() error {
	if len(r.Errors) == 0 {
		return nil
	}

	errList := make([]error, 0, len(r.Errors))
	for _, i := range slices.Sorted(maps.Keys(r.Errors)) {
		errList = append(errList, r.Errors[i])
	}

	return errors.Join(errList...)
}

// decodeHandler decodes every non-empty lane of h into res.
func decodeHandler(d *alpide.Decoder, h *lane.Handler, res *CycleResult) {
	h.ForEach(func(i int, p *lane.Payload) {
		if p.IsEmpty() {
			return
		}
		out, err := d.Decode(p.Payload())
		if err != nil {
			res.Errors[i] = &LaneError{Lane: i, Err: err}
			return
		}
		res.Lanes[i] = out
	})
}
