package readout

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/arloliu/lanedata/internal/options"
	"github.com/arloliu/lanedata/internal/pool"
	"github.com/arloliu/lanedata/lane"
)

// Chunk is a run of words received on one lane.
type Chunk struct {
	Lane int
	Data []byte
}

// Frame is one recorded readout cycle.
type Frame struct {
	Cycle  uint64
	Chunks []Chunk
}

// DecodeFrames decodes independent frames concurrently.
//
// Results are returned in frame order. Per-lane failures, including chunks
// addressed to an invalid lane, are reported in each CycleResult and do not
// stop the run. The returned error is non-nil only when ctx is cancelled or
// the options are invalid; frames not reached by then have a nil result.
func DecodeFrames(ctx context.Context, frames []Frame, opts ...Option) ([]*CycleResult, error) {
	cfg := defaultConfig()
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}
	if err := cfg.finish(); err != nil {
		return nil, err
	}

	handlers, err := lane.NewHandlerPool(pool.SnapshotBufferMaxThreshold, lane.WithInitialCapacity(cfg.capacity))
	if err != nil {
		return nil, err
	}

	results := make([]*CycleResult, len(frames))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.workers)

	for i := range frames {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			frame := &frames[i]
			h := handlers.Get()
			defer handlers.Put(h)

			res := newCycleResult(frame.Cycle)
			for _, c := range frame.Chunks {
				if err := h.Append(c.Lane, c.Data); err != nil {
					cfg.logger.Warn("readout: dropping chunk for invalid lane",
						"lane", c.Lane,
						"bytes", len(c.Data),
						"cycle", frame.Cycle,
					)
					res.Errors[c.Lane] = err
				}
			}
			decodeHandler(cfg.decoder, h, res)
			results[i] = res

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return results, err
	}

	return results, nil
}
