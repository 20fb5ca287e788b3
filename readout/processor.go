package readout

import (
	"log/slog"
	"time"

	"github.com/arloliu/lanedata/alpide"
	"github.com/arloliu/lanedata/internal/options"
	"github.com/arloliu/lanedata/lane"
	"github.com/arloliu/lanedata/snapshot"
)

// Processor buffers and decodes one readout cycle at a time.
//
// Processor is not safe for concurrent use.
type Processor struct {
	handler *lane.Handler
	decoder *alpide.Decoder
	logger  *slog.Logger
	cycle   uint64
}

// NewProcessor creates a Processor starting at cycle 0.
func NewProcessor(opts ...Option) (*Processor, error) {
	cfg := defaultConfig()
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}
	if err := cfg.finish(); err != nil {
		return nil, err
	}

	h, err := lane.NewHandler(lane.WithInitialCapacity(cfg.capacity))
	if err != nil {
		return nil, err
	}

	return &Processor{
		handler: h,
		decoder: cfg.decoder,
		logger:  cfg.logger,
	}, nil
}

// Append buffers data on lane index.
//
// Words for an invalid lane are dropped; the drop is logged and the
// *lane.IndexError is returned. The other lanes are unaffected.
func (p *Processor) Append(index int, data []byte) error {
	if err := p.handler.Append(index, data); err != nil {
		p.logger.Warn("readout: dropping words for invalid lane",
			"lane", index,
			"bytes", len(data),
			"cycle", p.cycle,
		)

		return err
	}

	return nil
}

// AppendByte buffers a single byte on lane index. See Append.
func (p *Processor) AppendByte(index int, word byte) error {
	if err := p.handler.AppendByte(index, word); err != nil {
		p.logger.Warn("readout: dropping word for invalid lane",
			"lane", index,
			"cycle", p.cycle,
		)

		return err
	}

	return nil
}

// Handler returns the lane buffers of the current cycle.
func (p *Processor) Handler() *lane.Handler {
	return p.handler
}

// Cycle returns the current cycle number.
func (p *Processor) Cycle() uint64 {
	return p.cycle
}

// DecodeLane decodes the buffered payload of one lane.
func (p *Processor) DecodeLane(index int) (*alpide.Result, error) {
	view, err := p.handler.LaneView(index)
	if err != nil {
		return nil, err
	}

	res, err := p.decoder.Decode(view)
	if err != nil {
		return nil, &LaneError{Lane: index, Err: err}
	}

	return res, nil
}

// Decode decodes every non-empty lane of the current cycle. Lane buffers are
// left untouched.
func (p *Processor) Decode() *CycleResult {
	res := newCycleResult(p.cycle)
	decodeHandler(p.decoder, p.handler, res)

	for i, err := range res.Errors {
		p.logger.Warn("readout: lane decode failed",
			"lane", i,
			"cycle", p.cycle,
			"error", err,
		)
	}

	p.logger.Debug("readout: cycle decoded",
		"cycle", p.cycle,
		"lanes", len(res.Lanes),
		"hits", res.HitCount(),
		"failed_lanes", len(res.Errors),
	)

	return res
}

// Snapshot encodes the current cycle with enc.
func (p *Processor) Snapshot(enc *snapshot.Encoder, ts time.Time) ([]byte, error) {
	return enc.Encode(p.cycle, ts, p.handler)
}

// Restore loads a recorded cycle, replacing the buffered lanes and the cycle
// number.
func (p *Processor) Restore(snap *snapshot.Snapshot) error {
	if err := snap.Restore(p.handler); err != nil {
		return err
	}
	p.cycle = snap.Cycle()

	return nil
}

// EndCycle clears every lane and advances the cycle number.
func (p *Processor) EndCycle() {
	p.logger.Debug("readout: cycle ended",
		"cycle", p.cycle,
		"bytes", p.handler.TotalBytes(),
	)
	p.handler.Reset()
	p.cycle++
}
