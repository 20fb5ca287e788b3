package alpide

import (
	"fmt"

	"github.com/arloliu/lanedata/errs"
	"github.com/arloliu/lanedata/hit"
	"github.com/arloliu/lanedata/internal/options"
)

// ChipHits holds the hits of one chip frame.
type ChipHits struct {
	ChipID       uint8
	BunchCounter uint8
	ReadoutFlags uint8
	// Empty is set for frames reported with CHIP_EMPTY_FRAME.
	Empty bool
	Hits  []hit.PixelHit
}

// Result is the outcome of decoding one lane payload.
type Result struct {
	Chips []ChipHits
	// Skipped counts unknown words ignored in lenient mode.
	Skipped int
}

// Hits returns the hits of all chips in stream order.
func (r *Result) Hits() []hit.PixelHit {
	n := 0
	for i := range r.Chips {
		n += len(r.Chips[i].Hits)
	}

	out := make([]hit.PixelHit, 0, n)
	for i := range r.Chips {
		out = append(out, r.Chips[i].Hits...)
	}

	return out
}

type decoderConfig struct {
	strict bool
}

// DecoderOption configures a Decoder.
type DecoderOption = options.Option[*decoderConfig]

// WithStrict selects whether unknown words fail the decode (true, the
// default) or are skipped and counted in Result.Skipped.
func WithStrict(strict bool) DecoderOption {
	return options.NoError(func(c *decoderConfig) {
		c.strict = strict
	})
}

// Decoder turns lane payloads into pixel hits.
//
// A Decoder holds no per-payload state and is safe for concurrent use.
type Decoder struct {
	strict bool
}

// NewDecoder creates a Decoder.
func NewDecoder(opts ...DecoderOption) (*Decoder, error) {
	cfg := &decoderConfig{strict: true}
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	return &Decoder{strict: cfg.strict}, nil
}

// Decode decodes a complete lane payload. payload is not modified.
//
// Returns:
//   - *Result: chips in stream order
//   - error: ErrTruncatedWord, ErrUnexpectedWord, ErrUnterminatedChip or
//     (strict mode) ErrUnknownWord, wrapped with the byte offset
func (d *Decoder) Decode(payload []byte) (*Result, error) {
	res := &Result{}

	var (
		chip      *ChipHits
		region    uint8
		hasRegion bool
	)

	for off := 0; off < len(payload); {
		b := payload[off]
		wt := Classify(b)
		size := wt.Size()
		if off+size > len(payload) {
			return nil, fmt.Errorf("%w: %s at offset %d", errs.ErrTruncatedWord, wt, off)
		}

		switch wt {
		case WordIdle, WordBusyOn, WordBusyOff:
			// padding and flow control carry no pixel data
		case WordChipHeader, WordChipEmptyFrame:
			if chip != nil {
				return nil, unexpected(wt, off)
			}
			c := ChipHits{
				ChipID:       b & lowNibble,
				BunchCounter: payload[off+1],
				Empty:        wt == WordChipEmptyFrame,
			}
			if c.Empty {
				res.Chips = append(res.Chips, c)
			} else {
				chip = &c
				hasRegion = false
			}
		case WordChipTrailer:
			if chip == nil {
				return nil, unexpected(wt, off)
			}
			chip.ReadoutFlags = b & lowNibble
			res.Chips = append(res.Chips, *chip)
			chip = nil
		case WordRegionHeader:
			if chip == nil {
				return nil, unexpected(wt, off)
			}
			region = b & regionIDMask
			hasRegion = true
		case WordDataShort, WordDataLong:
			if chip == nil || !hasRegion {
				return nil, unexpected(wt, off)
			}
			encoder := (b >> 2) & lowNibble
			address := uint16(b&0x3)<<8 | uint16(payload[off+1])
			chip.Hits = append(chip.Hits, pixel(region, encoder, address))
			if wt == WordDataLong {
				hitMap := payload[off+2] & hitMapMask
				for k := range hitMapWidth {
					if hitMap&(1<<k) == 0 {
						continue
					}
					next := address + uint16(k) + 1
					if next > maxPixelAddress {
						break
					}
					chip.Hits = append(chip.Hits, pixel(region, encoder, next))
				}
			}
		default:
			if d.strict {
				return nil, fmt.Errorf("%w: 0x%02X at offset %d", errs.ErrUnknownWord, b, off)
			}
			res.Skipped++
		}

		off += size
	}

	if chip != nil {
		return nil, fmt.Errorf("%w: chip %d", errs.ErrUnterminatedChip, chip.ChipID)
	}

	return res, nil
}

func unexpected(wt WordType, off int) error {
	return fmt.Errorf("%w: %s at offset %d", errs.ErrUnexpectedWord, wt, off)
}

func pixel(region, encoder uint8, address uint16) hit.PixelHit {
	row := address >> 1
	column := uint16(region)*columnsPerRegion + uint16(encoder)*columnsPerEncoder + ((address & 1) ^ (row & 1))

	return hit.PixelHit{Column: column, Row: row}
}
