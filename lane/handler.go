package lane

import (
	"github.com/arloliu/lanedata/endian"
	"github.com/arloliu/lanedata/internal/hash"
	"github.com/arloliu/lanedata/internal/options"
)

// NumLanes is the number of lanes served by one readout link.
const NumLanes = 28

// Handler owns the Payload buffers of all NumLanes lanes.
//
// The set of lanes is fixed for the handler's lifetime. The zero value is
// usable; NewHandler additionally preallocates lane storage.
type Handler struct {
	lanes [NumLanes]Payload
}

// NewHandler creates a Handler with every lane empty.
//
// Options:
//   - WithInitialCapacity: bytes preallocated per lane
func NewHandler(opts ...HandlerOption) (*Handler, error) {
	cfg := defaultHandlerConfig()
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	h := &Handler{}
	if cfg.initialCapacity > 0 {
		for i := range h.lanes {
			h.lanes[i].reserve(cfg.initialCapacity)
		}
	}

	return h, nil
}

// Reset clears every lane.
func (h *Handler) Reset() {
	for i := range h.lanes {
		h.lanes[i].Reset()
	}
}

// ResetLane clears a single lane.
//
// Returns *IndexError if index is out of range; no lane is touched then.
func (h *Handler) ResetLane(index int) error {
	if err := CheckIndex(index); err != nil {
		return err
	}
	h.lanes[index].Reset()

	return nil
}

// Lane returns the mutable Payload of a lane.
//
// The returned pointer must not be used after the Handler is released, e.g.
// returned to a HandlerPool.
func (h *Handler) Lane(index int) (*Payload, error) {
	if err := CheckIndex(index); err != nil {
		return nil, err
	}

	return &h.lanes[index], nil
}

// At is an alias of Lane.
func (h *Handler) At(index int) (*Payload, error) {
	return h.Lane(index)
}

// LaneView returns the read-only view of a lane's payload.
// See Payload.Payload for the view's lifetime.
func (h *Handler) LaneView(index int) ([]byte, error) {
	if err := CheckIndex(index); err != nil {
		return nil, err
	}

	return h.lanes[index].Payload(), nil
}

// Append appends data to a lane.
func (h *Handler) Append(index int, data []byte) error {
	if err := CheckIndex(index); err != nil {
		return err
	}
	h.lanes[index].Append(data)

	return nil
}

// AppendByte appends a single byte to a lane.
func (h *Handler) AppendByte(index int, word byte) error {
	if err := CheckIndex(index); err != nil {
		return err
	}
	h.lanes[index].AppendByte(word)

	return nil
}

// NonEmpty returns the indices of lanes holding data, in ascending order.
func (h *Handler) NonEmpty() []int {
	var out []int
	for i := range h.lanes {
		if !h.lanes[i].IsEmpty() {
			out = append(out, i)
		}
	}

	return out
}

// TotalBytes returns the number of bytes buffered across all lanes.
func (h *Handler) TotalBytes() int {
	total := 0
	for i := range h.lanes {
		total += h.lanes[i].Len()
	}

	return total
}

// Capacity returns the memory retained by all lane buffers, which Reset keeps.
func (h *Handler) Capacity() int {
	total := 0
	for i := range h.lanes {
		total += h.lanes[i].Cap()
	}

	return total
}

// ForEach calls fn for every lane in index order.
func (h *Handler) ForEach(fn func(index int, p *Payload)) {
	for i := range h.lanes {
		fn(i, &h.lanes[i])
	}
}

// Checksum returns an xxHash64 over all lanes in index order. Each lane is
// prefixed with its length so that moving bytes between lanes changes the sum.
func (h *Handler) Checksum() uint64 {
	engine := endian.GetLittleEndianEngine()
	d := hash.NewDigest()
	var lenBuf [4]byte
	for i := range h.lanes {
		engine.PutUint32(lenBuf[:], uint32(h.lanes[i].Len())) //nolint:gosec
		d.Write(lenBuf[:])
		d.Write(h.lanes[i].Payload())
	}

	return d.Sum64()
}
