package lane

import "sync"

// HandlerPool recycles Handlers between readout frames.
//
// Each concurrent decoder takes its own Handler with Get and returns it with
// Put once the frame is processed. Handlers returned by Get are always empty.
type HandlerPool struct {
	pool     sync.Pool
	maxBytes int
}

// NewHandlerPool creates a pool whose handlers are built with opts.
//
// Handlers whose lane buffers have grown past maxBytes of capacity are
// dropped on Put instead of retained; maxBytes <= 0 disables the limit. The options are
// validated once here.
func NewHandlerPool(maxBytes int, opts ...HandlerOption) (*HandlerPool, error) {
	if _, err := NewHandler(opts...); err != nil {
		return nil, err
	}

	hp := &HandlerPool{maxBytes: maxBytes}
	hp.pool.New = func() any {
		h, _ := NewHandler(opts...)
		return h
	}

	return hp, nil
}

// Get returns an empty Handler.
func (hp *HandlerPool) Get() *Handler {
	h, _ := hp.pool.Get().(*Handler)
	return h
}

// Put resets h and returns it to the pool.
func (hp *HandlerPool) Put(h *Handler) {
	if h == nil {
		return
	}

	if hp.maxBytes > 0 && h.Capacity() > hp.maxBytes {
		return
	}

	h.Reset()
	hp.pool.Put(h)
}
