package lane

import (
	"fmt"
	"io"
	"strings"

	"github.com/arloliu/lanedata/internal/hash"
	"github.com/arloliu/lanedata/internal/pool"
)

// WordClassifier names the word type a payload byte starts.
//
// It is used only for debug rendering. alpide.ClassifyName satisfies it.
type WordClassifier func(word byte) string

// Payload accumulates the raw bytes of one lane for the current cycle.
//
// Bytes are only ever appended or cleared as a whole. The zero value is an
// empty payload ready for use.
type Payload struct {
	buf pool.ByteBuffer
}

var (
	_ io.Writer     = (*Payload)(nil)
	_ io.ByteWriter = (*Payload)(nil)
	_ io.WriterTo   = (*Payload)(nil)
)

// Reset discards all buffered bytes. The allocated capacity is kept.
func (p *Payload) Reset() {
	p.buf.Reset()
}

// Append appends data in order. data is neither retained nor modified.
func (p *Payload) Append(data []byte) {
	_, _ = p.buf.Write(data)
}

// AppendByte appends a single byte.
func (p *Payload) AppendByte(word byte) {
	_ = p.buf.WriteByte(word)
}

// Write implements io.Writer. It always consumes all of data.
func (p *Payload) Write(data []byte) (int, error) {
	return p.buf.Write(data)
}

// WriteByte implements io.ByteWriter. It never fails.
func (p *Payload) WriteByte(word byte) error {
	return p.buf.WriteByte(word)
}

// Payload returns a read-only view of the buffered bytes.
//
// The view aliases internal storage and is valid until the next mutating call
// on p. Callers must not modify it.
func (p *Payload) Payload() []byte {
	return p.buf.Bytes()
}

// Bytes is an alias of Payload.
func (p *Payload) Bytes() []byte {
	return p.buf.Bytes()
}

// Clone returns a copy of the buffered bytes owned by the caller.
func (p *Payload) Clone() []byte {
	if p.buf.Len() == 0 {
		return []byte{}
	}

	out := make([]byte, p.buf.Len())
	copy(out, p.buf.Bytes())

	return out
}

// Len returns the number of buffered bytes.
func (p *Payload) Len() int {
	return p.buf.Len()
}

// Cap returns the number of bytes the buffer can hold without growing.
func (p *Payload) Cap() int {
	return p.buf.Cap()
}

// IsEmpty reports whether no bytes are buffered.
func (p *Payload) IsEmpty() bool {
	return p.buf.Len() == 0
}

// Checksum returns the xxHash64 of the buffered bytes.
func (p *Payload) Checksum() uint64 {
	return hash.Checksum(p.buf.Bytes())
}

// WriteTo writes the buffered bytes to w.
func (p *Payload) WriteTo(w io.Writer) (int64, error) {
	return p.buf.WriteTo(w)
}

// Print writes a human-readable dump of the payload to w, one byte per line.
// When classify is non-nil each byte is annotated with its word type.
func (p *Payload) Print(w io.Writer, classify WordClassifier) error {
	data := p.buf.Bytes()
	if _, err := fmt.Fprintf(w, "Payload: %d bytes\n", len(data)); err != nil {
		return err
	}

	for i, word := range data {
		var err error
		if classify != nil {
			_, err = fmt.Fprintf(w, "  [%d] 0x%02X %s\n", i, word, classify(word))
		} else {
			_, err = fmt.Fprintf(w, "  [%d] 0x%02X\n", i, word)
		}
		if err != nil {
			return err
		}
	}

	return nil
}

// String renders the payload without word annotations.
func (p *Payload) String() string {
	var sb strings.Builder
	_ = p.Print(&sb, nil)

	return sb.String()
}

func (p *Payload) reserve(n int) {
	p.buf.Grow(n)
}
