package section

import (
	"github.com/arloliu/lanedata/endian"
	"github.com/arloliu/lanedata/errs"
)

// IndexEntry describes one lane's payload inside the payload section.
type IndexEntry struct {
	// Lane is the lane index.
	//
	// Offset: 0, Size: 2 bytes
	Lane uint16

	// Length is the lane payload length in bytes.
	//
	// Offset: 4, Size: 4 bytes
	Length uint32

	// Offset is the absolute offset of the lane inside the uncompressed
	// payload section. It is not stored on disk; ParseIndex reconstructs it
	// from the running sum of Length.
	Offset int
}

// AppendTo appends the serialized entry to dst.
func (e *IndexEntry) AppendTo(dst []byte, engine endian.EndianEngine) []byte {
	dst = engine.AppendUint16(dst, e.Lane)
	dst = engine.AppendUint16(dst, IndexFlagsUnused)

	return engine.AppendUint32(dst, e.Length)
}

// ParseIndexEntry parses an IndexEntry from the start of data.
// Offset is left at zero.
func ParseIndexEntry(data []byte, engine endian.EndianEngine) (IndexEntry, error) {
	if len(data) < IndexEntrySize {
		return IndexEntry{}, errs.ErrInvalidIndexSize
	}

	return IndexEntry{
		Lane:   engine.Uint16(data[0:2]),
		Length: engine.Uint32(data[4:8]),
	}, nil
}

// ParseIndex parses count consecutive entries and fills in their offsets.
//
// Returns:
//   - []IndexEntry: entries with absolute offsets
//   - int: sum of all lengths
//   - error: ErrInvalidIndexSize if data is too short
func ParseIndex(data []byte, count int, engine endian.EndianEngine) ([]IndexEntry, int, error) {
	if len(data) < count*IndexEntrySize {
		return nil, 0, errs.ErrInvalidIndexSize
	}

	entries := make([]IndexEntry, count)
	offset := 0
	for i := range count {
		e, err := ParseIndexEntry(data[i*IndexEntrySize:], engine)
		if err != nil {
			return nil, 0, err
		}
		e.Offset = offset
		offset += int(e.Length)
		entries[i] = e
	}

	return entries, offset, nil
}
