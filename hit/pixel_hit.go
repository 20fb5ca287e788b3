// Package hit defines the decoded pixel hit and its ordering.
package hit

import (
	"cmp"
	"fmt"
	"slices"
)

// PixelHit is a single fired pixel identified by column and row.
type PixelHit struct {
	Column uint16
	Row    uint16
}

// Equal reports whether h and other are in the same column.
//
// The row is not compared. Decoded hits have always been matched this way,
// so Equal(PixelHit{5, 1}, PixelHit{5, 9}) is true; use Compare for an exact
// match.
func (h PixelHit) Equal(other PixelHit) bool {
	return h.Column == other.Column
}

// Less orders hits by column, then by row.
func (h PixelHit) Less(other PixelHit) bool {
	return Compare(h, other) < 0
}

func (h PixelHit) String() string {
	return fmt.Sprintf("Col: %d, Row: %d", h.Column, h.Row)
}

// Compare orders hits by column, then by row. It is suitable for slices.SortFunc.
func Compare(a, b PixelHit) int {
	if c := cmp.Compare(a.Column, b.Column); c != 0 {
		return c
	}

	return cmp.Compare(a.Row, b.Row)
}

// Sort sorts hits in place by column, then row.
func Sort(hits []PixelHit) {
	slices.SortFunc(hits, Compare)
}

// Dedup sorts hits and removes exact duplicates (same column and row).
// The input slice is reused for the result.
func Dedup(hits []PixelHit) []PixelHit {
	Sort(hits)

	return slices.CompactFunc(hits, func(a, b PixelHit) bool {
		return Compare(a, b) == 0
	})
}

// Box is the inclusive bounding rectangle of a set of hits.
type Box struct {
	MinColumn, MaxColumn uint16
	MinRow, MaxRow       uint16
}

// Bounds returns the bounding box of hits; ok is false for an empty slice.
func Bounds(hits []PixelHit) (box Box, ok bool) {
	if len(hits) == 0 {
		return Box{}, false
	}

	box = Box{
		MinColumn: hits[0].Column, MaxColumn: hits[0].Column,
		MinRow: hits[0].Row, MaxRow: hits[0].Row,
	}
	for _, h := range hits[1:] {
		box.MinColumn = min(box.MinColumn, h.Column)
		box.MaxColumn = max(box.MaxColumn, h.Column)
		box.MinRow = min(box.MinRow, h.Row)
		box.MaxRow = max(box.MaxRow, h.Row)
	}

	return box, true
}
