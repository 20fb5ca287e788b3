// Package errs defines the sentinel errors shared by the lanedata packages.
//
// Callers should match errors with errors.Is, since most of them are returned
// wrapped with additional context.
package errs

import "errors"

// Lane access errors.
var (
	// ErrLaneIndexOutOfRange is matched by every lane.IndexError.
	ErrLaneIndexOutOfRange = errors.New("lane index out of range")
)

// Word decoding errors.
var (
	ErrTruncatedWord    = errors.New("truncated word")
	ErrUnexpectedWord   = errors.New("unexpected word")
	ErrUnknownWord      = errors.New("unknown word")
	ErrUnterminatedChip = errors.New("chip frame not terminated")
)

// Snapshot format errors.
var (
	ErrInvalidHeaderSize    = errors.New("invalid header size")
	ErrInvalidMagicNumber   = errors.New("invalid magic number")
	ErrInvalidHeaderFlags   = errors.New("invalid header flags")
	ErrInvalidLaneCount     = errors.New("invalid lane count")
	ErrInvalidIndexSize     = errors.New("invalid index section size")
	ErrPayloadSizeMismatch  = errors.New("payload size mismatch")
	ErrChecksumMismatch     = errors.New("payload checksum mismatch")
	ErrInvalidCompression   = errors.New("invalid compression type")
	ErrPayloadTooLarge      = errors.New("payload too large")
	ErrInvalidWorkerCount   = errors.New("invalid worker count")
	ErrInvalidInitialLength = errors.New("invalid initial capacity")
)
