package lane

import (
	"fmt"

	"github.com/arloliu/lanedata/errs"
)

// IndexError reports an access to a lane outside [0, NumLanes).
//
// It is recoverable: a decoder typically drops the sub-frame routed to the
// invalid lane and keeps going.
type IndexError struct {
	// Index is the requested lane index.
	Index int
	// Max is the largest valid lane index.
	Max int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("invalid lane %d, max %d", e.Index, e.Max)
}

// Is makes errors.Is(err, errs.ErrLaneIndexOutOfRange) true for any IndexError.
func (e *IndexError) Is(target error) bool {
	return target == errs.ErrLaneIndexOutOfRange
}

// CheckIndex returns an *IndexError when index is not a valid lane index.
func CheckIndex(index int) error {
	if index < 0 || index >= NumLanes {
		return &IndexError{Index: index, Max: NumLanes - 1}
	}

	return nil
}
