package readout

import "fmt"

// LaneError reports a decode failure on a single lane.
type LaneError struct {
	Lane int
	Err  error
}

func (e *LaneError) Error() string {
	return fmt.Sprintf("lane %d: %v", e.Lane, e.Err)
}

func (e *LaneError) Unwrap() error {
	return e.Err
}
