package lane

import (
	"fmt"

	"github.com/arloliu/lanedata/errs"
	"github.com/arloliu/lanedata/internal/options"
	"github.com/arloliu/lanedata/internal/pool"
)

type handlerConfig struct {
	initialCapacity int
}

func defaultHandlerConfig() *handlerConfig {
	return &handlerConfig{initialCapacity: pool.LaneBufferDefaultSize}
}

// HandlerOption configures a Handler.
type HandlerOption = options.Option[*handlerConfig]

// WithInitialCapacity sets the number of bytes preallocated for each lane.
// Zero disables preallocation.
func WithInitialCapacity(n int) HandlerOption {
	return options.New(func(c *handlerConfig) error {
		if n < 0 {
			return fmt.Errorf("%w: %d", errs.ErrInvalidInitialLength, n)
		}
		c.initialCapacity = n

		return nil
	})
}
