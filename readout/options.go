package readout

import (
	"fmt"
	"log/slog"
	"runtime"

	"github.com/arloliu/lanedata/alpide"
	"github.com/arloliu/lanedata/errs"
	"github.com/arloliu/lanedata/internal/options"
	"github.com/arloliu/lanedata/internal/pool"
)

type config struct {
	logger   *slog.Logger
	decoder  *alpide.Decoder
	capacity int
	workers  int
}

func defaultConfig() *config {
	return &config{
		capacity: pool.LaneBufferDefaultSize,
		workers:  runtime.GOMAXPROCS(0),
	}
}

// finish fills in the defaults that cannot be built statically.
func (c *config) finish() error {
	if c.logger == nil {
		c.logger = slog.Default()
	}

	if c.decoder == nil {
		d, err := alpide.NewDecoder()
		if err != nil {
			return err
		}
		c.decoder = d
	}

	return nil
}

// Option configures a Processor or DecodeFrames.
type Option = options.Option[*config]

// WithLogger sets the logger used for dropped words and cycle summaries.
// The default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return options.NoError(func(c *config) {
		c.logger = logger
	})
}

// WithDecoder sets the word decoder. The default is a strict alpide.Decoder.
func WithDecoder(d *alpide.Decoder) Option {
	return options.NoError(func(c *config) {
		c.decoder = d
	})
}

// WithInitialCapacity sets the bytes preallocated per lane.
func WithInitialCapacity(n int) Option {
	return options.New(func(c *config) error {
		if n < 0 {
			return fmt.Errorf("%w: %d", errs.ErrInvalidInitialLength, n)
		}
		c.capacity = n

		return nil
	})
}

// WithWorkers sets how many frames DecodeFrames decodes concurrently.
// The default is GOMAXPROCS. Processor ignores it.
func WithWorkers(n int) Option {
	return options.New(func(c *config) error {
		if n <= 0 {
			return fmt.Errorf("%w: %d", errs.ErrInvalidWorkerCount, n)
		}
		c.workers = n

		return nil
	})
}
