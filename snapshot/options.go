package snapshot

import (
	"fmt"

	"github.com/arloliu/lanedata/endian"
	"github.com/arloliu/lanedata/errs"
	"github.com/arloliu/lanedata/format"
	"github.com/arloliu/lanedata/internal/options"
)

type encoderConfig struct {
	compression format.CompressionType
	bigEndian   bool
}

func defaultEncoderConfig() *encoderConfig {
	return &encoderConfig{compression: format.CompressionZstd}
}

// EncoderOption configures an Encoder.
type EncoderOption = options.Option[*encoderConfig]

// WithCompression sets the compression applied to the payload section.
// The default is Zstd.
func WithCompression(c format.CompressionType) EncoderOption {
	return options.New(func(cfg *encoderConfig) error {
		if !c.IsValid() {
			return fmt.Errorf("%w: %s", errs.ErrInvalidCompression, c)
		}
		cfg.compression = c

		return nil
	})
}

// WithLittleEndian stores multi-byte fields in little-endian order (default).
func WithLittleEndian() EncoderOption {
	return options.NoError(func(cfg *encoderConfig) {
		cfg.bigEndian = false
	})
}

// WithBigEndian stores multi-byte fields in big-endian order.
func WithBigEndian() EncoderOption {
	return options.NoError(func(cfg *encoderConfig) {
		cfg.bigEndian = true
	})
}

// WithNativeEndian stores multi-byte fields in the host byte order, so that
// readers on the same machine decode without byte swapping.
func WithNativeEndian() EncoderOption {
	return options.NoError(func(cfg *encoderConfig) {
		cfg.bigEndian = !endian.IsNativeLittleEndian()
	})
}
