package table

import (
	"fmt"

	"github.com/arloliu/mathfn/errs"
	"github.com/arloliu/mathfn/format"
	"github.com/arloliu/mathfn/internal/options"
)

// EncodeConfig holds the settings used by Table.Encode.
type EncodeConfig struct {
	Compression format.CompressionType
	BigEndian   bool
}

// EncodeOption is a functional option for EncodeConfig.
type EncodeOption = options.Option[*EncodeConfig]

// defaultEncodeConfig returns the default config (little-endian, no compression).
func defaultEncodeConfig() EncodeConfig {
	return EncodeConfig{
		Compression: format.CompressionNone,
		BigEndian:   false,
	}
}

// WithCompression sets the payload codec.
func WithCompression(c format.CompressionType) EncodeOption {
	return options.New(func(cfg *EncodeConfig) error {
		if !c.Valid() {
			return fmt.Errorf("%w: 0x%02x", errs.ErrInvalidCompression, uint8(c))
		}
		cfg.Compression = c

		return nil
	})
}

// WithBigEndian writes numeric fields in big-endian byte order.
func WithBigEndian() EncodeOption {
	return options.NoError(func(cfg *EncodeConfig) {
		cfg.BigEndian = true
	})
}
