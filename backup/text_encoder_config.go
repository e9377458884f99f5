package backup

import (
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/arloliu/bakfmt/encoding"
	"github.com/arloliu/bakfmt/internal/options"
)

// TextEncoderConfig holds the settings shared by every entity a TextEncoder writes.
type TextEncoderConfig struct {
	compact    bool
	logger     *zap.Logger
	now        func() time.Time
	escapeName func(string) string
}

// NewTextEncoderConfig creates a configuration with the defaults: base64 blobs,
// a no-op logger, the wall clock, and encoding.EscapeName for names.
func NewTextEncoderConfig() *TextEncoderConfig {
	return &TextEncoderConfig{
		compact:    false,
		logger:     zap.NewNop(),
		now:        time.Now,
		escapeName: encoding.EscapeName,
	}
}

// Compact reports whether blobs are written raw instead of base64-encoded.
func (c *TextEncoderConfig) Compact() bool {
	return c.compact
}

// Logger returns the configured logger.
func (c *TextEncoderConfig) Logger() *zap.Logger {
	return c.logger
}

// TextEncoderOption is a functional option for configuring TextEncoder.
type TextEncoderOption = options.Option[*TextEncoderConfig]

// WithCompact selects compact mode, which writes blob payloads as raw bytes instead
// of base64 text. The mode must stay the same for a whole backup file.
// Default is false.
func WithCompact(compact bool) TextEncoderOption {
	return options.NoError(func(c *TextEncoderConfig) {
		c.compact = compact
	})
}

// WithLogger sets the logger used to report failed encodes and record metadata.
// Default is zap.NewNop().
func WithLogger(logger *zap.Logger) TextEncoderOption {
	return options.New(func(c *TextEncoderConfig) error {
		if logger == nil {
			return errors.New("logger must not be nil")
		}
		c.logger = logger

		return nil
	})
}

// WithClock sets the clock used to resolve record TTLs. Default is time.Now.
func WithClock(now func() time.Time) TextEncoderOption {
	return options.New(func(c *TextEncoderConfig) error {
		if now == nil {
			return errors.New("clock must not be nil")
		}
		c.now = now

		return nil
	})
}

// WithNameEscaper replaces the escaper applied to namespace, set, UDF, index and
// path names. Default is encoding.EscapeName.
func WithNameEscaper(escape func(string) string) TextEncoderOption {
	return options.New(func(c *TextEncoderConfig) error {
		if escape == nil {
			return errors.New("name escaper must not be nil")
		}
		c.escapeName = escape

		return nil
	})
}
