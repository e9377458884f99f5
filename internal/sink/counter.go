// Package sink wraps the backup output stream and counts the bytes that reach it.
package sink

import (
	"fmt"
	"io"

	"github.com/arloliu/bakfmt/errs"
)

// Counter is an io.Writer wrapper that accumulates the number of bytes accepted by
// the underlying writer, including bytes accepted by writes that later failed.
//
// Note: Counter is NOT thread-safe.
type Counter struct {
	w     io.Writer
	count int64
}

// NewCounter wraps w.
func NewCounter(w io.Writer) *Counter {
	return &Counter{w: w}
}

// Count returns the total number of bytes written so far.
func (c *Counter) Count() int64 {
	return c.count
}

// Write implements io.Writer. Failures are wrapped with errs.ErrWrite.
func (c *Counter) Write(p []byte) (int, error) {
	return c.WriteRaw(p)
}

// WriteRaw writes p in full. A short write without an error from the underlying
// writer is reported as io.ErrShortWrite.
func (c *Counter) WriteRaw(p []byte) (int, error) {
	n, err := c.w.Write(p)
	if n > 0 {
		c.count += int64(n)
	}

	if err == nil && n < len(p) {
		err = io.ErrShortWrite
	}

	if err != nil {
		return n, fmt.Errorf("%w: %w", errs.ErrWrite, err)
	}

	return n, nil
}

// WriteString writes s in full.
func (c *Counter) WriteString(s string) (int, error) {
	if sw, ok := c.w.(io.StringWriter); ok {
		n, err := sw.WriteString(s)
		if n > 0 {
			c.count += int64(n)
		}

		if err == nil && n < len(s) {
			err = io.ErrShortWrite
		}

		if err != nil {
			return n, fmt.Errorf("%w: %w", errs.ErrWrite, err)
		}

		return n, nil
	}

	return c.WriteRaw([]byte(s))
}

// WriteByte writes a single byte.
func (c *Counter) WriteByte(b byte) error {
	_, err := c.WriteRaw([]byte{b})
	return err
}

// WriteFormatted writes the fmt.Fprintf rendering of format and args.
func (c *Counter) WriteFormatted(format string, args ...any) (int, error) {
	// Fprintf writes through c, so counting and error wrapping already happened.
	return fmt.Fprintf(c, format, args...)
}
