package encoding

import (
	"encoding/base64"
	"fmt"

	"github.com/arloliu/bakfmt/errs"
)

// Base64EncodedLen returns the length of the padded standard base64 encoding of n
// bytes. It fails with errs.ErrEncodedLength when the computation overflows, which
// shows up as an encoded length smaller than the input.
func Base64EncodedLen(n int) (int, error) {
	// base64.StdEncoding.EncodedLen, with wrapping overflow.
	encLen := (n + 2) / 3 * 4
	if encLen < n {
		return 0, fmt.Errorf("%w (%d vs. %d bytes)", errs.ErrEncodedLength, encLen, n)
	}

	return encLen, nil
}

// BlobCapacity returns the staging capacity needed to encode a blob of n bytes.
func BlobCapacity(n int, compact bool) (int, error) {
	if compact {
		return n, nil
	}

	return Base64EncodedLen(n)
}

// AppendBlob appends data to dst, verbatim in compact mode and base64-encoded otherwise.
func AppendBlob(dst []byte, data []byte, compact bool) ([]byte, error) {
	if compact {
		return append(dst, data...), nil
	}

	if _, err := Base64EncodedLen(len(data)); err != nil {
		return dst, err
	}

	return base64.StdEncoding.AppendEncode(dst, data), nil
}
