// Package errs defines the sentinel errors returned by bakfmt encoders.
//
// Errors returned by the encoders wrap one of these sentinels with additional
// context, so callers should compare with errors.Is:
//
//	if _, err := enc.EncodeRecord(rec, filter); errors.Is(err, errs.ErrWrite) {
//	    // the sink is broken, abort the backup
//	}
package errs

import "errors"

// Sink errors.
var (
	// ErrWrite is returned when the underlying sink refuses bytes.
	ErrWrite = errors.New("error while writing to backup file")
)

// Invalid enum errors.
var (
	ErrInvalidBytesType = errors.New("invalid bytes type")
	ErrInvalidUDFType   = errors.New("invalid UDF type")
	ErrInvalidIndexType = errors.New("invalid index type")
	ErrInvalidPathType  = errors.New("invalid path type")
	ErrInvalidValueKind = errors.New("invalid value type")
	ErrInvalidKeyKind   = errors.New("invalid key type")
)

// Invalid structure errors.
var (
	ErrUnexpectedList = errors.New("unexpected value of type list")
	ErrUnexpectedMap  = errors.New("unexpected value of type map")
	ErrEncodedLength  = errors.New("encoded data too long")
)

// Argument errors.
var (
	ErrNilRecord    = errors.New("record is nil")
	ErrNilUDFFile   = errors.New("UDF file is nil")
	ErrNilIndex     = errors.New("secondary index is nil")
	ErrNilBinFilter = errors.New("bin filter is nil")
	ErrNilWriter    = errors.New("writer is nil")
)
