// Package bakfmt encodes database records, UDF modules and secondary index
// definitions into a line-oriented text format used for full database backups.
//
// Every entity becomes one line. Record lines carry one comma-separated field per
// requested bin, in the order the bins were requested:
//
//	42,1.5,"hello \"world\"",AP9hCg==
//
// A user key, if the record has one, is written in front of the first field without
// a separator, so the comma count of a line depends only on the number of bins.
// Bin names are not written; a restore maps fields back to bins by position, using
// the same bin list the backup was taken with.
//
// # Basic Usage
//
// Writing a snapshot to a file:
//
//	import "github.com/arloliu/bakfmt"
//
//	f, _ := os.Create("backup.txt")
//	w := bufio.NewWriter(f)
//
//	encoder, _ := bakfmt.NewTextEncoder(w)
//	filter := bakfmt.NewBinFilter("name", "age", "avatar")
//
//	for _, rec := range records {
//	    if _, err := encoder.EncodeRecord(rec, filter); err != nil {
//	        log.Fatal(err)
//	    }
//	}
//	w.Flush()
//
// # Package Structure
//
// This package provides convenient top-level wrappers around the backup package.
// Field encoders live in the encoding package, enum labels in the format package,
// the entities in the model package, and the sentinel errors in the errs package.
package bakfmt

import (
	"fmt"
	"io"
	"slices"

	"github.com/arloliu/bakfmt/backup"
	"github.com/arloliu/bakfmt/model"
)

// NewTextEncoder creates a text backup encoder writing to w.
//
// Parameters:
//   - w: Destination of the backup lines
//   - opts: Optional configuration functions (see backup.TextEncoderOption)
//
// Available options:
//   - backup.WithCompact(true|false)
//   - backup.WithLogger(*zap.Logger)
//   - backup.WithClock(func() time.Time)
//   - backup.WithNameEscaper(func(string) string)
//
// Returns:
//   - *backup.TextEncoder: The created encoder.
//   - error: An error if w is nil or the configuration is invalid.
func NewTextEncoder(w io.Writer, opts ...backup.TextEncoderOption) (*backup.TextEncoder, error) {
	return backup.NewTextEncoder(w, opts...)
}

// NewCompactTextEncoder creates a text backup encoder in compact mode, which writes
// blobs as raw bytes instead of base64 text.
//
// Compact files are smaller but no longer line-safe when blobs contain newlines or
// commas; use them only with a restore that reads the same mode.
func NewCompactTextEncoder(w io.Writer, opts ...backup.TextEncoderOption) (*backup.TextEncoder, error) {
	return backup.NewTextEncoder(w, slices.Concat(opts, []backup.TextEncoderOption{backup.WithCompact(true)})...)
}

// NewBinFilter creates the ordered list of bins written for every record.
func NewBinFilter(names ...string) *backup.BinFilter {
	return backup.NewBinFilter(names...)
}

// Snapshot is the full content of a backup: the UDF modules and secondary indexes
// of the cluster followed by the records.
type Snapshot struct {
	UDFFiles         []*model.UDFFile
	SecondaryIndexes []*model.SecondaryIndex
	Records          []*model.Record
}

// EncodeSnapshot writes UDF files, then secondary indexes, then records, and stops at
// the first failure.
//
// Returns:
//   - int64: Total bytes written, including bytes of the failed entity
//   - error: The first encode error, annotated with the entity position
func EncodeSnapshot(enc backup.Encoder, snap *Snapshot, filter *backup.BinFilter) (int64, error) {
	var total int64

	for i, file := range snap.UDFFiles {
		n, err := enc.EncodeUDFFile(file)
		total += n
		if err != nil {
			return total, fmt.Errorf("UDF file %d: %w", i, err)
		}
	}

	for i, index := range snap.SecondaryIndexes {
		n, err := enc.EncodeSecondaryIndex(index)
		total += n
		if err != nil {
			return total, fmt.Errorf("secondary index %d: %w", i, err)
		}
	}

	for i, rec := range snap.Records {
		n, err := enc.EncodeRecord(rec, filter)
		total += n
		if err != nil {
			return total, fmt.Errorf("record %d: %w", i, err)
		}
	}

	return total, nil
}
