package backup

import (
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/arloliu/bakfmt/encoding"
	"github.com/arloliu/bakfmt/errs"
	"github.com/arloliu/bakfmt/format"
	"github.com/arloliu/bakfmt/internal/options"
	"github.com/arloliu/bakfmt/internal/pool"
	"github.com/arloliu/bakfmt/internal/sink"
	"github.com/arloliu/bakfmt/model"
)

const (
	fieldSeparator = ','
	lineTerminator = '\n'

	// scratchSize fits any integer or 17-digit double.
	scratchSize = 32
)

// Encoder writes backup entities to an output stream.
//
// Each method writes exactly one entity and returns the number of bytes it wrote.
// On failure the count still includes bytes written before the failure; partially
// written entities are not rolled back.
type Encoder interface {
	EncodeRecord(rec *model.Record, filter *BinFilter) (int64, error)
	EncodeUDFFile(file *model.UDFFile) (int64, error)
	EncodeSecondaryIndex(index *model.SecondaryIndex) (int64, error)
}

var _ Encoder = (*TextEncoder)(nil)

// TextEncoder encodes records, UDF files and secondary indexes into the
// line-oriented text backup format.
//
// Record lines hold one comma-separated field per bin filter name, so a line always
// carries exactly Len()-1 commas. A user key, when present, is written directly in
// front of the first field:
//
//	<key><bin1>,<bin2>,...,<binN>\n
//
// Missing or nil bins leave their field empty. UDF files and secondary indexes are
// written as space-separated lines:
//
//	<udf label> <name> <size> <content>\n
//	<namespace> <set> <name> <index label> <path count>[ <path> <path label>]...\n
//
// Note: The TextEncoder is NOT thread-safe. Use one encoder per output stream and
// goroutine.
type TextEncoder struct {
	*TextEncoderConfig

	out   *sink.Counter
	stats EncoderStats
}

// NewTextEncoder creates a TextEncoder writing to w.
//
// The encoder writes straight through to w; wrap files in a bufio.Writer and flush
// it when the backup is done.
//
// Parameters:
//   - w: Destination of the backup lines
//   - opts: Optional configuration (compact mode, logger, clock, name escaper)
//
// Returns:
//   - *TextEncoder: New encoder instance
//   - error: errs.ErrNilWriter, or a configuration error if invalid options are provided
func NewTextEncoder(w io.Writer, opts ...TextEncoderOption) (*TextEncoder, error) {
	if w == nil {
		return nil, errs.ErrNilWriter
	}

	config := NewTextEncoderConfig()
	if err := options.Apply(config, opts...); err != nil {
		return nil, err
	}

	return &TextEncoder{
		TextEncoderConfig: config,
		out:               sink.NewCounter(w),
	}, nil
}

// BytesWritten returns the total number of bytes written by the encoder.
func (e *TextEncoder) BytesWritten() int64 {
	return e.out.Count()
}

// Stats returns the counters accumulated since the encoder was created.
func (e *TextEncoder) Stats() EncoderStats {
	return e.stats
}

// EncodeRecord writes one record line: the user key if the record has one, then
// the bins named by filter in filter order. The key adds no separator.
//
// Hidden bins (see model.IsHiddenBinName) never match a filter name.
//
// Returns:
//   - int64: Bytes written by this call, including bytes written before a failure
//   - error: errs.ErrNilRecord, errs.ErrNilBinFilter, or a wrapped encode error
//     (errs.ErrWrite, errs.ErrInvalidKeyKind, errs.ErrInvalidBytesType,
//     errs.ErrUnexpectedList, errs.ErrUnexpectedMap, errs.ErrInvalidValueKind,
//     errs.ErrEncodedLength)
func (e *TextEncoder) EncodeRecord(rec *model.Record, filter *BinFilter) (int64, error) {
	if rec == nil {
		return 0, errs.ErrNilRecord
	}
	if filter == nil {
		return 0, errs.ErrNilBinFilter
	}

	start := e.out.Count()
	err := e.encodeRecord(rec, filter)
	n := e.out.Count() - start

	e.stats.Bytes += n
	if err != nil {
		e.stats.Failures++
		e.logger.Error("failed to encode record",
			zap.String("namespace", rec.Key.Namespace),
			zap.String("set", rec.Key.Set),
			zap.String("digest", rec.Key.DigestBase64()),
			zap.Error(err))

		return n, err
	}
	e.stats.Records++

	return n, nil
}

func (e *TextEncoder) encodeRecord(rec *model.Record, filter *BinFilter) error {
	// Record metadata is not part of the line; it is only reported.
	if ce := e.logger.Check(zap.DebugLevel, "encoding record"); ce != nil {
		ce.Write(
			zap.String("namespace", rec.Key.Namespace),
			zap.String("set", rec.Key.Set),
			zap.String("digest", rec.Key.DigestBase64()),
			zap.Uint32("generation", rec.Generation),
			zap.Uint32("void_time", rec.VoidTime(e.now())),
			zap.Int("bins", rec.VisibleBinCount()))
	}

	// The key shares the first field with the first bin; only bin positions are
	// separated.
	if rec.Key.HasUserKey() {
		if err := e.writeKey(rec.Key.Value); err != nil {
			return fmt.Errorf("failed to write record key: %w", err)
		}
	}

	slots, release := pool.GetUint64Slice(filter.Len())
	defer release()
	clear(slots)
	filter.match(rec.Bins, slots)

	last := filter.Len() - 1
	for pos := 0; pos < filter.Len(); pos++ {
		name := filter.names[pos]

		var val *model.Value
		if slot := slots[pos]; slot > 0 {
			val = rec.Bins[slot-1].Value
		}

		if err := e.writeBinValue(name, val); err != nil {
			return fmt.Errorf("failed to write record bin %s: %w", name, err)
		}

		if pos < last {
			if err := e.out.WriteByte(fieldSeparator); err != nil {
				return fmt.Errorf("failed to write record bin %s: %w", name, err)
			}
		}
	}

	if err := e.out.WriteByte(lineTerminator); err != nil {
		return fmt.Errorf("failed to terminate record: %w", err)
	}

	return nil
}

// EncodeUDFFile writes a UDF module line: label, escaped name, payload size, and the
// raw payload.
//
// Returns:
//   - int64: Bytes written by this call, including bytes written before a failure
//   - error: errs.ErrNilUDFFile, or a wrapped errs.ErrInvalidUDFType or errs.ErrWrite
func (e *TextEncoder) EncodeUDFFile(file *model.UDFFile) (int64, error) {
	if file == nil {
		return 0, errs.ErrNilUDFFile
	}

	start := e.out.Count()
	err := e.encodeUDFFile(file)
	n := e.out.Count() - start

	e.stats.Bytes += n
	if err != nil {
		e.stats.Failures++
		e.logger.Error("failed to encode UDF file",
			zap.String("udf", file.Name),
			zap.Stringer("type", file.Type),
			zap.Error(err))

		return n, err
	}
	e.stats.UDFFiles++

	return n, nil
}

func (e *TextEncoder) encodeUDFFile(file *model.UDFFile) error {
	label, err := file.Type.Label()
	if err != nil {
		return err
	}

	if _, err := e.out.WriteFormatted("%c %s %d ", label, e.escapeName(file.Name), file.Size()); err != nil {
		return fmt.Errorf("failed to write UDF header: %w", err)
	}

	if _, err := e.out.WriteRaw(file.Content); err != nil {
		return fmt.Errorf("failed to write UDF content: %w", err)
	}

	if err := e.out.WriteByte(lineTerminator); err != nil {
		return fmt.Errorf("failed to terminate UDF file: %w", err)
	}

	return nil
}

// EncodeSecondaryIndex writes a secondary index line: escaped namespace, escaped set
// (empty when the index has none), escaped name, index label, path count, and
// one escaped path and path label per indexed path.
//
// The index label is resolved before anything is written. A failing path label
// leaves the already written part of the line in place.
//
// Returns:
//   - int64: Bytes written by this call, including bytes written before a failure
//   - error: errs.ErrNilIndex, or a wrapped errs.ErrInvalidIndexType,
//     errs.ErrInvalidPathType or errs.ErrWrite
func (e *TextEncoder) EncodeSecondaryIndex(index *model.SecondaryIndex) (int64, error) {
	if index == nil {
		return 0, errs.ErrNilIndex
	}

	start := e.out.Count()
	err := e.encodeSecondaryIndex(index)
	n := e.out.Count() - start

	e.stats.Bytes += n
	if err != nil {
		e.stats.Failures++
		e.logger.Error("failed to encode secondary index",
			zap.String("namespace", index.Namespace),
			zap.String("index", index.Name),
			zap.Stringer("type", index.Type),
			zap.Error(err))

		return n, err
	}
	e.stats.SecondaryIndexes++

	return n, nil
}

func (e *TextEncoder) encodeSecondaryIndex(index *model.SecondaryIndex) error {
	label, err := index.Type.Label()
	if err != nil {
		return err
	}

	set := ""
	if index.HasSet() {
		set = e.escapeName(index.Set)
	}

	if _, err := e.out.WriteFormatted("%s %s %s %c %d",
		e.escapeName(index.Namespace), set, e.escapeName(index.Name), label, len(index.Paths)); err != nil {
		return fmt.Errorf("failed to write secondary index header: %w", err)
	}

	for i := range index.Paths {
		path := &index.Paths[i]

		pathLabel, err := path.Type.Label()
		if err != nil {
			return fmt.Errorf("path %s: %w", path.Path, err)
		}

		if _, err := e.out.WriteFormatted(" %s %c", e.escapeName(path.Path), pathLabel); err != nil {
			return fmt.Errorf("failed to write secondary index path %s: %w", path.Path, err)
		}
	}

	if err := e.out.WriteByte(lineTerminator); err != nil {
		return fmt.Errorf("failed to terminate secondary index: %w", err)
	}

	return nil
}

// writeKey writes a user key value. Keys are limited to integers, doubles, strings
// and bytes.
func (e *TextEncoder) writeKey(key *model.Value) error {
	switch key.Kind { //nolint: exhaustive
	case format.KindInteger:
		return e.writeInteger(key.Int)
	case format.KindDouble:
		return e.writeDouble(key.Float)
	case format.KindString:
		return e.writeString(key.Str)
	case format.KindBytes:
		return e.writeBlob(key.Bytes)
	default:
		return fmt.Errorf("%w: %d", errs.ErrInvalidKeyKind, key.Kind)
	}
}

// writeBinValue writes the field of one bin. Absent and nil values write nothing,
// leaving the field empty.
func (e *TextEncoder) writeBinValue(binName string, val *model.Value) error {
	if val.IsNil() {
		return nil
	}

	switch val.Kind { //nolint: exhaustive
	case format.KindInteger:
		return e.writeInteger(val.Int)
	case format.KindDouble:
		return e.writeDouble(val.Float)
	case format.KindString:
		return e.writeString(val.Str)
	case format.KindGeoJSON:
		return e.writeRaw(val.Bytes)
	case format.KindBytes:
		// The sub-type label is validated but not part of the field.
		if _, err := val.BytesType.Label(); err != nil {
			return err
		}

		return e.writeBlob(val.Bytes)
	case format.KindList:
		return fmt.Errorf("%w: bin %s", errs.ErrUnexpectedList, binName)
	case format.KindMap:
		return fmt.Errorf("%w: bin %s", errs.ErrUnexpectedMap, binName)
	default:
		return fmt.Errorf("%w: %d", errs.ErrInvalidValueKind, val.Kind)
	}
}

func (e *TextEncoder) writeInteger(v int64) error {
	var scratch [scratchSize]byte

	return e.writeRaw(encoding.AppendInteger(scratch[:0], v))
}

func (e *TextEncoder) writeDouble(v float64) error {
	var scratch [scratchSize]byte

	return e.writeRaw(encoding.AppendDouble(scratch[:0], v))
}

func (e *TextEncoder) writeString(s string) error {
	buf := pool.GetStagingBuffer(encoding.QuotedCapacity(len(s)))
	defer pool.PutStagingBuffer(buf)

	buf.B = encoding.AppendQuoted(buf.B, s)

	return e.writeRaw(buf.B)
}

// writeBlob writes data raw in compact mode and base64-encoded otherwise.
func (e *TextEncoder) writeBlob(data []byte) error {
	if e.compact {
		return e.writeRaw(data)
	}

	encLen, err := encoding.Base64EncodedLen(len(data))
	if err != nil {
		return err
	}

	buf := pool.GetStagingBuffer(encLen)
	defer pool.PutStagingBuffer(buf)

	if buf.B, err = encoding.AppendBlob(buf.B, data, false); err != nil {
		return err
	}

	return e.writeRaw(buf.B)
}

func (e *TextEncoder) writeRaw(data []byte) error {
	if len(data) == 0 {
		return nil
	}

	_, err := e.out.WriteRaw(data)

	return err
}
