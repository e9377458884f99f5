// Package encoding provides the field-level encoders of the text backup format.
//
// Every function appends to a caller-supplied byte slice and returns the extended
// slice, in the style of strconv.Append*. Nothing in this package writes to the
// backup file; the backup package stages encoded fields in pooled buffers and
// hands them to the sink.
//
// # Field Formats
//
//   - Integers: signed decimal (AppendInteger)
//   - Doubles: 17 significant digits, general format (AppendDouble), so that parsing
//     the text yields the original bits
//   - Strings: wrapped in double quotes, printable ASCII only, embedded quotes
//     escaped with a backslash, every other byte replaced by a space (AppendQuoted)
//   - Blobs: raw bytes in compact mode, standard padded base64 otherwise (AppendBlob)
//   - Names (namespaces, sets, bins, UDFs, indexes, paths): spaces, backslashes and
//     newlines prefixed with a backslash (EscapeName)
//
// Example:
//
//	buf := make([]byte, 0, 64)
//	buf = encoding.AppendInteger(buf, 42)
//	buf = append(buf, ',')
//	buf = encoding.AppendQuoted(buf, `hello "world"`)
//	// buf == `42,"hello \"world\""`
package encoding
