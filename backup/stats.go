package backup

// EncoderStats holds the counters of a TextEncoder.
type EncoderStats struct {
	// Records is the number of records encoded successfully.
	Records int64
	// UDFFiles is the number of UDF files encoded successfully.
	UDFFiles int64
	// SecondaryIndexes is the number of secondary indexes encoded successfully.
	SecondaryIndexes int64
	// Failures is the number of encode calls that returned an error.
	Failures int64
	// Bytes is the number of bytes written, including partial writes of failed calls.
	Bytes int64
}

// Entities returns the number of entities encoded successfully.
func (s EncoderStats) Entities() int64 {
	return s.Records + s.UDFFiles + s.SecondaryIndexes
}

// AvgEntitySize returns the average number of bytes per successfully encoded entity.
//
// Returns:
//   - float64: Average entity size (0.0 if nothing was encoded)
func (s EncoderStats) AvgEntitySize() float64 {
	n := s.Entities()
	if n == 0 {
		return 0.0
	}

	return float64(s.Bytes) / float64(n)
}
