package encoding

import (
	"math"
	"strconv"
)

// DoubleDigits is the number of significant digits written for doubles. Seventeen
// digits are enough to read back the exact value that was written.
const DoubleDigits = 17

// AppendInteger appends the signed decimal form of v to dst.
func AppendInteger(dst []byte, v int64) []byte {
	return strconv.AppendInt(dst, v, 10)
}

// AppendDouble appends v in general format with DoubleDigits significant digits.
// Trailing zeros are dropped, so 1.5 is written as "1.5". Non-finite values are
// written as "nan", "inf" and "-inf".
func AppendDouble(dst []byte, v float64) []byte {
	switch {
	case math.IsNaN(v):
		return append(dst, "nan"...)
	case math.IsInf(v, 1):
		return append(dst, "inf"...)
	case math.IsInf(v, -1):
		return append(dst, "-inf"...)
	}

	return strconv.AppendFloat(dst, v, 'g', DoubleDigits, 64)
}
