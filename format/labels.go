package format

import (
	"fmt"

	"github.com/arloliu/bakfmt/errs"
)

// Label strings indexed by enum ordinal.
const (
	indexLabels = "INLKV"
	pathLabels  = "ISNG"
)

// The label strings must grow together with their enums.
var (
	_ = [1]struct{}{}[len(indexLabels)-int(indexTypeCount)]
	_ = [1]struct{}{}[len(pathLabels)-int(pathTypeCount)]
)

// UDFLabelLua is the one-character label of a Lua UDF module.
const UDFLabelLua byte = 'L'

var bytesLabels = map[BytesType]byte{
	BytesBlob:   'B',
	BytesJava:   'J',
	BytesCSharp: 'C',
	BytesPython: 'P',
	BytesRuby:   'R',
	BytesPHP:    'H',
	BytesErlang: 'E',
	BytesMap:    'M',
	BytesList:   'L',
	BytesLDT:    'U',
}

// Label returns the one-character label of the bytes sub-type.
//
// Returns an error wrapping errs.ErrInvalidBytesType for sub-types outside the closed set.
func (t BytesType) Label() (byte, error) {
	if label, ok := bytesLabels[t]; ok {
		return label, nil
	}

	return 0, fmt.Errorf("%w: %d", errs.ErrInvalidBytesType, t)
}

// Label returns the one-character label of the UDF type. Only Lua is valid.
func (t UDFType) Label() (byte, error) {
	if t == UDFTypeLua {
		return UDFLabelLua, nil
	}

	return 0, fmt.Errorf("%w: %d", errs.ErrInvalidUDFType, t)
}

// Label returns the character of "INLKV" at the ordinal of t.
func (t IndexType) Label() (byte, error) {
	if t >= indexTypeCount {
		return 0, fmt.Errorf("%w: %d", errs.ErrInvalidIndexType, t)
	}

	return indexLabels[t], nil
}

// Label returns the character of "ISNG" at the ordinal of t.
func (t PathType) Label() (byte, error) {
	if t >= pathTypeCount {
		return 0, fmt.Errorf("%w: %d", errs.ErrInvalidPathType, t)
	}

	return pathLabels[t], nil
}
