// Package format defines the closed sets of kinds and types carried by backup
// entities, and the one-character labels the text format uses for them.
package format

// ValueKind identifies the kind of a record value.
type ValueKind uint8

// BytesType is the sub-type of a bytes value, naming the language or structure the
// bytes were serialized from.
type BytesType uint8

// UDFType is the language of a UDF module.
type UDFType uint8

// IndexType selects what a secondary index covers: a scalar bin, list elements, or
// map keys or values.
type IndexType uint8

// PathType is the data type of an indexed bin path.
type PathType uint8

// Value kinds. KindUndef is the zero value and never valid.
const (
	KindUndef   ValueKind = 0x0
	KindNil     ValueKind = 0x1
	KindBoolean ValueKind = 0x2 // KindBoolean is a known runtime kind that the text format cannot carry.
	KindInteger ValueKind = 0x3
	KindString  ValueKind = 0x4
	KindList    ValueKind = 0x5
	KindMap     ValueKind = 0x6
	KindBytes   ValueKind = 0x9
	KindDouble  ValueKind = 0xa
	KindGeoJSON ValueKind = 0xb
)

// Bytes sub-types, numbered like the server's particle types.
const (
	BytesBlob   BytesType = 4
	BytesJava   BytesType = 7
	BytesCSharp BytesType = 8
	BytesPython BytesType = 9
	BytesRuby   BytesType = 10
	BytesPHP    BytesType = 11
	BytesErlang BytesType = 12
	BytesMap    BytesType = 19
	BytesList   BytesType = 20
	BytesLDT    BytesType = 21
)

// UDF types. Lua is the only module language.
const (
	UDFTypeLua UDFType = 0x0
)

// Secondary index types, in label order.
const (
	IndexTypeInvalid IndexType = iota
	IndexTypeNone
	IndexTypeList
	IndexTypeMapKeys
	IndexTypeMapValues

	indexTypeCount
)

// Path data types, in label order.
const (
	PathTypeInvalid PathType = iota
	PathTypeString
	PathTypeNumeric
	PathTypeGeoJSON

	pathTypeCount
)

// Valid reports whether k is a value kind known to the data model.
func (k ValueKind) Valid() bool {
	switch k {
	case KindNil, KindBoolean, KindInteger, KindString, KindList, KindMap, KindBytes, KindDouble, KindGeoJSON:
		return true
	default:
		return false
	}
}

func (k ValueKind) String() string {
	switch k {
	case KindNil:
		return "Nil"
	case KindBoolean:
		return "Boolean"
	case KindInteger:
		return "Integer"
	case KindString:
		return "String"
	case KindList:
		return "List"
	case KindMap:
		return "Map"
	case KindBytes:
		return "Bytes"
	case KindDouble:
		return "Double"
	case KindGeoJSON:
		return "GeoJSON"
	default:
		return "Unknown"
	}
}

func (t BytesType) String() string {
	switch t {
	case BytesBlob:
		return "Blob"
	case BytesJava:
		return "Java"
	case BytesCSharp:
		return "CSharp"
	case BytesPython:
		return "Python"
	case BytesRuby:
		return "Ruby"
	case BytesPHP:
		return "PHP"
	case BytesErlang:
		return "Erlang"
	case BytesMap:
		return "Map"
	case BytesList:
		return "List"
	case BytesLDT:
		return "LDT"
	default:
		return "Unknown"
	}
}

func (t UDFType) String() string {
	if t == UDFTypeLua {
		return "Lua"
	}

	return "Unknown"
}

func (t IndexType) String() string {
	switch t {
	case IndexTypeInvalid:
		return "Invalid"
	case IndexTypeNone:
		return "None"
	case IndexTypeList:
		return "List"
	case IndexTypeMapKeys:
		return "MapKeys"
	case IndexTypeMapValues:
		return "MapValues"
	default:
		return "Unknown"
	}
}

func (t PathType) String() string {
	switch t {
	case PathTypeInvalid:
		return "Invalid"
	case PathTypeString:
		return "String"
	case PathTypeNumeric:
		return "Numeric"
	case PathTypeGeoJSON:
		return "GeoJSON"
	default:
		return "Unknown"
	}
}
