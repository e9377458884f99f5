// Package model holds the in-memory entities that bakfmt encodes: record values,
// bins, keys, records, UDF modules and secondary index definitions.
//
// All entities are plain caller-owned data. Encoders only read them.
package model

import "github.com/arloliu/bakfmt/format"

// Value is a tagged union over the value kinds stored in a record.
//
// Only the payload field matching Kind is meaningful:
//   - KindInteger: Int
//   - KindDouble: Float
//   - KindString: Str
//   - KindBytes: Bytes and BytesType
//   - KindGeoJSON: Bytes (the raw JSON text)
//   - KindList: List
//   - KindMap: Map
//
// A nil *Value is treated as absent, which encodes the same way as KindNil.
type Value struct {
	Kind      format.ValueKind
	Int       int64
	Float     float64
	Str       string
	Bytes     []byte
	BytesType format.BytesType
	List      []Value
	Map       []MapEntry
}

// MapEntry is a single key/value pair of a map value.
type MapEntry struct {
	Key   Value
	Value Value
}

// NilValue returns an explicit nil value, written as an empty field.
func NilValue() *Value {
	return &Value{Kind: format.KindNil}
}

// IntegerValue returns a signed 64-bit integer value.
func IntegerValue(v int64) *Value {
	return &Value{Kind: format.KindInteger, Int: v}
}

// DoubleValue returns a 64-bit floating point value.
func DoubleValue(v float64) *Value {
	return &Value{Kind: format.KindDouble, Float: v}
}

// StringValue returns a string value.
func StringValue(v string) *Value {
	return &Value{Kind: format.KindString, Str: v}
}

// BytesValue returns a bytes value of the given sub-type. The slice is not copied.
func BytesValue(typ format.BytesType, data []byte) *Value {
	return &Value{Kind: format.KindBytes, BytesType: typ, Bytes: data}
}

// BlobValue returns a bytes value with the generic blob sub-type.
func BlobValue(data []byte) *Value {
	return BytesValue(format.BytesBlob, data)
}

// GeoJSONValue returns a geo-JSON value holding the raw JSON text.
func GeoJSONValue(json string) *Value {
	return &Value{Kind: format.KindGeoJSON, Bytes: []byte(json)}
}

// ListValue returns a list value. Lists cannot be written as bin fields.
func ListValue(items ...Value) *Value {
	return &Value{Kind: format.KindList, List: items}
}

// MapValue returns a map value. Maps cannot be written as bin fields.
func MapValue(entries ...MapEntry) *Value {
	return &Value{Kind: format.KindMap, Map: entries}
}

// IsNil reports whether v is absent or holds the nil kind.
func (v *Value) IsNil() bool {
	return v == nil || v.Kind == format.KindNil
}
