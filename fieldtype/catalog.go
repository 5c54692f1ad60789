package fieldtype

import "math"

// FieldType identifies a primitive field type by its verbose name.
type FieldType string

// The closed set of field types. See the catalog table for short codes.
const (
	Boolean   FieldType = "boolean"
	Char      FieldType = "char"
	String    FieldType = "string"
	Byte      FieldType = "byte"
	Int8      FieldType = "int8"
	Int16     FieldType = "int16"
	Int32     FieldType = "int32"
	Int64     FieldType = "int64"
	Uint8     FieldType = "uint8"
	Uint16    FieldType = "uint16"
	Uint32    FieldType = "uint32"
	Uint64    FieldType = "uint64"
	Float     FieldType = "float"
	Double    FieldType = "double"
	DateTime  FieldType = "datetime"
	Timestamp FieldType = "timestamp"
	Address   FieldType = "address"
	Amount    FieldType = "amount"
	Bytes     FieldType = "bytes"
)

// Entry pairs a verbose type name with its short code.
type Entry struct {
	Type FieldType
	Code string
}

// catalog is the single source of truth for the name/code bijection.
// Order is stable and caller-visible through All.
var catalog = []Entry{
	{Boolean, "b"},
	{Char, "c"},
	{String, "s"},
	{Byte, "y"},
	{Int8, "i8"},
	{Int16, "i16"},
	{Int32, "i32"},
	{Int64, "i64"},
	{Uint8, "u8"},
	{Uint16, "u16"},
	{Uint32, "u32"},
	{Uint64, "u64"},
	{Float, "f"},
	{Double, "d"},
	{DateTime, "dt"},
	{Timestamp, "ts"},
	{Address, "addr"},
	{Amount, "amt"},
	{Bytes, "bin"},
}

var (
	byName map[FieldType]string
	byCode map[string]FieldType
)

func init() {
	byName = make(map[FieldType]string, len(catalog))
	byCode = make(map[string]FieldType, len(catalog))
	for _, e := range catalog {
		byName[e.Type] = e.Code
		byCode[e.Code] = e.Type
	}
}

// All returns the catalog entries in their canonical order.
func All() []Entry {
	out := make([]Entry, len(catalog))
	copy(out, catalog)
	return out
}

// FromName resolves a verbose type name to a FieldType.
func FromName(name string) (FieldType, bool) {
	_, ok := byName[FieldType(name)]
	if !ok {
		return "", false
	}
	return FieldType(name), true
}

// FromCode resolves a short code to a FieldType.
func FromCode(code string) (FieldType, bool) {
	t, ok := byCode[code]
	return t, ok
}

// Code returns the short code for a catalog type. The second return is
// false for types outside the catalog (forward-compat pass-through tokens).
func (t FieldType) Code() (string, bool) {
	code, ok := byName[t]
	return code, ok
}

// Known reports whether t is a member of the catalog.
func (t FieldType) Known() bool {
	_, ok := byName[t]
	return ok
}

// IsInteger reports whether t is one of the sized integer types.
func (t FieldType) IsInteger() bool {
	switch t {
	case Byte, Int8, Int16, Int32, Int64, Uint8, Uint16, Uint32, Uint64:
		return true
	}
	return false
}

// IsNumeric reports whether t carries a numeric value, including the
// domain amount type.
func (t FieldType) IsNumeric() bool {
	switch t {
	case Float, Double, Amount:
		return true
	}
	return t.IsInteger()
}

// IntegerBounds returns the inclusive representable range for sized
// integer types. ok is false for non-integer types.
func (t FieldType) IntegerBounds() (min, max float64, ok bool) {
	switch t {
	case Byte, Uint8:
		return 0, math.MaxUint8, true
	case Uint16:
		return 0, math.MaxUint16, true
	case Uint32:
		return 0, math.MaxUint32, true
	case Uint64:
		return 0, math.MaxUint64, true
	case Int8:
		return math.MinInt8, math.MaxInt8, true
	case Int16:
		return math.MinInt16, math.MaxInt16, true
	case Int32:
		return math.MinInt32, math.MaxInt32, true
	case Int64:
		return math.MinInt64, math.MaxInt64, true
	}
	return 0, 0, false
}
