// Package jsonval provides an ordered, tagged representation of JSON values.
//
// Listing records arrive with arbitrary nesting and inconsistent shapes, so the
// pipeline works on Value instead of fixed structs. Objects keep insertion
// order so that encoded output follows the order fields were produced in.
package jsonval

import (
	"encoding/json"
	"math"
	"strconv"
)

// Kind identifies the variant held by a Value.
type Kind uint8

// Value kinds.
const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindString
	KindArray
	KindObject
)

// String returns the JSON name of the kind.
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	default:
		return "unknown"
	}
}

// Value is a single JSON value. The zero Value is null.
type Value struct {
	obj  *Object
	num  json.Number
	str  string
	arr  []Value
	kind Kind
	b    bool
}

// Null returns the null value.
func Null() Value {
	return Value{}
}

// Bool wraps a boolean.
func Bool(b bool) Value {
	return Value{kind: KindBool, b: b}
}

// Int wraps an integer.
func Int(i int64) Value {
	return Value{kind: KindNumber, num: json.Number(strconv.FormatInt(i, 10))}
}

// Float wraps a float. NaN and infinities have no JSON form and become null.
func Float(f float64) Value {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return Null()
	}

	return Value{kind: KindNumber, num: json.Number(strconv.FormatFloat(f, 'f', -1, 64))}
}

// Number wraps a JSON number literal as-is.
func Number(n json.Number) Value {
	return Value{kind: KindNumber, num: n}
}

// String wraps a string.
func String(s string) Value {
	return Value{kind: KindString, str: s}
}

// Array wraps the given items. Array() is the empty array, not null.
func Array(items ...Value) Value {
	return ArrayOf(items)
}

// ArrayOf wraps a slice without copying it.
func ArrayOf(items []Value) Value {
	if items == nil {
		items = []Value{}
	}

	return Value{kind: KindArray, arr: items}
}

// ObjectOf wraps an object. A nil object yields null.
func ObjectOf(o *Object) Value {
	if o == nil {
		return Null()
	}

	return Value{kind: KindObject, obj: o}
}

// Kind reports which variant v holds.
func (v Value) Kind() Kind {
	return v.kind
}

// IsNull reports whether v is null.
func (v Value) IsNull() bool {
	return v.kind == KindNull
}

// AsBool returns the boolean held by v.
func (v Value) AsBool() (bool, bool) {
	return v.b, v.kind == KindBool
}

// AsNumber returns the number literal held by v.
func (v Value) AsNumber() (json.Number, bool) {
	return v.num, v.kind == KindNumber
}

// AsString returns the string held by v.
func (v Value) AsString() (string, bool) {
	return v.str, v.kind == KindString
}

// AsArray returns the items held by v. The slice is shared, not copied.
func (v Value) AsArray() ([]Value, bool) {
	return v.arr, v.kind == KindArray
}

// AsObject returns the object held by v.
func (v Value) AsObject() (*Object, bool) {
	return v.obj, v.kind == KindObject
}

// Int64 returns the number held by v when it is an exact integer.
func (v Value) Int64() (int64, bool) {
	if v.kind != KindNumber {
		return 0, false
	}

	if i, err := strconv.ParseInt(string(v.num), 10, 64); err == nil {
		return i, true
	}

	f, err := strconv.ParseFloat(string(v.num), 64)
	if err != nil || f != math.Trunc(f) || math.Abs(f) >= math.MaxInt64 {
		return 0, false
	}

	return int64(f), true
}

// Float64 returns the number held by v as a float.
func (v Value) Float64() (float64, bool) {
	if v.kind != KindNumber {
		return 0, false
	}

	f, err := strconv.ParseFloat(string(v.num), 64)
	if err != nil {
		return 0, false
	}

	return f, true
}
