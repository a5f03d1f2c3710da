package jsonval

import (
	"math"
	"strconv"
	"strings"
)

// ToInt coerces v to an integer. Integral numbers convert directly, other
// numbers truncate toward zero and strings must hold a base-10 integer.
// Null, blank strings, bools, arrays and objects are not integers.
func ToInt(v Value) (int64, bool) {
	switch v.kind {
	case KindNumber:
		if i, ok := v.Int64(); ok {
			return i, true
		}

		f, ok := v.Float64()
		if !ok || math.IsNaN(f) || math.Abs(f) >= math.MaxInt64 {
			return 0, false
		}

		return int64(f), true
	case KindString:
		s := strings.TrimSpace(v.str)
		if s == "" {
			return 0, false
		}

		i, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return 0, false
		}

		return i, true
	default:
		return 0, false
	}
}

// ToFloat coerces v to a finite float from a number or a numeric string.
func ToFloat(v Value) (float64, bool) {
	var (
		f   float64
		err error
	)

	switch v.kind {
	case KindNumber:
		f, err = strconv.ParseFloat(string(v.num), 64)
	case KindString:
		s := strings.TrimSpace(v.str)
		if s == "" {
			return 0, false
		}

		f, err = strconv.ParseFloat(s, 64)
	default:
		return 0, false
	}

	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}

	return f, true
}

// ToText coerces v to text. Strings pass through and numbers keep their
// literal form; blank strings and every other kind yield false.
func ToText(v Value) (string, bool) {
	switch v.kind {
	case KindString:
		if strings.TrimSpace(v.str) == "" {
			return "", false
		}

		return v.str, true
	case KindNumber:
		return string(v.num), true
	default:
		return "", false
	}
}
