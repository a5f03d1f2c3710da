package jsonval

import (
	"cmp"
	"errors"
	"fmt"
	"strings"
)

// ErrIncomparable is returned when two values have no natural ordering.
var ErrIncomparable = errors.New("values are not comparable")

// Compare orders two values: numbers numerically, strings lexically and
// false before true. A bool compared with a number counts as 0 or 1. Every
// other pairing, including null, returns ErrIncomparable.
func Compare(a, b Value) (int, error) {
	switch {
	case a.kind == KindBool && b.kind == KindBool:
		return compareBools(a.b, b.b), nil
	case numeric(a) && numeric(b):
		return compareNumbers(asNumber(a), asNumber(b)), nil
	case a.kind == KindString && b.kind == KindString:
		return strings.Compare(a.str, b.str), nil
	}

	return 0, fmt.Errorf("%w: %s and %s", ErrIncomparable, a.kind, b.kind)
}

func numeric(v Value) bool {
	return v.kind == KindNumber || v.kind == KindBool
}

func asNumber(v Value) Value {
	if v.kind != KindBool {
		return v
	}

	if v.b {
		return Int(1)
	}

	return Int(0)
}

func compareNumbers(a, b Value) int {
	ai, aok := a.Int64()
	bi, bok := b.Int64()

	if aok && bok {
		return cmp.Compare(ai, bi)
	}

	af, _ := a.Float64()
	bf, _ := b.Float64()

	return cmp.Compare(af, bf)
}

func compareBools(a, b bool) int {
	switch {
	case a == b:
		return 0
	case !a:
		return -1
	default:
		return 1
	}
}

// Equal reports deep equality. Object key order is ignored and numbers
// compare by value, so 1 and 1.0 are equal.
func Equal(a, b Value) bool {
	if a.kind != b.kind {
		return false
	}

	switch a.kind {
	case KindNull:
		return true
	case KindBool:
		return a.b == b.b
	case KindNumber:
		return compareNumbers(a, b) == 0
	case KindString:
		return a.str == b.str
	case KindArray:
		if len(a.arr) != len(b.arr) {
			return false
		}

		for i := range a.arr {
			if !Equal(a.arr[i], b.arr[i]) {
				return false
			}
		}

		return true
	case KindObject:
		return EqualObjects(a.obj, b.obj)
	}

	return false
}

// EqualObjects reports whether two objects hold equal values under the same keys.
func EqualObjects(a, b *Object) bool {
	if a.Len() != b.Len() {
		return false
	}

	equal := true

	a.Range(func(key string, av Value) bool {
		bv, ok := b.Get(key)
		equal = ok && Equal(av, bv)

		return equal
	})

	return equal
}
