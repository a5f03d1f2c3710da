package normalizer

import (
	"zexplorer/internal/jsonval"
	"zexplorer/pkg/utils"
)

// accessor extracts one candidate value from a raw record.
type accessor func(raw *jsonval.Object) jsonval.Value

// field reads a top-level key.
func field(name string) accessor {
	return func(raw *jsonval.Object) jsonval.Value {
		return raw.At(name)
	}
}

// nested reads a dotted path, yielding null through non-object intermediates.
func nested(path string) accessor {
	return func(raw *jsonval.Object) jsonval.Value {
		return jsonval.Lookup(raw, path)
	}
}

// scalar narrows an accessor to non-container values, so an object stored
// under a key does not shadow a later alias.
func scalar(a accessor) accessor {
	return func(raw *jsonval.Object) jsonval.Value {
		v := a(raw)
		switch v.Kind() {
		case jsonval.KindArray, jsonval.KindObject:
			return jsonval.Null()
		default:
			return v
		}
	}
}

// firstOf tries each accessor in order and returns the first present value.
// Null and blank strings count as absent.
func firstOf(accessors ...accessor) accessor {
	return func(raw *jsonval.Object) jsonval.Value {
		for _, a := range accessors {
			if v := a(raw); present(v) {
				return v
			}
		}

		return jsonval.Null()
	}
}

func present(v jsonval.Value) bool {
	if v.IsNull() {
		return false
	}

	if s, ok := v.AsString(); ok && utils.IsBlank(s) {
		return false
	}

	return true
}

func intPtr(v jsonval.Value) *int64 {
	i, ok := jsonval.ToInt(v)
	if !ok {
		return nil
	}

	return &i
}

func floatPtr(v jsonval.Value) *float64 {
	f, ok := jsonval.ToFloat(v)
	if !ok {
		return nil
	}

	return &f
}

func textPtr(v jsonval.Value) *string {
	s, ok := jsonval.ToText(v)
	if !ok {
		return nil
	}

	return &s
}

// arrayOrEmpty returns the items of an array value, or an empty slice.
func arrayOrEmpty(v jsonval.Value) []jsonval.Value {
	items, ok := v.AsArray()
	if !ok {
		return []jsonval.Value{}
	}

	return items
}

// objectOrNil returns the object held by v, or nil.
func objectOrNil(v jsonval.Value) *jsonval.Object {
	obj, _ := v.AsObject()
	return obj
}
