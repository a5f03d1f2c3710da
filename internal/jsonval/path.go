package jsonval

import "strings"

// SplitPath splits a dotted path such as "price.value" into its keys.
func SplitPath(path string) []string {
	return strings.Split(path, ".")
}

// Lookup resolves a dotted path against obj. It returns null when a key is
// missing or an intermediate value is not an object.
func Lookup(obj *Object, path string) Value {
	current := ObjectOf(obj)

	for _, part := range SplitPath(path) {
		o, ok := current.AsObject()
		if !ok {
			return Null()
		}

		current = o.At(part)
	}

	return current
}
