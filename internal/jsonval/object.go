package jsonval

import "slices"

// Object is a string-keyed mapping that remembers insertion order.
// A nil *Object behaves as an empty, read-only object.
type Object struct {
	values map[string]Value
	keys   []string
}

// NewObject creates an empty object.
func NewObject() *Object {
	return &Object{values: make(map[string]Value)}
}

// Len returns the number of keys.
func (o *Object) Len() int {
	if o == nil {
		return 0
	}

	return len(o.keys)
}

// Keys returns the keys in insertion order.
func (o *Object) Keys() []string {
	if o == nil {
		return nil
	}

	return slices.Clone(o.keys)
}

// Get returns the value stored under key.
func (o *Object) Get(key string) (Value, bool) {
	if o == nil {
		return Null(), false
	}

	v, ok := o.values[key]

	return v, ok
}

// At returns the value stored under key, or null when absent.
func (o *Object) At(key string) Value {
	v, _ := o.Get(key)
	return v
}

// Has reports whether key is present, even if its value is null.
func (o *Object) Has(key string) bool {
	_, ok := o.Get(key)
	return ok
}

// Set stores v under key. Existing keys keep their position.
func (o *Object) Set(key string, v Value) {
	if _, ok := o.values[key]; !ok {
		o.keys = append(o.keys, key)
	}

	o.values[key] = v
}

// Delete removes key. It is a no-op when key is absent.
func (o *Object) Delete(key string) {
	if _, ok := o.values[key]; !ok {
		return
	}

	delete(o.values, key)
	o.keys = slices.DeleteFunc(o.keys, func(k string) bool { return k == key })
}

// Range calls fn for each entry in order until fn returns false.
func (o *Object) Range(fn func(key string, v Value) bool) {
	if o == nil {
		return
	}

	for _, k := range o.keys {
		if !fn(k, o.values[k]) {
			return
		}
	}
}

// Clone returns a shallow copy: nested arrays and objects are shared.
func (o *Object) Clone() *Object {
	out := NewObject()
	if o == nil {
		return out
	}

	out.keys = slices.Clone(o.keys)
	for k, v := range o.values {
		out.values[k] = v
	}

	return out
}
