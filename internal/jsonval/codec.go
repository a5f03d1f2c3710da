package jsonval

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// Decoding errors.
var (
	ErrTrailingData    = errors.New("unexpected data after top-level value")
	ErrUnexpectedToken = errors.New("unexpected JSON token")
)

// Decode reads exactly one JSON value from r, keeping object key order and
// number literals intact.
func Decode(r io.Reader) (Value, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()

	v, err := decodeValue(dec)
	if err != nil {
		return Null(), err
	}

	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		if err != nil {
			return Null(), err
		}

		return Null(), ErrTrailingData
	}

	return v, nil
}

// Unmarshal decodes a single JSON document.
func Unmarshal(data []byte) (Value, error) {
	return Decode(bytes.NewReader(data))
}

func decodeValue(dec *json.Decoder) (Value, error) {
	tok, err := dec.Token()
	if err != nil {
		return Null(), err
	}

	switch t := tok.(type) {
	case nil:
		return Null(), nil
	case bool:
		return Bool(t), nil
	case json.Number:
		return Number(t), nil
	case string:
		return String(t), nil
	case json.Delim:
		switch t {
		case '{':
			return decodeObject(dec)
		case '[':
			return decodeArray(dec)
		}
	}

	return Null(), fmt.Errorf("%w: %v", ErrUnexpectedToken, tok)
}

func decodeObject(dec *json.Decoder) (Value, error) {
	obj := NewObject()

	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return Null(), err
		}

		key, ok := tok.(string)
		if !ok {
			return Null(), fmt.Errorf("%w: object key %v", ErrUnexpectedToken, tok)
		}

		v, err := decodeValue(dec)
		if err != nil {
			return Null(), err
		}

		obj.Set(key, v)
	}

	// closing '}'
	if _, err := dec.Token(); err != nil {
		return Null(), err
	}

	return ObjectOf(obj), nil
}

func decodeArray(dec *json.Decoder) (Value, error) {
	items := []Value{}

	for dec.More() {
		v, err := decodeValue(dec)
		if err != nil {
			return Null(), err
		}

		items = append(items, v)
	}

	if _, err := dec.Token(); err != nil {
		return Null(), err
	}

	return ArrayOf(items), nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (v *Value) UnmarshalJSON(data []byte) error {
	decoded, err := Unmarshal(data)
	if err != nil {
		return err
	}

	*v = decoded

	return nil
}

// MarshalJSON implements json.Marshaler. Objects are written in insertion order.
func (v Value) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	if err := encodeValue(&buf, v); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// MarshalJSON implements json.Marshaler.
func (o *Object) MarshalJSON() ([]byte, error) {
	return ObjectOf(o).MarshalJSON()
}

// Marshal encodes v compactly.
func Marshal(v Value) ([]byte, error) {
	return v.MarshalJSON()
}

// MarshalIndent encodes v with one element per line, like json.MarshalIndent.
func MarshalIndent(v Value, prefix, indent string) ([]byte, error) {
	compact, err := v.MarshalJSON()
	if err != nil {
		return nil, err
	}

	var out bytes.Buffer
	if err := json.Indent(&out, compact, prefix, indent); err != nil {
		return nil, err
	}

	return out.Bytes(), nil
}

func encodeValue(buf *bytes.Buffer, v Value) error {
	switch v.kind {
	case KindNull:
		buf.WriteString("null")
	case KindBool:
		if v.b {
			buf.WriteString("true")
		} else {
			buf.WriteString("false")
		}
	case KindNumber:
		buf.WriteString(string(v.num))
	case KindString:
		return encodeString(buf, v.str)
	case KindArray:
		buf.WriteByte('[')

		for i, item := range v.arr {
			if i > 0 {
				buf.WriteByte(',')
			}

			if err := encodeValue(buf, item); err != nil {
				return err
			}
		}

		buf.WriteByte(']')
	case KindObject:
		buf.WriteByte('{')

		var err error

		first := true
		v.obj.Range(func(key string, child Value) bool {
			if !first {
				buf.WriteByte(',')
			}

			first = false

			if err = encodeString(buf, key); err != nil {
				return false
			}

			buf.WriteByte(':')
			err = encodeValue(buf, child)

			return err == nil
		})

		if err != nil {
			return err
		}

		buf.WriteByte('}')
	}

	return nil
}

// encodeString writes s as a JSON string without HTML escaping, so listing
// URLs keep their '&' characters readable.
func encodeString(buf *bytes.Buffer, s string) error {
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)

	if err := enc.Encode(s); err != nil {
		return err
	}

	// Encode appends a newline.
	buf.Truncate(buf.Len() - 1)

	return nil
}
