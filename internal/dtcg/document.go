package dtcg

import (
	"bytes"
	"fmt"
	"io"

	"github.com/goccy/go-json"
)

// Object is a JSON object that remembers the order its keys were declared in.
// Validation output order is defined as declaration order, so the standard
// map-based decoding is not enough here.
type Object struct {
	keys   []string
	fields map[string]any
}

// NewObject returns an empty ordered object.
func NewObject() *Object {
	return &Object{fields: make(map[string]any)}
}

// Set stores a value under key, keeping the key's first declaration position.
func (o *Object) Set(key string, value any) {
	if _, ok := o.fields[key]; !ok {
		o.keys = append(o.keys, key)
	}
	o.fields[key] = value
}

// Get returns the value stored under key.
func (o *Object) Get(key string) (any, bool) {
	v, ok := o.fields[key]
	return v, ok
}

// Has reports whether key is present.
func (o *Object) Has(key string) bool {
	_, ok := o.fields[key]
	return ok
}

// Keys returns the keys in declaration order.
// Do not modify the returned slice, it aliases internal state.
func (o *Object) Keys() []string {
	return o.keys
}

// Len returns the number of keys.
func (o *Object) Len() int {
	return len(o.keys)
}

// GetString returns the value under key if it is a string.
func (o *Object) GetString(key string) (string, bool) {
	v, ok := o.fields[key]
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

// Parse decodes raw JSON into an ordered value tree. Objects become *Object,
// arrays []any, and scalars string/float64/bool/nil.
func Parse(raw []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	tok, err := dec.Token()
	if err != nil {
		if err == io.EOF {
			return nil, fmt.Errorf("unexpected end of input")
		}
		return nil, err
	}
	v, err := decodeValue(dec, tok)
	if err != nil {
		return nil, err
	}
	if dec.More() {
		return nil, fmt.Errorf("unexpected data after top-level value")
	}
	return v, nil
}

// ParseObject is Parse restricted to an object root.
func ParseObject(raw []byte) (*Object, error) {
	v, err := Parse(raw)
	if err != nil {
		return nil, err
	}
	obj, ok := v.(*Object)
	if !ok {
		return nil, errRootNotObject
	}
	return obj, nil
}

var errRootNotObject = fmt.Errorf("root is not an object")

// IsErrRootNotObject reports whether err came from a non-object root.
func IsErrRootNotObject(err error) bool {
	return err == errRootNotObject
}

func decodeValue(dec *json.Decoder, tok json.Token) (any, error) {
	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			return decodeObject(dec)
		case '[':
			return decodeArray(dec)
		}
		return nil, fmt.Errorf("unexpected delimiter %q", t.String())
	default:
		// string, float64, bool or nil straight from the decoder.
		return tok, nil
	}
}

func decodeObject(dec *json.Decoder) (*Object, error) {
	obj := NewObject()
	for {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		if d, ok := tok.(json.Delim); ok && d == '}' {
			return obj, nil
		}
		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("object key is not a string")
		}
		tok, err = dec.Token()
		if err != nil {
			return nil, err
		}
		val, err := decodeValue(dec, tok)
		if err != nil {
			return nil, err
		}
		obj.Set(key, val)
	}
}

func decodeArray(dec *json.Decoder) ([]any, error) {
	arr := make([]any, 0, 4)
	for {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		if d, ok := tok.(json.Delim); ok && d == ']' {
			return arr, nil
		}
		val, err := decodeValue(dec, tok)
		if err != nil {
			return nil, err
		}
		arr = append(arr, val)
	}
}
