package classname

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

var errUnexpectedToken = errors.New("unexpected JSON token")

// JSONValue decodes a class value from JSON.
//
// Unlike decoding into map[string]any, object keys keep their document order,
// so {"p-2": true, "p-4": true} resolves to "p-4".
type JSONValue struct {
	Value Value
}

// UnmarshalJSON implements [json.Unmarshaler].
func (j *JSONValue) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	v, err := decodeValue(dec)
	if err != nil {
		return fmt.Errorf("error decoding class value: %w", err)
	}
	j.Value = v
	return nil
}

// Values unwraps a slice of decoded values.
func Values(in []JSONValue) []Value {
	out := make([]Value, 0, len(in))
	for _, j := range in {
		if j.Value != nil {
			out = append(out, j.Value)
		}
	}
	return out
}

func decodeValue(dec *json.Decoder) (Value, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}

	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '[':
			return decodeList(dec)
		case '{':
			return decodeCond(dec)
		}
		return nil, fmt.Errorf("%w: %v", errUnexpectedToken, t)
	default:
		return FromAny(t), nil
	}
}

func decodeList(dec *json.Decoder) (Value, error) {
	var l List
	for dec.More() {
		v, err := decodeValue(dec)
		if err != nil {
			return nil, err
		}
		l = append(l, v)
	}
	if _, err := dec.Token(); err != nil { // ']'
		return nil, err
	}
	return l, nil
}

func decodeCond(dec *json.Decoder) (Value, error) {
	var c Cond
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("%w: object key %v", errUnexpectedToken, tok)
		}

		var raw any
		if err := dec.Decode(&raw); err != nil {
			return nil, err
		}
		c = append(c, Toggle{Class: key, On: truthy(raw)})
	}
	if _, err := dec.Token(); err != nil { // '}'
		return nil, err
	}
	return c, nil
}
