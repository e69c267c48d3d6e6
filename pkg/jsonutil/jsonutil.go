package jsonutil

import (
	"encoding/json"
	"strings"
)

// MarshalString marshals the provided value to a JSON string.
func MarshalString[T any](value T) (string, error) {
	buf, err := json.Marshal(value)
	if err != nil {
		return "", err
	}
	return string(buf), nil
}

// MarshalMapString marshals a map to a JSON string, substituting an empty map when nil.
func MarshalMapString[K comparable, V any](m map[K]V) (string, error) {
	if m == nil {
		m = map[K]V{}
	}
	return MarshalString(m)
}

// UnmarshalString decodes a JSON string into a new value of type T.
// Unknown fields are rejected.
func UnmarshalString[T any](s string) (T, error) {
	var value T

	dec := json.NewDecoder(strings.NewReader(s))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&value); err != nil {
		return value, err
	}

	return value, nil
}
