// Package codec converts between Go values and their JSON text form.
//
// ToJSON and FromJSON are symmetric: encoding a value and decoding the text
// back yields a semantically equal value. FromJSON decodes into a copy of a
// prototype value, so the result keeps the prototype's concrete type and
// method set, and fields the text does not mention keep the prototype's
// values.
package codec

import (
	"encoding/json"
	"fmt"
)

// ToJSON returns the JSON encoding of v as a string. Struct fields appear in
// declaration order and map keys are sorted, so output is deterministic.
func ToJSON(v any) (string, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("encode %T: %w", v, err)
	}
	return string(data), nil
}

// ToJSONIndent is ToJSON with the given prefix and indent applied to each
// line, for human-readable output.
func ToJSONIndent(v any, prefix, indent string) (string, error) {
	data, err := json.MarshalIndent(v, prefix, indent)
	if err != nil {
		return "", fmt.Errorf("encode %T: %w", v, err)
	}
	return string(data), nil
}

// FromJSON decodes text into a copy of proto and returns the copy. Fields
// absent from the text keep the prototype's values; on a decode error the
// zero value is returned instead.
func FromJSON[T any](proto T, text string) (T, error) {
	out := proto
	if err := json.Unmarshal([]byte(text), &out); err != nil {
		var zero T
		return zero, fmt.Errorf("decode into %T: %w", out, err)
	}
	return out, nil
}
