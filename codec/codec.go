// Package codec provides the canonical structured-text encoding used across
// the toolkit: JSON, the platform's standard structured encoding.
//
// Decode is the typed counterpart of prototype-based object assembly: it
// starts from a template value, overlays the decoded fields on a copy of it
// and returns the copy, so fields absent from the text keep the template's
// values and the result carries the template type's behavior.
package codec

import (
	"encoding/json"
	"fmt"
)

// Encode returns the canonical textual serialization of v.
func Encode(v any) (string, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("encoding %T: %w", v, err)
	}
	return string(data), nil
}

// Decode parses text over a copy of template and returns the combined value.
// The template itself is never modified.
func Decode[T any](template T, text string) (T, error) {
	out := template
	if err := json.Unmarshal([]byte(text), &out); err != nil {
		return template, fmt.Errorf("decoding into %T: %w", template, err)
	}
	return out, nil
}
