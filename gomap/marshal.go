package gomap

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/yesagainivan/cosy/ir"
)

// Encode converts a Go value to a value tree through encoding/json.
func Encode(v any) (*ir.Node, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encode: %w", err)
	}
	return FromJSON(data)
}

// Decode fills ptr from a value tree through encoding/json.
func Decode(node *ir.Node, ptr any) error {
	data, err := json.Marshal(ToAny(node))
	if err != nil {
		return fmt.Errorf("decode: %w", err)
	}
	if err := json.Unmarshal(data, ptr); err != nil {
		return fmt.Errorf("decode: %w", err)
	}
	return nil
}

// FromJSON parses JSON into a value tree. Numbers stay integers when
// they have no point or exponent.
func FromJSON(data []byte) (*ir.Node, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, fmt.Errorf("from json: %w", err)
	}
	return FromAny(v)
}
