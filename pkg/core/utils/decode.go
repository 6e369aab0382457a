// Package utils holds small input-handling helpers shared by the CLI and
// API layers.
package utils

import (
	"encoding/json"
	"fmt"

	hjson "github.com/hjson/hjson-go/v4"
)

// ParseHJSON parses Human-friendly JSON (Hjson) and returns standard JSON.
// Hjson supports:
// - Comments (# // /* */)
// - Unquoted keys
// - Optional commas
// - Multiline strings
//
// This makes hand-written project files pleasant to maintain.
func ParseHJSON(data string) (string, error) {
	var result interface{}
	if err := hjson.Unmarshal([]byte(data), &result); err != nil {
		return "", fmt.Errorf("HJSON_PARSE_ERROR: %v", err)
	}

	jsonBytes, err := json.Marshal(result)
	if err != nil {
		return "", fmt.Errorf("JSON_MARSHAL_ERROR: %v", err)
	}
	return string(jsonBytes), nil
}

// DecodeLenient decodes a user-supplied document into schema, trying
// strict JSON first and falling back to Hjson. Order of attempts:
// 1. Standard JSON parse
// 2. Hjson parse (most lenient)
func DecodeLenient(data []byte, schema interface{}) error {
	// Try 1: Standard JSON
	if err := json.Unmarshal(data, schema); err == nil {
		return nil
	}

	// Try 2: Hjson
	normalized, err := ParseHJSON(string(data))
	if err == nil {
		if err := json.Unmarshal([]byte(normalized), schema); err == nil {
			return nil
		}
	}

	return fmt.Errorf("DECODE_FAILED: input is neither valid JSON nor Hjson")
}
