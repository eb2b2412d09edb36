package jsonx

import (
	"fmt"

	jsoniter "github.com/json-iterator/go"
)

var (
	json          = jsoniter.ConfigCompatibleWithStandardLibrary
	Marshal       = json.Marshal
	Unmarshal     = json.Unmarshal
	MarshalIndent = json.MarshalIndent
	NewDecoder    = json.NewDecoder
	NewEncoder    = json.NewEncoder
)

// RawMessage is kept as a distinct name so callers need only this package.
type RawMessage = jsoniter.RawMessage

// MarshalToString encodes v, returning "" on failure.
func MarshalToString(v any) string {
	s, err := json.MarshalToString(v)
	if err != nil {
		return ""
	}
	return s
}

// CopyByJSON round-trips src through JSON into dst. Fields absent from
// src keep their current value in dst.
func CopyByJSON(dst, src any) error {
	if dst == nil {
		return fmt.Errorf("dst cannot be nil")
	}
	if src == nil {
		return fmt.Errorf("src cannot be nil")
	}
	b, err := Marshal(src)
	if err != nil {
		return fmt.Errorf("marshal src: %w", err)
	}
	if err := Unmarshal(b, dst); err != nil {
		return fmt.Errorf("unmarshal into dst: %w", err)
	}
	return nil
}

// IsArray reports whether raw holds a JSON array.
func IsArray(raw []byte) bool {
	for _, c := range raw {
		switch c {
		case ' ', '\t', '\r', '\n':
			continue
		case '[':
			return true
		}
		return false
	}
	return false
}
