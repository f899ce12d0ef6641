// Package json routes every encode/decode in the server through jsoniter.
package json

import (
	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

var (
	Marshal    = json.Marshal
	Unmarshal  = json.Unmarshal
	NewDecoder = json.NewDecoder
	NewEncoder = json.NewEncoder
)

type RawMessage = jsoniter.RawMessage

// MarshalToString encodes v for a text tool result.
func MarshalToString(v any) (string, error) {
	return json.MarshalToString(v)
}

// Get reads a nested value out of raw API bytes without decoding the whole
// document, e.g. Get(body, "data", "wbi_img", "img_url").
func Get(data []byte, path ...interface{}) jsoniter.Any {
	return json.Get(data, path...)
}
