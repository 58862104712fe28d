package tools

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"
)

// ErrArgument is returned when an argument has an unusable value.
var ErrArgument = errors.New("invalid argument")

// Args holds the arguments of a single tool call.
// Accessors never fail on a missing key; presence is the backend's concern.
type Args map[string]any

// DecodeArgs parses raw JSON arguments. Empty input yields empty Args.
// Numbers are kept as json.Number.
func DecodeArgs(raw json.RawMessage) (Args, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return Args{}, nil
	}
	var m map[string]any
	if err := unmarshalNumber(raw, &m); err != nil {
		return nil, fmt.Errorf("%w: arguments must be a JSON object: %v", ErrArgument, err)
	}
	if m == nil {
		m = map[string]any{}
	}
	return Args(m), nil
}

// Has reports whether key is present with a non-nil value.
func (a Args) Has(key string) bool {
	v, ok := a[key]
	return ok && v != nil
}

// String returns the value of key as a string, or "" when absent.
// Non-string scalars are formatted.
func (a Args) String(key string) string {
	v, ok := a[key]
	if !ok || v == nil {
		return ""
	}
	switch s := v.(type) {
	case string:
		return s
	case json.Number:
		return s.String()
	default:
		return fmt.Sprint(s)
	}
}

// StringOr returns the string value of key, or def when absent or empty.
func (a Args) StringOr(key, def string) string {
	if s := a.String(key); s != "" {
		return s
	}
	return def
}

// Or returns the value of key unchanged, or def when the value is absent,
// null, false, zero or the empty string. Type checking is left to the
// backend.
func (a Args) Or(key string, def any) any {
	v, ok := a[key]
	if !ok || empty(v) {
		return def
	}
	return v
}

func empty(v any) bool {
	switch x := v.(type) {
	case nil:
		return true
	case bool:
		return !x
	case string:
		return x == ""
	case json.Number:
		f, err := x.Float64()
		return err == nil && f == 0
	case float64:
		return x == 0 || math.IsNaN(x)
	case float32:
		return x == 0
	case int:
		return x == 0
	case int64:
		return x == 0
	case int32:
		return x == 0
	default:
		return false
	}
}

// Map returns the object value of key, or nil when absent or not an object.
func (a Args) Map(key string) map[string]any {
	m, _ := a[key].(map[string]any)
	return m
}

// Strings returns the string elements of an array value.
// Non-string elements are formatted.
func (a Args) Strings(key string) []string {
	switch v := a[key].(type) {
	case []string:
		return v
	case []any:
		out := make([]string, 0, len(v))
		for _, e := range v {
			if s, ok := e.(string); ok {
				out = append(out, s)
				continue
			}
			out = append(out, fmt.Sprint(e))
		}
		return out
	default:
		return nil
	}
}

// Pick returns a map with the listed keys that are present.
func (a Args) Pick(keys ...string) map[string]any {
	out := make(map[string]any, len(keys))
	for _, k := range keys {
		if a.Has(k) {
			out[k] = a[k]
		}
	}
	return out
}

// Without returns a copy of the arguments minus the listed keys.
func (a Args) Without(keys ...string) map[string]any {
	out := make(map[string]any, len(a))
	for k, v := range a {
		out[k] = v
	}
	for _, k := range keys {
		delete(out, k)
	}
	return out
}

func unmarshalNumber(data []byte, v any) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	return dec.Decode(v)
}
