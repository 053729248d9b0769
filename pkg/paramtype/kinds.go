package paramtype

import (
	"encoding/base64"
	"fmt"
)

// Default builds a Registry with the nine built-in kinds plus any,
// matching spec §4.1 exactly. Call once at startup; the returned registry
// is safe to share across every Scheduler built afterward.
func Default() *Registry {
	r := NewRegistry()
	r.MustRegister(KindString, stringCodec{})
	r.MustRegister(KindNumber, numberCodec{})
	r.MustRegister(KindBoolean, booleanCodec{})
	r.MustRegister(KindArray, arrayCodec{})
	r.MustRegister(KindJSON, jsonCodec{})
	r.MustRegister(KindBinary, bytesCodec{allowed: nil})
	r.MustRegister(KindImage, bytesCodec{allowed: []string{"image/png", "image/jpeg"}})
	r.MustRegister(KindAudio, bytesCodec{allowed: []string{"audio/mpeg", "audio/webm"}})
	r.MustRegister(KindDocument, bytesCodec{allowed: nil})
	r.MustRegister(KindAny, anyCodec{})
	return r
}

// ---------------------------------------------------------------------------
// string
// ---------------------------------------------------------------------------

type stringCodec struct{}

func (stringCodec) Validate(value any) error {
	if _, ok := value.(string); !ok {
		return ErrInvalidValue(KindString, "not a textual value")
	}
	return nil
}

func (stringCodec) Serialize(value any) (any, error) {
	s, ok := value.(string)
	if !ok {
		return nil, ErrInvalidValue(KindString, "not a textual value")
	}
	return s, nil
}

func (stringCodec) Deserialize(wire any) (any, error) {
	switch v := wire.(type) {
	case string:
		return v, nil
	case fmt.Stringer:
		return v.String(), nil
	default:
		return nil, ErrInvalidValue(KindString, "wire form is not textual")
	}
}

func (stringCodec) Default() any { return "" }

// ---------------------------------------------------------------------------
// number
// ---------------------------------------------------------------------------

type numberCodec struct{}

func (numberCodec) Validate(value any) error {
	f, ok := asFloat(value)
	if !ok {
		return ErrInvalidValue(KindNumber, "not a numeric scalar")
	}
	if isNaNOrInf(f) {
		return ErrInvalidValue(KindNumber, "not a finite numeric scalar")
	}
	return nil
}

func (numberCodec) Serialize(value any) (any, error) {
	f, ok := asFloat(value)
	if !ok {
		return nil, ErrInvalidValue(KindNumber, "not a numeric scalar")
	}
	return f, nil
}

func (numberCodec) Deserialize(wire any) (any, error) {
	f, ok := asFloat(wire)
	if !ok {
		return nil, ErrInvalidValue(KindNumber, "wire form is not numeric")
	}
	return f, nil
}

func (numberCodec) Default() any { return 0.0 }

func asFloat(value any) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	default:
		return 0, false
	}
}

func isNaNOrInf(f float64) bool {
	return f != f || f > maxFinite || f < -maxFinite
}

const maxFinite = 1.7976931348623157e+308

// ---------------------------------------------------------------------------
// boolean
// ---------------------------------------------------------------------------

type booleanCodec struct{}

func (booleanCodec) Validate(value any) error {
	if _, ok := value.(bool); !ok {
		return ErrInvalidValue(KindBoolean, "not a boolean value")
	}
	return nil
}

func (booleanCodec) Serialize(value any) (any, error) {
	b, ok := value.(bool)
	if !ok {
		return nil, ErrInvalidValue(KindBoolean, "not a boolean value")
	}
	return b, nil
}

func (booleanCodec) Deserialize(wire any) (any, error) {
	b, ok := wire.(bool)
	if !ok {
		return nil, ErrInvalidValue(KindBoolean, "wire form is not boolean")
	}
	return b, nil
}

func (booleanCodec) Default() any { return false }

// ---------------------------------------------------------------------------
// array
// ---------------------------------------------------------------------------

type arrayCodec struct{}

func (arrayCodec) Validate(value any) error {
	if _, ok := value.([]any); !ok {
		return ErrInvalidValue(KindArray, "not an ordered sequence")
	}
	return nil
}

func (arrayCodec) Serialize(value any) (any, error) {
	arr, ok := value.([]any)
	if !ok {
		return nil, ErrInvalidValue(KindArray, "not an ordered sequence")
	}
	return arr, nil
}

func (arrayCodec) Deserialize(wire any) (any, error) {
	switch v := wire.(type) {
	case []any:
		return v, nil
	case nil:
		return []any{}, nil
	default:
		return nil, ErrInvalidValue(KindArray, "wire form is not an array")
	}
}

func (arrayCodec) Default() any { return []any{} }

// ---------------------------------------------------------------------------
// json
// ---------------------------------------------------------------------------

type jsonCodec struct{}

func (jsonCodec) Validate(value any) error {
	if value == nil {
		return ErrInvalidValue(KindJSON, "must not be null")
	}
	switch value.(type) {
	case map[string]any, []any:
		return nil
	default:
		return ErrInvalidValue(KindJSON, "must be a structured value (object or array)")
	}
}

func (jsonCodec) Serialize(value any) (any, error) {
	if err := (jsonCodec{}).Validate(value); err != nil {
		return nil, err
	}
	return value, nil
}

func (jsonCodec) Deserialize(wire any) (any, error) {
	if err := (jsonCodec{}).Validate(wire); err != nil {
		return nil, err
	}
	return wire, nil
}

func (jsonCodec) Default() any { return map[string]any{} }

// ---------------------------------------------------------------------------
// binary / image / audio / document
// ---------------------------------------------------------------------------

// bytesCodec backs binary, image, audio, and document — each differs only in
// which MIME types are permitted (nil means "any mime type", per spec §4.1's
// document/binary contracts).
type bytesCodec struct {
	allowed []string
}

func (c bytesCodec) Validate(value any) error {
	p, ok := value.(BytesPayload)
	if !ok {
		return ErrInvalidValue(KindBinary, "not a byte sequence plus mime-type")
	}
	if p.MimeType == "" {
		return ErrInvalidValue(KindBinary, "missing mime-type")
	}
	if len(c.allowed) == 0 {
		return nil
	}
	for _, m := range c.allowed {
		if m == p.MimeType {
			return nil
		}
	}
	return ErrInvalidValue(KindBinary, fmt.Sprintf("mime-type %s not permitted", p.MimeType))
}

func (c bytesCodec) Serialize(value any) (any, error) {
	if err := c.Validate(value); err != nil {
		return nil, err
	}
	p := value.(BytesPayload)
	return map[string]any{
		"mimeType": p.MimeType,
		"data":     base64.StdEncoding.EncodeToString(p.Data),
	}, nil
}

func (c bytesCodec) Deserialize(wire any) (any, error) {
	m, ok := wire.(map[string]any)
	if !ok {
		return nil, ErrInvalidValue(KindBinary, "wire form is not an object")
	}
	mimeType, _ := m["mimeType"].(string)
	encoded, _ := m["data"].(string)
	data, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, ErrInvalidValue(KindBinary, "data is not valid base64")
	}
	payload := BytesPayload{Data: data, MimeType: mimeType}
	if err := c.Validate(payload); err != nil {
		return nil, err
	}
	return payload, nil
}

func (bytesCodec) Default() any { return BytesPayload{} }

// ---------------------------------------------------------------------------
// any
// ---------------------------------------------------------------------------

type anyCodec struct{}

func (anyCodec) Validate(any) error                { return nil }
func (anyCodec) Serialize(value any) (any, error)  { return value, nil }
func (anyCodec) Deserialize(wire any) (any, error) { return wire, nil }
func (anyCodec) Default() any                      { return nil }
