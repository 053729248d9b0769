package paramtype

import "fmt"

// Kind names a registered parameter type, e.g. "string" or "image".
type Kind string

// Built-in kinds required by every registry (spec §4.1).
const (
	KindString   Kind = "string"
	KindNumber   Kind = "number"
	KindBoolean  Kind = "boolean"
	KindArray    Kind = "array"
	KindJSON     Kind = "json"
	KindBinary   Kind = "binary"
	KindImage    Kind = "image"
	KindAudio    Kind = "audio"
	KindDocument Kind = "document"
	// KindAny always validates and bypasses edge type-compatibility checks.
	KindAny Kind = "any"
)

// Value is a tagged parameter value matching a registered Kind. Once handed
// to a downstream reader it is treated as immutable.
type Value struct {
	Kind    Kind
	Payload any
}

// BytesPayload is the in-memory shape for binary/image/audio/document kinds:
// a byte sequence plus a MIME type.
type BytesPayload struct {
	Data     []byte
	MimeType string
}

func (v Value) String() string {
	return fmt.Sprintf("Value{%s: %v}", v.Kind, v.Payload)
}

// Codec is the capability bundle every registered kind must provide.
type Codec interface {
	// Validate reports whether value is well-formed for this kind.
	Validate(value any) error
	// Serialize produces a transport-safe representation of value.
	Serialize(value any) (any, error)
	// Deserialize is the inverse of Serialize, tolerant of values produced
	// by older encodings where feasible.
	Deserialize(wire any) (any, error)
	// Default returns the canonical empty value for the kind.
	Default() any
}

// Compatible reports whether a value of kind `from` may flow into a port
// declared as kind `to` — equal kinds, or either side `any` (spec §4.1).
func Compatible(from, to Kind) bool {
	return from == to || from == KindAny || to == KindAny
}
