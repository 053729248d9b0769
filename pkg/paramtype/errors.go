package paramtype

import "fmt"

// ErrUnknownKind creates an error for a kind string with no registered entry.
func ErrUnknownKind(kind Kind) error {
	return fmt.Errorf("paramtype: unknown kind: %s", kind)
}

// ErrInvalidValue creates an error for a value that fails a kind's Validate.
func ErrInvalidValue(kind Kind, reason string) error {
	return fmt.Errorf("paramtype: invalid %s value: %s", kind, reason)
}

// ErrDuplicateKind creates an error for re-registering an existing kind.
func ErrDuplicateKind(kind Kind) error {
	return fmt.Errorf("paramtype: kind already registered: %s", kind)
}
