package nodetype

import "fmt"

// ErrUnknownKind reports that no descriptor/factory is registered for kind.
func ErrUnknownKind(kind string) error {
	return fmt.Errorf("nodetype: unknown node kind %q", kind)
}

// ErrDuplicateKind reports an attempt to register an already-registered kind.
func ErrDuplicateKind(kind string) error {
	return fmt.Errorf("nodetype: node kind %q already registered", kind)
}
