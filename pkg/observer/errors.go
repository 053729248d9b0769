package observer

import "errors"

// ErrObserverPanic describes an observer callback panicking. The Bundle
// Notify* methods do not use it: their recovery hook receives the value
// recover returned.
var ErrObserverPanic = errors.New("observer callback panicked")
