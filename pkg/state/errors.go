package state

import "errors"

// ErrMaxVariablesExceeded describes a new variable past
// config.Config.MaxVariables. The runtime's execution context enforces that
// limit by logging and dropping the write; it does not return this error.
var ErrMaxVariablesExceeded = errors.New("maximum variables exceeded")

// ErrMaxCacheSizeExceeded describes a new cache entry past
// config.Config.MaxCacheSize. The runtime's execution context enforces that
// limit by logging and dropping the write; it does not return this error.
var ErrMaxCacheSizeExceeded = errors.New("maximum cache size exceeded")
