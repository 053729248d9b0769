package config

import "errors"

// Sentinel errors for configuration validation
var (
	ErrInvalidExecutionTime     = errors.New("invalid max execution time: must be non-negative")
	ErrInvalidMaxNodeExecutions = errors.New("invalid max node executions: must be non-negative")
	ErrInvalidWorkerPoolSize    = errors.New("invalid worker pool size: must be non-negative")
	ErrInvalidMaxVariables      = errors.New("invalid max variables: must be non-negative")
	ErrInvalidCacheTTL          = errors.New("invalid cache TTL: must be non-negative")
	ErrInvalidMaxCacheSize      = errors.New("invalid max cache size: must be non-negative")
	ErrInvalidMaxNodes          = errors.New("invalid max nodes: must be non-negative")
	ErrInvalidMaxEdges          = errors.New("invalid max edges: must be non-negative")
	ErrInvalidMaxAttempts       = errors.New("invalid max attempts: must be non-negative")
	ErrInvalidBackoff           = errors.New("invalid backoff duration: must be non-negative")
)
