package config

import (
	"runtime"
	"time"
)

// Config holds scheduler-wide configuration.
// All configuration options are centralized here for easy management and validation.
type Config struct {
	// Execution limits
	MaxExecutionTime  time.Duration // Maximum wall-clock time for an entire execution
	MaxNodeExecutions int           // Maximum total node executions per run (0 = unlimited)

	// Concurrency
	WorkerPoolSize int // Number of worker goroutines the scheduler runs concurrently (0 = runtime.NumCPU())

	// State limits
	MaxVariables int // Maximum number of distinct variables a run may set (0 = unlimited)

	// Cache configuration
	DefaultCacheTTL time.Duration // Default TTL applied to cache_set nodes that don't specify one
	MaxCacheSize    int           // Maximum number of cache entries (0 = unlimited)

	// Graph size limits
	MaxNodes int // Maximum number of nodes a submitted graph may contain (0 = unlimited)
	MaxEdges int // Maximum number of edges a submitted graph may contain (0 = unlimited)

	// Retry configuration, for node kinds that choose to retry internally;
	// the scheduler itself never retries a failed node.
	DefaultMaxAttempts int           // Default max retry attempts
	DefaultBackoff     time.Duration // Default initial backoff delay
}

// Default returns a Config with sensible production defaults.
func Default() *Config {
	return &Config{
		MaxExecutionTime:  5 * time.Minute,
		MaxNodeExecutions: 0, // unlimited

		WorkerPoolSize: runtime.NumCPU(),

		MaxVariables: 0, // unlimited

		DefaultCacheTTL: 1 * time.Hour,
		MaxCacheSize:    1000,

		MaxNodes: 1000,
		MaxEdges: 5000,

		DefaultMaxAttempts: 3,
		DefaultBackoff:     1 * time.Second,
	}
}

// Testing returns a Config tuned for fast, deterministic tests: a short
// execution timeout and a single worker so node start order is
// reproducible.
func Testing() *Config {
	cfg := Default()
	cfg.MaxExecutionTime = 10 * time.Second
	cfg.WorkerPoolSize = 1
	return cfg
}

// Validate checks if the configuration values are valid.
func (c *Config) Validate() error {
	if c.MaxExecutionTime < 0 {
		return ErrInvalidExecutionTime
	}
	if c.MaxNodeExecutions < 0 {
		return ErrInvalidMaxNodeExecutions
	}
	if c.WorkerPoolSize < 0 {
		return ErrInvalidWorkerPoolSize
	}
	if c.MaxVariables < 0 {
		return ErrInvalidMaxVariables
	}
	if c.DefaultCacheTTL < 0 {
		return ErrInvalidCacheTTL
	}
	if c.MaxCacheSize < 0 {
		return ErrInvalidMaxCacheSize
	}
	if c.MaxNodes < 0 {
		return ErrInvalidMaxNodes
	}
	if c.MaxEdges < 0 {
		return ErrInvalidMaxEdges
	}
	if c.DefaultMaxAttempts < 0 {
		return ErrInvalidMaxAttempts
	}
	if c.DefaultBackoff < 0 {
		return ErrInvalidBackoff
	}
	return nil
}

// Clone creates a copy of the configuration. Config holds no pointer or
// slice fields, so a plain value copy suffices.
func (c *Config) Clone() *Config {
	clone := *c
	return &clone
}

// EffectiveWorkerPoolSize returns WorkerPoolSize, falling back to
// runtime.NumCPU() when it is unset.
func (c *Config) EffectiveWorkerPoolSize() int {
	if c.WorkerPoolSize > 0 {
		return c.WorkerPoolSize
	}
	return runtime.NumCPU()
}
