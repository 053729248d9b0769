// Package config provides scheduler configuration.
//
// # Overview
//
// The config package centralizes the limits and defaults the scheduler
// enforces across a run: execution timeouts, worker pool sizing, cache
// behavior, graph size caps, and internal node retry defaults.
//
// # Basic Usage
//
//	import "github.com/weavegraph/weave/pkg/config"
//
//	cfg := config.Default()
//	sched := runtime.NewScheduler(doc, registry, cfg)
//
// # Default Configuration
//
//	MaxExecutionTime:   5 minutes
//	MaxNodeExecutions:  unlimited
//	WorkerPoolSize:     runtime.NumCPU()
//	MaxVariables:       unlimited
//	DefaultCacheTTL:    1 hour
//	MaxCacheSize:       1000
//	MaxNodes:           1000
//	MaxEdges:           5000
//	DefaultMaxAttempts: 3
//	DefaultBackoff:     1 second
//
// # Thread Safety
//
// Config values are read-only once constructed; Clone returns an
// independent copy for callers who need to tweak a field without
// mutating a shared default.
package config
