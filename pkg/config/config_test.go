package config

import "testing"

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("default config should validate, got %v", err)
	}
}

func TestTestingHasSingleWorker(t *testing.T) {
	cfg := Testing()
	if cfg.WorkerPoolSize != 1 {
		t.Fatalf("expected WorkerPoolSize 1, got %d", cfg.WorkerPoolSize)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("testing config should validate, got %v", err)
	}
}

func TestValidateRejectsNegativeFields(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr error
	}{
		{"execution time", func(c *Config) { c.MaxExecutionTime = -1 }, ErrInvalidExecutionTime},
		{"node executions", func(c *Config) { c.MaxNodeExecutions = -1 }, ErrInvalidMaxNodeExecutions},
		{"worker pool size", func(c *Config) { c.WorkerPoolSize = -1 }, ErrInvalidWorkerPoolSize},
		{"max variables", func(c *Config) { c.MaxVariables = -1 }, ErrInvalidMaxVariables},
		{"cache ttl", func(c *Config) { c.DefaultCacheTTL = -1 }, ErrInvalidCacheTTL},
		{"cache size", func(c *Config) { c.MaxCacheSize = -1 }, ErrInvalidMaxCacheSize},
		{"max nodes", func(c *Config) { c.MaxNodes = -1 }, ErrInvalidMaxNodes},
		{"max edges", func(c *Config) { c.MaxEdges = -1 }, ErrInvalidMaxEdges},
		{"max attempts", func(c *Config) { c.DefaultMaxAttempts = -1 }, ErrInvalidMaxAttempts},
		{"backoff", func(c *Config) { c.DefaultBackoff = -1 }, ErrInvalidBackoff},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			if err := cfg.Validate(); err != tt.wantErr {
				t.Fatalf("got %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestCloneIsIndependent(t *testing.T) {
	cfg := Default()
	clone := cfg.Clone()
	clone.MaxNodes = 1

	if cfg.MaxNodes == 1 {
		t.Fatal("expected clone mutation not to affect original")
	}
}

func TestEffectiveWorkerPoolSizeFallsBackWhenUnset(t *testing.T) {
	cfg := Default()
	cfg.WorkerPoolSize = 0

	if cfg.EffectiveWorkerPoolSize() <= 0 {
		t.Fatal("expected a positive fallback worker pool size")
	}
}
