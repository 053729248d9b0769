package server

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/weavegraph/weave/pkg/config"
	"github.com/weavegraph/weave/pkg/health"
	"github.com/weavegraph/weave/pkg/logging"
	"github.com/weavegraph/weave/pkg/nodes"
	"github.com/weavegraph/weave/pkg/nodetype"
	"github.com/weavegraph/weave/pkg/paramtype"
	"github.com/weavegraph/weave/pkg/runtime"
	"github.com/weavegraph/weave/pkg/storage"
	"github.com/weavegraph/weave/pkg/telemetry"
	"github.com/weavegraph/weave/pkg/types"
	"github.com/weavegraph/weave/pkg/validate"
)

// Config holds server configuration
type Config struct {
	// Address to listen on (e.g., ":8080")
	Address string

	// ReadTimeout for HTTP requests
	ReadTimeout time.Duration

	// WriteTimeout for HTTP responses
	WriteTimeout time.Duration

	// ShutdownTimeout for graceful shutdown
	ShutdownTimeout time.Duration

	// MaxRequestBodySize limits request body size
	MaxRequestBodySize int64

	// EnableCORS enables CORS headers
	EnableCORS bool
}

// DefaultConfig returns default server configuration
func DefaultConfig() Config {
	return Config{
		Address:            ":8080",
		ReadTimeout:        30 * time.Second,
		WriteTimeout:       30 * time.Second,
		ShutdownTimeout:    10 * time.Second,
		MaxRequestBodySize: 10 * 1024 * 1024, // 10MB
		EnableCORS:         true,
	}
}

// Server is the HTTP API server embedding the scheduler as a reference
// transport (the core module's contract stops at pkg/runtime.Scheduler;
// HTTP is one possible embedder among others).
type Server struct {
	config            Config
	httpServer        *http.Server
	healthChecker     *health.Checker
	telemetryProvider *telemetry.Provider
	logger            *logging.Logger
	schedulerConfig   *config.Config
	nodeRegistry      *nodetype.Registry
	paramRegistry     *paramtype.Registry
	modelInvoker      nodetype.ModelInvoker
	store             storage.Store
	inFlight          health.Counter
}

// New creates a new server instance. modelInvoker may be nil; model_invoke
// nodes then fail at execution time with a descriptive error rather than
// the server importing a concrete AI backend itself.
func New(cfg Config, schedulerConfig *config.Config, modelInvoker nodetype.ModelInvoker) (*Server, error) {
	logger := logging.New(logging.DefaultConfig())

	telemetryConfig := telemetry.DefaultConfig()
	telemetryProvider, err := telemetry.NewProvider(context.Background(), telemetryConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create telemetry provider: %w", err)
	}

	if schedulerConfig == nil {
		schedulerConfig = config.Default()
	}

	healthChecker := health.NewChecker("weave-workflow-runtime", "0.1.0")

	server := &Server{
		config:            cfg,
		healthChecker:     healthChecker,
		telemetryProvider: telemetryProvider,
		logger:            logger,
		schedulerConfig:   schedulerConfig,
		nodeRegistry:      nodes.DefaultRegistry(),
		paramRegistry:     paramtype.Default(),
		modelInvoker:      modelInvoker,
		store:             storage.NewInMemoryStore(),
	}

	healthChecker.RegisterCheck("scheduler",
		health.ExecutionPressureCheck(func() int { return server.inFlight.Value() }, schedulerConfig.EffectiveWorkerPoolSize()*4),
		5*time.Second, true)

	mux := http.NewServeMux()
	server.registerRoutes(mux)

	server.httpServer = &http.Server{
		Addr:         cfg.Address,
		Handler:      server.middlewareChain(mux),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	return server, nil
}

// registerRoutes registers all HTTP routes
func (s *Server) registerRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/health", s.healthChecker.HTTPHandler())
	mux.HandleFunc("/health/live", s.healthChecker.LivenessHandler())
	mux.HandleFunc("/health/ready", s.healthChecker.ReadinessHandler())

	mux.Handle("/metrics", promhttp.Handler())

	mux.HandleFunc("/api/v1/graph/execute", s.handleExecuteGraph)
	mux.HandleFunc("/api/v1/graph/validate", s.handleValidateGraph)

	mux.HandleFunc("/api/v1/graph/save", s.handleSaveGraph)
	mux.HandleFunc("/api/v1/graph/list", s.handleListGraphs)
	mux.HandleFunc("/api/v1/graph/load/", s.handleLoadGraph)
	mux.HandleFunc("/api/v1/graph/delete/", s.handleDeleteGraph)
	mux.HandleFunc("/api/v1/graph/execute-by-id/", s.handleExecuteGraphByID)
}

// middlewareChain applies middleware to the handler
func (s *Server) middlewareChain(handler http.Handler) http.Handler {
	if s.config.EnableCORS {
		handler = s.corsMiddleware(handler)
	}
	handler = s.loggingMiddleware(handler)
	handler = s.recoveryMiddleware(handler)
	return handler
}

func (s *Server) decodeGraphDocument(w http.ResponseWriter, r *http.Request) (types.GraphDocument, bool) {
	r.Body = http.MaxBytesReader(w, r.Body, s.config.MaxRequestBodySize)

	body, err := io.ReadAll(r.Body)
	if err != nil {
		s.writeErrorResponse(w, "Failed to read request body", http.StatusBadRequest, err)
		return types.GraphDocument{}, false
	}

	var doc types.GraphDocument
	if err := json.Unmarshal(body, &doc); err != nil {
		s.writeErrorResponse(w, "Failed to parse graph document", http.StatusBadRequest, err)
		return types.GraphDocument{}, false
	}
	return doc, true
}

// handleExecuteGraph handles workflow execution requests
func (s *Server) handleExecuteGraph(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	doc, ok := s.decodeGraphDocument(w, r)
	if !ok {
		return
	}

	if errs := validate.Validate(doc, s.nodeRegistry, s.paramRegistry); len(errs) > 0 {
		s.writeJSONResponse(w, http.StatusUnprocessableEntity, map[string]any{
			"valid":  false,
			"errors": errs,
		})
		return
	}

	startTime := time.Now()
	sched := runtime.NewScheduler(doc, s.nodeRegistry, s.schedulerConfig).
		WithLogger(s.logger).
		WithModelInvoker(s.modelInvoker)

	s.inFlight.Inc()
	bundle := telemetry.NewBundle(r.Context(), s.telemetryProvider, doc.ID, "")
	state, err := sched.Execute(r.Context(), bundle)
	s.inFlight.Dec()
	duration := time.Since(startTime)

	success := err == nil && state != nil && !state.Aborted
	nodesExecuted := 0
	if state != nil {
		nodesExecuted = len(state.Status)
	}
	s.telemetryProvider.RecordWorkflowExecution(r.Context(), doc.ID, duration, success, nodesExecuted)

	if err != nil {
		s.writeErrorResponse(w, "Workflow execution failed", http.StatusInternalServerError, err)
		return
	}

	s.writeJSONResponse(w, http.StatusOK, map[string]any{
		"success":        !state.Aborted,
		"state":          state,
		"execution_time": duration.String(),
	})
}

// handleValidateGraph handles workflow validation requests
func (s *Server) handleValidateGraph(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	doc, ok := s.decodeGraphDocument(w, r)
	if !ok {
		return
	}

	errs := validate.Validate(doc, s.nodeRegistry, s.paramRegistry)
	s.writeJSONResponse(w, http.StatusOK, map[string]any{
		"valid":  len(errs) == 0,
		"errors": errs,
	})
}

// writeJSONResponse writes a JSON response
func (s *Server) writeJSONResponse(w http.ResponseWriter, statusCode int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.logger.WithError(err).Error("failed to encode response")
	}
}

// writeErrorResponse writes an error response
func (s *Server) writeErrorResponse(w http.ResponseWriter, message string, statusCode int, err error) {
	s.logger.WithError(err).WithField("status_code", statusCode).Error(message)

	s.writeJSONResponse(w, statusCode, map[string]any{
		"success": false,
		"error":   message,
		"details": err.Error(),
	})
}

// Start starts the HTTP server
func (s *Server) Start() error {
	s.logger.WithField("address", s.config.Address).Info("starting server")

	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down server")

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to shutdown http server: %w", err)
	}

	if err := s.telemetryProvider.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to shutdown telemetry: %w", err)
	}

	s.logger.Info("server shutdown complete")
	return nil
}

// corsMiddleware adds CORS headers
func (s *Server) corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// loggingMiddleware logs HTTP requests
func (s *Server) loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		startTime := time.Now()

		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}

		next.ServeHTTP(rw, r)

		duration := time.Since(startTime)

		s.logger.WithFields(map[string]any{
			"method":      r.Method,
			"path":        r.URL.Path,
			"status_code": rw.statusCode,
			"duration_ms": duration.Milliseconds(),
			"remote_addr": r.RemoteAddr,
		}).Info("http request")
	})
}

// recoveryMiddleware recovers from panics
func (s *Server) recoveryMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if err := recover(); err != nil {
				s.logger.WithField("error", fmt.Sprintf("%v", err)).
					WithField("path", r.URL.Path).
					Error("panic recovered")

				http.Error(w, "Internal server error", http.StatusInternalServerError)
			}
		}()

		next.ServeHTTP(w, r)
	})
}

// responseWriter wraps http.ResponseWriter to capture status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}
