// Command server starts the weave workflow runtime HTTP API server.
//
// Usage:
//
//	server [flags]
//
// Flags:
//
//	-addr string
//	    Server address (default ":8080")
//	-read-timeout duration
//	    HTTP read timeout (default 30s)
//	-write-timeout duration
//	    HTTP write timeout (default 30s)
//	-max-execution-time duration
//	    Maximum graph execution time (default 5m)
//	-max-node-executions int
//	    Maximum node executions per run (default 0, unlimited)
//	-worker-pool-size int
//	    Number of concurrent worker goroutines (default runtime.NumCPU())
//	-openai-api-key string
//	    OpenAI API key for model_invoke nodes (default from OPENAI_API_KEY env var)
//
// The server exposes the following endpoints:
//
//	POST /api/v1/graph/execute   - Execute a graph document
//	POST /api/v1/graph/validate  - Validate a graph document
//	GET  /health                 - Health check
//	GET  /health/live            - Liveness probe
//	GET  /health/ready           - Readiness probe
//	GET  /metrics                - Prometheus metrics
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/weavegraph/weave/pkg/config"
	"github.com/weavegraph/weave/pkg/modelclient"
	"github.com/weavegraph/weave/pkg/nodetype"
	"github.com/weavegraph/weave/pkg/server"
)

func main() {
	addr := flag.String("addr", ":8080", "Server address")
	readTimeout := flag.Duration("read-timeout", 30*time.Second, "HTTP read timeout")
	writeTimeout := flag.Duration("write-timeout", 30*time.Second, "HTTP write timeout")
	maxExecutionTime := flag.Duration("max-execution-time", 5*time.Minute, "Maximum graph execution time")
	maxNodeExecutions := flag.Int("max-node-executions", 0, "Maximum node executions per run (0 = unlimited)")
	workerPoolSize := flag.Int("worker-pool-size", 0, "Number of concurrent worker goroutines (0 = runtime.NumCPU())")
	openaiAPIKey := flag.String("openai-api-key", os.Getenv("OPENAI_API_KEY"), "OpenAI API key for model_invoke nodes")

	flag.Parse()

	serverConfig := server.Config{
		Address:            *addr,
		ReadTimeout:        *readTimeout,
		WriteTimeout:       *writeTimeout,
		ShutdownTimeout:    10 * time.Second,
		MaxRequestBodySize: 10 * 1024 * 1024, // 10MB
		EnableCORS:         true,
	}

	schedulerConfig := config.Default()
	schedulerConfig.MaxExecutionTime = *maxExecutionTime
	schedulerConfig.MaxNodeExecutions = *maxNodeExecutions
	schedulerConfig.WorkerPoolSize = *workerPoolSize

	var modelInvoker nodetype.ModelInvoker
	if *openaiAPIKey != "" {
		client, err := modelclient.New(modelclient.DefaultConfig(*openaiAPIKey))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to create model client: %v\n", err)
			os.Exit(1)
		}
		modelInvoker = client
	} else {
		fmt.Fprintln(os.Stderr, "Warning: no OpenAI API key configured, model_invoke nodes will fail")
	}

	srv, err := server.New(serverConfig, schedulerConfig, modelInvoker)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create server: %v\n", err)
		os.Exit(1)
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	errChan := make(chan error, 1)
	go func() {
		fmt.Printf("Starting weave workflow runtime server on %s\n", *addr)
		fmt.Printf("Health check:     http://localhost%s/health\n", *addr)
		fmt.Printf("Liveness probe:   http://localhost%s/health/live\n", *addr)
		fmt.Printf("Readiness probe:  http://localhost%s/health/ready\n", *addr)
		fmt.Printf("Metrics:          http://localhost%s/metrics\n", *addr)
		fmt.Printf("API endpoint:     http://localhost%s/api/v1/graph/execute\n", *addr)
		fmt.Println("\nPress Ctrl+C to shutdown")

		if err := srv.Start(); err != nil {
			errChan <- err
		}
	}()

	select {
	case err := <-errChan:
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	case sig := <-sigChan:
		fmt.Printf("\nReceived signal: %v\n", sig)
		fmt.Println("Shutting down gracefully...")

		ctx, cancel := context.WithTimeout(context.Background(), serverConfig.ShutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			fmt.Fprintf(os.Stderr, "Shutdown error: %v\n", err)
			os.Exit(1)
		}

		fmt.Println("Server stopped")
	}
}
