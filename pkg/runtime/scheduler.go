package runtime

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"sync"
	"time"

	"github.com/weavegraph/weave/pkg/config"
	"github.com/weavegraph/weave/pkg/logging"
	"github.com/weavegraph/weave/pkg/nodetype"
	"github.com/weavegraph/weave/pkg/observer"
	"github.com/weavegraph/weave/pkg/types"
)

// Scheduler executes one workflow graph document against a node type
// registry. Build one with NewScheduler per graph document; Execute may be
// called more than once (each call gets its own execution id and state),
// but only one Execute should be in flight at a time per Scheduler, since
// Cancel targets "the current in-flight call".
type Scheduler struct {
	doc          types.GraphDocument
	nodeRegistry *nodetype.Registry
	config       *config.Config
	modelInvoker nodetype.ModelInvoker
	logger       *logging.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
}

// NewScheduler builds a Scheduler for doc against nodeRegistry, using cfg
// for execution limits. A nil cfg falls back to config.Default().
func NewScheduler(doc types.GraphDocument, nodeRegistry *nodetype.Registry, cfg *config.Config) *Scheduler {
	if cfg == nil {
		cfg = config.Default()
	}
	return &Scheduler{
		doc:          doc,
		nodeRegistry: nodeRegistry,
		config:       cfg,
		logger:       logging.New(logging.DefaultConfig()),
	}
}

// WithModelInvoker attaches the host-supplied AI/ML capability model_invoke
// nodes call through. Returns the scheduler for chaining.
func (s *Scheduler) WithModelInvoker(invoker nodetype.ModelInvoker) *Scheduler {
	s.modelInvoker = invoker
	return s
}

// WithLogger overrides the scheduler's logger. Returns the scheduler for
// chaining.
func (s *Scheduler) WithLogger(logger *logging.Logger) *Scheduler {
	if logger != nil {
		s.logger = logger
	}
	return s
}

// Cancel aborts the in-flight Execute call, if any. A Cancel with no
// in-flight execution is a no-op.
func (s *Scheduler) Cancel() {
	s.mu.Lock()
	cancel := s.cancel
	s.mu.Unlock()
	if cancel != nil {
		cancel()
	}
}

// Execute runs the workflow to completion, cancellation, or a fatal
// scheduler error, notifying bundle of every lifecycle event along the
// way. The returned error is non-nil only for a fatal scheduler-internal
// condition (e.g. the node-execution protection counter tripping) or for
// failing to build the execution plan; a canceled or timed-out run instead
// reports ExecutionState.Aborted with a nil error.
func (s *Scheduler) Execute(ctx context.Context, bundle observer.Bundle) (*ExecutionState, error) {
	executionID := generateExecutionID()
	logger := s.logger.WithWorkflowID(s.doc.ID).WithExecutionID(executionID).WithTraceContext(ctx)
	logger.WithField("node_count", len(s.doc.Nodes)).Info("execution started")

	if s.config.MaxNodes > 0 && len(s.doc.Nodes) > s.config.MaxNodes {
		err := fmt.Errorf("runtime: graph has %d nodes, exceeding MaxNodes %d", len(s.doc.Nodes), s.config.MaxNodes)
		logger.WithError(err).Error("graph exceeds node limit")
		return nil, err
	}
	if s.config.MaxEdges > 0 && len(s.doc.Edges) > s.config.MaxEdges {
		err := fmt.Errorf("runtime: graph has %d edges, exceeding MaxEdges %d", len(s.doc.Edges), s.config.MaxEdges)
		logger.WithError(err).Error("graph exceeds edge limit")
		return nil, err
	}

	plan, err := buildPlan(s.doc, s.nodeRegistry)
	if err != nil {
		logger.WithError(err).Error("failed to build execution plan")
		return nil, err
	}

	if s.config.MaxExecutionTime > 0 {
		var timeoutCancel context.CancelFunc
		ctx, timeoutCancel = context.WithTimeout(ctx, s.config.MaxExecutionTime)
		defer timeoutCancel()
	}
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	s.mu.Lock()
	s.cancel = cancel
	s.mu.Unlock()

	run := newRunState(plan, s.config, logger, bundle, s.modelInvoker, s.doc.ID, executionID)

	result, err := run.loop(ctx)
	if err != nil {
		logger.WithError(err).Error("execution failed")
		bundle.NotifyExecutionError(err.Error(), run.onPanic)
		return result, err
	}
	if result.Aborted {
		logger.Warn("execution aborted")
		return result, nil
	}

	logger.Info("execution completed")
	bundle.NotifyExecutionComplete(run.onPanic)
	return result, nil
}

// generateExecutionID creates a unique execution identifier: 16 hex
// characters (8 bytes) from crypto/rand, falling back to a timestamp-based
// id if the system random source is ever unavailable.
func generateExecutionID() string {
	b := make([]byte, 8)
	if _, err := rand.Read(b); err != nil {
		return fmt.Sprintf("exec_%d", time.Now().UnixNano())
	}
	return hex.EncodeToString(b)
}
