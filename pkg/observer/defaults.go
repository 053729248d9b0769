package observer

import (
	"github.com/weavegraph/weave/pkg/logging"
	"github.com/weavegraph/weave/pkg/paramtype"
)

// NewLoggingBundle builds a Bundle that logs every lifecycle event through
// logger: debug for routine node start/complete, warn for node-level
// errors, info for run completion, error for a fatal scheduler error.
func NewLoggingBundle(logger *logging.Logger) Bundle {
	return Bundle{
		OnNodeStart: func(nodeID string) {
			logger.WithNodeID(nodeID).Debug("node started")
		},
		OnNodeComplete: func(nodeID string, outputs map[string]paramtype.Value) {
			logger.WithNodeID(nodeID).WithField("outputs", len(outputs)).Debug("node completed")
		},
		OnNodeError: func(nodeID string, message string) {
			logger.WithNodeID(nodeID).WithField("reason", message).Warn("node failed")
		},
		OnExecutionComplete: func() {
			logger.Info("execution completed")
		},
		OnExecutionError: func(message string) {
			logger.WithField("reason", message).Error("execution failed")
		},
	}
}
