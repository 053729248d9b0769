package server

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/weavegraph/weave/pkg/runtime"
	"github.com/weavegraph/weave/pkg/telemetry"
	"github.com/weavegraph/weave/pkg/types"
	"github.com/weavegraph/weave/pkg/validate"
)

var errGraphIDRequired = errors.New("graph ID is required")

// SaveGraphResponse is the response from saving a graph document.
type SaveGraphResponse struct {
	Success bool   `json:"success"`
	ID      string `json:"id,omitempty"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

// LoadGraphResponse is the response from loading a graph document.
type LoadGraphResponse struct {
	Success bool                 `json:"success"`
	Graph   *types.GraphDocument `json:"graph,omitempty"`
	Error   string               `json:"error,omitempty"`
}

// ListGraphsResponse is the response from listing stored graph documents.
type ListGraphsResponse struct {
	Success bool `json:"success"`
	Graphs  any  `json:"graphs"`
	Count   int  `json:"count"`
}

// DeleteGraphResponse is the response from deleting a stored graph document.
type DeleteGraphResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

// handleSaveGraph persists a graph document, identified by its own Name
// field, for later retrieval/execution by ID.
func (s *Server) handleSaveGraph(w http.ResponseWriter, r *http.Request) {
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

	id, err := s.store.Save(doc)
	if err != nil {
		s.writeJSONResponse(w, http.StatusBadRequest, SaveGraphResponse{
			Success: false,
			Error:   "Failed to save graph: " + err.Error(),
		})
		return
	}

	s.logger.WithField("id", id).WithField("name", doc.Name).Info("graph document saved")

	s.writeJSONResponse(w, http.StatusCreated, SaveGraphResponse{
		Success: true,
		ID:      id,
		Message: "graph document saved successfully",
	})
}

func graphIDFromPath(path, prefix string) string {
	return strings.TrimSpace(strings.TrimPrefix(path, prefix))
}

// handleLoadGraph loads a previously saved graph document by ID.
func (s *Server) handleLoadGraph(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	id := graphIDFromPath(r.URL.Path, "/api/v1/graph/load/")
	if id == "" {
		s.writeJSONResponse(w, http.StatusBadRequest, LoadGraphResponse{Success: false, Error: "graph ID is required"})
		return
	}

	doc, err := s.store.Load(id)
	if err != nil {
		s.writeJSONResponse(w, http.StatusNotFound, LoadGraphResponse{Success: false, Error: err.Error()})
		return
	}

	s.writeJSONResponse(w, http.StatusOK, LoadGraphResponse{Success: true, Graph: &doc})
}

// handleListGraphs lists all saved graph document summaries.
func (s *Server) handleListGraphs(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	summaries := s.store.List()
	s.writeJSONResponse(w, http.StatusOK, ListGraphsResponse{
		Success: true,
		Graphs:  summaries,
		Count:   len(summaries),
	})
}

// handleDeleteGraph deletes a saved graph document by ID.
func (s *Server) handleDeleteGraph(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodDelete {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	id := graphIDFromPath(r.URL.Path, "/api/v1/graph/delete/")
	if id == "" {
		s.writeJSONResponse(w, http.StatusBadRequest, DeleteGraphResponse{Success: false, Error: "graph ID is required"})
		return
	}

	if err := s.store.Delete(id); err != nil {
		s.writeJSONResponse(w, http.StatusNotFound, DeleteGraphResponse{Success: false, Error: err.Error()})
		return
	}

	s.logger.WithField("id", id).Info("graph document deleted")
	s.writeJSONResponse(w, http.StatusOK, DeleteGraphResponse{Success: true, Message: "graph document deleted successfully"})
}

// handleExecuteGraphByID loads a saved graph document and executes it,
// mirroring handleExecuteGraph but sourcing the document from storage
// instead of the request body.
func (s *Server) handleExecuteGraphByID(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	id := graphIDFromPath(r.URL.Path, "/api/v1/graph/execute-by-id/")
	if id == "" {
		s.writeErrorResponse(w, "graph ID is required", http.StatusBadRequest, errGraphIDRequired)
		return
	}

	doc, err := s.store.Load(id)
	if err != nil {
		s.writeErrorResponse(w, "Failed to load graph document", http.StatusNotFound, err)
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
		s.writeErrorResponse(w, "Graph execution failed", http.StatusInternalServerError, err)
		return
	}

	s.logger.WithField("id", id).WithField("name", doc.Name).Info("graph document executed by id")

	s.writeJSONResponse(w, http.StatusOK, map[string]any{
		"success":        !state.Aborted,
		"graph_id":       id,
		"graph_name":     doc.Name,
		"state":          state,
		"execution_time": duration.String(),
	})
}
