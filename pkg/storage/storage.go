// Package storage provides an in-memory, identifier-keyed store for graph
// documents, the minimal persistence collaborator a host process needs to
// save, browse, and re-run graphs across requests without the runtime core
// itself knowing storage exists.
package storage

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/weavegraph/weave/pkg/types"
)

// Record is a stored graph document plus the bookkeeping timestamps the
// store itself owns (a submitted document carries no id or history of its
// own until something persists it).
type Record struct {
	Graph     types.GraphDocument
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Summary is a lightweight reference to a stored graph, cheap enough to
// return in bulk from List without marshaling every node and edge.
type Summary struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	NodeCount int       `json:"nodeCount"`
	EdgeCount int       `json:"edgeCount"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Store persists graph documents keyed by an identifier it assigns on Save.
type Store interface {
	// Save assigns a new id to graph, stores it, and returns the id.
	Save(graph types.GraphDocument) (string, error)

	// Update replaces the stored graph at id, preserving its CreatedAt.
	Update(id string, graph types.GraphDocument) error

	// Load retrieves the graph document stored at id.
	Load(id string) (types.GraphDocument, error)

	// Delete removes the graph document stored at id.
	Delete(id string) error

	// List returns a summary of every stored graph document.
	List() []Summary

	// Exists reports whether a graph document is stored at id.
	Exists(id string) bool
}

// InMemoryStore implements Store over a guarded map; state does not survive
// process restart.
type InMemoryStore struct {
	mu      sync.RWMutex
	records map[string]Record
}

// NewInMemoryStore creates an empty in-memory graph document store.
func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{records: make(map[string]Record)}
}

// Save assigns graph a fresh id and stores it.
func (s *InMemoryStore) Save(graph types.GraphDocument) (string, error) {
	if graph.Name == "" {
		return "", fmt.Errorf("graph name is required")
	}
	if len(graph.Nodes) == 0 {
		return "", fmt.Errorf("graph has no nodes")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	id := uuid.New().String()
	now := time.Now()
	graph.ID = id
	graph.CreatedAt = now
	graph.UpdatedAt = now

	s.records[id] = Record{Graph: graph, CreatedAt: now, UpdatedAt: now}
	return id, nil
}

// Update replaces the stored graph at id, keeping its original CreatedAt.
func (s *InMemoryStore) Update(id string, graph types.GraphDocument) error {
	if id == "" {
		return fmt.Errorf("graph ID is required")
	}
	if graph.Name == "" {
		return fmt.Errorf("graph name is required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.records[id]
	if !ok {
		return fmt.Errorf("graph with ID %s not found", id)
	}

	now := time.Now()
	graph.ID = id
	graph.CreatedAt = existing.CreatedAt
	graph.UpdatedAt = now

	s.records[id] = Record{Graph: graph, CreatedAt: existing.CreatedAt, UpdatedAt: now}
	return nil
}

// Load retrieves the graph document stored at id.
func (s *InMemoryStore) Load(id string) (types.GraphDocument, error) {
	if id == "" {
		return types.GraphDocument{}, fmt.Errorf("graph ID is required")
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	record, ok := s.records[id]
	if !ok {
		return types.GraphDocument{}, fmt.Errorf("graph with ID %s not found", id)
	}

	graph := record.Graph
	graph.Nodes = append([]types.Node(nil), record.Graph.Nodes...)
	graph.Edges = append([]types.Edge(nil), record.Graph.Edges...)
	return graph, nil
}

// Delete removes the graph document stored at id.
func (s *InMemoryStore) Delete(id string) error {
	if id == "" {
		return fmt.Errorf("graph ID is required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.records[id]; !ok {
		return fmt.Errorf("graph with ID %s not found", id)
	}
	delete(s.records, id)
	return nil
}

// List returns a summary of every stored graph document.
func (s *InMemoryStore) List() []Summary {
	s.mu.RLock()
	defer s.mu.RUnlock()

	summaries := make([]Summary, 0, len(s.records))
	for id, record := range s.records {
		summaries = append(summaries, Summary{
			ID:        id,
			Name:      record.Graph.Name,
			NodeCount: len(record.Graph.Nodes),
			EdgeCount: len(record.Graph.Edges),
			CreatedAt: record.CreatedAt,
			UpdatedAt: record.UpdatedAt,
		})
	}
	return summaries
}

// Exists reports whether a graph document is stored at id.
func (s *InMemoryStore) Exists(id string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.records[id]
	return ok
}
