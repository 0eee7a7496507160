package results

import (
	"context"
	"sync"

	"github.com/goliatone/go-polyglot/pkg/interfaces"
)

// MemorySink keeps execution results in memory. It is safe for concurrent
// use and suited to tests and single-shot CLI runs.
type MemorySink struct {
	mu      sync.RWMutex
	results map[string][]interfaces.ExecutionResult
}

var _ interfaces.ResultSink = (*MemorySink)(nil)

// NewMemorySink constructs an empty in-memory sink.
func NewMemorySink() *MemorySink {
	return &MemorySink{
		results: map[string][]interfaces.ExecutionResult{},
	}
}

// StoreResult satisfies interfaces.ResultSink.
func (s *MemorySink) StoreResult(_ context.Context, documentID string, result interfaces.ExecutionResult) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.results[documentID] = append(s.results[documentID], result)
	return nil
}

// ListByDocument returns the stored results for a document in insertion order.
func (s *MemorySink) ListByDocument(documentID string) []interfaces.ExecutionResult {
	s.mu.RLock()
	defer s.mu.RUnlock()
	stored := s.results[documentID]
	out := make([]interfaces.ExecutionResult, len(stored))
	copy(out, stored)
	return out
}
