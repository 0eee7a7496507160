package interfaces

import (
	"context"
	"errors"
)

// ErrDocumentNotFound is returned by content providers when the requested
// document identifier does not resolve to raw text.
var ErrDocumentNotFound = errors.New("polyglot: document not found")

// ContentProvider is the narrow contract through which the pipeline reaches
// the surrounding system: given a document identifier, return its raw text.
// Storage, caching, and sharing remain the collaborator's concern.
type ContentProvider interface {
	GetDocument(ctx context.Context, id string) (string, error)
}

// ResultSink accepts a structured execution result for persistence or
// display. Implementations decide durability; the pipeline only guarantees it
// hands over a fully constructed result exactly once per processed document.
type ResultSink interface {
	StoreResult(ctx context.Context, id string, result ExecutionResult) error
}
