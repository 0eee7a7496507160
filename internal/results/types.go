// Package results persists execution outcomes so callers can review what a
// document did after the fact. Two sinks are provided: an in-memory map for
// tests and ephemeral runs, and a bun-backed repository for durable storage.
package results

import (
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// ExecutionRecord is the stored outcome of one document execution.
type ExecutionRecord struct {
	bun.BaseModel `bun:"table:execution_records,alias:er"`

	ID         uuid.UUID      `bun:",pk,type:uuid" json:"id"`
	DocumentID string         `bun:"document_id,notnull" json:"document_id"`
	OK         bool           `bun:"ok,notnull" json:"ok"`
	Details    map[string]any `bun:"details,type:jsonb" json:"details,omitempty"`
	CreatedAt  time.Time      `bun:"created_at,nullzero,default:current_timestamp" json:"created_at"`
}
