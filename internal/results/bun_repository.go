package results

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"

	"github.com/goliatone/go-polyglot/internal/logging"
	"github.com/goliatone/go-polyglot/pkg/interfaces"
)

// BunRepository persists execution records using a Bun-backed database. It
// satisfies interfaces.ResultSink so the pipeline can write through it
// directly.
type BunRepository struct {
	db     *bun.DB
	logger interfaces.Logger
}

var _ interfaces.ResultSink = (*BunRepository)(nil)

// NewBunRepository constructs a Bun-backed repository.
func NewBunRepository(db *bun.DB, provider interfaces.LoggerProvider) *BunRepository {
	return &BunRepository{
		db:     db,
		logger: logging.ResultsLogger(provider),
	}
}

// RegisterModels registers the execution record model with bun. Call once
// before querying when relations or fixtures are involved.
func RegisterModels(db *bun.DB) {
	db.RegisterModel((*ExecutionRecord)(nil))
}

// CreateTable ensures the execution_records table exists.
func (r *BunRepository) CreateTable(ctx context.Context) error {
	if r.db == nil {
		return errors.New("results: bun repository requires a database")
	}
	_, err := r.db.NewCreateTable().
		Model((*ExecutionRecord)(nil)).
		IfNotExists().
		Exec(ctx)
	return err
}

// StoreResult satisfies interfaces.ResultSink.
func (r *BunRepository) StoreResult(ctx context.Context, documentID string, result interfaces.ExecutionResult) error {
	if r.db == nil {
		return errors.New("results: bun repository requires a database")
	}

	record := &ExecutionRecord{
		ID:         uuid.New(),
		DocumentID: documentID,
		OK:         result.OK,
		Details:    result.Details,
		CreatedAt:  time.Now().UTC(),
	}
	if _, err := r.db.NewInsert().Model(record).Exec(ctx); err != nil {
		return err
	}

	r.logger.Debug("results.store", "document_id", documentID, "ok", result.OK)
	return nil
}

// ListByDocument returns all stored records for a document, newest first.
func (r *BunRepository) ListByDocument(ctx context.Context, documentID string) ([]ExecutionRecord, error) {
	if r.db == nil {
		return nil, errors.New("results: bun repository requires a database")
	}

	var records []ExecutionRecord
	err := r.db.NewSelect().
		Model(&records).
		Where("document_id = ?", documentID).
		Order("created_at DESC").
		Scan(ctx)
	if err != nil {
		return nil, err
	}
	return records, nil
}
