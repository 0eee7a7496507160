package results

import (
	"context"
	"testing"

	"github.com/uptrace/bun"

	"github.com/goliatone/go-polyglot/pkg/interfaces"
	"github.com/goliatone/go-polyglot/pkg/testsupport"
)

func newTestDB(t *testing.T) *bun.DB {
	t.Helper()
	return testsupport.NewSQLiteMemoryDB(t, "results_test")
}

func TestBunRepositoryStoreAndList(t *testing.T) {
	ctx := context.Background()
	repo := NewBunRepository(newTestDB(t), nil)
	if err := repo.CreateTable(ctx); err != nil {
		t.Fatalf("CreateTable: %v", err)
	}

	first := interfaces.ExecutionResult{OK: true, Details: map[string]any{"image": "polyglot:latest"}}
	second := interfaces.ExecutionResult{OK: false, Details: map[string]any{"failed": float64(1)}}

	if err := repo.StoreResult(ctx, "doc-1", first); err != nil {
		t.Fatalf("StoreResult: %v", err)
	}
	if err := repo.StoreResult(ctx, "doc-1", second); err != nil {
		t.Fatalf("StoreResult: %v", err)
	}
	if err := repo.StoreResult(ctx, "doc-2", first); err != nil {
		t.Fatalf("StoreResult: %v", err)
	}

	records, err := repo.ListByDocument(ctx, "doc-1")
	if err != nil {
		t.Fatalf("ListByDocument: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	for _, record := range records {
		if record.DocumentID != "doc-1" {
			t.Fatalf("unexpected document id %q", record.DocumentID)
		}
		if record.ID.String() == "00000000-0000-0000-0000-000000000000" {
			t.Fatal("expected generated record id")
		}
	}
}

func TestBunRepositoryListEmptyDocument(t *testing.T) {
	ctx := context.Background()
	repo := NewBunRepository(newTestDB(t), nil)
	if err := repo.CreateTable(ctx); err != nil {
		t.Fatalf("CreateTable: %v", err)
	}

	records, err := repo.ListByDocument(ctx, "unknown")
	if err != nil {
		t.Fatalf("ListByDocument: %v", err)
	}
	if len(records) != 0 {
		t.Fatalf("expected no records, got %d", len(records))
	}
}

func TestMemorySinkStoresInOrder(t *testing.T) {
	sink := NewMemorySink()
	ctx := context.Background()

	if err := sink.StoreResult(ctx, "doc-1", interfaces.ExecutionResult{OK: true}); err != nil {
		t.Fatalf("StoreResult: %v", err)
	}
	if err := sink.StoreResult(ctx, "doc-1", interfaces.ExecutionResult{OK: false}); err != nil {
		t.Fatalf("StoreResult: %v", err)
	}

	stored := sink.ListByDocument("doc-1")
	if len(stored) != 2 || !stored[0].OK || stored[1].OK {
		t.Fatalf("unexpected stored results: %#v", stored)
	}
	if got := sink.ListByDocument("doc-2"); len(got) != 0 {
		t.Fatalf("expected empty list, got %#v", got)
	}
}
