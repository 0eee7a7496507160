package executor

import (
	"context"
	"database/sql"
	"path/filepath"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"

	_ "github.com/mattn/go-sqlite3"

	"github.com/goliatone/go-polyglot/internal/transpiler"
	"github.com/goliatone/go-polyglot/pkg/interfaces"
)

// executeSQL runs each statement independently against a SQLite database
// scoped to the workspace. There is no external binary to probe; the driver
// is compiled in, so the degraded mock mode never applies here.
func (e *Executor) executeSQL(ctx context.Context, doc interfaces.Polyglot) (interfaces.ExecutionResult, error) {
	cfg, err := transpiler.SQL(doc.Artifacts, doc.Metadata)
	if err != nil {
		return interfaces.ExecutionResult{}, err
	}

	workspace, cleanup, err := acquireWorkspace("sql")
	if err != nil {
		return interfaces.ExecutionResult{}, err
	}
	defer cleanup()

	sqldb, err := sql.Open("sqlite3", filepath.Join(workspace, "polyglot.db"))
	if err != nil {
		return interfaces.ExecutionResult{}, err
	}
	db := bun.NewDB(sqldb, sqlitedialect.New())
	defer db.Close()

	applied := 0
	var unitResults []map[string]any

	for i, statement := range cfg.Statements {
		unit := map[string]any{
			"statement": i,
		}
		if _, err := db.ExecContext(ctx, statement); err != nil {
			unit["ok"] = false
			unit["error"] = err.Error()
		} else {
			unit["ok"] = true
			applied++
		}
		unitResults = append(unitResults, unit)
	}

	failed := len(cfg.Statements) - applied
	return interfaces.ExecutionResult{
		OK: failed == 0,
		Details: map[string]any{
			"applied": applied,
			"failed":  failed,
			"results": unitResults,
		},
	}, nil
}
