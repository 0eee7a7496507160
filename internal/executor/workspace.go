package executor

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// acquireWorkspace creates an isolated working directory under the system
// temp root. Uniqueness comes from a uuid suffix so concurrent executions for
// different documents never collide. The returned cleanup must run on every
// exit path.
func acquireWorkspace(prefix string) (string, func(), error) {
	dir := filepath.Join(os.TempDir(), fmt.Sprintf("polyglot-%s-%s", prefix, uuid.NewString()))
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return "", nil, fmt.Errorf("executor: acquire workspace: %w", err)
	}
	cleanup := func() {
		_ = os.RemoveAll(dir)
	}
	return dir, cleanup, nil
}

// materializeFiles writes the given path/content pairs under the workspace,
// creating intermediate directories. Paths escaping the workspace are
// rejected.
func materializeFiles(workspace string, files map[string]string) error {
	for path, content := range files {
		full := filepath.Join(workspace, filepath.Clean(path))
		rel, err := filepath.Rel(workspace, full)
		if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
			return fmt.Errorf("executor: file path escapes workspace: %s", path)
		}
		if err := os.MkdirAll(filepath.Dir(full), 0o700); err != nil {
			return fmt.Errorf("executor: materialize %s: %w", path, err)
		}
		if err := os.WriteFile(full, []byte(content), 0o600); err != nil {
			return fmt.Errorf("executor: materialize %s: %w", path, err)
		}
	}
	return nil
}
