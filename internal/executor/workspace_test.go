package executor

import (
	"os"
	"path/filepath"
	"testing"
)

func TestAcquireWorkspaceIsolatesAndCleansUp(t *testing.T) {
	first, cleanupFirst, err := acquireWorkspace("test")
	if err != nil {
		t.Fatalf("acquireWorkspace: %v", err)
	}
	second, cleanupSecond, err := acquireWorkspace("test")
	if err != nil {
		cleanupFirst()
		t.Fatalf("acquireWorkspace: %v", err)
	}
	defer cleanupSecond()

	if first == second {
		t.Fatalf("workspaces must be unique, both got %q", first)
	}
	if info, err := os.Stat(first); err != nil || !info.IsDir() {
		t.Fatalf("expected directory at %q: %v", first, err)
	}

	cleanupFirst()
	if _, err := os.Stat(first); !os.IsNotExist(err) {
		t.Fatalf("cleanup must remove the workspace, stat err: %v", err)
	}
}

func TestMaterializeFilesCreatesNestedPaths(t *testing.T) {
	workspace, cleanup, err := acquireWorkspace("test")
	if err != nil {
		t.Fatalf("acquireWorkspace: %v", err)
	}
	defer cleanup()

	files := map[string]string{
		"README.md":   "# hello",
		"src/main.go": "package main",
	}
	if err := materializeFiles(workspace, files); err != nil {
		t.Fatalf("materializeFiles: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(workspace, "src", "main.go"))
	if err != nil {
		t.Fatalf("reading nested file: %v", err)
	}
	if string(data) != "package main" {
		t.Fatalf("unexpected content %q", data)
	}
}

func TestMaterializeFilesRejectsPathEscape(t *testing.T) {
	workspace, cleanup, err := acquireWorkspace("test")
	if err != nil {
		t.Fatalf("acquireWorkspace: %v", err)
	}
	defer cleanup()

	err = materializeFiles(workspace, map[string]string{"../outside.txt": "nope"})
	if err == nil {
		t.Fatal("expected error for path escaping the workspace")
	}
}
