package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/goliatone/go-polyglot/cmd/polyglot/internal/bootstrap"
	"github.com/goliatone/go-polyglot/internal/logging"
	"github.com/goliatone/go-polyglot/internal/transpiler"
	"github.com/goliatone/go-polyglot/pkg/interfaces"
)

type stubService struct {
	executed       string
	executedTarget transpiler.Target
	targetUsed     bool
	result         interfaces.ExecutionResult
}

func (s *stubService) Parse(context.Context, string) (interfaces.Polyglot, error) {
	return interfaces.Polyglot{}, nil
}

func (s *stubService) Detect(context.Context, string) interfaces.Language {
	return interfaces.LanguageNone
}

func (s *stubService) IsPolyglot(string) bool { return false }

func (s *stubService) Sanitize(text string) string { return text }

func (s *stubService) Stats(string) interfaces.DocumentStats {
	return interfaces.DocumentStats{}
}

func (s *stubService) Render(context.Context, string) ([]byte, error) {
	return nil, nil
}

func (s *stubService) Execute(_ context.Context, text string) (interfaces.ExecutionResult, error) {
	s.executed = text
	return s.result, nil
}

func (s *stubService) ExecuteTarget(_ context.Context, text string, target transpiler.Target) (interfaces.ExecutionResult, error) {
	s.executed = text
	s.executedTarget = target
	s.targetUsed = true
	return s.result, nil
}

func (s *stubService) Process(context.Context, string) (interfaces.ExecutionResult, error) {
	return s.result, nil
}

func writeDocument(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "doc.md")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write document: %v", err)
	}
	return path
}

func withStubModule(t *testing.T, svc *stubService) {
	t.Helper()
	original := moduleBuilder
	t.Cleanup(func() { moduleBuilder = original })
	moduleBuilder = func(bootstrap.Options) (*bootstrap.Module, error) {
		return &bootstrap.Module{Service: svc, Logger: logging.NoOp()}, nil
	}
}

func TestRunExecuteRoutesByLanguage(t *testing.T) {
	svc := &stubService{result: interfaces.ExecutionResult{OK: true, Details: map[string]any{"message": "documentation only"}}}
	withStubModule(t, svc)

	path := writeDocument(t, "# Notes\n")
	var out bytes.Buffer

	ok, err := runExecute([]string{"-file", path}, &out)
	if err != nil {
		t.Fatalf("runExecute: %v", err)
	}
	if !ok {
		t.Fatal("expected success exit")
	}
	if svc.targetUsed {
		t.Fatal("expected language routing without -target")
	}
	if svc.executed != "# Notes\n" {
		t.Fatalf("expected document content forwarded, got %q", svc.executed)
	}
	if !bytes.Contains(out.Bytes(), []byte(`"ok": true`)) {
		t.Fatalf("expected result JSON, got %s", out.String())
	}
}

func TestRunExecuteHonoursExplicitTarget(t *testing.T) {
	svc := &stubService{result: interfaces.ExecutionResult{OK: true}}
	withStubModule(t, svc)

	path := writeDocument(t, "```dockerfile\nFROM alpine\n```\n")

	ok, err := runExecute([]string{"-file", path, "-target", "docker"}, &bytes.Buffer{})
	if err != nil {
		t.Fatalf("runExecute: %v", err)
	}
	if !ok {
		t.Fatal("expected success exit")
	}
	if !svc.targetUsed || svc.executedTarget != transpiler.TargetDocker {
		t.Fatalf("expected docker target, got %#v", svc)
	}
}

func TestRunExecuteRejectsUnknownTarget(t *testing.T) {
	svc := &stubService{}
	withStubModule(t, svc)

	path := writeDocument(t, "# doc\n")

	_, err := runExecute([]string{"-file", path, "-target", "helm"}, &bytes.Buffer{})
	if err == nil {
		t.Fatal("expected error for unknown target")
	}
	if svc.executed != "" {
		t.Fatal("service must not run with invalid input")
	}
}

func TestRunExecuteFailedResultExitsNonZero(t *testing.T) {
	svc := &stubService{result: interfaces.ExecutionResult{OK: false, Details: map[string]any{"failed": 1}}}
	withStubModule(t, svc)

	path := writeDocument(t, "# doc\n")

	ok, err := runExecute([]string{"-file", path}, &bytes.Buffer{})
	if err != nil {
		t.Fatalf("runExecute: %v", err)
	}
	if ok {
		t.Fatal("expected failure exit for OK=false result")
	}
}

func TestRunExecuteRequiresFile(t *testing.T) {
	svc := &stubService{}
	withStubModule(t, svc)

	if _, err := runExecute(nil, &bytes.Buffer{}); err == nil {
		t.Fatal("expected error when -file is missing")
	}
}
