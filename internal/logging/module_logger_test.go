package logging

import (
	"context"
	"testing"

	"github.com/goliatone/go-polyglot/pkg/interfaces"
)

type recordingLogger struct {
	fields map[string]any
}

func (r *recordingLogger) Trace(string, ...any) {}
func (r *recordingLogger) Debug(string, ...any) {}
func (r *recordingLogger) Info(string, ...any)  {}
func (r *recordingLogger) Warn(string, ...any)  {}
func (r *recordingLogger) Error(string, ...any) {}
func (r *recordingLogger) Fatal(string, ...any) {}

func (r *recordingLogger) WithContext(context.Context) interfaces.Logger { return r }

func (r *recordingLogger) WithFields(fields map[string]any) interfaces.Logger {
	merged := map[string]any{}
	for k, v := range r.fields {
		merged[k] = v
	}
	for k, v := range fields {
		merged[k] = v
	}
	return &recordingLogger{fields: merged}
}

type recordingProvider struct {
	requested []string
	logger    interfaces.Logger
}

func (p *recordingProvider) GetLogger(name string) interfaces.Logger {
	p.requested = append(p.requested, name)
	return p.logger
}

func TestModuleLoggerAttachesModuleField(t *testing.T) {
	provider := &recordingProvider{logger: &recordingLogger{}}

	logger := ModuleLogger(provider, "polyglot.executor")

	rec, ok := logger.(*recordingLogger)
	if !ok {
		t.Fatalf("expected recordingLogger, got %T", logger)
	}
	if rec.fields["module"] != "polyglot.executor" {
		t.Fatalf("expected module field, got %#v", rec.fields)
	}
	if len(provider.requested) != 1 || provider.requested[0] != "polyglot.executor" {
		t.Fatalf("expected provider lookup for module name, got %#v", provider.requested)
	}
}

func TestModuleLoggerDefaultsToRootModule(t *testing.T) {
	provider := &recordingProvider{logger: &recordingLogger{}}

	ModuleLogger(provider, "")

	if len(provider.requested) != 1 || provider.requested[0] != "polyglot" {
		t.Fatalf("expected root module lookup, got %#v", provider.requested)
	}
}

func TestModuleLoggerNilProviderFallsBackToNoOp(t *testing.T) {
	logger := ModuleLogger(nil, "polyglot.pipeline")
	if logger == nil {
		t.Fatalf("expected a logger even without a provider")
	}
	// Must not panic.
	logger.Info("ignored")
}

func TestWithDocumentContextSkipsEmptyValues(t *testing.T) {
	base := &recordingLogger{}

	logger := WithDocumentContext(base, "doc-1", "", "docker")

	rec, ok := logger.(*recordingLogger)
	if !ok {
		t.Fatalf("expected recordingLogger, got %T", logger)
	}
	if rec.fields[fieldDocumentID] != "doc-1" {
		t.Fatalf("expected document_id field, got %#v", rec.fields)
	}
	if _, present := rec.fields[fieldLanguage]; present {
		t.Fatalf("expected empty language to be skipped, got %#v", rec.fields)
	}
	if rec.fields[fieldTarget] != "docker" {
		t.Fatalf("expected target field, got %#v", rec.fields)
	}
}

func TestContextWithFieldsMerges(t *testing.T) {
	ctx := ContextWithFields(context.Background(), map[string]any{"a": 1})
	ctx = ContextWithFields(ctx, map[string]any{"b": 2})

	fields := ContextFields(ctx)
	if fields["a"] != 1 || fields["b"] != 2 {
		t.Fatalf("expected merged fields, got %#v", fields)
	}

	fields["a"] = 99
	if ContextFields(ctx)["a"] != 1 {
		t.Fatalf("expected copied context fields")
	}
}
