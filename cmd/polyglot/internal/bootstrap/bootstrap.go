// Package bootstrap assembles the pipeline service and logging for the
// polyglot CLI entry points.
package bootstrap

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/goliatone/go-polyglot/internal/logging"
	"github.com/goliatone/go-polyglot/internal/logging/gologger"
	"github.com/goliatone/go-polyglot/internal/pipeline"
	"github.com/goliatone/go-polyglot/internal/results"
	"github.com/goliatone/go-polyglot/internal/transpiler"
	"github.com/goliatone/go-polyglot/pkg/interfaces"
)

// Service is the slice of the pipeline the CLI entry points consume. The
// concrete implementation is pipeline.Service; tests substitute stubs.
type Service interface {
	Parse(ctx context.Context, text string) (interfaces.Polyglot, error)
	Detect(ctx context.Context, text string) interfaces.Language
	IsPolyglot(text string) bool
	Sanitize(text string) string
	Stats(text string) interfaces.DocumentStats
	Render(ctx context.Context, text string) ([]byte, error)
	Execute(ctx context.Context, text string) (interfaces.ExecutionResult, error)
	ExecuteTarget(ctx context.Context, text string, target transpiler.Target) (interfaces.ExecutionResult, error)
	Process(ctx context.Context, id string) (interfaces.ExecutionResult, error)
}

// Options captures configuration for polyglot CLI bootstraps.
type Options struct {
	LogLevel  string
	LogFormat string
	Timeout   time.Duration
	Provider  interfaces.ContentProvider
	Sink      interfaces.ResultSink
}

// Module wraps the assembled pipeline service plus the logger handed to
// command handlers.
type Module struct {
	Service Service
	Sink    *results.MemorySink
	Logger  interfaces.Logger
}

// BuildModule constructs a pipeline service configured for CLI use. When no
// sink is supplied an in-memory sink is attached so Process calls still have
// somewhere to record outcomes.
func BuildModule(opts Options) (*Module, error) {
	provider, err := gologger.NewProvider(gologger.Config{
		Level:  defaultString(opts.LogLevel, "info"),
		Format: defaultString(opts.LogFormat, "console"),
	})
	if err != nil {
		return nil, fmt.Errorf("configure logging: %w", err)
	}

	module := &Module{
		Logger: logging.PipelineLogger(provider),
	}

	sink := opts.Sink
	if sink == nil {
		memory := results.NewMemorySink()
		module.Sink = memory
		sink = memory
	}

	module.Service = pipeline.New(pipeline.Config{
		Logger:   provider,
		Provider: opts.Provider,
		Sink:     sink,
		Timeout:  opts.Timeout,
	})
	return module, nil
}

// ReadDocument loads a document from disk, rejecting empty paths early so
// flag mistakes fail with a clear message.
func ReadDocument(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("document path is required")
	}
	data, err := os.ReadFile(trimmed)
	if err != nil {
		return "", fmt.Errorf("read document: %w", err)
	}
	return string(data), nil
}

func defaultString(value, fallback string) string {
	if strings.TrimSpace(value) == "" {
		return fallback
	}
	return value
}
