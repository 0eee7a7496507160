// Package pipeline is the facade over the document stages: tokenize, build,
// classify, enhance, then sanitize for display or transpile and execute for
// automation. The service is stateless so a single instance can be shared
// across requests without locking.
package pipeline

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	goerrors "github.com/goliatone/go-errors"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"

	"github.com/goliatone/go-polyglot/internal/ast"
	"github.com/goliatone/go-polyglot/internal/classifier"
	"github.com/goliatone/go-polyglot/internal/executor"
	"github.com/goliatone/go-polyglot/internal/logging"
	"github.com/goliatone/go-polyglot/internal/sanitizer"
	"github.com/goliatone/go-polyglot/internal/tokenizer"
	"github.com/goliatone/go-polyglot/internal/transpiler"
	"github.com/goliatone/go-polyglot/pkg/interfaces"
)

const codeDocumentNotFound = "POLYGLOT_DOCUMENT_NOT_FOUND"

// Config controls service construction. Provider and Sink are optional; they
// are only required for Process.
type Config struct {
	Logger   interfaces.LoggerProvider
	Provider interfaces.ContentProvider
	Sink     interfaces.ResultSink
	Runner   executor.CommandRunner
	Timeout  time.Duration
}

// Service exposes the document pipeline operations.
type Service struct {
	executor *executor.Executor
	logger   interfaces.Logger
	provider interfaces.ContentProvider
	sink     interfaces.ResultSink
	renderer goldmark.Markdown
}

// New assembles the pipeline service.
func New(cfg Config) *Service {
	return &Service{
		executor: executor.New(executor.Config{
			Runner:  cfg.Runner,
			Logger:  cfg.Logger,
			Timeout: cfg.Timeout,
		}),
		logger:   logging.PipelineLogger(cfg.Logger),
		provider: cfg.Provider,
		sink:     cfg.Sink,
		renderer: goldmark.New(
			goldmark.WithExtensions(
				extension.GFM,
				extension.Linkify,
				extension.TaskList,
			),
			goldmark.WithParserOptions(parser.WithAutoHeadingID()),
		),
	}
}

// Parse runs the full read path: tokenize, build the tree, classify, then
// merge the classification back onto the tree.
func (s *Service) Parse(_ context.Context, text string) (interfaces.Polyglot, error) {
	doc := classifier.Classify(text)
	root := ast.Build(tokenizer.Tokenize(text))
	ast.Enhance(root, doc)
	doc.AST = root

	s.logger.Debug("pipeline.parse",
		"language", string(doc.Language),
		"artifacts", len(doc.Artifacts),
	)
	return doc, nil
}

// Detect reports the dominant language without building the tree.
func (s *Service) Detect(_ context.Context, text string) interfaces.Language {
	return classifier.Classify(text).Language
}

// IsPolyglot is the cheap pre-check for embedded automation.
func (s *Service) IsPolyglot(text string) bool {
	return classifier.IsPolyglot(text)
}

// Sanitize strips machine-readable constructs for human display.
func (s *Service) Sanitize(text string) string {
	return sanitizer.Sanitize(text)
}

// Stats summarizes the document for previews and tables of contents.
func (s *Service) Stats(text string) interfaces.DocumentStats {
	return classifier.Stats(text)
}

// Render sanitizes the document and converts the remainder to HTML.
func (s *Service) Render(_ context.Context, text string) ([]byte, error) {
	var buf bytes.Buffer
	if err := s.renderer.Convert([]byte(sanitizer.Sanitize(text)), &buf); err != nil {
		return nil, fmt.Errorf("pipeline render: %w", err)
	}
	return buf.Bytes(), nil
}

// Execute parses the document and runs it against the target its language
// maps to. Documents without automation run through the no-op executor and
// always succeed.
func (s *Service) Execute(ctx context.Context, text string) (interfaces.ExecutionResult, error) {
	doc, err := s.Parse(ctx, text)
	if err != nil {
		return interfaces.ExecutionResult{}, err
	}

	target, ok := transpiler.TargetForLanguage(doc.Language)
	if !ok {
		return s.executor.ExecuteNoop(ctx, doc)
	}
	return s.executor.Execute(ctx, target, doc)
}

// ExecuteTarget runs the document against an explicit target instead of the
// one its language maps to.
func (s *Service) ExecuteTarget(ctx context.Context, text string, target transpiler.Target) (interfaces.ExecutionResult, error) {
	doc, err := s.Parse(ctx, text)
	if err != nil {
		return interfaces.ExecutionResult{}, err
	}
	return s.executor.Execute(ctx, target, doc)
}

// Process loads a document by id, executes it, and stores the result. Each
// stage failure is surfaced with its own context; a provider miss carries the
// not-found text code.
func (s *Service) Process(ctx context.Context, id string) (interfaces.ExecutionResult, error) {
	if s.provider == nil {
		return interfaces.ExecutionResult{}, errors.New("pipeline: no content provider configured")
	}

	logger := logging.WithFields(s.logger, map[string]any{"document_id": id})
	logger.Debug("pipeline.process.start")

	content, err := s.provider.GetDocument(ctx, id)
	if err != nil {
		if errors.Is(err, interfaces.ErrDocumentNotFound) {
			return interfaces.ExecutionResult{}, goerrors.Wrap(
				err, goerrors.CategoryCommand, "document lookup failed",
			).WithTextCode(codeDocumentNotFound)
		}
		return interfaces.ExecutionResult{}, fmt.Errorf("pipeline: load document %s: %w", id, err)
	}

	result, err := s.Execute(ctx, content)
	if err != nil {
		logger.Error("pipeline.process.failed", "error", err)
		return interfaces.ExecutionResult{}, err
	}

	if s.sink != nil {
		if err := s.sink.StoreResult(ctx, id, result); err != nil {
			return interfaces.ExecutionResult{}, fmt.Errorf("pipeline: store result for %s: %w", id, err)
		}
	}

	logger.Info("pipeline.process.success", "ok", result.OK)
	return result, nil
}
