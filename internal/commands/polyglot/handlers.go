// Package polyglotcmd exposes the document pipeline as go-command messages so
// callers can dispatch executions through the shared handler foundation.
package polyglotcmd

import (
	"context"
	"strings"

	command "github.com/goliatone/go-command"

	"github.com/goliatone/go-polyglot/internal/commands"
	"github.com/goliatone/go-polyglot/internal/transpiler"
	"github.com/goliatone/go-polyglot/pkg/interfaces"
)

const (
	processOperation = "polyglot.process_document"
	executeOperation = "polyglot.execute_document"
)

// DocumentService is the slice of the pipeline service the command handlers
// depend on.
type DocumentService interface {
	Process(ctx context.Context, id string) (interfaces.ExecutionResult, error)
	Execute(ctx context.Context, text string) (interfaces.ExecutionResult, error)
	ExecuteTarget(ctx context.Context, text string, target transpiler.Target) (interfaces.ExecutionResult, error)
}

var (
	_ command.Commander[ProcessDocumentCommand] = (*ProcessDocumentHandler)(nil)
	_ command.Commander[ExecuteDocumentCommand] = (*ExecuteDocumentHandler)(nil)
)

// ProcessDocumentHandler orchestrates stored-document executions via the
// shared command handler foundation.
type ProcessDocumentHandler struct {
	inner *commands.Handler[ProcessDocumentCommand]
}

// NewProcessDocumentHandler creates a handler bound to the supplied pipeline service.
func NewProcessDocumentHandler(service DocumentService, logger interfaces.Logger, opts ...commands.HandlerOption[ProcessDocumentCommand]) *ProcessDocumentHandler {
	baseLogger := commands.EnsureLogger(logger)

	exec := func(ctx context.Context, msg ProcessDocumentCommand) error {
		_, err := service.Process(ctx, msg.DocumentID)
		return err
	}

	handlerOpts := []commands.HandlerOption[ProcessDocumentCommand]{
		commands.WithLogger[ProcessDocumentCommand](baseLogger),
		commands.WithOperation[ProcessDocumentCommand](processOperation),
		commands.WithMessageFields(func(msg ProcessDocumentCommand) map[string]any {
			return map[string]any{"document_id": msg.DocumentID}
		}),
		commands.WithTelemetry(commands.DefaultTelemetry[ProcessDocumentCommand](baseLogger)),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &ProcessDocumentHandler{
		inner: commands.NewHandler(exec, handlerOpts...),
	}
}

// Execute satisfies command.Commander[ProcessDocumentCommand].
func (h *ProcessDocumentHandler) Execute(ctx context.Context, msg ProcessDocumentCommand) error {
	return h.inner.Execute(ctx, msg)
}

// ExecuteDocumentHandler runs inline document content via the shared command
// handler foundation.
type ExecuteDocumentHandler struct {
	inner *commands.Handler[ExecuteDocumentCommand]
}

// NewExecuteDocumentHandler creates a handler bound to the supplied pipeline service.
func NewExecuteDocumentHandler(service DocumentService, logger interfaces.Logger, opts ...commands.HandlerOption[ExecuteDocumentCommand]) *ExecuteDocumentHandler {
	baseLogger := commands.EnsureLogger(logger)

	exec := func(ctx context.Context, msg ExecuteDocumentCommand) error {
		target := strings.TrimSpace(msg.Target)
		var err error
		if target == "" {
			_, err = service.Execute(ctx, msg.Content)
		} else {
			_, err = service.ExecuteTarget(ctx, msg.Content, transpiler.Target(target))
		}
		return err
	}

	handlerOpts := []commands.HandlerOption[ExecuteDocumentCommand]{
		commands.WithLogger[ExecuteDocumentCommand](baseLogger),
		commands.WithOperation[ExecuteDocumentCommand](executeOperation),
		commands.WithMessageFields(func(msg ExecuteDocumentCommand) map[string]any {
			fields := map[string]any{"content_bytes": len(msg.Content)}
			if msg.Target != "" {
				fields["target"] = msg.Target
			}
			return fields
		}),
		commands.WithTelemetry(commands.DefaultTelemetry[ExecuteDocumentCommand](baseLogger)),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &ExecuteDocumentHandler{
		inner: commands.NewHandler(exec, handlerOpts...),
	}
}

// Execute satisfies command.Commander[ExecuteDocumentCommand].
func (h *ExecuteDocumentHandler) Execute(ctx context.Context, msg ExecuteDocumentCommand) error {
	return h.inner.Execute(ctx, msg)
}
