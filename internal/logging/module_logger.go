package logging

import (
	"context"
	"strings"

	"github.com/goliatone/go-polyglot/pkg/interfaces"
)

const (
	rootModule       = "polyglot"
	classifierModule = "polyglot.classifier"
	pipelineModule   = "polyglot.pipeline"
	executorModule   = "polyglot.executor"
	resultsModule    = "polyglot.results"
)

const (
	fieldDocumentID = "document_id"
	fieldLanguage   = "language"
	fieldTarget     = "target"
)

// ModuleLogger returns a module-scoped logger, defaulting to a no-op
// implementation when no provider is supplied. The returned logger attaches
// the module identifier as structured context so downstream entries can be
// filtered predictably.
func ModuleLogger(provider interfaces.LoggerProvider, module string) interfaces.Logger {
	if module == "" {
		module = rootModule
	}

	logger := NoOp()
	if provider != nil {
		if provided := provider.GetLogger(module); provided != nil {
			logger = provided
		}
	}

	if fieldsLogger, ok := logger.(interfaces.FieldsLogger); ok {
		return fieldsLogger.WithFields(map[string]any{
			"module": module,
		})
	}

	return WithFields(logger, map[string]any{
		"module": module,
	})
}

// ClassifierLogger returns the logger namespace reserved for detection passes.
func ClassifierLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, classifierModule)
}

// PipelineLogger returns the logger namespace reserved for the pipeline facade.
func PipelineLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, pipelineModule)
}

// ExecutorLogger returns the logger namespace reserved for target executors.
func ExecutorLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, executorModule)
}

// ResultsLogger returns the logger namespace reserved for result persistence.
func ResultsLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, resultsModule)
}

// WithDocumentContext enriches the provided logger with common document fields
// such as identifier, classified language, and execution target. Empty values
// are ignored.
func WithDocumentContext(logger interfaces.Logger, id, language, target string) interfaces.Logger {
	fields := map[string]any{}
	if trimmed := strings.TrimSpace(id); trimmed != "" {
		fields[fieldDocumentID] = trimmed
	}
	if trimmed := strings.TrimSpace(language); trimmed != "" {
		fields[fieldLanguage] = trimmed
	}
	if trimmed := strings.TrimSpace(target); trimmed != "" {
		fields[fieldTarget] = trimmed
	}
	return WithFields(logger, fields)
}

// NoOp returns a logger that drops every log entry. It satisfies the Logger
// contract so services can safely operate when logging is disabled.
func NoOp() interfaces.Logger {
	return noopLogger{}
}

type noopLogger struct{}

var _ interfaces.Logger = noopLogger{}

func (noopLogger) Trace(string, ...any) {}
func (noopLogger) Debug(string, ...any) {}
func (noopLogger) Info(string, ...any)  {}
func (noopLogger) Warn(string, ...any)  {}
func (noopLogger) Error(string, ...any) {}
func (noopLogger) Fatal(string, ...any) {}

func (n noopLogger) WithFields(map[string]any) interfaces.Logger {
	return n
}

func (n noopLogger) WithContext(context.Context) interfaces.Logger {
	return n
}
