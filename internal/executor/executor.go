// Package executor runs transpiled document configuration against real
// infrastructure tooling. Each call acquires an isolated temp workspace,
// probes for the required binary, and degrades to an observable mock success
// when the tool is not installed.
package executor

import (
	"context"
	"fmt"
	"time"

	goerrors "github.com/goliatone/go-errors"

	"github.com/goliatone/go-polyglot/internal/logging"
	"github.com/goliatone/go-polyglot/internal/transpiler"
	"github.com/goliatone/go-polyglot/pkg/interfaces"
)

const (
	codeToolFailed       = "POLYGLOT_TOOL_FAILED"
	codeInvocationFailed = "POLYGLOT_INVOCATION_FAILED"
)

// ToolError carries the collapsed failure shape for a tool invocation: the
// exit code (-1 when the process could not run at all) and the combined
// output.
type ToolError struct {
	Tool   string
	Code   int
	Output string
}

func (e *ToolError) Error() string {
	return fmt.Sprintf("executor: %s failed with code %d: %s", e.Tool, e.Code, e.Output)
}

// Config controls executor construction.
type Config struct {
	Runner  CommandRunner
	Logger  interfaces.LoggerProvider
	Timeout time.Duration
}

// Executor dispatches execution over the closed target set. Executors hold no
// per-call state; concurrent Execute calls are safe because every call owns
// its workspace.
type Executor struct {
	runner CommandRunner
	logger interfaces.Logger
}

// New constructs an executor. A nil runner falls back to the real os/exec
// implementation.
func New(cfg Config) *Executor {
	runner := cfg.Runner
	if runner == nil {
		runner = NewRunner(cfg.Timeout)
	}
	return &Executor{
		runner: runner,
		logger: logging.ExecutorLogger(cfg.Logger),
	}
}

// Execute transpiles the document for the target and runs the result. The
// dispatch is exhaustive over the defined targets; unknown targets surface
// the transpiler's typed error.
func (e *Executor) Execute(ctx context.Context, target transpiler.Target, doc interfaces.Polyglot) (interfaces.ExecutionResult, error) {
	logger := logging.WithFields(e.logger, map[string]any{"target": string(target)})
	logger.Debug("executor.execute.start")

	var result interfaces.ExecutionResult
	var err error

	switch target {
	case transpiler.TargetDocker:
		result, err = e.executeDocker(ctx, doc)
	case transpiler.TargetTerraform:
		result, err = e.executeTerraform(ctx, doc)
	case transpiler.TargetKubernetes:
		result, err = e.executeKubernetes(ctx, doc)
	case transpiler.TargetGit:
		result, err = e.executeGit(ctx, doc)
	case transpiler.TargetBash:
		result, err = e.executeBash(ctx, doc)
	case transpiler.TargetSQL:
		result, err = e.executeSQL(ctx, doc)
	default:
		_, err = transpiler.Transpile(target, doc.Artifacts, doc.Metadata)
		if err == nil {
			err = fmt.Errorf("executor: no handler for target %q", target)
		}
	}

	if err != nil {
		logger.Error("executor.execute.failed", "error", err)
		return interfaces.ExecutionResult{}, err
	}
	logger.Info("executor.execute.success", "ok", result.OK)
	return result, nil
}

// ExecuteNoop handles plain documentation: always succeeds, never touches the
// filesystem or any tool.
func (e *Executor) ExecuteNoop(_ context.Context, _ interfaces.Polyglot) (interfaces.ExecutionResult, error) {
	return interfaces.ExecutionResult{
		OK:      true,
		Details: map[string]any{"message": "documentation only"},
	}, nil
}

// mockResult is the degraded-but-non-fatal outcome used when the required
// binary is not installed: a success-shaped result describing what would have
// run.
func mockResult(tool, note string) interfaces.ExecutionResult {
	return interfaces.ExecutionResult{
		OK: true,
		Details: map[string]any{
			"mock":    true,
			"message": tool + " not installed",
			"note":    note,
		},
	}
}

func toolError(tool string, run RunResult) error {
	cause := &ToolError{Tool: tool, Code: run.ExitCode, Output: run.Output}
	code := codeToolFailed
	if run.ExitCode == -1 {
		code = codeInvocationFailed
	}
	return goerrors.Wrap(cause, goerrors.CategoryCommand, "tool invocation failed").
		WithTextCode(code)
}
