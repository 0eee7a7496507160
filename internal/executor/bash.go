package executor

import (
	"context"

	"github.com/goliatone/go-polyglot/internal/transpiler"
	"github.com/goliatone/go-polyglot/pkg/interfaces"
)

// executeBash runs the document's script via bash, falling back to sh when
// bash is absent. Environment assignments from directives are appended to the
// inherited environment.
func (e *Executor) executeBash(ctx context.Context, doc interfaces.Polyglot) (interfaces.ExecutionResult, error) {
	cfg, err := transpiler.Bash(doc.Artifacts, doc.Metadata)
	if err != nil {
		return interfaces.ExecutionResult{}, err
	}

	workspace, cleanup, err := acquireWorkspace("bash")
	if err != nil {
		return interfaces.ExecutionResult{}, err
	}
	defer cleanup()

	shell := "bash"
	if _, err := e.runner.LookPath(shell); err != nil {
		shell = "sh"
		if _, err := e.runner.LookPath(shell); err != nil {
			return mockResult("bash", "would run the embedded script via bash -c"), nil
		}
	}

	run := e.runner.Run(ctx, CommandSpec{
		Name: shell,
		Args: []string{"-c", cfg.Script},
		Dir:  workspace,
		Env:  cfg.Env,
	})
	if run.ExitCode != 0 {
		return interfaces.ExecutionResult{}, toolError(shell, run)
	}

	return interfaces.ExecutionResult{
		OK: true,
		Details: map[string]any{
			"output":    run.Output,
			"exit_code": 0,
			"shell":     shell,
		},
	}, nil
}
