package executor

import (
	"context"
	"strings"

	"github.com/goliatone/go-polyglot/internal/transpiler"
	"github.com/goliatone/go-polyglot/pkg/interfaces"
)

// executeGit materializes the document's files in the workspace and runs the
// init commands one by one. Each command is independent: a failure is
// recorded and the rest of the batch still runs.
func (e *Executor) executeGit(ctx context.Context, doc interfaces.Polyglot) (interfaces.ExecutionResult, error) {
	cfg, err := transpiler.Git(doc.Artifacts, doc.Metadata)
	if err != nil {
		return interfaces.ExecutionResult{}, err
	}

	workspace, cleanup, err := acquireWorkspace("git")
	if err != nil {
		return interfaces.ExecutionResult{}, err
	}
	defer cleanup()

	if err := materializeFiles(workspace, cfg.Files); err != nil {
		return interfaces.ExecutionResult{}, err
	}

	if _, err := e.runner.LookPath("git"); err != nil {
		return mockResult("git", "would run: "+strings.Join(cfg.InitCommands, " && ")), nil
	}

	applied := 0
	var outputs []map[string]any

	for _, command := range cfg.InitCommands {
		run := e.runner.Run(ctx, CommandSpec{
			Name: "sh",
			Args: []string{"-c", command},
			Dir:  workspace,
		})

		unit := map[string]any{
			"command": command,
			"output":  run.Output,
		}
		if run.ExitCode == 0 {
			unit["ok"] = true
			applied++
		} else {
			unit["ok"] = false
			unit["code"] = run.ExitCode
		}
		outputs = append(outputs, unit)
	}

	failed := len(cfg.InitCommands) - applied
	return interfaces.ExecutionResult{
		OK: failed == 0,
		Details: map[string]any{
			"applied":    applied,
			"failed":     failed,
			"files":      len(cfg.Files),
			"git_output": outputs,
		},
	}, nil
}
