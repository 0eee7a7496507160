package executor

import (
	"context"
	"os"
	"path/filepath"

	"github.com/goliatone/go-polyglot/internal/transpiler"
	"github.com/goliatone/go-polyglot/pkg/interfaces"
)

func (e *Executor) executeTerraform(ctx context.Context, doc interfaces.Polyglot) (interfaces.ExecutionResult, error) {
	cfg, err := transpiler.Terraform(doc.Artifacts, doc.Metadata)
	if err != nil {
		return interfaces.ExecutionResult{}, err
	}

	workspace, cleanup, err := acquireWorkspace("terraform")
	if err != nil {
		return interfaces.ExecutionResult{}, err
	}
	defer cleanup()

	if err := os.WriteFile(filepath.Join(workspace, "main.tf"), []byte(cfg.Configuration), 0o600); err != nil {
		return interfaces.ExecutionResult{}, err
	}

	if _, err := e.runner.LookPath("terraform"); err != nil {
		return mockResult("terraform", "would run: terraform init && terraform plan"), nil
	}

	if run := e.runner.Run(ctx, CommandSpec{Name: "terraform", Args: []string{"init"}, Dir: workspace}); run.ExitCode != 0 {
		return interfaces.ExecutionResult{}, toolError("terraform", run)
	}

	run := e.runner.Run(ctx, CommandSpec{Name: "terraform", Args: []string{"plan"}, Dir: workspace})
	if run.ExitCode != 0 {
		return interfaces.ExecutionResult{}, toolError("terraform", run)
	}

	return interfaces.ExecutionResult{
		OK: true,
		Details: map[string]any{
			"plan": run.Output,
		},
	}, nil
}
