package executor

import (
	"context"
	"os"
	"path/filepath"

	"github.com/goliatone/go-polyglot/internal/transpiler"
	"github.com/goliatone/go-polyglot/pkg/interfaces"
)

const dockerImageTag = "polyglot:latest"

func (e *Executor) executeDocker(ctx context.Context, doc interfaces.Polyglot) (interfaces.ExecutionResult, error) {
	cfg, err := transpiler.Docker(doc.Artifacts, doc.Metadata)
	if err != nil {
		return interfaces.ExecutionResult{}, err
	}

	workspace, cleanup, err := acquireWorkspace("docker")
	if err != nil {
		return interfaces.ExecutionResult{}, err
	}
	defer cleanup()

	dockerfile := filepath.Join(workspace, "Dockerfile")
	if err := os.WriteFile(dockerfile, []byte(cfg.Dockerfile), 0o600); err != nil {
		return interfaces.ExecutionResult{}, err
	}

	if _, err := e.runner.LookPath("docker"); err != nil {
		return mockResult("docker", "would run: docker build -f Dockerfile -t "+dockerImageTag+" ."), nil
	}

	run := e.runner.Run(ctx, CommandSpec{
		Name: "docker",
		Args: []string{"build", "-f", dockerfile, "-t", dockerImageTag, "."},
		Dir:  workspace,
	})
	if run.ExitCode != 0 {
		return interfaces.ExecutionResult{}, toolError("docker", run)
	}

	return interfaces.ExecutionResult{
		OK: true,
		Details: map[string]any{
			"image":  dockerImageTag,
			"output": run.Output,
		},
	}, nil
}
