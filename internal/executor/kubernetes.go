package executor

import (
	"context"

	"github.com/goliatone/go-polyglot/internal/transpiler"
	"github.com/goliatone/go-polyglot/pkg/interfaces"
)

// executeKubernetes applies each manifest independently: a failing manifest
// is recorded and the batch continues, so the result always carries
// applied/failed counts plus per-unit entries.
func (e *Executor) executeKubernetes(ctx context.Context, doc interfaces.Polyglot) (interfaces.ExecutionResult, error) {
	cfg, err := transpiler.Kubernetes(doc.Artifacts, doc.Metadata)
	if err != nil {
		return interfaces.ExecutionResult{}, err
	}

	if _, err := e.runner.LookPath("kubectl"); err != nil {
		return mockResult("kubectl", "would apply manifests via: kubectl apply -f -"), nil
	}

	applied := 0
	var unitResults []map[string]any

	for i, manifest := range cfg.Manifests {
		run := e.runner.Run(ctx, CommandSpec{
			Name:  "kubectl",
			Args:  []string{"apply", "-f", "-"},
			Stdin: manifest,
		})

		unit := map[string]any{
			"manifest": i,
			"output":   run.Output,
		}
		if run.ExitCode == 0 {
			unit["ok"] = true
			applied++
		} else {
			unit["ok"] = false
			unit["code"] = run.ExitCode
		}
		unitResults = append(unitResults, unit)
	}

	failed := len(cfg.Manifests) - applied
	return interfaces.ExecutionResult{
		OK: failed == 0,
		Details: map[string]any{
			"applied": applied,
			"failed":  failed,
			"results": unitResults,
		},
	}, nil
}
