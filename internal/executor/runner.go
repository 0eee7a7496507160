package executor

import (
	"context"
	"fmt"
	"os/exec"
	"sort"
	"strings"
	"time"
)

// CommandSpec describes one external tool invocation.
type CommandSpec struct {
	Name  string
	Args  []string
	Dir   string
	Stdin string
	Env   map[string]string
}

// RunResult is the collapsed outcome of an invocation. A raised process error
// (binary vanished mid-call, permission failure, timeout) is normalized to
// ExitCode -1 with the message as output, so callers see exactly one failure
// shape per target.
type RunResult struct {
	ExitCode int
	Output   string
}

// CommandRunner abstracts external process invocation. The interface exists
// so executor tests can substitute canned results for real tools.
type CommandRunner interface {
	// LookPath probes for the binary, reporting its resolved path.
	LookPath(name string) (string, error)
	// Run invokes the tool and captures combined output plus exit code.
	Run(ctx context.Context, spec CommandSpec) RunResult
}

// execRunner is the real implementation using os/exec.
type execRunner struct {
	timeout time.Duration
}

// NewRunner returns the default command runner. Every invocation is bounded
// by the supplied timeout; expiry normalizes to the standard failure shape.
func NewRunner(timeout time.Duration) CommandRunner {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &execRunner{timeout: timeout}
}

// DefaultTimeout bounds each external process invocation. A hung child would
// otherwise block its caller indefinitely.
const DefaultTimeout = 60 * time.Second

func (r *execRunner) LookPath(name string) (string, error) {
	return exec.LookPath(name)
}

func (r *execRunner) Run(ctx context.Context, spec CommandSpec) (result RunResult) {
	defer func() {
		if recovered := recover(); recovered != nil {
			result = RunResult{ExitCode: -1, Output: fmt.Sprintf("invocation panic: %v", recovered)}
		}
	}()

	if ctx == nil {
		ctx = context.Background()
	}
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, spec.Name, spec.Args...)
	if spec.Dir != "" {
		cmd.Dir = spec.Dir
	}
	if spec.Stdin != "" {
		cmd.Stdin = strings.NewReader(spec.Stdin)
	}
	if len(spec.Env) > 0 {
		cmd.Env = append(cmd.Environ(), flattenEnv(spec.Env)...)
	}

	output, err := cmd.CombinedOutput()
	if err == nil {
		return RunResult{ExitCode: 0, Output: string(output)}
	}

	if ctxErr := ctx.Err(); ctxErr != nil {
		return RunResult{ExitCode: -1, Output: fmt.Sprintf("invocation timed out: %v", ctxErr)}
	}

	if exitErr, ok := err.(*exec.ExitError); ok {
		return RunResult{ExitCode: exitErr.ExitCode(), Output: string(output)}
	}

	// Start failures (binary removed between probe and call, permission
	// denied) collapse into the same shape as a non-zero exit.
	return RunResult{ExitCode: -1, Output: err.Error()}
}

func flattenEnv(env map[string]string) []string {
	keys := make([]string, 0, len(env))
	for key := range env {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	out := make([]string, 0, len(keys))
	for _, key := range keys {
		out = append(out, key+"="+env[key])
	}
	return out
}
