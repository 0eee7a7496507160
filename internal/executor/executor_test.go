package executor

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/goliatone/go-polyglot/internal/transpiler"
	"github.com/goliatone/go-polyglot/pkg/interfaces"
)

// mockRunner substitutes canned results for real tool invocations and records
// every spec it sees.
type mockRunner struct {
	available map[string]bool
	results   []RunResult
	onRun     func(spec CommandSpec) RunResult
	specs     []CommandSpec
}

func (m *mockRunner) LookPath(name string) (string, error) {
	if m.available[name] {
		return "/usr/bin/" + name, nil
	}
	return "", errors.New("executable file not found in $PATH")
}

func (m *mockRunner) Run(_ context.Context, spec CommandSpec) RunResult {
	m.specs = append(m.specs, spec)
	if m.onRun != nil {
		return m.onRun(spec)
	}
	if len(m.results) == 0 {
		return RunResult{ExitCode: 0, Output: "ok"}
	}
	result := m.results[0]
	m.results = m.results[1:]
	return result
}

func dockerDoc() interfaces.Polyglot {
	return interfaces.Polyglot{
		Language: interfaces.LanguageDockerfile,
		Artifacts: []interfaces.Artifact{
			{Type: interfaces.ArtifactDockerfile, Content: "FROM alpine:3.20"},
		},
	}
}

func TestExecuteDockerSuccess(t *testing.T) {
	var dockerfileSeen string
	runner := &mockRunner{
		available: map[string]bool{"docker": true},
		onRun: func(spec CommandSpec) RunResult {
			// The Dockerfile must exist while the tool runs.
			data, err := os.ReadFile(spec.Args[2])
			if err != nil {
				return RunResult{ExitCode: 1, Output: err.Error()}
			}
			dockerfileSeen = string(data)
			return RunResult{ExitCode: 0, Output: "built"}
		},
	}
	exec := New(Config{Runner: runner})

	result, err := exec.Execute(context.Background(), transpiler.TargetDocker, dockerDoc())
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if !result.OK || result.Details["image"] != "polyglot:latest" {
		t.Fatalf("unexpected result: %#v", result)
	}
	if dockerfileSeen != "FROM alpine:3.20" {
		t.Fatalf("expected dockerfile materialized, got %q", dockerfileSeen)
	}
	if len(runner.specs) != 1 || runner.specs[0].Name != "docker" || runner.specs[0].Args[0] != "build" {
		t.Fatalf("unexpected invocation: %#v", runner.specs)
	}
}

func TestExecuteDockerToolAbsentReturnsMockSuccess(t *testing.T) {
	runner := &mockRunner{available: map[string]bool{}}
	exec := New(Config{Runner: runner})

	result, err := exec.Execute(context.Background(), transpiler.TargetDocker, dockerDoc())
	if err != nil {
		t.Fatalf("absent tool must not fail: %v", err)
	}
	if !result.OK || result.Details["mock"] != true {
		t.Fatalf("expected mock success, got %#v", result)
	}
	if !strings.Contains(result.Details["message"].(string), "not installed") {
		t.Fatalf("expected human-readable note, got %#v", result.Details)
	}
	if len(runner.specs) != 0 {
		t.Fatalf("no invocation expected, got %#v", runner.specs)
	}
}

func TestExecuteDockerNonZeroExit(t *testing.T) {
	runner := &mockRunner{
		available: map[string]bool{"docker": true},
		results:   []RunResult{{ExitCode: 7, Output: "build exploded"}},
	}
	exec := New(Config{Runner: runner})

	_, err := exec.Execute(context.Background(), transpiler.TargetDocker, dockerDoc())
	if err == nil {
		t.Fatal("expected error for non-zero exit")
	}
	var toolErr *ToolError
	if !errors.As(err, &toolErr) {
		t.Fatalf("expected ToolError, got %T: %v", err, err)
	}
	if toolErr.Code != 7 || toolErr.Output != "build exploded" {
		t.Fatalf("unexpected tool error: %#v", toolErr)
	}
}

func TestExecuteInvocationErrorNormalized(t *testing.T) {
	runner := &mockRunner{
		available: map[string]bool{"docker": true},
		results:   []RunResult{{ExitCode: -1, Output: "permission denied"}},
	}
	exec := New(Config{Runner: runner})

	_, err := exec.Execute(context.Background(), transpiler.TargetDocker, dockerDoc())

	var toolErr *ToolError
	if !errors.As(err, &toolErr) || toolErr.Code != -1 {
		t.Fatalf("expected normalized -1 failure, got %v", err)
	}
}

func TestExecuteTerraformRunsInitThenPlan(t *testing.T) {
	runner := &mockRunner{
		available: map[string]bool{"terraform": true},
		results: []RunResult{
			{ExitCode: 0, Output: "initialized"},
			{ExitCode: 0, Output: "Plan: 1 to add"},
		},
	}
	exec := New(Config{Runner: runner})

	doc := interfaces.Polyglot{Artifacts: []interfaces.Artifact{
		{Type: interfaces.ArtifactTerraform, Content: "resource \"a\" \"b\" {}"},
	}}
	result, err := exec.Execute(context.Background(), transpiler.TargetTerraform, doc)
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if result.Details["plan"] != "Plan: 1 to add" {
		t.Fatalf("unexpected result: %#v", result)
	}
	if len(runner.specs) != 2 || runner.specs[0].Args[0] != "init" || runner.specs[1].Args[0] != "plan" {
		t.Fatalf("expected init then plan, got %#v", runner.specs)
	}
	if runner.specs[0].Dir == "" || runner.specs[0].Dir != runner.specs[1].Dir {
		t.Fatalf("expected both commands in the same workspace, got %#v", runner.specs)
	}
}

func TestExecuteKubernetesPartialFailure(t *testing.T) {
	manifests := "apiVersion: v1\nkind: Service\n---\napiVersion: v1\nkind: Pod\n---\napiVersion: apps/v1\nkind: Deployment\n"
	call := 0
	runner := &mockRunner{
		available: map[string]bool{"kubectl": true},
		onRun: func(spec CommandSpec) RunResult {
			call++
			if call == 2 {
				return RunResult{ExitCode: 1, Output: "denied"}
			}
			return RunResult{ExitCode: 0, Output: "applied"}
		},
	}
	exec := New(Config{Runner: runner})

	doc := interfaces.Polyglot{Artifacts: []interfaces.Artifact{
		{Type: interfaces.ArtifactKubernetes, Content: manifests},
	}}
	result, err := exec.Execute(context.Background(), transpiler.TargetKubernetes, doc)
	if err != nil {
		t.Fatalf("partial failure must not abort the batch: %v", err)
	}
	if result.OK {
		t.Fatal("expected OK=false with a failed manifest")
	}
	if result.Details["applied"] != 2 || result.Details["failed"] != 1 {
		t.Fatalf("unexpected counts: %#v", result.Details)
	}
	units := result.Details["results"].([]map[string]any)
	if len(units) != 3 || units[1]["ok"] != false {
		t.Fatalf("expected per-unit entries, got %#v", units)
	}
	for _, spec := range runner.specs {
		if spec.Stdin == "" {
			t.Fatalf("manifests must be piped via stdin, got %#v", spec)
		}
	}
}

func TestExecuteGitMaterializesFilesAndRunsCommands(t *testing.T) {
	var workspace string
	runner := &mockRunner{
		available: map[string]bool{"git": true},
		onRun: func(spec CommandSpec) RunResult {
			workspace = spec.Dir
			if _, err := os.Stat(filepath.Join(spec.Dir, "src", "main.go")); err != nil {
				return RunResult{ExitCode: 1, Output: "missing file"}
			}
			return RunResult{ExitCode: 0, Output: "done"}
		},
	}
	exec := New(Config{Runner: runner})

	doc := interfaces.Polyglot{Artifacts: []interfaces.Artifact{
		{Type: interfaces.ArtifactFile, Content: "package main", Location: "src/main.go"},
	}}
	result, err := exec.Execute(context.Background(), transpiler.TargetGit, doc)
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if !result.OK || result.Details["applied"] != 3 {
		t.Fatalf("unexpected result: %#v", result)
	}
	if workspace == "" {
		t.Fatal("expected commands to run inside a workspace")
	}
	if _, err := os.Stat(workspace); !os.IsNotExist(err) {
		t.Fatalf("workspace must be removed after execution, stat err: %v", err)
	}
}

func TestExecuteGitPartialFailure(t *testing.T) {
	call := 0
	runner := &mockRunner{
		available: map[string]bool{"git": true},
		onRun: func(CommandSpec) RunResult {
			call++
			if call == 3 {
				return RunResult{ExitCode: 128, Output: "commit failed"}
			}
			return RunResult{ExitCode: 0, Output: "ok"}
		},
	}
	exec := New(Config{Runner: runner})

	doc := interfaces.Polyglot{Artifacts: []interfaces.Artifact{
		{Type: interfaces.ArtifactFile, Content: "x", Location: "a.txt"},
	}}
	result, err := exec.Execute(context.Background(), transpiler.TargetGit, doc)
	if err != nil {
		t.Fatalf("partial failure must not abort: %v", err)
	}
	if result.Details["applied"] != 2 || result.Details["failed"] != 1 {
		t.Fatalf("unexpected counts: %#v", result.Details)
	}
}

func TestExecuteBashFallsBackToSh(t *testing.T) {
	runner := &mockRunner{
		available: map[string]bool{"sh": true},
		results:   []RunResult{{ExitCode: 0, Output: "ran"}},
	}
	exec := New(Config{Runner: runner})

	doc := interfaces.Polyglot{
		Artifacts: []interfaces.Artifact{{Type: interfaces.ArtifactBash, Content: "echo hi", Executable: true}},
		Metadata:  map[string]any{"env": "STAGE=dev"},
	}
	result, err := exec.Execute(context.Background(), transpiler.TargetBash, doc)
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if result.Details["shell"] != "sh" {
		t.Fatalf("expected sh fallback, got %#v", result.Details)
	}
	spec := runner.specs[0]
	if spec.Name != "sh" || spec.Args[0] != "-c" || spec.Args[1] != "echo hi" {
		t.Fatalf("unexpected invocation: %#v", spec)
	}
	if spec.Env["STAGE"] != "dev" {
		t.Fatalf("expected env from metadata, got %#v", spec.Env)
	}
}

func TestExecuteBashNoShellReturnsMockSuccess(t *testing.T) {
	runner := &mockRunner{available: map[string]bool{}}
	exec := New(Config{Runner: runner})

	doc := interfaces.Polyglot{Artifacts: []interfaces.Artifact{
		{Type: interfaces.ArtifactBash, Content: "ls", Executable: true},
	}}
	result, err := exec.Execute(context.Background(), transpiler.TargetBash, doc)
	if err != nil {
		t.Fatalf("absent shells must not fail: %v", err)
	}
	if result.Details["mock"] != true {
		t.Fatalf("expected mock result, got %#v", result)
	}
}

func TestExecuteMissingArtifactIsTypedError(t *testing.T) {
	exec := New(Config{Runner: &mockRunner{available: map[string]bool{"docker": true}}})

	_, err := exec.Execute(context.Background(), transpiler.TargetDocker, interfaces.Polyglot{})
	if !errors.Is(err, transpiler.ErrArtifactMissing) {
		t.Fatalf("expected missing-artifact error, got %v", err)
	}
}

func TestExecuteNoop(t *testing.T) {
	exec := New(Config{Runner: &mockRunner{}})

	result, err := exec.ExecuteNoop(context.Background(), interfaces.Polyglot{Language: interfaces.LanguageNone})
	if err != nil {
		t.Fatalf("ExecuteNoop: %v", err)
	}
	if !result.OK || result.Details["message"] != "documentation only" {
		t.Fatalf("unexpected noop result: %#v", result)
	}
}

func TestExecuteSQLPartialFailure(t *testing.T) {
	exec := New(Config{Runner: &mockRunner{}})

	doc := interfaces.Polyglot{Artifacts: []interfaces.Artifact{
		{Type: interfaces.ArtifactSQL, Content: "CREATE TABLE t (id INTEGER); INSERT INTO t VALUES (1); INSERT INTO missing VALUES (2);"},
	}}
	result, err := exec.Execute(context.Background(), transpiler.TargetSQL, doc)
	if err != nil {
		t.Fatalf("per-statement failures must not abort: %v", err)
	}
	if result.Details["applied"] != 2 || result.Details["failed"] != 1 {
		t.Fatalf("unexpected counts: %#v", result.Details)
	}
}
