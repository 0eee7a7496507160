// Package transpiler converts extracted artifacts plus metadata into the
// configuration shape each execution target expects. Every transpile is a
// pure function: no side effects, no I/O, fresh output per call.
package transpiler

import (
	"errors"
	"fmt"

	goerrors "github.com/goliatone/go-errors"

	"github.com/goliatone/go-polyglot/pkg/interfaces"
)

// Target enumerates the execution targets. The set is closed: dispatch is an
// exhaustive switch, so adding a target is a compile-time-checked change
// rather than a runtime module lookup.
type Target string

const (
	TargetDocker     Target = "docker"
	TargetTerraform  Target = "terraform"
	TargetKubernetes Target = "kubernetes"
	TargetGit        Target = "git"
	TargetBash       Target = "bash"
	TargetSQL        Target = "sql"
)

// Targets lists every defined target in priority order.
func Targets() []Target {
	return []Target{TargetDocker, TargetTerraform, TargetKubernetes, TargetGit, TargetBash, TargetSQL}
}

const (
	codeArtifactMissing = "POLYGLOT_ARTIFACT_MISSING"
	codeUnknownTarget   = "POLYGLOT_UNKNOWN_TARGET"
)

// ErrArtifactMissing is the sentinel wrapped into every missing-artifact
// failure so callers can branch with errors.Is.
var ErrArtifactMissing = errors.New("transpiler: required artifact missing")

// Transpile resolves the target to its transpiler and runs it. The mapping is
// total over the defined targets; an unknown target is a typed error, never a
// silent fallback.
func Transpile(target Target, artifacts []interfaces.Artifact, metadata map[string]any) (any, error) {
	switch target {
	case TargetDocker:
		return Docker(artifacts, metadata)
	case TargetTerraform:
		return Terraform(artifacts, metadata)
	case TargetKubernetes:
		return Kubernetes(artifacts, metadata)
	case TargetGit:
		return Git(artifacts, metadata)
	case TargetBash:
		return Bash(artifacts, metadata)
	case TargetSQL:
		return SQL(artifacts, metadata)
	default:
		return nil, goerrors.Wrap(
			fmt.Errorf("transpiler: unknown target %q", target),
			goerrors.CategoryValidation,
			"transpile target not defined",
		).WithTextCode(codeUnknownTarget)
	}
}

// TargetForLanguage maps a dominant language onto its execution target. The
// boolean is false for LanguageNone, which routes to the no-op executor.
func TargetForLanguage(language interfaces.Language) (Target, bool) {
	switch language {
	case interfaces.LanguageDockerfile:
		return TargetDocker, true
	case interfaces.LanguageTerraform:
		return TargetTerraform, true
	case interfaces.LanguageKubernetes:
		return TargetKubernetes, true
	case interfaces.LanguageGit:
		return TargetGit, true
	case interfaces.LanguageExecutable:
		return TargetBash, true
	case interfaces.LanguageSQL:
		return TargetSQL, true
	default:
		return "", false
	}
}

func missingArtifact(target Target, wanted string) error {
	return goerrors.Wrap(
		fmt.Errorf("%w: target %s needs a %s artifact", ErrArtifactMissing, target, wanted),
		goerrors.CategoryValidation,
		"document has no artifact for the requested target",
	).WithTextCode(codeArtifactMissing)
}

func firstOfType(artifacts []interfaces.Artifact, kind interfaces.ArtifactType) (interfaces.Artifact, bool) {
	for _, artifact := range artifacts {
		if artifact.Type == kind {
			return artifact, true
		}
	}
	return interfaces.Artifact{}, false
}

func allOfType(artifacts []interfaces.Artifact, kind interfaces.ArtifactType) []interfaces.Artifact {
	var out []interfaces.Artifact
	for _, artifact := range artifacts {
		if artifact.Type == kind {
			out = append(out, artifact)
		}
	}
	return out
}
