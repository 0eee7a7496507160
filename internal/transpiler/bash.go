package transpiler

import (
	"strings"

	"github.com/goliatone/go-polyglot/pkg/interfaces"
)

// BashConfig is the configuration consumed by the shell executor.
type BashConfig struct {
	Script string            `json:"script"`
	Env    map[string]string `json:"env,omitempty"`
}

// Bash extracts the executable script plus any environment assignments the
// directives carried (`kyozo:env KEY=VALUE`).
func Bash(artifacts []interfaces.Artifact, metadata map[string]any) (BashConfig, error) {
	artifact, ok := firstOfType(artifacts, interfaces.ArtifactBash)
	if !ok {
		artifact, ok = firstOfType(artifacts, interfaces.ArtifactExecutable)
	}
	if !ok {
		return BashConfig{}, missingArtifact(TargetBash, "bash")
	}

	return BashConfig{
		Script: artifact.Content,
		Env:    envFromMetadata(metadata),
	}, nil
}

func envFromMetadata(metadata map[string]any) map[string]string {
	raw, ok := metadata["env"].(string)
	if !ok || raw == "" {
		return nil
	}

	env := map[string]string{}
	for _, pair := range strings.Fields(raw) {
		key, value, found := strings.Cut(pair, "=")
		if !found || key == "" {
			continue
		}
		env[key] = value
	}
	if len(env) == 0 {
		return nil
	}
	return env
}
