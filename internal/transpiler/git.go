package transpiler

import (
	"fmt"

	"github.com/goliatone/go-polyglot/pkg/interfaces"
)

// GitConfig is the configuration consumed by the Git executor: files to
// materialize and the shell commands that turn them into a repository.
type GitConfig struct {
	Files        map[string]string `json:"files"`
	InitCommands []string          `json:"init_commands"`
}

// Git builds a repository layout from file artifacts. Artifacts without a
// location are skipped; duplicates keep the last content, matching document
// order.
func Git(artifacts []interfaces.Artifact, _ map[string]any) (GitConfig, error) {
	matching := allOfType(artifacts, interfaces.ArtifactFile)
	if len(matching) == 0 {
		return GitConfig{}, missingArtifact(TargetGit, "file")
	}

	files := make(map[string]string, len(matching))
	for _, artifact := range matching {
		if artifact.Location == "" {
			continue
		}
		files[artifact.Location] = artifact.Content
	}
	if len(files) == 0 {
		return GitConfig{}, missingArtifact(TargetGit, "file")
	}

	commands := []string{
		"git init",
		"git add .",
		fmt.Sprintf("git commit -m %q", "Initial commit from polyglot document"),
	}

	return GitConfig{Files: files, InitCommands: commands}, nil
}
