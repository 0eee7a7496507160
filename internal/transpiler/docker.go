package transpiler

import "github.com/goliatone/go-polyglot/pkg/interfaces"

// DockerConfig is the configuration consumed by the Docker executor.
type DockerConfig struct {
	Dockerfile string `json:"dockerfile"`
}

// Docker extracts the Dockerfile content for a build.
func Docker(artifacts []interfaces.Artifact, _ map[string]any) (DockerConfig, error) {
	artifact, ok := firstOfType(artifacts, interfaces.ArtifactDockerfile)
	if !ok {
		return DockerConfig{}, missingArtifact(TargetDocker, "dockerfile")
	}
	return DockerConfig{Dockerfile: artifact.Content}, nil
}
