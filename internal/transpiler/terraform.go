package transpiler

import "github.com/goliatone/go-polyglot/pkg/interfaces"

// TerraformConfig is the configuration consumed by the Terraform executor.
type TerraformConfig struct {
	Configuration string `json:"configuration"`
}

// Terraform extracts the Terraform configuration for init/plan.
func Terraform(artifacts []interfaces.Artifact, _ map[string]any) (TerraformConfig, error) {
	artifact, ok := firstOfType(artifacts, interfaces.ArtifactTerraform)
	if !ok {
		return TerraformConfig{}, missingArtifact(TargetTerraform, "terraform")
	}
	return TerraformConfig{Configuration: artifact.Content}, nil
}
