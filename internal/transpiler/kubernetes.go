package transpiler

import (
	"fmt"
	"strings"
	"sync"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-polyglot/pkg/interfaces"
)

// KubernetesConfig is the configuration consumed by the Kubernetes executor:
// one YAML string per manifest, ready to pipe into kubectl.
type KubernetesConfig struct {
	Manifests []string `json:"manifests"`
}

// Kubernetes schema subset: a manifest must carry apiVersion and kind.
// Anything stricter is the cluster's job, not ours.
const manifestSchema = `{
	"$schema": "https://json-schema.org/draft/2020-12/schema",
	"type": "object",
	"required": ["apiVersion", "kind"],
	"properties": {
		"apiVersion": {"type": "string"},
		"kind": {"type": "string"}
	}
}`

var (
	manifestSchemaOnce     sync.Once
	compiledManifestSchema *jsonschema.Schema
)

func manifestValidator() *jsonschema.Schema {
	manifestSchemaOnce.Do(func() {
		compiler := jsonschema.NewCompiler()
		compiler.Draft = jsonschema.Draft2020
		if err := compiler.AddResource("manifest.json", strings.NewReader(manifestSchema)); err != nil {
			panic(fmt.Sprintf("transpiler: manifest schema resource: %v", err))
		}
		schema, err := compiler.Compile("manifest.json")
		if err != nil {
			panic(fmt.Sprintf("transpiler: manifest schema compile: %v", err))
		}
		compiledManifestSchema = schema
	})
	return compiledManifestSchema
}

// Kubernetes collects every kubernetes artifact, splits multi-document YAML
// into individual manifests, and validates each manifest against the minimal
// schema before handing it to the executor.
func Kubernetes(artifacts []interfaces.Artifact, _ map[string]any) (KubernetesConfig, error) {
	matching := allOfType(artifacts, interfaces.ArtifactKubernetes)
	if len(matching) == 0 {
		return KubernetesConfig{}, missingArtifact(TargetKubernetes, "kubernetes")
	}

	var manifests []string
	for _, artifact := range matching {
		for _, doc := range splitManifests(artifact.Content) {
			if err := validateManifest(doc); err != nil {
				return KubernetesConfig{}, err
			}
			manifests = append(manifests, doc)
		}
	}

	if len(manifests) == 0 {
		return KubernetesConfig{}, missingArtifact(TargetKubernetes, "kubernetes")
	}
	return KubernetesConfig{Manifests: manifests}, nil
}

func splitManifests(content string) []string {
	var out []string
	for _, part := range strings.Split(content, "\n---") {
		part = strings.TrimPrefix(part, "---")
		if strings.TrimSpace(part) == "" {
			continue
		}
		out = append(out, strings.TrimSpace(part))
	}
	return out
}

func validateManifest(doc string) error {
	var decoded map[string]any
	if err := yaml.Unmarshal([]byte(doc), &decoded); err != nil {
		return fmt.Errorf("transpiler: manifest is not valid yaml: %w", err)
	}
	if err := manifestValidator().Validate(normalizeYAML(decoded)); err != nil {
		return fmt.Errorf("transpiler: manifest rejected: %w", err)
	}
	return nil
}

// normalizeYAML converts yaml.v3 decoding output into the json-shaped values
// the schema validator expects.
func normalizeYAML(value any) any {
	switch typed := value.(type) {
	case map[string]any:
		out := make(map[string]any, len(typed))
		for k, v := range typed {
			out[k] = normalizeYAML(v)
		}
		return out
	case []any:
		out := make([]any, len(typed))
		for i, v := range typed {
			out[i] = normalizeYAML(v)
		}
		return out
	case int:
		return float64(typed)
	case int64:
		return float64(typed)
	default:
		return typed
	}
}
