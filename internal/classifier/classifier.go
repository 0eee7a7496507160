package classifier

import (
	"strings"

	"github.com/goliatone/go-polyglot/pkg/interfaces"
)

// Metadata keys written by the detection passes.
const (
	metaType          = "type"
	metaHiddenPayload = "hidden_payload"
	metaFrontmatter   = "frontmatter"

	typeSteganographic = "steganographic"

	directiveExecutable = "executable"
	filePrefix          = "file:"
)

// Classify derives the dominant language, the artifact list, and the
// metadata map from raw text. Detection runs as independent passes over the
// raw bytes, never over the AST. The first matching rule decides the
// language; every rule still contributes its artifacts.
func Classify(text string) interfaces.Polyglot {
	fences := ScanFences(text)
	directives := ScanDirectives(text)

	metadata := map[string]any{}
	for _, d := range directives {
		if d.Name == directiveExecutable && d.Value == "" {
			continue
		}
		if d.Value == "" {
			metadata[d.Name] = true
			continue
		}
		metadata[d.Name] = d.Value
	}
	if fm, ok := scanFrontmatter(text); ok {
		metadata[metaFrontmatter] = fm
	}

	executableDirective := hasExecutableDirective(directives)

	var artifacts []interfaces.Artifact
	var haveDocker, haveTerraform, haveKubernetes, haveExecutable, haveFile, haveSQL bool

	for _, fence := range fences {
		lang := strings.ToLower(strings.TrimSpace(fence.Lang))

		switch {
		case lang == "dockerfile":
			haveDocker = true
			artifacts = append(artifacts, interfaces.Artifact{
				Type:    interfaces.ArtifactDockerfile,
				Content: fence.Content,
			})

		case lang == "terraform":
			haveTerraform = true
			artifacts = append(artifacts, interfaces.Artifact{
				Type:    interfaces.ArtifactTerraform,
				Content: fence.Content,
			})

		case strings.HasPrefix(lang, filePrefix):
			location := strings.TrimSpace(fence.Lang[len(filePrefix):])
			haveFile = true
			artifacts = append(artifacts, interfaces.Artifact{
				Type:     interfaces.ArtifactFile,
				Content:  fence.Content,
				Location: location,
			})

		case lang == "bash" || lang == "sh" || lang == "shell":
			if executableDirective {
				haveExecutable = true
				artifacts = append(artifacts, interfaces.Artifact{
					Type:       interfaces.ArtifactBash,
					Content:    fence.Content,
					Executable: true,
				})
			}

		case lang == "sql":
			haveSQL = true
			artifacts = append(artifacts, interfaces.Artifact{
				Type:    interfaces.ArtifactSQL,
				Content: fence.Content,
			})

		case lang == "" || lang == "yaml" || lang == "yml":
			if isKubernetesManifest(fence.Content) {
				haveKubernetes = true
				artifacts = append(artifacts, interfaces.Artifact{
					Type:    interfaces.ArtifactKubernetes,
					Content: fence.Content,
				})
			}
		}
	}

	language := interfaces.LanguageNone
	switch {
	case haveDocker:
		language = interfaces.LanguageDockerfile
	case haveTerraform:
		language = interfaces.LanguageTerraform
	case haveKubernetes:
		language = interfaces.LanguageKubernetes
	case haveExecutable:
		language = interfaces.LanguageExecutable
	case haveFile:
		language = interfaces.LanguageGit
	case haveSQL:
		language = interfaces.LanguageSQL
	default:
		if payload, found := DecodeZeroWidth(text); found {
			if _, present := metadata[metaType]; !present {
				metadata[metaType] = typeSteganographic
			}
			if payload != "" {
				metadata[metaHiddenPayload] = payload
			}
		}
	}

	if len(metadata) == 0 {
		metadata = nil
	}

	return interfaces.Polyglot{
		Language:  language,
		Artifacts: artifacts,
		Metadata:  metadata,
	}
}

// IsPolyglot is a cheap boolean pre-check: true when any detection rule would
// fire, letting callers short-circuit full parsing for plain documents.
func IsPolyglot(text string) bool {
	if HasZeroWidth(text) {
		return true
	}

	directives := ScanDirectives(text)
	executableDirective := hasExecutableDirective(directives)

	for _, fence := range ScanFences(text) {
		lang := strings.ToLower(strings.TrimSpace(fence.Lang))
		switch {
		case lang == "dockerfile", lang == "terraform", lang == "sql":
			return true
		case strings.HasPrefix(lang, filePrefix):
			return true
		case lang == "bash" || lang == "sh" || lang == "shell":
			if executableDirective {
				return true
			}
		case lang == "" || lang == "yaml" || lang == "yml":
			if isKubernetesManifest(fence.Content) {
				return true
			}
		}
	}

	return false
}

func hasExecutableDirective(directives []Directive) bool {
	for _, d := range directives {
		if d.Scheme == schemePolyglot && d.Name == directiveExecutable {
			return true
		}
	}
	return false
}
