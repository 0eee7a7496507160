package transpiler

import (
	"strings"

	"github.com/goliatone/go-polyglot/pkg/interfaces"
)

// SQLConfig is the configuration consumed by the SQL executor: one entry per
// statement so each can run and fail independently.
type SQLConfig struct {
	Statements []string `json:"statements"`
}

// SQL splits every sql artifact into individual statements on semicolons
// outside of quoted strings. Empty statements are dropped.
func SQL(artifacts []interfaces.Artifact, _ map[string]any) (SQLConfig, error) {
	matching := allOfType(artifacts, interfaces.ArtifactSQL)
	if len(matching) == 0 {
		return SQLConfig{}, missingArtifact(TargetSQL, "sql")
	}

	var statements []string
	for _, artifact := range matching {
		statements = append(statements, splitStatements(artifact.Content)...)
	}
	if len(statements) == 0 {
		return SQLConfig{}, missingArtifact(TargetSQL, "sql")
	}
	return SQLConfig{Statements: statements}, nil
}

func splitStatements(content string) []string {
	var statements []string
	var current strings.Builder
	var quote rune

	for _, r := range content {
		switch {
		case quote != 0:
			current.WriteRune(r)
			if r == quote {
				quote = 0
			}
		case r == '\'' || r == '"':
			quote = r
			current.WriteRune(r)
		case r == ';':
			if stmt := strings.TrimSpace(current.String()); stmt != "" {
				statements = append(statements, stmt)
			}
			current.Reset()
		default:
			current.WriteRune(r)
		}
	}
	if stmt := strings.TrimSpace(current.String()); stmt != "" {
		statements = append(statements, stmt)
	}

	return statements
}
