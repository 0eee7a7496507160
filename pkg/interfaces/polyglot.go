package interfaces

// Language is the dominant classification assigned to a document. Multiple
// artifact types may coexist inside one document, but exactly one language
// drives execution routing.
type Language string

const (
	LanguageDockerfile Language = "dockerfile"
	LanguageTerraform  Language = "terraform"
	LanguageKubernetes Language = "kubernetes"
	LanguageExecutable Language = "executable"
	LanguageGit        Language = "git"
	LanguageSQL        Language = "sql"
	LanguageNone       Language = "none"
)

// ArtifactType identifies the payload kind extracted from a fenced block.
type ArtifactType string

const (
	ArtifactDockerfile ArtifactType = "dockerfile"
	ArtifactTerraform  ArtifactType = "terraform"
	ArtifactKubernetes ArtifactType = "kubernetes"
	ArtifactSQL        ArtifactType = "sql"
	ArtifactFile       ArtifactType = "file"
	ArtifactBash       ArtifactType = "bash"
	ArtifactExecutable ArtifactType = "executable"
)

// Artifact is one extracted, typed payload found inside a document. Artifacts
// are immutable once produced by the classifier.
type Artifact struct {
	Type       ArtifactType `json:"type"`
	Content    string       `json:"content"`
	Location   string       `json:"location,omitempty"`
	Executable bool         `json:"executable,omitempty"`
}

// Polyglot is the top-level classification result for a document: the
// dominant language, the flat artifact list, the annotated syntax tree, and
// any metadata harvested from directives, frontmatter, or hidden payloads.
type Polyglot struct {
	Language  Language       `json:"language"`
	Artifacts []Artifact     `json:"artifacts"`
	AST       *Node          `json:"ast,omitempty"`
	Metadata  map[string]any `json:"metadata,omitempty"`
}

// ExecutionResult is the terminal value of an executor call. Details carries
// target-specific fields (image, plan, applied/failed counts, output). The
// struct is never partially constructed.
type ExecutionResult struct {
	OK      bool           `json:"ok"`
	Details map[string]any `json:"details,omitempty"`
}

// HeadingInfo describes one heading discovered while computing document
// statistics. Anchor holds the slugified identifier used for in-page links.
type HeadingInfo struct {
	Depth  int    `json:"depth"`
	Text   string `json:"text"`
	Anchor string `json:"anchor"`
	Line   int    `json:"line"`
}

// LinkInfo describes one Markdown link discovered in the document body.
type LinkInfo struct {
	Text string `json:"text"`
	URL  string `json:"url"`
	Line int    `json:"line"`
}

// DocumentStats aggregates reading metrics for a document: word count,
// estimated reading time, the table of contents, outbound links, and the
// number of fenced code blocks.
type DocumentStats struct {
	WordCount          int           `json:"word_count"`
	ReadingTimeMinutes int           `json:"reading_time_minutes"`
	Headings           []HeadingInfo `json:"headings"`
	Links              []LinkInfo    `json:"links"`
	CodeBlocks         int           `json:"code_blocks"`
}
