package polyglotcmd

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/goliatone/go-polyglot/internal/transpiler"
)

const (
	processDocumentMessageType = "polyglot.process_document"
	executeDocumentMessageType = "polyglot.execute_document"
)

// ProcessDocumentCommand loads a stored document by id, executes its embedded
// automation, and persists the outcome through the configured result sink.
type ProcessDocumentCommand struct {
	// DocumentID identifies the document in the content provider.
	DocumentID string `json:"document_id"`
}

// Type implements command.Message.
func (ProcessDocumentCommand) Type() string { return processDocumentMessageType }

// Validate ensures a document id is present before handlers execute.
func (cmd ProcessDocumentCommand) Validate() error {
	return validation.ValidateStruct(&cmd,
		validation.Field(&cmd.DocumentID, validation.Required, validation.By(func(value any) error {
			if strings.TrimSpace(value.(string)) == "" {
				return validation.NewError("polyglot.process_document.document_id_required", "document id is required")
			}
			return nil
		})),
	)
}

// ExecuteDocumentCommand runs inline document content. Target is optional;
// when empty the document's detected language picks the execution target.
type ExecuteDocumentCommand struct {
	// Content is the raw Markdown document to execute.
	Content string `json:"content"`
	// Target optionally forces a specific execution target.
	Target string `json:"target,omitempty"`
}

// Type implements command.Message.
func (ExecuteDocumentCommand) Type() string { return executeDocumentMessageType }

// Validate ensures content is present and any explicit target is defined.
func (cmd ExecuteDocumentCommand) Validate() error {
	return validation.ValidateStruct(&cmd,
		validation.Field(&cmd.Content, validation.Required),
		validation.Field(&cmd.Target, validation.By(func(value any) error {
			name := strings.TrimSpace(value.(string))
			if name == "" {
				return nil
			}
			for _, target := range transpiler.Targets() {
				if name == string(target) {
					return nil
				}
			}
			return validation.NewError("polyglot.execute_document.target_unknown", "target is not defined")
		})),
	)
}
