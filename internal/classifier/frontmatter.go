package classifier

import (
	"bytes"

	"github.com/adrg/frontmatter"
)

// scanFrontmatter parses a YAML frontmatter block into a loose map. The
// second return is false when the document carries no frontmatter or the
// block does not parse; detection must never fail the classification pass.
func scanFrontmatter(text string) (map[string]any, bool) {
	var meta map[string]any

	if _, err := frontmatter.Parse(bytes.NewReader([]byte(text)), &meta); err != nil {
		return nil, false
	}
	if len(meta) == 0 {
		return nil, false
	}
	return meta, true
}
