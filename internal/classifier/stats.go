package classifier

import (
	"regexp"
	"strings"

	"github.com/goliatone/go-slug"

	"github.com/goliatone/go-polyglot/internal/tokenizer"
	"github.com/goliatone/go-polyglot/pkg/interfaces"
)

const wordsPerMinute = 200

var linkPattern = regexp.MustCompile(`\[([^\]]*)\]\(([^)]+)\)`)

// Stats computes reading metrics for a document: word count, estimated
// reading time, the heading outline with slugified anchors, outbound links,
// and the fenced code block count.
func Stats(text string) interfaces.DocumentStats {
	stats := interfaces.DocumentStats{
		WordCount: len(strings.Fields(text)),
	}
	if stats.WordCount > 0 {
		stats.ReadingTimeMinutes = (stats.WordCount + wordsPerMinute - 1) / wordsPerMinute
	}

	for _, tok := range tokenizer.Tokenize(text) {
		switch tok.Kind {
		case tokenizer.KindHeading:
			stats.Headings = append(stats.Headings, interfaces.HeadingInfo{
				Depth:  tok.Depth,
				Text:   tok.Text,
				Anchor: headingAnchor(tok.Text),
				Line:   tok.Line,
			})

		case tokenizer.KindText:
			for _, m := range linkPattern.FindAllStringSubmatch(tok.Text, -1) {
				stats.Links = append(stats.Links, interfaces.LinkInfo{
					Text: m[1],
					URL:  m[2],
					Line: tok.Line,
				})
			}

		case tokenizer.KindCodeFenceStart:
			stats.CodeBlocks++
		}
	}

	return stats
}

func headingAnchor(text string) string {
	anchor, err := slug.Normalize(text)
	if err != nil {
		return strings.ToLower(strings.ReplaceAll(strings.TrimSpace(text), " ", "-"))
	}
	return anchor
}
