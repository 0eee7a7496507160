// Package sanitizer produces redacted copies of polyglot documents: directive
// comments, steganographic characters, and content-addressed links are
// neutralized while every other byte is preserved.
package sanitizer

import "regexp"

var (
	// Full-line directive comments disappear with their trailing newline so
	// no empty line is left behind; inline spans are removed in place.
	directiveLinePattern   = regexp.MustCompile(`(?m)^[ \t]*<!--\s*(?:polyglot|kyozo):[^>]*-->[ \t]*\r?\n?`)
	directiveInlinePattern = regexp.MustCompile(`<!--\s*(?:polyglot|kyozo):[^>]*-->`)

	zeroWidthPattern = regexp.MustCompile("[\u200b\u200c\u200d\ufeff]")

	// Markdown links whose target is a content hash (40+ hex characters,
	// optionally behind a scheme or path prefix) point into the internal
	// content-addressed store and are rewritten to a neutral placeholder.
	hashLinkPattern = regexp.MustCompile(`\[([^\]]*)\]\([^)]*[0-9a-fA-F]{40,}[^)]*\)`)
)

// Sanitize returns a redacted copy of the document. The operation is
// idempotent: sanitizing already-sanitized content is a no-op.
func Sanitize(text string) string {
	out := directiveLinePattern.ReplaceAllString(text, "")
	out = directiveInlinePattern.ReplaceAllString(out, "")
	out = zeroWidthPattern.ReplaceAllString(out, "")
	out = hashLinkPattern.ReplaceAllString(out, "[$1](#)")
	return out
}

// NeedsSanitizing reports whether the text still contains directive comments,
// zero-width runes, or content-hash links.
func NeedsSanitizing(text string) bool {
	if directiveInlinePattern.MatchString(text) {
		return true
	}
	if zeroWidthPattern.MatchString(text) {
		return true
	}
	return hashLinkPattern.MatchString(text)
}
