package classifier

import (
	"strings"
	"unicode/utf8"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-polyglot/internal/tokenizer"
)

// FenceBlock is one fenced code block discovered by the fence scan, carrying
// the raw info string and the joined content.
type FenceBlock struct {
	Lang    string
	Content string
	Line    int
}

// Directive is one parsed polyglot/kyozo HTML-comment directive.
type Directive struct {
	Scheme string
	Name   string
	Value  string
	Line   int
}

const (
	schemePolyglot = "polyglot"
	schemeKyozo    = "kyozo"
)

// ScanFences extracts every fenced code block from raw text. The scan runs
// over the token stream rather than the AST so it sees content the builder
// simplifies away.
func ScanFences(text string) []FenceBlock {
	tokens := tokenizer.Tokenize(text)

	var blocks []FenceBlock
	i := 0
	for i < len(tokens) {
		tok := tokens[i]
		if tok.Kind != tokenizer.KindCodeFenceStart {
			i++
			continue
		}

		var lines []string
		j := i + 1
		for j < len(tokens) {
			inner := tokens[j]
			if inner.Kind == tokenizer.KindCodeFenceEnd {
				j++
				break
			}
			if inner.Kind != tokenizer.KindCodeContent {
				break
			}
			lines = append(lines, inner.Text)
			j++
		}

		blocks = append(blocks, FenceBlock{
			Lang:    tok.Lang,
			Content: strings.Join(lines, "\n"),
			Line:    tok.Line,
		})
		i = j
	}

	return blocks
}

// ScanDirectives extracts polyglot:/kyozo: directives from HTML comments.
// Forms: `polyglot:key=value`, bare `polyglot:flag`, and
// `kyozo:directive arg1=v1 arg2=v2`.
func ScanDirectives(text string) []Directive {
	var directives []Directive

	for _, tok := range tokenizer.Tokenize(text) {
		var body string
		switch tok.Kind {
		case tokenizer.KindHTMLComment, tokenizer.KindHTMLCommentStart:
			body = tok.Text
		default:
			continue
		}

		body = strings.TrimSpace(body)
		scheme := ""
		switch {
		case strings.HasPrefix(body, schemePolyglot+":"):
			scheme = schemePolyglot
		case strings.HasPrefix(body, schemeKyozo+":"):
			scheme = schemeKyozo
		default:
			continue
		}

		rest := strings.TrimPrefix(body, scheme+":")
		name, value := splitDirective(rest)
		if name == "" {
			continue
		}
		directives = append(directives, Directive{
			Scheme: scheme,
			Name:   name,
			Value:  value,
			Line:   tok.Line,
		})
	}

	return directives
}

func splitDirective(rest string) (string, string) {
	rest = strings.TrimSpace(rest)
	if rest == "" {
		return "", ""
	}
	if idx := strings.IndexAny(rest, "= "); idx >= 0 {
		return strings.TrimSpace(rest[:idx]), strings.TrimSpace(rest[idx+1:])
	}
	return rest, ""
}

// Zero-width codepoints used for steganographic payload encoding: U+200B
// encodes a 0 bit, U+200C a 1 bit, U+200D separates bytes, and U+FEFF is
// padding that carries no information.
const (
	runeZeroWidthSpace   = '\u200b'
	runeZeroWidthNonJoin = '\u200c'
	runeZeroWidthJoin    = '\u200d'
	runeZeroWidthNoBreak = '\ufeff'
)

// HasZeroWidth reports whether the text contains any zero-width codepoint.
func HasZeroWidth(text string) bool {
	return strings.ContainsAny(text, string([]rune{
		runeZeroWidthSpace, runeZeroWidthNonJoin, runeZeroWidthJoin, runeZeroWidthNoBreak,
	}))
}

// DecodeZeroWidth extracts the hidden payload encoded in zero-width runes.
// The second return reports whether any zero-width runes were present at all;
// the payload is empty when the bit stream does not decode to valid UTF-8.
func DecodeZeroWidth(text string) (string, bool) {
	var bits []byte
	var raw []byte
	found := false

	flush := func() {
		if len(bits) != 8 {
			bits = bits[:0]
			return
		}
		var b byte
		for _, bit := range bits {
			b = b<<1 | bit
		}
		raw = append(raw, b)
		bits = bits[:0]
	}

	for _, r := range text {
		switch r {
		case runeZeroWidthSpace:
			found = true
			bits = append(bits, 0)
		case runeZeroWidthNonJoin:
			found = true
			bits = append(bits, 1)
		case runeZeroWidthJoin:
			found = true
			flush()
		case runeZeroWidthNoBreak:
			found = true
		}
	}
	flush()

	if !utf8.Valid(raw) {
		return "", found
	}
	return string(raw), found
}

// isKubernetesManifest reports whether content parses as YAML carrying both
// apiVersion and kind keys in at least one document.
func isKubernetesManifest(content string) bool {
	if strings.TrimSpace(content) == "" {
		return false
	}

	decoder := yaml.NewDecoder(strings.NewReader(content))
	for {
		var doc map[string]any
		if err := decoder.Decode(&doc); err != nil {
			return false
		}
		if doc == nil {
			continue
		}
		_, hasAPIVersion := doc["apiVersion"]
		_, hasKind := doc["kind"]
		if hasAPIVersion && hasKind {
			return true
		}
	}
}
