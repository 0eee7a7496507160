package tokenizer

import (
	"regexp"
	"strings"
)

// Kind discriminates the token variants emitted by Tokenize.
type Kind string

const (
	KindHeading          Kind = "heading"
	KindCodeFenceStart   Kind = "code_fence_start"
	KindCodeFenceEnd     Kind = "code_fence_end"
	KindCodeContent      Kind = "code_content"
	KindHTMLComment      Kind = "html_comment"
	KindHTMLCommentStart Kind = "html_comment_start"
	KindHTMLCommentBody  Kind = "html_comment_content"
	KindHTMLCommentEnd   Kind = "html_comment_end"
	KindText             Kind = "text"
	KindBlank            Kind = "blank"
)

// Token is one line-oriented unit of the source document. Tokens are created
// once per tokenization pass and consumed linearly by the AST builder; they
// are never mutated.
type Token struct {
	Kind  Kind
	Line  int
	Text  string
	Depth int
	Lang  string
}

type scanState int

const (
	stateNone scanState = iota
	stateCodeBlock
	stateHTMLComment
)

var (
	headingPattern = regexp.MustCompile(`^(#{1,6}) +(.*)$`)
	fencePattern   = regexp.MustCompile("^ {0,3}```(.*)$")
)

// Tokenize splits raw text into an ordered token stream. The pass carries a
// small state flag so fence and comment interiors win over line-level
// matches: a heading-shaped line inside a code block becomes code content.
// Malformed input is tolerated; unknown lines become text tokens and the
// tokenizer never fails on well-formed UTF-8.
func Tokenize(text string) []Token {
	lines := strings.Split(text, "\n")
	tokens := make([]Token, 0, len(lines))
	state := stateNone

	for i, line := range lines {
		lineNo := i + 1

		switch state {
		case stateCodeBlock:
			if m := fencePattern.FindStringSubmatch(line); m != nil && strings.TrimSpace(m[1]) == "" {
				tokens = append(tokens, Token{Kind: KindCodeFenceEnd, Line: lineNo})
				state = stateNone
				continue
			}
			tokens = append(tokens, Token{Kind: KindCodeContent, Line: lineNo, Text: line})
			continue

		case stateHTMLComment:
			if idx := strings.Index(line, "-->"); idx >= 0 {
				tokens = append(tokens, Token{Kind: KindHTMLCommentEnd, Line: lineNo, Text: strings.TrimSpace(line[:idx])})
				state = stateNone
				continue
			}
			tokens = append(tokens, Token{Kind: KindHTMLCommentBody, Line: lineNo, Text: line})
			continue
		}

		switch {
		case strings.TrimSpace(line) == "":
			tokens = append(tokens, Token{Kind: KindBlank, Line: lineNo})

		case fencePattern.MatchString(line):
			info := strings.TrimSpace(fencePattern.FindStringSubmatch(line)[1])
			tokens = append(tokens, Token{Kind: KindCodeFenceStart, Line: lineNo, Lang: info})
			state = stateCodeBlock

		case headingPattern.MatchString(line):
			m := headingPattern.FindStringSubmatch(line)
			tokens = append(tokens, Token{
				Kind:  KindHeading,
				Line:  lineNo,
				Depth: len(m[1]),
				Text:  strings.TrimSpace(m[2]),
			})

		case isSingleLineComment(line):
			body := extractCommentBody(line)
			tokens = append(tokens, Token{Kind: KindHTMLComment, Line: lineNo, Text: body})

		case strings.Contains(line, "<!--"):
			idx := strings.Index(line, "<!--")
			tokens = append(tokens, Token{Kind: KindHTMLCommentStart, Line: lineNo, Text: strings.TrimSpace(line[idx+4:])})
			state = stateHTMLComment

		default:
			tokens = append(tokens, Token{Kind: KindText, Line: lineNo, Text: line})
		}
	}

	return tokens
}

func isSingleLineComment(line string) bool {
	open := strings.Index(line, "<!--")
	if open < 0 {
		return false
	}
	return strings.Index(line[open:], "-->") >= 0
}

func extractCommentBody(line string) string {
	open := strings.Index(line, "<!--")
	rest := line[open+4:]
	close := strings.Index(rest, "-->")
	if close < 0 {
		return strings.TrimSpace(rest)
	}
	return strings.TrimSpace(rest[:close])
}
