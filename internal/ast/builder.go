package ast

import (
	"regexp"
	"strings"

	"github.com/goliatone/go-polyglot/internal/tokenizer"
	"github.com/goliatone/go-polyglot/pkg/interfaces"
)

var listItemPattern = regexp.MustCompile(`^ {0,3}([-*+]|\d{1,9}[.)]) +(.*)$`)

// Build consumes a token stream and produces the mdast-shaped root node.
// Inline parsing is intentionally shallow: each block carries a single text
// child, which is sufficient for classification. Blank tokens are dropped.
func Build(tokens []tokenizer.Token) *interfaces.Node {
	root := &interfaces.Node{Type: interfaces.NodeRoot}

	i := 0
	for i < len(tokens) {
		tok := tokens[i]

		switch tok.Kind {
		case tokenizer.KindBlank:
			i++

		case tokenizer.KindHeading:
			root.Append(headingNode(tok))
			i++

		case tokenizer.KindCodeFenceStart:
			node, next := codeNode(tokens, i)
			root.Append(node)
			i = next

		case tokenizer.KindHTMLComment:
			root.Append(htmlNode("<!-- "+tok.Text+" -->", tok.Line, tok.Line))
			i++

		case tokenizer.KindHTMLCommentStart:
			node, next := multiLineHTMLNode(tokens, i)
			root.Append(node)
			i = next

		case tokenizer.KindText:
			if listItemPattern.MatchString(tok.Text) {
				node, next := listNode(tokens, i)
				root.Append(node)
				i = next
				break
			}
			node, next := paragraphNode(tokens, i)
			root.Append(node)
			i = next

		default:
			// Stray fence ends or comment bodies outside their runs are
			// tolerated as plain text so the builder never fails.
			node, next := paragraphNode(tokens, i)
			root.Append(node)
			i = next
		}
	}

	if len(root.Children) > 0 {
		first := root.Children[0].Position
		last := root.Children[len(root.Children)-1].Position
		if first != nil && last != nil {
			root.Position = &interfaces.Position{Start: first.Start, End: last.End}
		}
	}

	return root
}

func headingNode(tok tokenizer.Token) *interfaces.Node {
	node := &interfaces.Node{
		Type:     interfaces.NodeHeading,
		Depth:    tok.Depth,
		Position: linePosition(tok.Line, tok.Line),
	}
	node.Append(textNode(tok.Text, tok.Line))
	return node
}

func codeNode(tokens []tokenizer.Token, start int) (*interfaces.Node, int) {
	open := tokens[start]
	var lines []string
	endLine := open.Line

	i := start + 1
	for i < len(tokens) {
		tok := tokens[i]
		if tok.Kind == tokenizer.KindCodeFenceEnd {
			endLine = tok.Line
			i++
			break
		}
		if tok.Kind != tokenizer.KindCodeContent {
			break
		}
		lines = append(lines, tok.Text)
		endLine = tok.Line
		i++
	}

	return &interfaces.Node{
		Type:     interfaces.NodeCode,
		Lang:     open.Lang,
		Value:    strings.Join(lines, "\n"),
		Position: linePosition(open.Line, endLine),
	}, i
}

func multiLineHTMLNode(tokens []tokenizer.Token, start int) (*interfaces.Node, int) {
	open := tokens[start]
	parts := []string{open.Text}
	endLine := open.Line

	i := start + 1
	for i < len(tokens) {
		tok := tokens[i]
		if tok.Kind == tokenizer.KindHTMLCommentEnd {
			if tok.Text != "" {
				parts = append(parts, tok.Text)
			}
			endLine = tok.Line
			i++
			break
		}
		if tok.Kind != tokenizer.KindHTMLCommentBody {
			break
		}
		parts = append(parts, tok.Text)
		endLine = tok.Line
		i++
	}

	return htmlNode("<!-- "+strings.Join(parts, "\n")+" -->", open.Line, endLine), i
}

func listNode(tokens []tokenizer.Token, start int) (*interfaces.Node, int) {
	first := tokens[start]
	ordered := isOrderedItem(first.Text)

	list := &interfaces.Node{
		Type:    interfaces.NodeList,
		Ordered: ordered,
	}

	i := start
	endLine := first.Line
	for i < len(tokens) {
		tok := tokens[i]
		if tok.Kind != tokenizer.KindText || !listItemPattern.MatchString(tok.Text) {
			break
		}
		if isOrderedItem(tok.Text) != ordered {
			break
		}
		m := listItemPattern.FindStringSubmatch(tok.Text)
		item := &interfaces.Node{
			Type:     interfaces.NodeListItem,
			Position: linePosition(tok.Line, tok.Line),
		}
		item.Append(textNode(m[2], tok.Line))
		list.Append(item)
		endLine = tok.Line
		i++
	}

	list.Position = linePosition(first.Line, endLine)
	return list, i
}

func paragraphNode(tokens []tokenizer.Token, start int) (*interfaces.Node, int) {
	first := tokens[start]
	var lines []string
	endLine := first.Line

	i := start
	for i < len(tokens) {
		tok := tokens[i]
		if tok.Kind != tokenizer.KindText && tok.Kind != tokenizer.KindCodeFenceEnd &&
			tok.Kind != tokenizer.KindHTMLCommentBody && tok.Kind != tokenizer.KindHTMLCommentEnd {
			break
		}
		if tok.Kind == tokenizer.KindText && listItemPattern.MatchString(tok.Text) && i != start {
			break
		}
		lines = append(lines, tok.Text)
		endLine = tok.Line
		i++
	}

	node := &interfaces.Node{
		Type:     interfaces.NodeParagraph,
		Position: linePosition(first.Line, endLine),
	}
	node.Append(textNode(strings.Join(lines, "\n"), first.Line))
	return node, i
}

func htmlNode(value string, startLine, endLine int) *interfaces.Node {
	return &interfaces.Node{
		Type:     interfaces.NodeHTML,
		Value:    value,
		Position: linePosition(startLine, endLine),
	}
}

func textNode(value string, line int) *interfaces.Node {
	return &interfaces.Node{
		Type:     interfaces.NodeText,
		Value:    value,
		Position: linePosition(line, line),
	}
}

func linePosition(start, end int) *interfaces.Position {
	return &interfaces.Position{
		Start: interfaces.Point{Line: start, Column: 1},
		End:   interfaces.Point{Line: end, Column: 1},
	}
}

func isOrderedItem(line string) bool {
	m := listItemPattern.FindStringSubmatch(line)
	if m == nil {
		return false
	}
	marker := m[1]
	return marker[0] >= '0' && marker[0] <= '9'
}
