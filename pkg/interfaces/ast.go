package interfaces

// NodeType enumerates the mdast-compatible node kinds produced by the AST
// builder. Non-standard information travels in Node.Data rather than in new
// node types so standard Markdown-AST consumers keep working.
type NodeType string

const (
	NodeRoot      NodeType = "root"
	NodeHeading   NodeType = "heading"
	NodeParagraph NodeType = "paragraph"
	NodeCode      NodeType = "code"
	NodeHTML      NodeType = "html"
	NodeList      NodeType = "list"
	NodeListItem  NodeType = "listItem"
	NodeText      NodeType = "text"
	NodeEmphasis  NodeType = "emphasis"
	NodeStrong    NodeType = "strong"
	NodeLink      NodeType = "link"
	NodeImage     NodeType = "image"
)

// Point is a 1-based line/column location inside the source document.
type Point struct {
	Line   int `json:"line"`
	Column int `json:"column"`
}

// Position spans the source region a node was parsed from.
type Position struct {
	Start Point `json:"start"`
	End   Point `json:"end"`
}

// Node is an mdast-shaped syntax tree node. Every node except leaf text and
// code nodes owns an ordered child sequence; ownership is exclusive, a node
// never appears under two parents. Data is an open envelope for attaching
// classification metadata without breaking mdast interoperability.
type Node struct {
	Type     NodeType       `json:"type"`
	Depth    int            `json:"depth,omitempty"`
	Ordered  bool           `json:"ordered,omitempty"`
	Lang     string         `json:"lang,omitempty"`
	URL      string         `json:"url,omitempty"`
	Value    string         `json:"value,omitempty"`
	Children []*Node        `json:"children,omitempty"`
	Position *Position      `json:"position,omitempty"`
	Data     map[string]any `json:"data,omitempty"`
}

// Append adds child nodes preserving document order.
func (n *Node) Append(children ...*Node) {
	n.Children = append(n.Children, children...)
}

// SetData writes a metadata key on the node, allocating the envelope lazily.
func (n *Node) SetData(key string, value any) {
	if n.Data == nil {
		n.Data = map[string]any{}
	}
	n.Data[key] = value
}
