package ast

import (
	"github.com/goliatone/go-polyglot/pkg/interfaces"
)

// Data keys written by Enhance. They live under each node's open Data
// envelope so standard mdast consumers are unaffected.
const (
	DataLanguage     = "language"
	DataMetadata     = "metadata"
	DataArtifactType = "artifactType"
	DataExecutable   = "executable"
	DataLocation     = "location"
)

// Enhance merges the classification result back onto the tree. The document
// language and harvested metadata land on the root node; each artifact is
// attached to the code node it was extracted from, matched by content in
// document order. Node types and child structure are never altered.
func Enhance(root *interfaces.Node, polyglot interfaces.Polyglot) {
	if root == nil {
		return
	}

	root.SetData(DataLanguage, string(polyglot.Language))
	if len(polyglot.Metadata) > 0 {
		root.SetData(DataMetadata, polyglot.Metadata)
	}

	claimed := make([]bool, len(polyglot.Artifacts))
	walk(root, func(node *interfaces.Node) {
		if node.Type != interfaces.NodeCode {
			return
		}
		for i, artifact := range polyglot.Artifacts {
			if claimed[i] || artifact.Content != node.Value {
				continue
			}
			claimed[i] = true
			node.SetData(DataArtifactType, string(artifact.Type))
			if artifact.Executable {
				node.SetData(DataExecutable, true)
			}
			if artifact.Location != "" {
				node.SetData(DataLocation, artifact.Location)
			}
			return
		}
	})
}

func walk(node *interfaces.Node, visit func(*interfaces.Node)) {
	visit(node)
	for _, child := range node.Children {
		walk(child, visit)
	}
}
