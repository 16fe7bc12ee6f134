package graph

import (
	"fmt"
	"strings"

	"github.com/aretw0/winnow/pkg/domain"
)

// maxLabel bounds the text shown inside a node box.
const maxLabel = 32

// haltID is the Mermaid identifier of the session end sentinel.
const haltID = "halt"

// GraphOverlay contains session data to visualize on the graph.
type GraphOverlay struct {
	VisitedNodes []domain.NodeID
	CurrentNode  domain.NodeID
}

// GenerateMermaid produces a Mermaid flowchart syntax string from a list of nodes.
// It applies semantic styling:
// - Question: [/Parallelogram/]
// - Branching: {Rhombus}
// - Terminating: ([Stadium])
// - Halt sentinel: ((Circle))
// It also applies overlay styles (Visited/Current) if provided.
func GenerateMermaid(nodes []domain.Node, overlay *GraphOverlay) string {
	var sb strings.Builder
	sb.WriteString("graph TD\n")

	halts := false
	for i, node := range nodes {
		id := domain.NodeID(i)
		from := mermaidID(id)

		switch n := node.(type) {
		case *domain.Question:
			fmt.Fprintf(&sb, "    %s[/\"%d: ask $%s\"/]\n", from, i, escape(n.Variable))
			fmt.Fprintf(&sb, "    %s -- \"answered\" --> %s\n", from, mermaidID(n.Success))
			fmt.Fprintf(&sb, "    %s -. \"no answer\" .-> %s\n", from, mermaidID(n.Fail))
			halts = halts || n.Success.IsTerminal() || n.Fail.IsTerminal()

		case *domain.Branching:
			fmt.Fprintf(&sb, "    %s{\"%d: choose $%s\"}\n", from, i, escape(n.Variable))
			for _, opt := range n.Options {
				fmt.Fprintf(&sb, "    %s -- \"%s\" --> %s\n", from, escape(truncate(opt.Text)), mermaidID(opt.Destination))
				halts = halts || opt.Destination.IsTerminal()
			}

		case *domain.Terminating:
			fmt.Fprintf(&sb, "    %s([\"%d: %s\"])\n", from, i, escape(truncate(n.Message)))
			fmt.Fprintf(&sb, "    %s --> %s\n", from, haltID)
			halts = true
		}
	}

	if halts {
		fmt.Fprintf(&sb, "    %s((\"halt\"))\n", haltID)
	}

	// Apply Overlay Styles
	if overlay != nil {
		sb.WriteString("\n    %% Overlay Styles\n")
		// Force black text (color:#000) for high-contrast on light backgrounds, regardless of theme (Light/Dark)
		sb.WriteString("    classDef visited fill:#e1f5fe,stroke:#01579b,stroke-width:2px,color:#000;\n")
		sb.WriteString("    classDef current fill:#ffeb3b,stroke:#fbc02d,stroke-width:4px,color:#000;\n")

		seen := make(map[domain.NodeID]bool)
		for _, id := range overlay.VisitedNodes {
			if seen[id] || (!id.IsTerminal() && int(id) >= len(nodes)) {
				continue
			}
			seen[id] = true
			fmt.Fprintf(&sb, "    class %s visited;\n", mermaidID(id))
		}

		fmt.Fprintf(&sb, "    class %s current;\n", mermaidID(overlay.CurrentNode))
	}

	return sb.String()
}

func mermaidID(id domain.NodeID) string {
	if id.IsTerminal() {
		return haltID
	}
	return fmt.Sprintf("n%d", int(id))
}

// escape replaces characters that break a quoted Mermaid label.
func escape(s string) string {
	s = strings.ReplaceAll(s, "\"", "'")
	return strings.ReplaceAll(s, "\n", " ")
}

func truncate(s string) string {
	r := []rune(s)
	if len(r) <= maxLabel {
		return s
	}
	return string(r[:maxLabel-3]) + "..."
}
