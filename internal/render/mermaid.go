// Package render turns dependency graphs into Mermaid flowcharts and plain
// text listings for the depsort CLI.
package render

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/depsort/tsort"
)

// Overlay holds extra state to draw on top of a graph.
type Overlay[T comparable] struct {
	// Cycle is a closed path [c, ..., c]; its nodes and edges are highlighted.
	Cycle []T
}

// Mermaid produces a Mermaid flowchart (graph TD) for g. Each item is drawn
// once, in item order, followed by its outgoing edges.
//
// Shapes:
//   - root (no parents): ([Stadium])
//   - leaf (no children): [Rectangle]
//   - otherwise: [[Subroutine]]
//
// label renders an item for display; nil uses fmt.Sprint. Node IDs are
// derived from the label and sanitized.
func Mermaid[T comparable](g *tsort.Graph[T], label func(T) string, overlay *Overlay[T]) string {
	if label == nil {
		label = func(v T) string { return fmt.Sprint(v) }
	}
	ids := make(map[T]string, g.Len())
	for i, it := range g.Items() {
		ids[it] = fmt.Sprintf("n%d_%s", i, sanitizeMermaidID(label(it)))
	}

	var sb strings.Builder
	sb.WriteString("graph TD\n")
	for _, it := range g.Items() {
		opener, closer := "[[", "]]"
		switch {
		case len(g.Parents(it)) == 0:
			opener, closer = "([", "])"
		case len(g.Adjacency(it)) == 0:
			opener, closer = "[", "]"
		}
		text := strings.ReplaceAll(label(it), "\"", "'")
		sb.WriteString(fmt.Sprintf("    %s%s\"%s\"%s\n", ids[it], opener, text, closer))

		for _, c := range g.Adjacency(it) {
			sb.WriteString(fmt.Sprintf("    %s --> %s\n", ids[it], ids[c]))
		}
	}

	if overlay != nil && len(overlay.Cycle) > 0 {
		sb.WriteString("\n    %% Cycle\n")
		sb.WriteString("    classDef cycle fill:#ffcdd2,stroke:#b71c1c,stroke-width:3px,color:#000;\n")
		seen := make(map[string]bool)
		for _, it := range overlay.Cycle {
			id, ok := ids[it]
			if !ok || seen[id] {
				continue
			}
			seen[id] = true
			sb.WriteString(fmt.Sprintf("    class %s cycle;\n", id))
		}
	}

	return sb.String()
}

func sanitizeMermaidID(id string) string {
	var sb strings.Builder
	for _, r := range id {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_':
			sb.WriteRune(r)
		default:
			sb.WriteRune('_')
		}
	}

	return sb.String()
}
