package tsort

import (
	"fmt"
	"strings"
)

// formatPath renders a path as "a -> b -> c".
func formatPath[T any](path []T) string {
	parts := make([]string, len(path))
	for i, it := range path {
		parts[i] = fmt.Sprint(it)
	}

	return strings.Join(parts, " -> ")
}
