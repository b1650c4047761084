package tsort

import "fmt"

// Verify checks that order contains every item of g exactly once and that
// every edge's parent comes before its child. Any violation is reported as
// an error wrapping ErrInvalidOrder.
func Verify[T comparable](order []T, g *Graph[T]) error {
	if g == nil {
		return ErrGraphNil
	}
	if len(order) != len(g.items) {
		return fmt.Errorf("%w: got %d items, want %d", ErrInvalidOrder, len(order), len(g.items))
	}

	pos := make(map[T]int, len(order))
	for i, it := range order {
		if !g.Has(it) {
			return fmt.Errorf("%w: unknown item %v at position %d", ErrInvalidOrder, it, i)
		}
		if first, dup := pos[it]; dup {
			return fmt.Errorf("%w: item %v repeated at positions %d and %d", ErrInvalidOrder, it, first, i)
		}
		pos[it] = i
	}

	for _, e := range g.edges {
		if pos[e.Parent] >= pos[e.Child] {
			return fmt.Errorf("%w: constraint %v violated (positions %d, %d)",
				ErrInvalidOrder, e, pos[e.Parent], pos[e.Child])
		}
	}

	return nil
}
