package tsort

import (
	"errors"
	"fmt"
)

// State is the per-item traversal marker used during one Sort call.
type State uint8

const (
	Unvisited  State = iota // not reached yet
	InProgress              // on the current DFS path
	Done                    // item and all of its children are placed
)

// String returns a lowercase name for s.
func (s State) String() string {
	switch s {
	case Unvisited:
		return "unvisited"
	case InProgress:
		return "in-progress"
	case Done:
		return "done"
	default:
		return fmt.Sprintf("state(%d)", uint8(s))
	}
}

// Edge is an ordering constraint: Parent must precede Child.
type Edge[T comparable] struct {
	Parent T
	Child  T
}

// String renders the edge as "parent -> child".
func (e Edge[T]) String() string {
	return fmt.Sprintf("%v -> %v", e.Parent, e.Child)
}

var (
	// ErrGraphNil is returned when a nil *Graph is passed to Sort,
	// FindCycle, Layers or Verify.
	ErrGraphNil = errors.New("tsort: graph is nil")

	// ErrInvalidEdge indicates an edge endpoint that is not in the item set.
	// The concrete error is *InvalidEdgeError.
	ErrInvalidEdge = errors.New("tsort: edge references unknown item")

	// ErrCyclicGraph indicates that the constraints contain a cycle.
	// The concrete error is *CyclicGraphError.
	ErrCyclicGraph = errors.New("tsort: graph contains a cycle")

	// ErrInvalidOrder is returned by Verify for an ordering that is not a
	// valid topological order of the graph.
	ErrInvalidOrder = errors.New("tsort: invalid order")
)

// InvalidEdgeError reports an edge whose endpoint is missing from the items.
type InvalidEdgeError[T comparable] struct {
	// Edge is the offending constraint as supplied by the caller.
	Edge Edge[T]
	// Index is the position of Edge in the caller's edge slice.
	Index int
	// Missing is the endpoint that is not an item (Parent is checked first).
	Missing T
}

func (e *InvalidEdgeError[T]) Error() string {
	return fmt.Sprintf("tsort: edge #%d (%v) references unknown item %v", e.Index, e.Edge, e.Missing)
}

// Unwrap lets errors.Is match ErrInvalidEdge.
func (e *InvalidEdgeError[T]) Unwrap() error { return ErrInvalidEdge }

// CyclicGraphError reports a cycle found while sorting.
type CyclicGraphError[T comparable] struct {
	// Edge is the back edge that closed the cycle.
	Edge Edge[T]
	// Cycle is the closed path [c, ..., p, c] where Edge = p -> c.
	// A self-loop yields [c, c].
	Cycle []T
}

func (e *CyclicGraphError[T]) Error() string {
	return fmt.Sprintf("tsort: graph contains a cycle: %s (closing edge %v)", formatPath(e.Cycle), e.Edge)
}

// Unwrap lets errors.Is match ErrCyclicGraph.
func (e *CyclicGraphError[T]) Unwrap() error { return ErrCyclicGraph }
