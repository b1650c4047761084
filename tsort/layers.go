package tsort

import "slices"

// Layers groups the items of g into stages using Kahn's algorithm.
//
// Stage 0 holds the roots; every later stage holds the items whose parents
// all sit in earlier stages. Items of one stage have no constraints between
// them and may be applied in any order (or concurrently). Inside a stage
// items keep their input order. Flattening the stages yields a valid
// topological order, though not necessarily the one Sort returns.
//
// If some items can never be released, the graph has a cycle and Layers
// returns a *CyclicGraphError describing one of them.
//
// Complexity: O(V+E) time plus O(V log V) for ordering stages.
func Layers[T comparable](g *Graph[T]) ([][]T, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	n := len(g.items)
	indegree := make([]int, n)
	for i := range g.items {
		indegree[i] = len(g.parents[i])
	}

	var current []int
	for i := 0; i < n; i++ {
		if indegree[i] == 0 {
			current = append(current, i)
		}
	}

	var stages [][]T
	placed := 0
	for len(current) > 0 {
		stages = append(stages, g.resolve(current))
		placed += len(current)

		var next []int
		for _, p := range current {
			for _, c := range g.children[p] {
				indegree[c]--
				if indegree[c] == 0 {
					next = append(next, c)
				}
			}
		}
		slices.Sort(next) // positions → input order
		current = next
	}

	if placed != n {
		cycle, _ := FindCycle(g)
		return nil, &CyclicGraphError[T]{
			Edge:  Edge[T]{Parent: cycle[len(cycle)-2], Child: cycle[len(cycle)-1]},
			Cycle: cycle,
		}
	}

	return stages, nil
}
