package tsort

// Graph holds a set of items and the ordering constraints between them.
//
// Items are kept in first-seen order; repeating an item in the input does
// not create a second vertex. Edges are kept verbatim (duplicates included)
// for callers, while the adjacency used by traversals stores each distinct
// child once, in the order its edge was first supplied.
//
// A Graph is read-only after New and safe for concurrent use.
type Graph[T comparable] struct {
	items    []T       // position → item
	index    map[T]int // item → position
	edges    []Edge[T] // caller's edges, verbatim
	children [][]int   // position → child positions, deduplicated
	parents  [][]int   // position → parent positions, deduplicated
}

// New builds a Graph from items and edges.
// Every edge endpoint must be one of items, otherwise New fails with
// *InvalidEdgeError (errors.Is(err, ErrInvalidEdge)).
// Complexity: O(V+E) time and memory.
func New[T comparable](items []T, edges []Edge[T]) (*Graph[T], error) {
	g := &Graph[T]{
		items: make([]T, 0, len(items)),
		index: make(map[T]int, len(items)),
		edges: make([]Edge[T], len(edges)),
	}
	for _, it := range items {
		if _, seen := g.index[it]; seen {
			continue
		}
		g.index[it] = len(g.items)
		g.items = append(g.items, it)
	}
	copy(g.edges, edges)

	g.children = make([][]int, len(g.items))
	g.parents = make([][]int, len(g.items))
	seen := make(map[[2]int]struct{}, len(edges))
	for i, e := range edges {
		p, ok := g.index[e.Parent]
		if !ok {
			return nil, &InvalidEdgeError[T]{Edge: e, Index: i, Missing: e.Parent}
		}
		c, ok := g.index[e.Child]
		if !ok {
			return nil, &InvalidEdgeError[T]{Edge: e, Index: i, Missing: e.Child}
		}
		key := [2]int{p, c}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		g.children[p] = append(g.children[p], c)
		g.parents[c] = append(g.parents[c], p)
	}

	return g, nil
}

// NewFromPairs is New for constraints written as [parent, child] pairs.
func NewFromPairs[T comparable](items []T, pairs [][2]T) (*Graph[T], error) {
	edges := make([]Edge[T], len(pairs))
	for i, p := range pairs {
		edges[i] = Edge[T]{Parent: p[0], Child: p[1]}
	}

	return New(items, edges)
}

// Len returns the number of distinct items.
func (g *Graph[T]) Len() int { return len(g.items) }

// Has reports whether item belongs to the graph.
func (g *Graph[T]) Has(item T) bool {
	_, ok := g.index[item]
	return ok
}

// Items returns a copy of the items in insertion order.
func (g *Graph[T]) Items() []T {
	return append([]T(nil), g.items...)
}

// Edges returns a copy of the edges exactly as they were supplied to New.
func (g *Graph[T]) Edges() []Edge[T] {
	return append([]Edge[T](nil), g.edges...)
}

// Adjacency returns the children of item (items that must come after it)
// in edge-insertion order, each child once. Unknown items yield nil.
func (g *Graph[T]) Adjacency(item T) []T {
	i, ok := g.index[item]
	if !ok {
		return nil
	}

	return g.resolve(g.children[i])
}

// Parents returns the items that must come before item, in edge-insertion
// order. Unknown items yield nil.
func (g *Graph[T]) Parents(item T) []T {
	i, ok := g.index[item]
	if !ok {
		return nil
	}

	return g.resolve(g.parents[i])
}

// Roots returns the items without parents, in item order.
func (g *Graph[T]) Roots() []T {
	var out []T
	for i, it := range g.items {
		if len(g.parents[i]) == 0 {
			out = append(out, it)
		}
	}

	return out
}

// resolve maps positions back to items.
func (g *Graph[T]) resolve(pos []int) []T {
	out := make([]T, len(pos))
	for i, p := range pos {
		out[i] = g.items[p]
	}

	return out
}
