package tsort

// frame is one entry of the explicit DFS stack.
type frame struct {
	node int // item position
	next int // index of the next child to explore, counting down
}

// backEdge records the edge that closed a cycle and the path it closed.
type backEdge struct {
	parent, child int
	path          []int // closed: [child, ..., parent, child]
}

// sorter holds the state of a single traversal. Nothing here outlives the
// call that created it.
type sorter[T comparable] struct {
	g     *Graph[T]
	state []State // position → traversal state
	depth []int   // position → index in stack while InProgress
	stack []frame // current DFS path
	order []int   // post-order
}

func newSorter[T comparable](g *Graph[T]) *sorter[T] {
	n := len(g.items)
	return &sorter[T]{
		g:     g,
		state: make([]State, n), // all Unvisited
		depth: make([]int, n),
		stack: make([]frame, 0, n),
		order: make([]int, 0, n),
	}
}

// run drives the traversal over every item and stops at the first cycle.
// Roots are tried from the last item to the first and children from the
// last edge to the first; reversing the post-order then keeps unconstrained
// items in their input order.
func (s *sorter[T]) run() *backEdge {
	for i := len(s.g.items) - 1; i >= 0; i-- {
		if s.state[i] != Unvisited {
			continue
		}
		if be := s.visit(i); be != nil {
			return be
		}
	}

	return nil
}

// visit performs an iterative DFS from root.
func (s *sorter[T]) visit(root int) *backEdge {
	s.push(root)
	for len(s.stack) > 0 {
		top := &s.stack[len(s.stack)-1]
		// All children explored: place the item.
		if top.next < 0 {
			s.state[top.node] = Done
			s.order = append(s.order, top.node)
			s.stack = s.stack[:len(s.stack)-1]
			continue
		}
		parent := top.node
		child := s.g.children[parent][top.next]
		top.next--

		switch s.state[child] {
		case Unvisited:
			s.push(child)
		case InProgress:
			return s.closeCycle(parent, child)
		case Done:
			// already placed
		}
	}

	return nil
}

func (s *sorter[T]) push(n int) {
	s.state[n] = InProgress
	s.depth[n] = len(s.stack)
	s.stack = append(s.stack, frame{node: n, next: len(s.g.children[n]) - 1})
}

// closeCycle builds the path from child (already on the stack) down to
// parent (top of the stack) and back to child.
func (s *sorter[T]) closeCycle(parent, child int) *backEdge {
	onPath := s.stack[s.depth[child]:]
	path := make([]int, 0, len(onPath)+1)
	for _, f := range onPath {
		path = append(path, f.node)
	}
	path = append(path, child)

	return &backEdge{parent: parent, child: child, path: path}
}

func (s *sorter[T]) cycleError(be *backEdge) *CyclicGraphError[T] {
	return &CyclicGraphError[T]{
		Edge:  Edge[T]{Parent: s.g.items[be.parent], Child: s.g.items[be.child]},
		Cycle: s.g.resolve(be.path),
	}
}

// Sort returns every item of g exactly once such that for each edge the
// parent precedes the child.
//
// On a cycle Sort returns a nil slice and a *CyclicGraphError naming the
// closing edge and the full cycle; no partial order is ever returned.
// A nil graph yields ErrGraphNil.
//
// Complexity: O(V+E) time, O(V) memory.
func Sort[T comparable](g *Graph[T]) ([]T, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	s := newSorter(g)
	if be := s.run(); be != nil {
		return nil, s.cycleError(be)
	}

	// Reverse post-order: children were placed before their parents.
	out := make([]T, len(s.order))
	for i, p := range s.order {
		out[len(s.order)-1-i] = g.items[p]
	}

	return out, nil
}

// FindCycle reports the first cycle Sort would run into, as a closed path
// [c, ..., p, c]. It returns (nil, false) for acyclic or nil graphs.
func FindCycle[T comparable](g *Graph[T]) ([]T, bool) {
	if g == nil {
		return nil, false
	}
	s := newSorter(g)
	be := s.run()
	if be == nil {
		return nil, false
	}

	return g.resolve(be.path), true
}
