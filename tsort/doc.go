// Package tsort orders items that depend on each other.
//
// What:
//
//   - Graph: an immutable set of items plus ordering constraints
//     (Parent → Child, meaning Parent must come first). Edge endpoints are
//     validated when the graph is built.
//   - Sort: depth‑first topological sort using three traversal states
//     (Unvisited, InProgress, Done). Reverse post‑order gives the result.
//   - FindCycle: reports the first cycle the same traversal runs into.
//   - Layers: groups items into stages; every stage only depends on the
//     stages before it.
//   - Verify: checks that an ordering is a permutation of the items that
//     satisfies every edge.
//
// Why:
//
//   - Storage actions (create, resize, destroy, format) must be applied in an
//     order where every prerequisite already happened.
//   - A circular set of constraints is a configuration error; it must be
//     reported, never papered over with an arbitrary order.
//
// Edge convention:
//
//	Edge{Parent: p, Child: c}  ⇒  p appears before c in Sort's output.
//
// Determinism:
//
//	For the same items (in the same order) and the same edges (in the same
//	order) Sort always returns the same slice. Items that are not
//	constrained against each other keep their input order; with no edges
//	the output equals the input.
//
// Complexity:
//
//   - New:       Time O(V+E), Memory O(V+E)
//   - Sort:      Time O(V+E), Memory O(V)
//   - FindCycle: Time O(V+E), Memory O(V)
//   - Layers:    Time O(V+E), Memory O(V)
//
// Errors:
//
//   - ErrGraphNil       graph pointer is nil
//   - ErrInvalidEdge    edge endpoint is not an item (*InvalidEdgeError)
//   - ErrCyclicGraph    constraints contain a cycle (*CyclicGraphError)
//   - ErrInvalidOrder   Verify rejected an ordering
//
// Concurrency:
//
//	A Graph is never mutated after New. Traversal state lives in each call,
//	so any number of goroutines may sort the same Graph at once.
package tsort
