// SPDX-License-Identifier: MIT
// Package: depsort/internal/fixture
//
// Package fixture generates deterministic dependency graphs for tests and
// benchmarks.
//
// Every generator returns (items, pairs): string item IDs in ascending index
// order and [parent, child] pairs in a stable emission order. IDs come from
// the configured ID scheme ("n0", "n1", ... by default). Stochastic
// generators draw from a seeded RNG so a given seed always produces the
// same graph.
//
// Generators:
//
//   - Chain(n)          n0 → n1 → ... → n(n-1)
//   - Cycle(n)          Chain(n) plus n(n-1) → n0
//   - Star(n)           n0 → n1, n0 → n2, ..., n0 → n(n-1)
//   - Diamond()         a → b, a → c, b → d, c → d
//   - RandomDAG(n, p)   edge i → j (i < j) with probability p
package fixture
