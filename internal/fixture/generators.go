// SPDX-License-Identifier: MIT
// Package: depsort/internal/fixture
//
// generators.go: topology generators.
//
// Contract:
//   - n < 1 yields empty items and pairs (Cycle and Star need no minimum).
//   - Items are emitted in ascending index order.
//   - Pairs are emitted by ascending parent index, then ascending child index.
//
// Complexity:
//   - Chain, Cycle, Star: O(n).
//   - RandomDAG: O(n²) Bernoulli trials.

package fixture

// ids emits n item IDs via cfg.idFn.
func ids(n int, cfg config) []string {
	if n < 1 {
		return nil
	}
	out := make([]string, n)
	for i := range out {
		out[i] = cfg.idFn(i)
	}

	return out
}

// Chain returns a path n0 → n1 → ... → n(n-1).
func Chain(n int, opts ...Option) ([]string, [][2]string) {
	items := ids(n, newConfig(opts))
	var pairs [][2]string
	for i := 1; i < len(items); i++ {
		pairs = append(pairs, [2]string{items[i-1], items[i]})
	}

	return items, pairs
}

// Cycle returns Chain(n) closed by n(n-1) → n0. Cycle(1) is a self-loop.
func Cycle(n int, opts ...Option) ([]string, [][2]string) {
	items, pairs := Chain(n, opts...)
	if len(items) == 0 {
		return items, pairs
	}

	return items, append(pairs, [2]string{items[len(items)-1], items[0]})
}

// Star returns n0 → n1, n0 → n2, ..., n0 → n(n-1).
func Star(n int, opts ...Option) ([]string, [][2]string) {
	items := ids(n, newConfig(opts))
	var pairs [][2]string
	for i := 1; i < len(items); i++ {
		pairs = append(pairs, [2]string{items[0], items[i]})
	}

	return items, pairs
}

// Diamond returns the four-item diamond a → b, a → c, b → d, c → d.
func Diamond() ([]string, [][2]string) {
	return []string{"a", "b", "c", "d"},
		[][2]string{{"a", "b"}, {"a", "c"}, {"b", "d"}, {"c", "d"}}
}

// RandomDAG includes each forward edge i → j (i < j) independently with
// probability p. Forward-only edges keep the result acyclic. p outside
// [0, 1] is clamped.
func RandomDAG(n int, p float64, opts ...Option) ([]string, [][2]string) {
	cfg := newConfig(opts)
	items := ids(n, cfg)
	switch {
	case p < 0:
		p = 0
	case p > 1:
		p = 1
	}

	var pairs [][2]string
	for i := 0; i < len(items); i++ {
		for j := i + 1; j < len(items); j++ {
			// Always draw so the sequence is fixed for a seed regardless of p.
			if cfg.rng.Float64() < p {
				pairs = append(pairs, [2]string{items[i], items[j]})
			}
		}
	}

	return items, pairs
}
