// Package depsort orders things that depend on each other, with storage
// configuration as its first customer.
//
// 🚀 What is in the box?
//
//	• tsort/            generic dependency graph, DFS topological sort,
//	                    cycle reporting, Kahn stages, order verification
//	• devicetree/       storage devices, create/destroy/resize actions,
//	                    ordering rules, pruning, planner and executor
//	• planfile/         YAML graph and plan documents
//	• logger/           log/slog setup (console, json, dev) and context helpers
//	• cmd/depsort/      CLI: sort, plan, graph (Mermaid), version
//	• internal/fixture/ deterministic graph generators for tests and benchmarks
//
// ✨ Guarantees
//
//   - Parents always precede children; every item appears exactly once.
//   - A cycle is an error naming the full path, never a partial order.
//   - Same input, same output: unconstrained items keep their input order.
//   - Graphs are immutable after construction and safe for concurrent sorts.
//
// Quick example:
//
//	g, _ := tsort.NewFromPairs(
//		[]string{"sda", "sda1", "vg0"},
//		[][2]string{{"sda", "sda1"}, {"sda1", "vg0"}},
//	)
//	order, err := tsort.Sort(g) // [sda sda1 vg0]
package depsort

// Version is the depsort release.
const Version = "0.3.0"
