// Package maze generates perfect mazes and extracts their solution
// paths.
//
// 🚀 What is a perfect maze?
//
//	A rectangular grid of cells whose open walls form a spanning tree:
//	every pair of cells is connected by exactly one path. Carving is
//	randomized recursive backtracking over a disjoint set: a wall is
//	knocked down only when it joins two previously disconnected cells,
//	so exactly width·height−1 walls open.
//
// ⚙️ Usage:
//
//	m, err := maze.Generate(16, 16, maze.WithSeed(42))
//	if err != nil { ... }
//	path := m.Solve() // entrance (top-left) → exit (bottom row)
//
// Generation is deterministic per seed (seed 0 maps to a fixed
// default, so defaults reproduce). Solve finds the unique path by BFS
// over open walls; the exit is the bottom-row cell the search reaches
// last, which makes the solution path the longest of the bottom-row
// paths from the entrance.
//
// Complexity: Generate and Solve are both O(width·height); the
// disjoint set adds only inverse-Ackermann overhead.
package maze
