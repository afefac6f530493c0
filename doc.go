// Package exactcover is an in-memory playground for exact-cover search
// and the combinatorial puzzles it solves, from the dancing-links core
// to Sudoku constraint mapping and perfect-maze carving.
//
// 🚀 What is exact-cover?
//
//	Given a 0/1 matrix, pick a subset of rows so that every column has
//	exactly one selected 1. Knuth's Algorithm X solves it by recursive
//	backtracking, and his "dancing links" (DLX) trick makes each
//	cover/uncover step O(1) per touched cell. Sudoku, polyomino tiling,
//	n-queens and many scheduling problems reduce to it directly.
//
// ✨ What's inside?
//
//   - dlx/    — the core: an arena-backed toroidal linked matrix with
//     cover/uncover/free primitives and Algorithm X search
//   - sudoku/ — 729×324 exact-cover mapping, DLX-backed solving, plus a
//     bitmask candidate tracker and a plain backtracking solver
//   - maze/   — randomized spanning-tree maze carving and BFS solution
//     paths over a wall grid
//   - dsu/    — disjoint set (union by size, path compression), the
//     maze generator's workhorse
//
// ✨ Why choose exact-cover?
//
//   - Deterministic – seeded randomness only, same input ⇒ same output
//   - Rock-solid guarantees – sentinel errors, no panics on user input
//   - Pure Go – no cgo, no hidden deps
//
// Quick ASCII example (columns 0..5, rows listed per column):
//
//	[[0 1] [4 5] [3 4] [0 1 2] [2 3] [3 4] [0 2 4 5]]  ⇒  rows {1, 3, 5}
//
// Dive into each package's doc.go for contracts, complexity notes and
// runnable examples.
package exactcover
