// SPDX-License-Identifier: MIT

// Package dlx implements Knuth's "dancing links" (DLX) technique and
// Algorithm X for the exact-cover problem.
//
// 🚀 What is exact cover?
//
//	Given a sparse 0/1 matrix, select a subset of rows so that every
//	column contains exactly one 1 among the selected rows. Sudoku,
//	n-queens, polyomino tiling and many scheduling problems reduce to
//	exact cover directly.
//
// ✨ Key features:
//   - toroidal doubly-linked matrix over a typed arena (no pointers,
//     no unsafe) with O(1) unlink and O(1) exact relink per cell
//   - cover / uncover protocol: removing a column and every row that
//     intersects it is exactly undone by the inverse walk
//   - recursive Algorithm X with the minimum-remaining-candidates
//     column heuristic; the first complete assignment wins
//   - row pre-selection (AddSolution) to seed known values, e.g.
//     Sudoku givens
//
// ⚙️ Usage:
//
//	// One inner slice per column, listing the rows that satisfy it.
//	constraints := [][]int{{0, 1}, {4, 5}, {3, 4}, {0, 1, 2}, {2, 3}, {3, 4}, {0, 2, 4, 5}}
//
//	m, err := dlx.New(constraints)
//	if err != nil { ... }
//	rows, err := m.Solve() // rows ⇒ {1, 3, 5} (in search order)
//
// Error surface: ErrIndexOutOfRange (bad row index), ErrInvalidRow
// (pre-selecting a row an earlier pre-selection removed), ErrNoSolution
// (search exhausted, a legitimate outcome rather than an engine
// failure), ErrMatrixConsumed (reuse after Solve).
//
// Performance:
//
//   - Construction: O(cells) time and memory, one arena slot per cell.
//   - cover/uncover: O(cells touched), each cell O(1).
//   - Search: exponential worst case, as exact cover is NP-complete;
//     the MRV heuristic keeps the branching factor minimal.
//
// Concurrency: a Matrix is single-threaded and exclusively owns its
// arena; Solve consumes it. There is no cancellation: the search
// either completes or exhausts all branches.
package dlx
