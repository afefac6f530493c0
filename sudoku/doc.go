// Package sudoku solves standard 9×9 Sudoku grids.
//
// 🚀 How?
//
//	Two interchangeable engines:
//	  • Solve            — reduces the puzzle to exact cover and runs
//	    the dancing-links engine (dlx): 729 candidate rows (81 cells ×
//	    9 digits) against 324 constraint columns (cell, row-digit,
//	    column-digit, box-digit uniqueness). Givens are pre-seeded as
//	    forced row selections before the search starts.
//	  • SolveBacktracking — the classic depth-first search over blank
//	    cells, pruned by a bitmask candidate tracker (Mask).
//
// Both return the same assignment on well-posed puzzles; the DLX
// engine is the reference implementation and the faster of the two on
// hard instances.
//
// ⚙️ Usage:
//
//	var g sudoku.Grid       // 81 cells, row-major, 0 = blank
//	g[0], g[1] = 4, 1       // row 0: "41..."
//	solved, err := sudoku.Solve(g)
//
// Error surface: ErrInvalidDigit (a cell outside 0..9),
// ErrConflictingGivens (two givens violate a uniqueness constraint),
// ErrNoSolution (consistent givens, unsatisfiable grid).
//
// The package deliberately has no text parser or printer; callers own
// their puzzle encodings.
package sudoku
