// Package sudoku: the DLX-backed solver.
package sudoku

import (
	"errors"

	"github.com/katalvlaran/exact-cover/dlx"
)

// Solve completes the grid via exact cover. Givens are forced into the
// partial solution before the search starts, so they always survive
// into the result. The selected rows come back in search order and are
// re-sorted implicitly by writing each (cell, digit) into its cell.
//
// Errors: ErrInvalidDigit for cells outside 0..9,
// ErrConflictingGivens when two givens collide on a uniqueness
// constraint, ErrNoSolution when the search exhausts every branch.
//
// Complexity: matrix construction is O(729·4); the search is
// exponential in the worst case but the MRV heuristic solves ordinary
// puzzles in milliseconds.
func Solve(g Grid) (Grid, error) {
	if err := validate(g); err != nil {
		return Grid{}, err
	}

	m, err := dlx.New(constraints(), dlx.WithRows(numRows))
	if err != nil {
		return Grid{}, err
	}

	for cell, v := range g {
		if v == 0 {
			continue
		}
		if err = m.AddSolution(rowIndex(cell, v)); err != nil {
			if errors.Is(err, dlx.ErrInvalidRow) {
				return Grid{}, ErrConflictingGivens
			}

			return Grid{}, err
		}
	}

	rows, err := m.Solve()
	if err != nil {
		if errors.Is(err, dlx.ErrNoSolution) {
			return Grid{}, ErrNoSolution
		}

		return Grid{}, err
	}

	var solved Grid
	for _, row := range rows {
		cell, digit := cellDigit(row)
		solved[cell] = digit
	}

	return solved, nil
}
