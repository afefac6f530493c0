// Package sudoku: the plain backtracking engine.
package sudoku

// square is one search frame: a blank cell and the digits left to try
// there. Candidates are computed when the blank is first reached;
// deeper frames are unwound before a retry, so the list stays valid.
type square struct {
	cell       int
	candidates []uint8
}

// SolveBacktracking completes the grid by depth-first search over
// blank cells in index order, pruned by a Mask. It finds the same
// assignment as Solve on well-posed puzzles and exists as an
// independent cross-check engine.
//
// Errors: ErrInvalidDigit, ErrConflictingGivens, ErrNoSolution, the
// same surface as Solve.
func SolveBacktracking(g Grid) (Grid, error) {
	if err := validate(g); err != nil {
		return Grid{}, err
	}

	var mask Mask
	for cell, v := range g {
		if v == 0 {
			continue
		}
		if mask.blocked(cell, v) {
			return Grid{}, ErrConflictingGivens
		}
		mask.Set(cell, v)
	}

	next := nextBlank(&g, 0)
	if next < 0 {
		return g, nil
	}

	stack := make([]square, 0, NumCells)
	stack = append(stack, square{cell: next, candidates: mask.Candidates(next)})

	for len(stack) > 0 {
		top := &stack[len(stack)-1]

		// Undo the previous attempt at this cell, if any.
		if v := g[top.cell]; v != 0 {
			mask.Clear(top.cell, v)
			g[top.cell] = 0
		}

		if len(top.candidates) == 0 {
			stack = stack[:len(stack)-1]

			continue
		}

		v := top.candidates[len(top.candidates)-1]
		top.candidates = top.candidates[:len(top.candidates)-1]
		g[top.cell] = v
		mask.Set(top.cell, v)

		next = nextBlank(&g, top.cell)
		if next < 0 {
			return g, nil
		}
		stack = append(stack, square{cell: next, candidates: mask.Candidates(next)})
	}

	return Grid{}, ErrNoSolution
}

// nextBlank returns the first blank cell at or after start, -1 if the
// grid is complete from start onward.
func nextBlank(g *Grid, start int) int {
	for cell := start; cell < NumCells; cell++ {
		if g[cell] == 0 {
			return cell
		}
	}

	return -1
}
