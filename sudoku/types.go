// Package sudoku: grid geometry, domain constants and sentinel errors.
package sudoku

import "errors"

// Sentinel errors for sudoku solving.
var (
	// ErrInvalidDigit indicates a grid cell holds a value outside 0..9.
	ErrInvalidDigit = errors.New("sudoku: cell value outside 0..9")
	// ErrConflictingGivens indicates two givens violate a row, column
	// or box uniqueness constraint.
	ErrConflictingGivens = errors.New("sudoku: givens conflict")
	// ErrNoSolution indicates the givens are consistent but the grid
	// admits no complete assignment.
	ErrNoSolution = errors.New("sudoku: puzzle has no solution")
	// ErrCellIndex indicates a cell index outside [0, NumCells).
	ErrCellIndex = errors.New("sudoku: cell index out of range")
)

// Grid geometry.
const (
	// GridSize is the side length of the grid.
	GridSize = 9
	// BoxSize is the side length of one box.
	BoxSize = 3
	// NumCells is the number of cells in a grid.
	NumCells = GridSize * GridSize
	// NumMin and NumMax bound the playable digits.
	NumMin = 1
	NumMax = 9
)

// Grid is a 9×9 Sudoku board in row-major order; cell (r, c) is index
// r*9 + c. Zero means blank. Grids are values: solvers take and
// return copies, never mutating the caller's board.
type Grid [NumCells]uint8

// indices maps a cell index to its (row, column, box) coordinates.
func indices(cell int) (row, col, box int) {
	row = cell / GridSize
	col = cell % GridSize

	return row, col, (row/BoxSize)*BoxSize + col/BoxSize
}

// validate rejects out-of-range cell values.
func validate(g Grid) error {
	for _, v := range g {
		if v > NumMax {
			return ErrInvalidDigit
		}
	}

	return nil
}
