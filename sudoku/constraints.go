// Package sudoku: the exact-cover encoding.
//
// Candidate rows: one per (cell, digit) pair: row index
// cell*9 + digit - 1, 729 in total. Constraint columns, 324 in total,
// grouped as four banks of 81:
//
//	0..80    every cell holds exactly one digit
//	81..161  every row contains each digit exactly once
//	162..242 every column contains each digit exactly once
//	243..323 every box contains each digit exactly once
//
// A solved grid is precisely a subset of candidate rows covering every
// column exactly once.
package sudoku

// numRows is the candidate row count: 81 cells × 9 digits.
const numRows = NumCells * GridSize

// rowIndex encodes the candidate "cell holds digit" as a matrix row.
func rowIndex(cell int, digit uint8) int {
	return cell*GridSize + int(digit) - 1
}

// cellDigit decodes a matrix row back to its (cell, digit) pair.
func cellDigit(row int) (cell int, digit uint8) {
	return row / GridSize, uint8(row%GridSize) + 1
}

// constraints builds the 324 column membership lists described above.
// Complexity: O(729·4); each candidate row appears in exactly four
// columns.
func constraints() [][]int {
	cols := make([][]int, 0, 4*NumCells)

	// Cell uniqueness: the 9 digits of one cell.
	for cell := 0; cell < NumCells; cell++ {
		members := make([]int, 0, GridSize)
		for d := uint8(NumMin); d <= NumMax; d++ {
			members = append(members, rowIndex(cell, d))
		}
		cols = append(cols, members)
	}

	// Row-digit uniqueness: digit d somewhere in row r.
	for r := 0; r < GridSize; r++ {
		for d := uint8(NumMin); d <= NumMax; d++ {
			members := make([]int, 0, GridSize)
			for c := 0; c < GridSize; c++ {
				members = append(members, rowIndex(r*GridSize+c, d))
			}
			cols = append(cols, members)
		}
	}

	// Column-digit uniqueness: digit d somewhere in column c.
	for c := 0; c < GridSize; c++ {
		for d := uint8(NumMin); d <= NumMax; d++ {
			members := make([]int, 0, GridSize)
			for r := 0; r < GridSize; r++ {
				members = append(members, rowIndex(r*GridSize+c, d))
			}
			cols = append(cols, members)
		}
	}

	// Box-digit uniqueness: digit d somewhere in box b.
	for b := 0; b < GridSize; b++ {
		baseRow, baseCol := (b/BoxSize)*BoxSize, (b%BoxSize)*BoxSize
		for d := uint8(NumMin); d <= NumMax; d++ {
			members := make([]int, 0, GridSize)
			for r := 0; r < BoxSize; r++ {
				for c := 0; c < BoxSize; c++ {
					members = append(members, rowIndex((baseRow+r)*GridSize+baseCol+c, d))
				}
			}
			cols = append(cols, members)
		}
	}

	return cols
}
