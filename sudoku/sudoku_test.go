package sudoku_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/exact-cover/sudoku"
)

// The fixture puzzle and its unique solution.
const (
	puzzleFixture   = "415830090003009104002150006900783000200000381500012400004900063380500040009307500"
	solutionFixture = "415836297863279154792154836941783625276495381538612479154928763387561942629347518"
)

// mustGrid builds a Grid from an 81-digit string; tests own their
// puzzle encoding since the package exposes no parser.
func mustGrid(t *testing.T, s string) sudoku.Grid {
	t.Helper()
	require.Len(t, s, sudoku.NumCells)

	var g sudoku.Grid
	for i := 0; i < sudoku.NumCells; i++ {
		require.GreaterOrEqual(t, s[i], byte('0'))
		require.LessOrEqual(t, s[i], byte('9'))
		g[i] = s[i] - '0'
	}

	return g
}

// requireValidSolution rechecks every row, column and box uniqueness
// constraint on a claimed solution, plus given preservation.
func requireValidSolution(t *testing.T, puzzle, solved sudoku.Grid) {
	t.Helper()

	for cell, v := range puzzle {
		if v != 0 {
			require.Equal(t, v, solved[cell], "given at cell %d dropped", cell)
		}
	}

	full := func(house []uint8) {
		var seen [10]bool
		for _, v := range house {
			require.True(t, v >= 1 && v <= 9, "cell left blank or invalid")
			require.False(t, seen[v], "digit %d repeated", v)
			seen[v] = true
		}
	}

	for r := 0; r < sudoku.GridSize; r++ {
		row := make([]uint8, 0, sudoku.GridSize)
		col := make([]uint8, 0, sudoku.GridSize)
		for c := 0; c < sudoku.GridSize; c++ {
			row = append(row, solved[r*sudoku.GridSize+c])
			col = append(col, solved[c*sudoku.GridSize+r])
		}
		full(row)
		full(col)
	}
	for b := 0; b < sudoku.GridSize; b++ {
		baseRow, baseCol := (b/3)*3, (b%3)*3
		box := make([]uint8, 0, sudoku.GridSize)
		for r := 0; r < 3; r++ {
			for c := 0; c < 3; c++ {
				box = append(box, solved[(baseRow+r)*sudoku.GridSize+baseCol+c])
			}
		}
		full(box)
	}
}

// unsolvableGrid has no directly conflicting givens, yet cell (0,8)
// ends up with no candidates: row 0 takes digits 1..8 and the 9 in
// column 8 blocks the only one left.
func unsolvableGrid() sudoku.Grid {
	var g sudoku.Grid
	for c := 0; c < 8; c++ {
		g[c] = uint8(c + 1)
	}
	g[2*sudoku.GridSize+8] = 9

	return g
}

// SudokuSuite runs the same scenarios through both engines.
type SudokuSuite struct {
	suite.Suite
}

func (s *SudokuSuite) engines() map[string]func(sudoku.Grid) (sudoku.Grid, error) {
	return map[string]func(sudoku.Grid) (sudoku.Grid, error){
		"dlx":       sudoku.Solve,
		"backtrack": sudoku.SolveBacktracking,
	}
}

// TestSolvesFixture checks the reference puzzle solves to its unique
// solution under both engines.
func (s *SudokuSuite) TestSolvesFixture() {
	puzzle := mustGrid(s.T(), puzzleFixture)
	want := mustGrid(s.T(), solutionFixture)

	for name, solve := range s.engines() {
		got, err := solve(puzzle)
		require.NoError(s.T(), err, name)
		require.Equal(s.T(), want, got, name)
		requireValidSolution(s.T(), puzzle, got)
	}
}

// TestAlreadySolved: a complete grid comes back unchanged.
func (s *SudokuSuite) TestAlreadySolved() {
	want := mustGrid(s.T(), solutionFixture)

	for name, solve := range s.engines() {
		got, err := solve(want)
		require.NoError(s.T(), err, name)
		require.Equal(s.T(), want, got, name)
	}
}

// TestEmptyGrid: the blank puzzle yields some valid full assignment.
func (s *SudokuSuite) TestEmptyGrid() {
	for name, solve := range s.engines() {
		got, err := solve(sudoku.Grid{})
		require.NoError(s.T(), err, name)
		requireValidSolution(s.T(), sudoku.Grid{}, got)
	}
}

// TestConflictingGivens: two 4s in row 0.
func (s *SudokuSuite) TestConflictingGivens() {
	puzzle := mustGrid(s.T(), puzzleFixture)
	puzzle[1] = 4

	for name, solve := range s.engines() {
		_, err := solve(puzzle)
		require.ErrorIs(s.T(), err, sudoku.ErrConflictingGivens, name)
	}
}

// TestNoSolution: consistent givens, empty candidate set downstream.
func (s *SudokuSuite) TestNoSolution() {
	for name, solve := range s.engines() {
		_, err := solve(unsolvableGrid())
		require.ErrorIs(s.T(), err, sudoku.ErrNoSolution, name)
	}
}

// TestInvalidDigit: a cell holding 10 is rejected up front.
func (s *SudokuSuite) TestInvalidDigit() {
	var puzzle sudoku.Grid
	puzzle[40] = 10

	for name, solve := range s.engines() {
		_, err := solve(puzzle)
		require.ErrorIs(s.T(), err, sudoku.ErrInvalidDigit, name)
	}
}

func TestSudokuSuite(t *testing.T) {
	suite.Run(t, new(SudokuSuite))
}

// TestCandidates spot-checks candidate sets against the fixture.
func TestCandidates(t *testing.T) {
	puzzle := mustGrid(t, puzzleFixture)

	cases := []struct {
		cell int
		want []uint8
	}{
		{5, []uint8{6}},
		{6, []uint8{2, 7}},
		{8, []uint8{2, 7}},
		{80, []uint8{2, 8}},
	}
	for _, tc := range cases {
		got, err := sudoku.Candidates(puzzle, tc.cell)
		require.NoError(t, err)
		require.Equal(t, tc.want, got, "cell %d", tc.cell)
	}

	// A given cell reports candidates as if it were blank.
	got, err := sudoku.Candidates(puzzle, 0)
	require.NoError(t, err)
	require.Contains(t, got, uint8(4))

	_, err = sudoku.Candidates(puzzle, sudoku.NumCells)
	require.ErrorIs(t, err, sudoku.ErrCellIndex)
	_, err = sudoku.Candidates(puzzle, -1)
	require.ErrorIs(t, err, sudoku.ErrCellIndex)
}
