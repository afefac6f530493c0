// Package maze: cell grid, directions, options and sentinel errors.
package maze

import "errors"

// ErrZeroDimension indicates a requested width or height below 1.
var ErrZeroDimension = errors.New("maze: width and height must be at least 1")

// Direction is one step of a solution path.
type Direction int

const (
	// Right moves to the cell on the right.
	Right Direction = iota
	// Down moves to the cell below.
	Down
	// Left moves to the cell on the left.
	Left
	// Up moves to the cell above.
	Up
)

// String implements fmt.Stringer for readable paths in tests and logs.
func (d Direction) String() string {
	switch d {
	case Right:
		return "right"
	case Down:
		return "down"
	case Left:
		return "left"
	case Up:
		return "up"
	default:
		return "invalid"
	}
}

// Cell holds the two walls a cell owns: its right wall and its bottom
// wall. The left/top walls belong to the neighbors; the grid borders
// are implicit. A freshly allocated cell has both walls standing.
type Cell struct {
	Right bool
	Down  bool
}

// Maze is a carved width×height grid in row-major order: cell (x, y)
// is Cells[y*Width+x]. The entrance is the top-left cell; the exit is
// opened in the bottom border by Solve.
type Maze struct {
	Width, Height int
	Cells         []Cell

	solution []Direction
	exit     int
	solved   bool
}

// defaultSeed is the fixed seed used when callers pass seed 0, keeping
// default generation reproducible.
const defaultSeed int64 = 1

// options gathers generation configuration.
type options struct {
	seed int64
}

// Option configures Generate.
type Option func(*options)

// WithSeed fixes the carving RNG seed. Seed 0 (and the default) maps
// to a stable internal constant; any other value is used verbatim.
func WithSeed(seed int64) Option {
	return func(o *options) { o.seed = seed }
}

// gatherOptions folds opts over the defaults.
func gatherOptions(opts ...Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	if o.seed == 0 {
		o.seed = defaultSeed
	}

	return o
}
