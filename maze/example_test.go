package maze_test

import (
	"fmt"

	"github.com/katalvlaran/exact-cover/maze"
)

// ExampleGenerate carves a seeded 8×8 maze and solves it. The exact
// path depends on the seed, but the structural facts below hold for
// every perfect maze.
func ExampleGenerate() {
	m, err := maze.Generate(8, 8, maze.WithSeed(42))
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	path := m.Solve()

	fmt.Println("cells:", len(m.Cells))
	fmt.Println("exit in bottom row:", m.Exit()/m.Width == m.Height-1)
	fmt.Println("path reaches exit:", len(path) >= m.Height-1)
	// Output:
	// cells: 64
	// exit in bottom row: true
	// path reaches exit: true
}
