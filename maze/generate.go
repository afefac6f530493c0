// Package maze: randomized recursive-backtrack carving.
package maze

import (
	"math/rand"

	"github.com/katalvlaran/exact-cover/dsu"
)

// direction codes used by the carving walk; order matches the
// canonical right/down/left/up direction set.
const (
	carveRight = iota
	carveDown
	carveLeft
	carveUp
)

// Generate carves a perfect width×height maze. The walk keeps an
// explicit cell stack; from the current cell it knocks down a random
// still-legal wall into a cell of a different connected component,
// pushes that neighbor, and backtracks when every direction is spent
// or already connected. The disjoint set guarantees the open walls
// form a spanning tree.
//
// Complexity: O(width·height·α) time, O(width·height) memory.
func Generate(width, height int, opts ...Option) (*Maze, error) {
	if width < 1 || height < 1 {
		return nil, ErrZeroDimension
	}
	o := gatherOptions(opts...)
	rng := rand.New(rand.NewSource(o.seed))

	size := width * height
	m := &Maze{
		Width:  width,
		Height: height,
		Cells:  make([]Cell, size),
		exit:   -1,
	}
	for i := range m.Cells {
		m.Cells[i] = Cell{Right: true, Down: true}
	}

	connections := dsu.WithSize(size)

	// Per-cell list of directions not yet tried from that cell.
	canVisit := make([][]uint8, size)
	for i := range canVisit {
		canVisit[i] = []uint8{carveRight, carveDown, carveLeft, carveUp}
	}

	path := []int{0}
	for len(path) > 0 {
		current := path[len(path)-1]
		if next, ok := m.visitNext(current, connections, &canVisit[current], rng); ok {
			path = append(path, next)
		} else {
			path = path[:len(path)-1]
		}
	}

	return m, nil
}

// visitNext tries the remaining directions of current in random order
// until one carves into a foreign component. It reports the neighbor
// entered, or false when current is exhausted.
func (m *Maze) visitNext(current int, connections *dsu.DisjointSet, visitable *[]uint8, rng *rand.Rand) (int, bool) {
	for len(*visitable) > 0 {
		dir := takeRandom(visitable, rng)

		var next int
		switch dir {
		case carveRight:
			if current%m.Width == m.Width-1 {
				continue
			}
			next = current + 1
		case carveDown:
			if current >= m.Width*(m.Height-1) {
				continue
			}
			next = current + m.Width
		case carveLeft:
			if current%m.Width == 0 {
				continue
			}
			next = current - 1
		case carveUp:
			if current < m.Width {
				continue
			}
			next = current - m.Width
		}

		// Both cells are always in range, so SameSet cannot fail.
		if same, _ := connections.SameSet(current, next); same {
			continue
		}

		switch dir {
		case carveRight:
			m.Cells[current].Right = false
		case carveDown:
			m.Cells[current].Down = false
		case carveLeft:
			m.Cells[next].Right = false
		case carveUp:
			m.Cells[next].Down = false
		}

		_, _ = connections.Union(current, next)

		return next, true
	}

	return 0, false
}

// takeRandom removes and returns a uniformly chosen element,
// swap-removing to stay O(1).
func takeRandom(values *[]uint8, rng *rand.Rand) uint8 {
	v := *values
	i := rng.Intn(len(v))
	picked := v[i]
	v[i] = v[len(v)-1]
	*values = v[:len(v)-1]

	return picked
}
