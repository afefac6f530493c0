// Package maze: BFS extraction of the solution path.
package maze

// pathNode states for the BFS parent tree.
const (
	pathStart = iota
	pathVisited
	pathUnvisited
)

// pathNode records how the BFS reached a cell.
type pathNode struct {
	state  int
	parent int
}

// Solve finds the entrance→exit path. The BFS floods from the
// top-left cell through open walls; every time a bottom-row cell is
// dequeued a candidate exit is recorded, and once all Width bottom
// cells have been reached the last one, farthest from the
// entrance, becomes the exit: its bottom wall is opened and the
// parent chain is walked back into a direction list.
//
// The first call carves the exit and caches the path; later calls
// return the cached path. Complexity: O(width·height).
func (m *Maze) Solve() []Direction {
	if m.solved {
		return m.solution
	}

	tree := make([]pathNode, len(m.Cells))
	for i := range tree {
		tree[i].state = pathUnvisited
	}
	tree[0].state = pathStart

	queue := make([]int, 0, len(m.Cells))
	queue = append(queue, 0)

	foundPaths := 0
	for {
		current := queue[0]
		queue = queue[1:]

		if current/m.Width == m.Height-1 {
			foundPaths++
			if foundPaths == m.Width {
				m.Cells[current].Down = false
				m.exit = current
				m.solution = m.backwalk(tree, current)
				m.solved = true

				return m.solution
			}
		}

		if right := current + 1; current%m.Width < m.Width-1 &&
			!m.Cells[current].Right && tree[right].state == pathUnvisited {
			tree[right] = pathNode{state: pathVisited, parent: current}
			queue = append(queue, right)
		}
		if down := current + m.Width; down < len(m.Cells) &&
			!m.Cells[current].Down && tree[down].state == pathUnvisited {
			tree[down] = pathNode{state: pathVisited, parent: current}
			queue = append(queue, down)
		}
		if left := current - 1; current%m.Width > 0 &&
			!m.Cells[left].Right && tree[left].state == pathUnvisited {
			tree[left] = pathNode{state: pathVisited, parent: current}
			queue = append(queue, left)
		}
		if up := current - m.Width; up >= 0 &&
			!m.Cells[up].Down && tree[up].state == pathUnvisited {
			tree[up] = pathNode{state: pathVisited, parent: current}
			queue = append(queue, up)
		}
	}
}

// Exit returns the row-major index of the exit cell, or -1 before the
// first Solve call.
func (m *Maze) Exit() int {
	return m.exit
}

// backwalk follows parent links from the exit to the entrance,
// translating each hop into the direction that was walked forward,
// then reverses into entrance→exit order.
func (m *Maze) backwalk(tree []pathNode, current int) []Direction {
	var solution []Direction
	for tree[current].state == pathVisited {
		parent := tree[current].parent
		switch parent {
		case current + 1:
			solution = append(solution, Left)
		case current + m.Width:
			solution = append(solution, Up)
		case current - 1:
			solution = append(solution, Right)
		default:
			solution = append(solution, Down)
		}
		current = parent
	}

	// The walk ran exit→entrance; flip it.
	for i, j := 0, len(solution)-1; i < j; i, j = i+1, j-1 {
		solution[i], solution[j] = solution[j], solution[i]
	}

	return solution
}
