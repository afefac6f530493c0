// SPDX-License-Identifier: MIT

// Package dlx: Algorithm X, the recursive depth-first exact-cover search.
//
// Each call frame covers one column, tries every row still linked into
// it, and either propagates the first success upward (freeing the
// now-orphaned chains along the way) or uncovers everything it touched
// in exact reverse order before reporting failure. cover and uncover
// are strictly nested and exactly paired on every path out of a frame;
// that pairing is the structure's integrity guarantee.
package dlx

// Solve runs Algorithm X and consumes the matrix: on return the
// structure is torn down and the Matrix rejects further use with
// ErrMatrixConsumed.
//
// On success it returns the selected row indices: pre-selected rows
// first, then search order, which is not row order; callers wanting a
// canonical form must sort. On exhaustion it returns ErrNoSolution.
//
// Complexity: exponential worst case; recursion depth is bounded by
// the number of columns.
func (m *Matrix) Solve() ([]int, error) {
	if m.consumed {
		return nil, ErrMatrixConsumed
	}
	m.consumed = true

	if !m.search() {
		return nil, ErrNoSolution
	}

	solution := m.partial
	m.partial = nil

	return solution, nil
}

// search is one frame of Algorithm X.
//
//  1. No columns left ⇒ the partial solution is an exact cover.
//  2. Branch on the column with the fewest remaining candidate rows
//     (minimum-remaining-values: smallest live count wins, ties break
//     by ring order) and cover it.
//  3. For each row in that column: select it, cover every other column
//     it touches, recurse. First success wins: free the orphaned
//     chains and propagate without further backtracking. On failure,
//     uncover in exact reverse order and drop the row.
//  4. No row worked ⇒ uncover the branch column, report failure so the
//     parent frame tries its next row.
func (m *Matrix) search() bool {
	if m.IsEmpty() {
		return true
	}

	column := m.chooseColumn()
	m.coverColumn(column)

	for i := m.at(column).down; i != column; i = m.at(i).down {
		m.partial = append(m.partial, m.at(i).payload)

		for j := m.at(i).right; j != i; j = m.at(j).right {
			m.coverColumn(j)
		}

		if m.search() {
			for j := m.at(i).right; j != i; {
				next := m.at(j).right
				m.freeChain(j)
				j = next
			}
			m.freeChain(column)

			return true
		}

		for j := m.at(i).left; j != i; j = m.at(j).left {
			m.uncoverColumn(j)
		}

		m.partial = m.partial[:len(m.partial)-1]
	}

	m.uncoverColumn(column)

	return false
}

// chooseColumn picks the uncovered column with the smallest live count.
// A zero-count column is the best possible pick: the frame fails
// immediately instead of discovering the dead end deeper down.
// Precondition: at least one column remains. Complexity: O(columns).
func (m *Matrix) chooseColumn() ref {
	best := m.at(m.root).right
	for h := m.at(best).right; h != m.root; h = m.at(h).right {
		if m.at(h).payload < m.at(best).payload {
			best = h
		}
	}

	return best
}
