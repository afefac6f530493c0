// SPDX-License-Identifier: MIT

// Package dlx: the exact-cover matrix and its cover/uncover/free
// protocol.
//
// Structural invariants (outside the strictly bounded mutation inside
// coverColumn/uncoverColumn):
//   - every link, followed repeatedly, returns to its origin
//     (both rings are circular, possibly of length 1);
//   - left(right(n)) == n and right(left(n)) == n, same for up/down;
//   - a header's payload equals the number of data nodes reachable by
//     following down from it;
//   - coverColumn(h) immediately followed by uncoverColumn(h) restores
//     the structure bit-for-bit (see the round-trip tests).
package dlx

// Matrix is a sparse boolean matrix in dancing-links form: a root
// sentinel header doubly linked to every column header, each column
// header vertically linked to its data nodes. The Matrix exclusively
// owns its arena; Solve consumes it.
type Matrix struct {
	arena

	// root is the sentinel header representing "all columns".
	root ref

	// rowTab maps a row index to one of its nodes, none once the row
	// has been removed by pre-selection (or never existed).
	rowTab []ref

	// partial is the sequence of selected row indices; it grows on
	// descent and pre-selection, shrinks on backtrack.
	partial []int

	// consumed is set by Solve; further mutation is rejected.
	consumed bool
}

// New builds the toroidal structure from constraint membership lists:
// one inner slice per column, each listing the row indices that
// satisfy that constraint. Columns are processed left-to-right; within
// a column every data node is spliced after the previously recorded
// node of its row, so row rings are built incrementally as columns are
// added.
//
// The row table is sized by WithRows(n) when given (members are then
// validated against [0, n)), otherwise by the maximum observed index
// plus one. Negative indices return ErrIndexOutOfRange either way.
//
// Complexity: O(total cells) time and memory.
func New(constraints [][]int, opts ...Option) (*Matrix, error) {
	o := gatherOptions(opts...)

	numRows := 0
	if o.rows != inferRows {
		numRows = o.rows
	}
	for _, constraint := range constraints {
		for _, row := range constraint {
			switch {
			case row < 0:
				return nil, ErrIndexOutOfRange
			case o.rows != inferRows && row >= o.rows:
				return nil, ErrIndexOutOfRange
			case o.rows == inferRows && row+1 > numRows:
				numRows = row + 1
			}
		}
	}

	m := &Matrix{rowTab: make([]ref, numRows)}
	for i := range m.rowTab {
		m.rowTab[i] = none
	}

	m.root = m.newHeader(none, 0)
	curr := m.root
	for _, constraint := range constraints {
		h := m.newHeader(curr, len(constraint))

		colCurr := h
		for _, row := range constraint {
			n := m.newNode(h, m.rowTab[row], colCurr, row)
			m.rowTab[row] = n
			colCurr = n
		}

		curr = h
	}

	return m, nil
}

// IsEmpty reports whether no columns remain: the root's right link
// points back at the root. True exactly when every column has been
// covered, i.e. the current partial solution is complete.
func (m *Matrix) IsEmpty() bool {
	return m.at(m.root).right == m.root
}

// AddSolution pre-commits row before search starts (e.g. a Sudoku
// given). Returns ErrIndexOutOfRange for an index outside the row
// table and ErrInvalidRow when the row was already removed by an
// earlier pre-selection covering an overlapping column.
//
// On success the row joins the partial solution, every other row
// sharing a column with it is marked infeasible in the row table, the
// row's columns are covered, and the detached chains are freed: that
// region of the matrix is never revisited.
func (m *Matrix) AddSolution(row int) error {
	if m.consumed {
		return ErrMatrixConsumed
	}
	if row < 0 || row >= len(m.rowTab) {
		return ErrIndexOutOfRange
	}
	id := m.rowTab[row]
	if id == none {
		return ErrInvalidRow
	}

	m.partial = append(m.partial, row)

	// Rows that share any column with the selected row can never be
	// selected again; null their lookup entries (the selected row's
	// own entry included) before covering unlinks them.
	for cell := range m.iterRight(id) {
		h := m.at(cell).header
		for i := m.at(h).down; i != h; i = m.at(i).down {
			m.rowTab[m.at(i).payload] = none
		}
	}

	for cell := range m.iterRight(id) {
		m.coverColumn(cell)
	}

	for cell := m.at(id).right; cell != id; {
		next := m.at(cell).right
		m.freeChain(cell)
		cell = next
	}
	m.freeChain(id)

	return nil
}

// coverColumn resolves id to its header, unlinks the header from the
// horizontal ring, then unlinks every row intersecting the column from
// every other column it touches, decrementing those columns' live
// counts. Net effect: the column and all rows with a 1 in it leave
// future consideration. Complexity: O(cells touched).
func (m *Matrix) coverColumn(id ref) {
	h := m.headerOf(id)
	m.coverHorizontal(h)

	for i := m.at(h).down; i != h; i = m.at(i).down {
		for j := m.at(i).right; j != i; j = m.at(j).right {
			m.coverVertical(j)
			m.at(m.at(j).header).payload--
		}
	}
}

// uncoverColumn is the exact inverse of coverColumn, performed in
// reverse order: rows via up, cells via left, counts incremented
// before relinking, header relinked last. The order reversal is what
// makes the relink a pure restore when a row touches several
// partially restored columns.
func (m *Matrix) uncoverColumn(id ref) {
	h := m.headerOf(id)

	for i := m.at(h).up; i != h; i = m.at(i).up {
		for j := m.at(i).left; j != i; j = m.at(j).left {
			m.at(m.at(j).header).payload++
			m.uncoverVertical(j)
		}
	}

	m.uncoverHorizontal(h)
}

// freeChain resolves id to its header and releases every data node
// reachable via the column and each intersecting row, then the header
// itself. Called once a row has been committed to the solution and its
// region of the matrix will never be revisited. The covering
// discipline guarantees each slot is reachable from at most one freed
// column, so no slot is released twice.
func (m *Matrix) freeChain(id ref) {
	h := m.headerOf(id)

	for i := range m.iterDown(h) {
		if i == h {
			continue
		}
		for j := range m.iterRight(i) {
			if j == i {
				continue
			}
			m.release(j)
		}
		m.release(i)
	}
	m.release(h)
}
