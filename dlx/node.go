// SPDX-License-Identifier: MIT

// Package dlx: arena-backed node primitives.
//
// A node is one cell of the sparse boolean matrix. Nodes live in a
// single []node arena owned by the Matrix; every link is an arena index
// rather than a pointer, so "null" is the none sentinel, deallocation
// is a free list, and no aliasing or lifetime hazards exist. Each node
// participates in two circular doubly-linked rings: its row ring
// (left/right) and its column ring (up/down). A freshly allocated node
// is a one-element ring in both directions until spliced.
package dlx

import "iter"

// ref is an arena index. none plays the role of the null pointer.
type ref = int32

const none ref = -1

// node is a matrix cell. Headers and data nodes share the layout:
// a header has header == none and payload == live row count; a data
// node has header pointing at its column header and payload == the row
// index it belongs to.
type node struct {
	left, right ref
	up, down    ref
	header      ref
	payload     int
}

// arena owns every node of one matrix. Released slots are recycled
// through the free list; slot contents are left intact on release, so
// a chain being torn down can still be traversed (mirroring the
// "never cleared until actual deallocation" discipline that makes
// uncovering a pure pointer restore).
type arena struct {
	nodes []node
	free  []ref
}

// at returns the node stored at id. The pointer is only valid until
// the next alloc (append may move the backing array).
func (a *arena) at(id ref) *node {
	return &a.nodes[id]
}

// alloc returns a free slot, recycling released ones first.
// Complexity: amortized O(1).
func (a *arena) alloc() ref {
	if n := len(a.free); n > 0 {
		id := a.free[n-1]
		a.free = a.free[:n-1]

		return id
	}
	a.nodes = append(a.nodes, node{})

	return ref(len(a.nodes) - 1)
}

// release returns a slot to the free list without clearing it.
// Complexity: O(1).
func (a *arena) release(id ref) {
	a.free = append(a.free, id)
}

// newHeader allocates a header node with the given live count. If prev
// is a valid header, the new header is spliced into the horizontal
// ring immediately after it; otherwise it starts as a singleton ring
// (used for the root). Complexity: O(1).
func (a *arena) newHeader(prev ref, count int) ref {
	id := a.alloc()
	*a.at(id) = node{left: id, right: id, up: id, down: id, header: none, payload: count}
	if prev != none {
		a.linkRight(prev, id)
	}

	return id
}

// newNode allocates a data node tagged with row, owned by header.
// It is spliced into the horizontal ring after rowPrev and into the
// vertical ring after colPrev, skipping either splice when the
// predecessor is none. Complexity: O(1).
func (a *arena) newNode(header, rowPrev, colPrev ref, row int) ref {
	id := a.alloc()
	*a.at(id) = node{left: id, right: id, up: id, down: id, header: header, payload: row}
	if rowPrev != none {
		a.linkRight(rowPrev, id)
	}
	if colPrev != none {
		a.linkDown(colPrev, id)
	}

	return id
}

// linkRight splices id into the horizontal ring immediately after prev.
func (a *arena) linkRight(prev, id ref) {
	next := a.at(prev).right
	a.at(id).left = prev
	a.at(id).right = next
	a.at(next).left = id
	a.at(prev).right = id
}

// linkDown splices id into the vertical ring immediately after prev.
func (a *arena) linkDown(prev, id ref) {
	next := a.at(prev).down
	a.at(id).up = prev
	a.at(id).down = next
	a.at(next).up = id
	a.at(prev).down = id
}

// coverHorizontal unlinks id from its row ring by rewriting the
// neighbors' links to skip it. id's own links are left untouched so
// uncoverHorizontal can restore it exactly.
func (a *arena) coverHorizontal(id ref) {
	n := a.at(id)
	a.at(n.left).right = n.right
	a.at(n.right).left = n.left
}

// coverVertical unlinks id from its column ring; see coverHorizontal.
func (a *arena) coverVertical(id ref) {
	n := a.at(id)
	a.at(n.up).down = n.down
	a.at(n.down).up = n.up
}

// uncoverHorizontal relinks id into its row ring using its own intact
// links. Exact inverse of coverHorizontal.
func (a *arena) uncoverHorizontal(id ref) {
	n := a.at(id)
	a.at(n.left).right = id
	a.at(n.right).left = id
}

// uncoverVertical relinks id into its column ring. Exact inverse of
// coverVertical.
func (a *arena) uncoverVertical(id ref) {
	n := a.at(id)
	a.at(n.up).down = id
	a.at(n.down).up = id
}

// headerOf resolves id to its column header: a no-op for headers.
func (a *arena) headerOf(id ref) ref {
	if h := a.at(id).header; h != none {
		return h
	}

	return id
}

// ring returns a lazy sequence over one ring of start, beginning with
// start itself and proceeding exactly once around via next. The
// successor is read before each yield, so the body may unlink or even
// release the yielded node. Termination is by identity with start, not
// by sentinel: a ring may have length 1.
func (a *arena) ring(start ref, next func(*node) ref) iter.Seq[ref] {
	return func(yield func(ref) bool) {
		for id := start; ; {
			succ := next(a.at(id))
			if !yield(id) {
				return
			}
			if succ == start {
				return
			}
			id = succ
		}
	}
}

// iterRight walks the row ring of start in right order, start included.
func (a *arena) iterRight(start ref) iter.Seq[ref] {
	return a.ring(start, func(n *node) ref { return n.right })
}

// iterLeft walks the row ring of start in left order, start included.
func (a *arena) iterLeft(start ref) iter.Seq[ref] {
	return a.ring(start, func(n *node) ref { return n.left })
}

// iterDown walks the column ring of start downward, start included.
func (a *arena) iterDown(start ref) iter.Seq[ref] {
	return a.ring(start, func(n *node) ref { return n.down })
}

// iterUp walks the column ring of start upward, start included.
func (a *arena) iterUp(start ref) iter.Seq[ref] {
	return a.ring(start, func(n *node) ref { return n.up })
}
