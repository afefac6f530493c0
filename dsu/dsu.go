package dsu

import "errors"

// ErrIndexOutOfRange indicates an element index outside [0, Len).
var ErrIndexOutOfRange = errors.New("dsu: element index out of range")

// element is one slot of the forest. A root stores the size of its
// tree; a non-root stores its parent index. The two meanings share one
// field, discriminated by the root flag.
type element struct {
	root  bool
	value int
}

// DisjointSet is a union-find forest over elements 0..Len()-1.
// The zero value is an empty, usable set.
type DisjointSet struct {
	elements []element
}

// New returns an empty disjoint set; grow it with Add.
func New() *DisjointSet {
	return &DisjointSet{}
}

// WithSize returns a disjoint set of n singleton elements.
// Complexity: O(n).
func WithSize(n int) *DisjointSet {
	elements := make([]element, n)
	for i := range elements {
		elements[i] = element{root: true, value: 1}
	}

	return &DisjointSet{elements: elements}
}

// Len returns the number of elements.
func (s *DisjointSet) Len() int {
	return len(s.elements)
}

// Add appends one new singleton element and returns its index.
func (s *DisjointSet) Add() int {
	s.elements = append(s.elements, element{root: true, value: 1})

	return len(s.elements) - 1
}

// Find returns the root of the set containing i, compressing the path
// on the way. Returns ErrIndexOutOfRange for an invalid index.
func (s *DisjointSet) Find(i int) (int, error) {
	if i < 0 || i >= len(s.elements) {
		return 0, ErrIndexOutOfRange
	}

	return s.find(i), nil
}

// SameSet reports whether i and j currently belong to the same set.
func (s *DisjointSet) SameSet(i, j int) (bool, error) {
	ri, err := s.Find(i)
	if err != nil {
		return false, err
	}
	rj, err := s.Find(j)
	if err != nil {
		return false, err
	}

	return ri == rj, nil
}

// Union merges the sets containing i and j, attaching the smaller tree
// under the larger (ties attach j's root under i's). It returns the
// root that was demoted, or the common root when i and j were already
// joined.
func (s *DisjointSet) Union(i, j int) (int, error) {
	ri, err := s.Find(i)
	if err != nil {
		return 0, err
	}
	rj, err := s.Find(j)
	if err != nil {
		return 0, err
	}
	if ri == rj {
		return ri, nil
	}

	smaller, larger := rj, ri
	if s.elements[ri].value < s.elements[rj].value {
		smaller, larger = ri, rj
	}
	s.elements[larger].value += s.elements[smaller].value
	s.elements[smaller] = element{root: false, value: larger}

	return smaller, nil
}

// find assumes i is in range.
func (s *DisjointSet) find(i int) int {
	if s.elements[i].root {
		return i
	}

	root := s.find(s.elements[i].value)
	s.elements[i].value = root

	return root
}
