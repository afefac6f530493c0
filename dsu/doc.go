// Package dsu implements a disjoint-set (union-find) structure with
// union by size and full path compression.
//
// 🚀 What is a disjoint set?
//
//	A partition of {0..n-1} into groups supporting two near-constant
//	operations: Find (which group does i belong to?) and Union (merge
//	the groups of i and j). The classic workhorse behind Kruskal's
//	MST, connected components and randomized maze carving.
//
// ⚙️ Usage:
//
//	set := dsu.WithSize(4)
//	_, _ = set.Union(0, 1)
//	same, _ := set.SameSet(0, 1) // true
//	same, _ = set.SameSet(0, 2)  // false
//
// All operations validate indices and return ErrIndexOutOfRange
// instead of panicking.
//
// Complexity: Find/Union/SameSet run in O(α(n)) amortized (inverse
// Ackermann, effectively constant); memory is O(n).
package dsu
