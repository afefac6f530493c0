package dsu_test

import (
	"fmt"

	"github.com/katalvlaran/exact-cover/dsu"
)

// ExampleDisjointSet merges two pairs and queries connectivity.
func ExampleDisjointSet() {
	set := dsu.WithSize(4)

	_, _ = set.Union(0, 1)
	_, _ = set.Union(2, 3)

	same, _ := set.SameSet(0, 1)
	fmt.Println("0~1:", same)
	same, _ = set.SameSet(1, 2)
	fmt.Println("1~2:", same)

	_, _ = set.Union(1, 2)
	same, _ = set.SameSet(0, 3)
	fmt.Println("0~3:", same)
	// Output:
	// 0~1: true
	// 1~2: false
	// 0~3: true
}
