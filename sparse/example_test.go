package sparse_test

import (
	"fmt"

	"github.com/katalvlaran/sparseblock/sparse"
)

// ExampleCSC builds a small block entry by entry.
func ExampleCSC() {
	c, _ := sparse.NewCSC(3, 0, sparse.WithRows(3))
	_ = c.Set(2, 0, 5)
	_ = c.Set(1, 1, 7)
	_ = c.Set(0, 1, 3)
	_ = c.Set(2, 2, 9)

	fmt.Print(c)
	fmt.Println(c.Pointers(), c.Indexes()[:c.NonZeros()])
	// Output:
	// CSC 3x3 nnz=4
	//  col 0: (2, 5)
	//  col 1: (0, 3) (1, 7)
	//  col 2: (2, 9)
	// [0 1 3 4] [2 0 1 2]
}

// ExampleCSC_Add shows that accumulating to zero removes the entry.
func ExampleCSC_Add() {
	c, _ := sparse.NewCSC(2, 0, sparse.WithRows(2))
	_ = c.Add(0, 1, 1.5)
	_ = c.Add(0, 1, -1.5)
	fmt.Println(c.NonZeros(), c.Get(0, 1))
	// Output:
	// 0 0
}

// ExampleNewCSCFrom converts a row-major block.
func ExampleNewCSCFrom() {
	m, _ := sparse.NewMCSR(2, 3)
	_ = m.Set(0, 2, 1)
	_ = m.Set(1, 0, 2)
	_ = m.Set(1, 2, 3)

	c, _ := sparse.NewCSCFrom(m)
	fmt.Print(c)
	// Output:
	// CSC 2x3 nnz=3
	//  col 0: (1, 2)
	//  col 2: (0, 1) (1, 3)
}

// ExampleCSC_NonEmptyRows walks the rows that hold at least one entry.
func ExampleCSC_NonEmptyRows() {
	c, _ := sparse.NewCSC(2, 0, sparse.WithRows(6))
	_ = c.Set(4, 0, 1)
	_ = c.Set(1, 1, 1)
	_ = c.Set(4, 1, 1)

	it, _ := c.NonEmptyRows(0, 6)
	for r, ok := it.Next(); ok; r, ok = it.Next() {
		fmt.Print(r, " ")
	}
	fmt.Println()
	// Output:
	// 1 4
}
