// SPDX-License-Identifier: MIT

// Command cscstat generates, inspects, estimates and re-encodes CSC block
// files written by package sparseio.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
