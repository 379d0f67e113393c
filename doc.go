// SPDX-License-Identifier: MIT

// Package sparseblock is an in-memory engine for compressed sparse column
// (CSC) matrix blocks.
//
// Everything lives in subpackages:
//
//	matrix/    - dense reference matrix, Matrix interface, tolerance compare
//	sparse/    - CSC store, conversions, mutation, queries, validity, streams
//	sparseio/  - on-disk block files (ultra-sparse / sparse payloads, lz4, zstd)
//	estim/     - compressed-size estimation over column groups
//	builder/   - deterministic sparse fixtures (random, diagonal, band)
//	cmd/cscstat - operator CLI over block files
//
// Quick start:
//
//	c, _ := sparse.NewCSC(3, 0, sparse.WithRows(3))
//	_ = c.Set(2, 0, 5)
//	_ = c.Add(0, 1, 3)
//	rv := c.RowView() // row-major copy, rebuilt on every call
//
// A CSC is single-writer: concurrent reads are safe only while no mutation
// is in flight.
package sparseblock
