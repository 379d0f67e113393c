// SPDX-License-Identifier: MIT

// Package builder generates deterministic sparse fixtures for tests,
// benchmarks and the cscstat CLI.
//
// The package offers the following key components:
//
//   - BuildMatrix(rows, cols, opts, cons...): creates an empty MCSR block,
//     resolves the options once and applies each Constructor in order.
//     BuildCSC does the same and converts the result to CSC.
//   - Constructors:
//     – RandomSparse(p): each cell independently with probability p.
//     – Diagonal():      the main diagonal.
//     – Band(lo, up):    every cell with -lo ≤ col-row ≤ up.
//   - Value distributions (ValueFn):
//     – ConstantValueFn, UniformValueFn, IntegerValueFn.
//   - Options: WithSeed, WithRand, WithValueFn.
//
// Guarantees:
//
//   - Same inputs, options, seed and constructor order give identical blocks.
//   - Cells are visited row-major (row asc, then col asc).
//   - A value that comes out as exactly zero leaves the cell empty; later
//     constructors overwrite earlier ones.
//   - Option constructors panic on meaningless input; Constructors return
//     sentinel errors and never panic.
package builder
