// SPDX-License-Identifier: MIT

// Package matrix provides the dense reference matrix used across sparseblock.
//
// The package offers:
//
//   - Matrix, the minimal read/write surface shared by dense and sparse blocks.
//   - Dense, a row-major float64 matrix with bounds-checked accessors and an
//     optional finite-only numeric policy.
//   - AllClose, a tolerance compare that works across any Matrix pair.
//   - Small validators (nil, shape) with uniform error tagging.
//
// Dense is the ground truth for sparse round-trip and commutativity checks:
// every sparse layout can be materialized into a Dense and compared with
// AllClose.
package matrix
