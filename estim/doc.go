// SPDX-License-Identifier: MIT

// Package estim estimates how large a column group of a sparse block would be
// under a handful of compressed encodings.
//
// The estimator never reads the block's buffers directly. For each column
// group it builds a Bitmap (the distinct non-zero value tuples of the group
// and a roaring bitmap of the rows holding each tuple), derives size Factors
// from it, and prices every enabled Encoding.
//
// Dispatch:
//   - k ≤ 1, or a single group: one goroutine, groups in order.
//   - k > 1: an errgroup limited to k workers, one task per group, results
//     written into a pre-sized slice indexed by group. Output order is the
//     input order regardless of completion order.
//   - Any worker failure or panic discards the whole batch and the groups are
//     recomputed sequentially. The fault is logged and counted, never
//     returned.
//
// There is no cancellation or timeout. The source block must not be mutated
// while an Estimator is in use.
package estim
