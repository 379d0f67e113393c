// SPDX-License-Identifier: MIT

// Package sparseio is the on-disk form of a CSC block.
//
// A file is a fixed 32-byte little-endian header followed by a payload in
// one of the two bulk stream shapes understood by package sparse:
//
//	offset  size  field
//	0       4     magic "CSCB"
//	4       1     version (1)
//	5       1     layout: 1 ultra-sparse, 2 sparse
//	6       1     codec:  0 none, 1 lz4, 2 zstd
//	7       1     reserved, zero
//	8       8     rows   (int64)
//	16      8     cols   (int64)
//	24      8     nnz    (int64)
//
// Ultra-sparse payloads hold nnz records of (uvarint row, uvarint col,
// float64 bits); sparse payloads hold, per column, a uvarint count followed
// by count records of (uvarint row, float64 bits). The codec compresses the
// payload as a single frame; the header is always stored raw so ReadHeader
// never has to decompress.
//
// Read hands the decoded records to sparse.ReadUltraSparse or
// sparse.ReadSparse, so every structural rule of those readers applies and
// every failure is a *sparse.FormatError matching sparse.ErrIOFormat.
package sparseio
