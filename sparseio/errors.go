// SPDX-License-Identifier: MIT

package sparseio

import "errors"

var (
	// ErrBadMagic reports a file that does not start with "CSCB".
	ErrBadMagic = errors.New("sparseio: bad magic")

	// ErrVersion reports an unsupported format version.
	ErrVersion = errors.New("sparseio: unsupported version")

	// ErrUnknownLayout reports a layout byte or name that is not recognised.
	ErrUnknownLayout = errors.New("sparseio: unknown layout")

	// ErrUnknownCodec reports a codec byte or name that is not recognised.
	ErrUnknownCodec = errors.New("sparseio: unknown codec")

	// ErrTrailingData reports bytes left in the payload after the last record.
	ErrTrailingData = errors.New("sparseio: trailing data")

	// ErrVarintOverflow reports a varint index beyond the addressable range.
	ErrVarintOverflow = errors.New("sparseio: varint overflows index")
)
