// SPDX-License-Identifier: MIT

package estim

import "errors"

var (
	// ErrBadGroup reports an empty column group, a duplicate column, or a
	// column outside the source.
	ErrBadGroup = errors.New("estim: invalid column group")

	// ErrWorkerFault reports a panic inside a parallel task. It only ever
	// reaches the logger; callers see the sequential result.
	ErrWorkerFault = errors.New("estim: worker fault")
)
