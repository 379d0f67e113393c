// SPDX-License-Identifier: MIT

package builder

// Method tags used as error prefixes.
const (
	MethodBuildMatrix  = "BuildMatrix"
	MethodRandomSparse = "RandomSparse"
	MethodDiagonal     = "Diagonal"
	MethodBand         = "Band"
)

// DefaultValue is written by constructors when no ValueFn is configured.
const DefaultValue = 1.0

// Probability bounds for RandomSparse, inclusive.
const (
	MinProbability = 0.0
	MaxProbability = 1.0
)
