package sparse

// SetMaxNonZerosForTest lowers the addressing limit and returns a restore func.
func SetMaxNonZerosForTest(n int) (restore func()) {
	prev := maxNonZeros
	maxNonZeros = n

	return func() { maxNonZeros = prev }
}

// CapacityBoundForTest exposes the capacity limit for nnz.
func (c *CSC) CapacityBoundForTest(nnz int) int { return c.capacityBound(nnz) }
