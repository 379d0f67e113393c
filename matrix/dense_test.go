// Package matrix_test contains unit tests for the Dense implementation
// of the Matrix interface in the matrix package.
package matrix_test

import (
	"errors"
	"math"
	"testing"

	"github.com/katalvlaran/sparseblock/matrix"
	"github.com/stretchr/testify/require"
)

// TestNewDenseInvalidDimensions ensures that NewDense rejects non-positive dimensions.
func TestNewDenseInvalidDimensions(t *testing.T) {
	_, err := matrix.NewDense(0, 5)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.NewDense(5, 0)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.NewDenseZeroOK(-1, 0)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

// TestNewDenseZeroOK verifies that empty shapes are legal for the zero-OK constructor.
func TestNewDenseZeroOK(t *testing.T) {
	m, err := matrix.NewDenseZeroOK(0, 3)
	require.NoError(t, err)
	require.Equal(t, 0, m.Rows())
	require.Equal(t, 3, m.Cols())
	require.Empty(t, m.RawData())
}

// TestAtSetOutOfBounds ensures At() and Set() return ErrOutOfRange on invalid access.
func TestAtSetOutOfBounds(t *testing.T) {
	m, err := matrix.NewDense(2, 2)
	require.NoError(t, err)

	_, err = m.At(-1, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	_, err = m.At(0, 2)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	err = m.Set(2, 0, 1.23)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	require.Contains(t, err.Error(), "Dense.Set(2,0)")
}

// TestSetGet validates Set() followed by At() on valid indices.
func TestSetGet(t *testing.T) {
	m, err := matrix.NewDense(2, 3)
	require.NoError(t, err)

	require.NoError(t, m.Set(1, 2, 7.89))
	val, err := m.At(1, 2)
	require.NoError(t, err)
	require.Equal(t, 7.89, val)
	require.Equal(t, 1, m.NonZeros())
}

// TestNaNPolicy checks that the finite-only guard is opt-in.
func TestNaNPolicy(t *testing.T) {
	loose, err := matrix.NewDense(1, 1)
	require.NoError(t, err)
	require.NoError(t, loose.Set(0, 0, math.NaN()))

	strict, err := matrix.NewDense(1, 1, matrix.WithValidateNaNInf())
	require.NoError(t, err)
	require.ErrorIs(t, strict.Set(0, 0, math.Inf(1)), matrix.ErrNaNInf)

	cl := strict.Clone()
	require.ErrorIs(t, cl.Set(0, 0, math.NaN()), matrix.ErrNaNInf)

	_, err = matrix.NewDenseFromData(1, 2, []float64{1, math.Inf(-1)}, matrix.WithValidateNaNInf())
	require.ErrorIs(t, err, matrix.ErrNaNInf)
}

// TestCloneIndependence ensures Clone() returns a deep copy that does not share storage.
func TestCloneIndependence(t *testing.T) {
	m, err := matrix.NewDenseFromData(2, 2, []float64{1, 0, 0, 2})
	require.NoError(t, err)

	clone := m.Clone()
	require.NoError(t, clone.Set(0, 0, 3.0))

	orig, err := m.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 1.0, orig)
}

// TestNewDenseFromDataLength rejects buffers of the wrong size.
func TestNewDenseFromDataLength(t *testing.T) {
	_, err := matrix.NewDenseFromData(2, 2, []float64{1, 2, 3})
	require.ErrorIs(t, err, matrix.ErrBadData)
}

// TestDoAndString covers visitation order, error wrapping and rendering.
func TestDoAndString(t *testing.T) {
	m, err := matrix.NewDenseFromData(2, 2, []float64{1, 0, 0, 2.5})
	require.NoError(t, err)

	var seen []float64
	require.NoError(t, m.Do(func(_, _ int, v float64) error {
		seen = append(seen, v)
		return nil
	}))
	require.Equal(t, []float64{1, 0, 0, 2.5}, seen)

	stop := errors.New("stop")
	err = m.Do(func(i, j int, _ float64) error {
		if i == 1 && j == 0 {
			return stop
		}
		return nil
	})
	require.ErrorIs(t, err, stop)
	require.Contains(t, err.Error(), "Dense.Do(1,0)")

	require.Equal(t, "[1, 0]\n[0, 2.5]\n", m.String())
}
