// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for the Dense implementation.
package matrix_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mirkomiorelli/travelopt/matrix"
)

// mustDense allocates an r×c *Dense or aborts the test.
func mustDense(t *testing.T, r, c int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(r, c)
	require.NoError(t, err)
	return m
}

func TestNewDense_Shape(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		r, c    int
		wantErr error
	}{
		{"valid 3x3", 3, 3, nil},
		{"valid 1x5", 1, 5, nil},
		{"zero rows", 0, 3, matrix.ErrBadShape},
		{"zero cols", 3, 0, matrix.ErrBadShape},
		{"negative", -1, -1, matrix.ErrBadShape},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			m, err := matrix.NewDense(tc.r, tc.c)
			if tc.wantErr == nil {
				require.NoError(t, err)
				require.Equal(t, tc.r, m.Rows())
				require.Equal(t, tc.c, m.Cols())
			} else {
				require.Truef(t, errors.Is(err, tc.wantErr),
					"expected errors.Is(%v, %v)", err, tc.wantErr)
			}
		})
	}
}

func TestDense_AtSet_Bounds(t *testing.T) {
	t.Parallel()

	m := mustDense(t, 2, 3)
	require.NoError(t, m.Set(1, 2, 4.5))

	v, err := m.At(1, 2)
	require.NoError(t, err)
	require.Equal(t, 4.5, v)

	// Unchecked accessor reads the same cell.
	require.Equal(t, 4.5, m.AtUnchecked(1, 2))

	_, err = m.At(2, 0)
	require.Truef(t, errors.Is(err, matrix.ErrOutOfRange), "got %v", err)
	_, err = m.At(0, 3)
	require.Truef(t, errors.Is(err, matrix.ErrOutOfRange), "got %v", err)
	err = m.Set(-1, 0, 1)
	require.Truef(t, errors.Is(err, matrix.ErrOutOfRange), "got %v", err)
}

func TestDense_Clone_Independent(t *testing.T) {
	t.Parallel()

	m := mustDense(t, 2, 2)
	require.NoError(t, m.Set(0, 1, 7))

	cl := m.Clone()
	require.NoError(t, cl.Set(0, 1, 9))

	orig, err := m.At(0, 1)
	require.NoError(t, err)
	require.Equal(t, 7.0, orig, "mutating the clone must not touch the original")
}

func TestDense_Bounds(t *testing.T) {
	t.Parallel()

	m := mustDense(t, 2, 2)
	require.NoError(t, m.Set(0, 0, 0))
	require.NoError(t, m.Set(0, 1, 3.5))
	require.NoError(t, m.Set(1, 0, -2))
	require.NoError(t, m.Set(1, 1, 1))

	min, max, err := m.Bounds()
	require.NoError(t, err)
	require.Equal(t, -2.0, min)
	require.Equal(t, 3.5, max)
}

func TestDense_Bounds_NaNRejected(t *testing.T) {
	t.Parallel()

	m := mustDense(t, 2, 2)
	require.NoError(t, m.Set(1, 1, math.NaN()))

	_, _, err := m.Bounds()
	require.Truef(t, errors.Is(err, matrix.ErrNaNInf), "got %v", err)
}
