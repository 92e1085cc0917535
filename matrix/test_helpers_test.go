// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures for Dense and the structural kernels.
//   • hide masks *Dense so kernels take their generic At/Set fallback.

package matrix_test

import (
	"testing"

	"github.com/katalvlaran/lvcontrast/matrix"
	"github.com/stretchr/testify/require"
)

// hide wraps any Matrix to hide its concrete type from type assertions.
// Kernels given hide{X} must produce the same result as for X itself.
type hide struct{ matrix.Matrix }

// MustDense allocates an r×c *Dense filled row-major from vals, or fails the test.
func MustDense(t *testing.T, r, c int, vals ...float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(r, c)
	require.NoError(t, err)
	require.LessOrEqual(t, len(vals), r*c, "too many fixture values")
	for k, v := range vals {
		require.NoError(t, m.Set(k/c, k%c, v))
	}

	return m
}

// rowsOf dumps m as a slice of rows for readable equality checks.
func rowsOf(t *testing.T, m matrix.Matrix) [][]float64 {
	t.Helper()
	out := make([][]float64, m.Rows())
	for i := range out {
		out[i] = make([]float64, m.Cols())
		for j := range out[i] {
			v, err := m.At(i, j)
			require.NoError(t, err)
			out[i][j] = v
		}
	}

	return out
}
