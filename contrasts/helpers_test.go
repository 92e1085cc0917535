// SPDX-License-Identifier: MIT

package contrasts_test

import (
	"testing"

	"github.com/katalvlaran/lvcontrast/contrasts"
	"github.com/katalvlaran/lvcontrast/matrix"
	"github.com/stretchr/testify/require"
)

// rowsOf dumps m as a slice of rows.
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

// mustNew builds a ContrastMatrix or fails the test.
func mustNew[L comparable](t *testing.T, spec contrasts.Spec[L], observed []L) *contrasts.ContrastMatrix[L] {
	t.Helper()
	cm, err := contrasts.New(spec, observed)
	require.NoError(t, err)
	require.Len(t, cm.Levels(), cm.Rows())
	require.Len(t, cm.TermNames(), cm.Cols())

	return cm
}
