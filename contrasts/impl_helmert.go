// SPDX-License-Identifier: MIT

package contrasts

import "github.com/katalvlaran/lvcontrast/matrix"

// helmertMatrix builds the n×(n-1) Helmert coding.
//
// Implementation:
//   - Stage 1: canonical form, column j holds -1 in rows 0..j, j+1 in row j+1
//     and 0 below. Row 0 is the all -1 row.
//   - Stage 2: reorder rows so the base level receives canonical row 0 and the
//     k-th non-base level (in level order) receives canonical row k+1.
//
// Column j then contrasts non-base level j with the mean of the base and the
// non-base levels before it. Every column sums to zero and the columns are
// mutually orthogonal.
func helmertMatrix(base, n int) (*matrix.Dense, error) {
	canon, err := matrix.NewDense(n, n-1)
	if err != nil {
		return nil, err
	}
	var i, j int
	for j = 0; j < n-1; j++ {
		for i = 0; i <= j; i++ {
			if err = canon.Set(i, j, -1); err != nil {
				return nil, err
			}
		}
		if err = canon.Set(j+1, j, float64(j+1)); err != nil {
			return nil, err
		}
	}
	if base == 0 {
		return canon, nil
	}

	// src[r] is the canonical row that level row r receives.
	src := make([]int, n)
	for i = 0; i < n; i++ {
		switch {
		case i < base:
			src[i] = i + 1
		case i == base:
			src[i] = 0
		default:
			src[i] = i
		}
	}

	return canon.Induced(src, indexRange(n-1))
}
