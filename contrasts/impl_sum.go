// SPDX-License-Identifier: MIT

package contrasts

import "github.com/katalvlaran/lvcontrast/matrix"

// sumMatrix is the treatment matrix with the base row set to -1 in every
// column. Columns sum to zero; they are not orthogonal once n > 2.
func sumMatrix(base, n int) (*matrix.Dense, error) {
	m, err := treatmentMatrix(base, n)
	if err != nil {
		return nil, err
	}
	for j := 0; j < m.Cols(); j++ {
		if err = m.Set(base, j, -1); err != nil {
			return nil, err
		}
	}

	return m, nil
}
