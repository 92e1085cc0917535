// SPDX-License-Identifier: MIT

package contrasts

import (
	"math"

	"github.com/katalvlaran/lvcontrast/matrix"
)

// IsCentered reports whether every column sums to zero within eps, i.e. the
// coding is mean-zero for balanced data (Sum, Helmert).
func (cm *ContrastMatrix[L]) IsCentered(eps float64) bool {
	sums, err := matrix.ColumnSums(cm.mat)
	if err != nil {
		return false
	}
	for _, s := range sums {
		if math.Abs(s) > eps {
			return false
		}
	}

	return true
}

// IsOrthogonal reports whether distinct columns have zero inner product
// within eps (off-diagonal of MᵀM).
func (cm *ContrastMatrix[L]) IsOrthogonal(eps float64) bool {
	mt, err := matrix.Transpose(cm.mat)
	if err != nil {
		return false
	}
	gram, err := matrix.Mul(mt, cm.mat)
	if err != nil || matrix.ValidateSquare(gram) != nil {
		return false
	}

	ok := true
	var v float64
	for i := 0; i < gram.Rows() && ok; i++ {
		for j := i + 1; j < gram.Cols(); j++ {
			if v, err = gram.At(i, j); err != nil || math.Abs(v) > eps {
				ok = false

				break
			}
		}
	}

	return ok
}
