// SPDX-License-Identifier: MIT

package contrasts

import "github.com/katalvlaran/lvcontrast/matrix"

// treatmentMatrix is I_n with the base column removed: the base row is all
// zeros and every other level has a single 1 in its own column.
func treatmentMatrix(base, n int) (*matrix.Dense, error) {
	I, err := matrix.NewIdentity(n)
	if err != nil {
		return nil, err
	}

	return I.Induced(indexRange(n), indexRangeWithout(n, base))
}

// indexRange returns 0..n-1.
func indexRange(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}

	return out
}

// indexRangeWithout returns 0..n-1 minus skip, in order.
func indexRangeWithout(n, skip int) []int {
	out := make([]int, 0, n-1)
	for i := 0; i < n; i++ {
		if i != skip {
			out = append(out, i)
		}
	}

	return out
}
