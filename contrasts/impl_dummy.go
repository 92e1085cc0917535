// SPDX-License-Identifier: MIT

package contrasts

import (
	"fmt"

	"github.com/katalvlaran/lvcontrast/matrix"
)

// dummyMatrix is I_n: one indicator column per level, no base.
func dummyMatrix(_, n int) (*matrix.Dense, error) {
	return matrix.NewIdentity(n)
}

// Promote returns the full-rank (Dummy) encoding over the same levels as cm,
// without resolving levels again. The result's Spec is Dummy with cm's levels
// declared, so it reports its provenance independently of cm.
//
// Use it when a categorical term must expand without rank reduction, e.g. in
// a model without an intercept.
func Promote[L comparable](cm *ContrastMatrix[L], opts ...Option) (*ContrastMatrix[L], error) {
	if cm == nil {
		return nil, fmt.Errorf("%s: %w", opPromote, ErrNilContrast)
	}
	spec := Dummy(WithLevels(cm.levels...))

	out, err := build(spec, cm.levels, gatherOptions(opts...))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opPromote, err)
	}

	return out, nil
}
