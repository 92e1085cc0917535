// SPDX-License-Identifier: MIT

package contrasts

import (
	"fmt"

	"fortio.org/safecast"

	"github.com/katalvlaran/lvcontrast/matrix"
)

const (
	opMaterialize       = "Materialize"
	opMaterializeLevels = "MaterializeLevels"
)

// Materialize expands per-observation codes into model columns.
//
// codes[k] is a zero-based index into dataLevels, the data's own level order,
// which may differ from cm.Levels(). Each observation receives the cm row of
// its level, so the output does not depend on how the data orders its levels.
//
// Implementation:
//   - Stage 1: re-index table dataLevels position → cm row (ErrUnknownLevel).
//   - Stage 2: convert and range-check every code (ErrCodeOutOfRange).
//   - Stage 3: gather the rows with Dense.Induced.
//
// Returns a len(codes)×cm.Cols() matrix; zero observations give a 0-row matrix.
// Complexity: O(len(dataLevels) + len(codes)*cm.Cols()).
func Materialize[L comparable, C safecast.Integer](codes []C, dataLevels []L, cm *ContrastMatrix[L]) (*matrix.Dense, error) {
	if cm == nil {
		return nil, fmt.Errorf("%s: %w", opMaterialize, ErrNilContrast)
	}

	reindex := make([]int, len(dataLevels))
	for p, l := range dataLevels {
		row, ok := cm.index[l]
		if !ok {
			return nil, fmt.Errorf("%s: %v: %w", opMaterialize, l, ErrUnknownLevel)
		}
		reindex[p] = row
	}

	rows := make([]int, len(codes))
	for k, c := range codes {
		p, err := safecast.Conv[int](c)
		if err != nil {
			return nil, fmt.Errorf("%s: observation %d: %w: %w", opMaterialize, k, ErrCodeOutOfRange, err)
		}
		if p < 0 || p >= len(reindex) {
			return nil, fmt.Errorf("%s: observation %d: code %d: %w", opMaterialize, k, p, ErrCodeOutOfRange)
		}
		rows[k] = reindex[p]
	}

	return gatherRows(opMaterialize, cm, rows)
}

// MaterializeLevels expands per-observation level values into model columns.
// Every value must be one of cm.Levels().
func MaterializeLevels[L comparable](values []L, cm *ContrastMatrix[L]) (*matrix.Dense, error) {
	if cm == nil {
		return nil, fmt.Errorf("%s: %w", opMaterializeLevels, ErrNilContrast)
	}

	rows := make([]int, len(values))
	for k, l := range values {
		row, ok := cm.index[l]
		if !ok {
			return nil, fmt.Errorf("%s: observation %d: %v: %w", opMaterializeLevels, k, l, ErrUnknownLevel)
		}
		rows[k] = row
	}

	return gatherRows(opMaterializeLevels, cm, rows)
}

func gatherRows[L comparable](op string, cm *ContrastMatrix[L], rows []int) (*matrix.Dense, error) {
	out, err := cm.mat.Induced(rows, indexRange(cm.mat.Cols()))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return out, nil
}
