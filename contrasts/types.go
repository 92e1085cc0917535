// SPDX-License-Identifier: MIT

package contrasts

import (
	"fmt"
	"slices"
	"strings"

	"github.com/katalvlaran/lvcontrast/matrix"
)

// coefSep joins a term display name and a column term name.
const coefSep = " - "

// ContrastMatrix is the immutable result of Build: one row per level, one
// column per coded term. Invariants: len(Levels()) == Rows() and
// len(TermNames()) == Cols(). Nothing mutates it after construction, so one
// value may be shared by concurrent readers.
type ContrastMatrix[L comparable] struct {
	mat       *matrix.Dense
	termNames []string
	levels    []L
	index     map[L]int // level → row
	spec      Spec[L]
	base      int // row of the base level; -1 for full-rank schemes
}

// Rows returns the number of levels.
func (cm *ContrastMatrix[L]) Rows() int { return cm.mat.Rows() }

// Cols returns the number of coded columns.
func (cm *ContrastMatrix[L]) Cols() int { return cm.mat.Cols() }

// At returns the coded value of level row i in column j.
func (cm *ContrastMatrix[L]) At(i, j int) (float64, error) { return cm.mat.At(i, j) }

// Row returns a copy of the coded row for level position i.
func (cm *ContrastMatrix[L]) Row(i int) ([]float64, error) { return cm.mat.Row(i) }

// Matrix returns a deep copy of the numeric matrix.
func (cm *ContrastMatrix[L]) Matrix() *matrix.Dense {
	return cm.mat.Clone().(*matrix.Dense)
}

// TermNames returns a copy of the column term names.
func (cm *ContrastMatrix[L]) TermNames() []string { return slices.Clone(cm.termNames) }

// Levels returns a copy of the resolved levels in row order.
func (cm *ContrastMatrix[L]) Levels() []L { return slices.Clone(cm.levels) }

// Spec returns the Spec this matrix was built from.
func (cm *ContrastMatrix[L]) Spec() Spec[L] { return cm.spec }

// Scheme is shorthand for Spec().Scheme().
func (cm *ContrastMatrix[L]) Scheme() Scheme { return cm.spec.scheme }

// FullRank reports whether every level has its own column.
func (cm *ContrastMatrix[L]) FullRank() bool { return cm.base < 0 }

// BaseLevel returns the base level; false for full-rank matrices.
func (cm *ContrastMatrix[L]) BaseLevel() (L, bool) {
	if cm.base < 0 {
		var zero L

		return zero, false
	}

	return cm.levels[cm.base], true
}

// LevelIndex returns the row of level l.
func (cm *ContrastMatrix[L]) LevelIndex(l L) (int, bool) {
	i, ok := cm.index[l]

	return i, ok
}

// CoefNames formats one "<term> - <column>" name per column.
func (cm *ContrastMatrix[L]) CoefNames(term string) []string {
	out := make([]string, len(cm.termNames))
	for j, name := range cm.termNames {
		out[j] = term + coefSep + name
	}

	return out
}

// String renders the scheme, the column header and one labeled row per level.
func (cm *ContrastMatrix[L]) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%v contrasts %v\n", cm.spec.scheme, cm.termNames)
	for i, l := range cm.levels {
		row, _ := cm.mat.Row(i) // i < Rows() by construction
		fmt.Fprintf(&b, "%v: %v\n", l, row)
	}

	return b.String()
}

// levelName is the display name of a level.
func levelName[L comparable](l L) string { return fmt.Sprint(l) }
