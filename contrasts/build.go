// SPDX-License-Identifier: MIT

package contrasts

import (
	"fmt"
	"slices"

	"go.uber.org/zap"
)

const (
	opBuild   = "Build"
	opNew     = "New"
	opPromote = "Promote"
)

// New resolves spec against the observed levels and builds the matrix.
// It is the usual entry point: Resolve followed by Build.
func New[L comparable](spec Spec[L], observed []L, opts ...Option) (*ContrastMatrix[L], error) {
	o := gatherOptions(opts...)
	resolved, err := spec.Resolve(observed)
	if err != nil {
		o.logger.Debug("contrast level resolution failed",
			zap.Stringer("scheme", spec.scheme),
			zap.Int("observed", len(observed)),
			zap.Error(err))

		return nil, fmt.Errorf("%s: %w", opNew, err)
	}

	return build(spec, resolved, o)
}

// Build constructs the ContrastMatrix for already-resolved levels.
//
// Implementation:
//   - Stage 1: look up the scheme; require ≥2 distinct levels.
//   - Stage 2: base row = 0 when unset, else the position of the base level
//     (ErrBaseLevelNotFound when absent). Full-rank schemes skip this.
//   - Stage 3: term names = levels without the base, in order (all levels
//     for full-rank schemes).
//   - Stage 4: dispatch to the scheme's matrix function.
//
// Complexity: O(n²) for the dense n×(n-1) or n×n matrix.
func Build[L comparable](spec Spec[L], resolved []L, opts ...Option) (*ContrastMatrix[L], error) {
	return build(spec, resolved, gatherOptions(opts...))
}

func build[L comparable](spec Spec[L], resolved []L, o options) (*ContrastMatrix[L], error) {
	def, err := lookupScheme(spec.scheme)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opBuild, err)
	}
	n := len(resolved)
	if n < 2 {
		return nil, fmt.Errorf("%s: got %d levels: %w", opBuild, n, ErrInsufficientLevels)
	}
	if err = checkDistinct(opBuild, resolved); err != nil {
		return nil, err
	}
	levels := slices.Clone(resolved)
	index := indexLevels(levels)

	base := -1
	if !def.fullRank {
		base = 0
		if spec.hasBase {
			i, ok := index[spec.base]
			if !ok {
				return nil, fmt.Errorf("%s: base %v: %w", opBuild, spec.base, ErrBaseLevelNotFound)
			}
			base = i
		}
	}

	termNames := make([]string, 0, n)
	for i, l := range levels {
		if i != base {
			termNames = append(termNames, levelName(l))
		}
	}

	mat, err := def.build(base, n)
	if err != nil {
		return nil, fmt.Errorf("%s: %v: %w", opBuild, spec.scheme, err)
	}

	o.logger.Debug("contrast matrix built",
		zap.Stringer("scheme", spec.scheme),
		zap.Int("levels", n),
		zap.Int("base", base),
		zap.Int("columns", mat.Cols()))

	return &ContrastMatrix[L]{
		mat:       mat,
		termNames: termNames,
		levels:    levels,
		index:     index,
		spec:      spec,
		base:      base,
	}, nil
}
