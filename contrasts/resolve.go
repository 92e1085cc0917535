// SPDX-License-Identifier: MIT

package contrasts

import (
	"fmt"
	"slices"
)

// ResolveLevels returns the level order a ContrastMatrix will use.
//
// Implementation:
//   - Stage 1: pick the declared levels when hasDeclared, else the observed ones.
//   - Stage 2: reject duplicates in either sequence.
//   - Stage 3: the two sets must be equal; otherwise *LevelMismatchError.
//     Observed-but-undeclared levels would drop rows, declared-but-unobserved
//     ones would produce all-zero (rank-deficient) columns, so both are fatal.
//   - Stage 4: require at least two levels.
//
// The result is a fresh slice; inputs are never modified.
// Complexity: O(n) with map lookups.
func ResolveLevels[L comparable](declared []L, hasDeclared bool, observed []L) ([]L, error) {
	resolved := observed
	if hasDeclared {
		resolved = declared
	}

	if err := checkDistinct("ResolveLevels: observed", observed); err != nil {
		return nil, err
	}
	if hasDeclared {
		if err := checkDistinct("ResolveLevels: declared", declared); err != nil {
			return nil, err
		}
		if mismatch := symmetricDifference(declared, observed); mismatch != nil {
			return nil, mismatch
		}
	}

	if len(resolved) < 2 {
		return nil, fmt.Errorf("ResolveLevels: got %d: %w", len(resolved), ErrInsufficientLevels)
	}

	return slices.Clone(resolved), nil
}

// symmetricDifference returns nil when declared and observed hold the same set.
func symmetricDifference[L comparable](declared, observed []L) *LevelMismatchError[L] {
	inDeclared := indexLevels(declared)
	inObserved := indexLevels(observed)

	var e LevelMismatchError[L]
	for _, l := range observed {
		if _, ok := inDeclared[l]; !ok {
			e.Undeclared = append(e.Undeclared, l)
		}
	}
	for _, l := range declared {
		if _, ok := inObserved[l]; !ok {
			e.Unobserved = append(e.Unobserved, l)
		}
	}
	if len(e.Undeclared) == 0 && len(e.Unobserved) == 0 {
		return nil
	}

	return &e
}

// indexLevels maps each level to its position.
func indexLevels[L comparable](levels []L) map[L]int {
	idx := make(map[L]int, len(levels))
	for i, l := range levels {
		idx[l] = i
	}

	return idx
}

// checkDistinct fails with ErrDuplicateLevel on the first repeated level.
func checkDistinct[L comparable](tag string, levels []L) error {
	seen := make(map[L]struct{}, len(levels))
	for _, l := range levels {
		if _, dup := seen[l]; dup {
			return fmt.Errorf("%s: %v: %w", tag, l, ErrDuplicateLevel)
		}
		seen[l] = struct{}{}
	}

	return nil
}
