// SPDX-License-Identifier: MIT
// Package contrasts: sentinel error set.
// Every failure here is a configuration or data mismatch that the caller must
// fix (filter data or adjust the Spec); nothing is retried and no partial
// result is ever returned alongside an error. Match with errors.Is; the
// mismatch details are available through errors.As on *LevelMismatchError.

package contrasts

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrLevelMismatch is returned when declared Spec levels and observed data
	// levels are not the same set.
	ErrLevelMismatch = errors.New("contrasts: declared and observed levels differ")

	// ErrInsufficientLevels is returned when fewer than two levels remain to contrast.
	ErrInsufficientLevels = errors.New("contrasts: at least two levels are required")

	// ErrBaseLevelNotFound is returned when the Spec base is not among the resolved levels.
	ErrBaseLevelNotFound = errors.New("contrasts: base level not found")

	// ErrUnknownLevel is returned at materialization time when a data level is
	// absent from the ContrastMatrix level set.
	ErrUnknownLevel = errors.New("contrasts: unknown level")

	// ErrDuplicateLevel is returned when a level sequence repeats a level.
	ErrDuplicateLevel = errors.New("contrasts: duplicate level")

	// ErrCodeOutOfRange is returned when an observation code does not index the data levels.
	ErrCodeOutOfRange = errors.New("contrasts: observation code out of range")

	// ErrUnknownScheme is returned for a Scheme value or name with no registered builder.
	ErrUnknownScheme = errors.New("contrasts: unknown contrast scheme")

	// ErrNilContrast is returned when a nil *ContrastMatrix is passed in.
	ErrNilContrast = errors.New("contrasts: nil contrast matrix")
)

// LevelMismatchError carries the symmetric difference between declared and
// observed levels. It matches ErrLevelMismatch under errors.Is.
type LevelMismatchError[L comparable] struct {
	// Undeclared holds observed levels missing from the declared list, in observed order.
	Undeclared []L
	// Unobserved holds declared levels missing from the data, in declared order.
	Unobserved []L
}

// Levels returns the full symmetric difference: Undeclared then Unobserved.
func (e *LevelMismatchError[L]) Levels() []L {
	out := make([]L, 0, len(e.Undeclared)+len(e.Unobserved))
	out = append(out, e.Undeclared...)

	return append(out, e.Unobserved...)
}

// Error implements error.
func (e *LevelMismatchError[L]) Error() string {
	var b strings.Builder
	b.WriteString(ErrLevelMismatch.Error())
	if len(e.Undeclared) > 0 {
		fmt.Fprintf(&b, "; observed but not declared: %v", e.Undeclared)
	}
	if len(e.Unobserved) > 0 {
		fmt.Fprintf(&b, "; declared but not observed: %v", e.Unobserved)
	}

	return b.String()
}

// Unwrap exposes ErrLevelMismatch to errors.Is.
func (e *LevelMismatchError[L]) Unwrap() error { return ErrLevelMismatch }
