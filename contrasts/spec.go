// SPDX-License-Identifier: MIT

package contrasts

import "slices"

// Spec selects a contrast scheme and, optionally, the base level and the
// declared level list. The zero Spec is a Treatment spec that derives both
// base and levels from data.
//
// Unset fields are tracked with explicit flags, so every value of L
// (including its zero value) is a legitimate base or level.
type Spec[L comparable] struct {
	scheme    Scheme
	base      L
	hasBase   bool
	levels    []L
	hasLevels bool
}

// SpecOption configures a Spec at construction time.
type SpecOption[L comparable] func(*Spec[L])

// WithBase sets the reference level. Ignored by full-rank schemes.
func WithBase[L comparable](base L) SpecOption[L] {
	return func(s *Spec[L]) {
		s.base = base
		s.hasBase = true
	}
}

// WithLevels declares the expected level set and its order. Observed data
// must carry exactly these levels. The slice is copied.
func WithLevels[L comparable](levels ...L) SpecOption[L] {
	cp := slices.Clone(levels)
	if cp == nil {
		cp = []L{}
	}

	return func(s *Spec[L]) {
		s.levels = cp
		s.hasLevels = true
	}
}

// NewSpec builds a Spec for an arbitrary scheme.
func NewSpec[L comparable](scheme Scheme, opts ...SpecOption[L]) Spec[L] {
	s := Spec[L]{scheme: scheme}
	for _, opt := range opts {
		opt(&s)
	}

	return s
}

// Treatment returns a treatment (reference) coding Spec.
func Treatment[L comparable](opts ...SpecOption[L]) Spec[L] {
	return NewSpec(SchemeTreatment, opts...)
}

// Sum returns a sum (effects) coding Spec.
func Sum[L comparable](opts ...SpecOption[L]) Spec[L] {
	return NewSpec(SchemeSum, opts...)
}

// Helmert returns a Helmert coding Spec.
func Helmert[L comparable](opts ...SpecOption[L]) Spec[L] {
	return NewSpec(SchemeHelmert, opts...)
}

// Dummy returns a full-rank indicator coding Spec.
func Dummy[L comparable](opts ...SpecOption[L]) Spec[L] {
	return NewSpec(SchemeDummy, opts...)
}

// Scheme returns the coding scheme.
func (s Spec[L]) Scheme() Scheme { return s.scheme }

// Base returns the configured base level and whether one was set.
func (s Spec[L]) Base() (L, bool) { return s.base, s.hasBase }

// Levels returns a copy of the declared levels and whether they were set.
func (s Spec[L]) Levels() ([]L, bool) {
	if !s.hasLevels {
		return nil, false
	}

	return slices.Clone(s.levels), true
}

// Resolve reconciles the declared levels with the observed ones.
// See ResolveLevels.
func (s Spec[L]) Resolve(observed []L) ([]L, error) {
	return ResolveLevels(s.levels, s.hasLevels, observed)
}
