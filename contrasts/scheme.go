// SPDX-License-Identifier: MIT

package contrasts

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/lvcontrast/matrix"
)

// Scheme names one built-in contrast coding.
type Scheme uint8

const (
	// SchemeTreatment compares every level with the base level (reference coding).
	SchemeTreatment Scheme = iota
	// SchemeSum compares every level with the grand mean (effects coding).
	SchemeSum
	// SchemeHelmert compares each level with the mean of the levels before it.
	SchemeHelmert
	// SchemeDummy keeps one indicator column per level (full rank, no base).
	SchemeDummy
)

// matrixFunc builds the numeric matrix for n levels with the base at row base.
// Full-rank schemes receive base == -1.
type matrixFunc func(base, n int) (*matrix.Dense, error)

// schemeDef is one registry entry. Adding a scheme means adding a constant
// and one entry here.
type schemeDef struct {
	name     string
	aliases  []string
	fullRank bool
	build    matrixFunc
}

var schemes = map[Scheme]schemeDef{
	SchemeTreatment: {name: "treatment", build: treatmentMatrix},
	SchemeSum:       {name: "sum", aliases: []string{"effects"}, build: sumMatrix},
	SchemeHelmert:   {name: "helmert", build: helmertMatrix},
	SchemeDummy:     {name: "dummy", aliases: []string{"full", "fulldummy", "onehot"}, fullRank: true, build: dummyMatrix},
}

// String returns the canonical lower-case scheme name.
func (s Scheme) String() string {
	if def, ok := schemes[s]; ok {
		return def.name
	}

	return fmt.Sprintf("Scheme(%d)", uint8(s))
}

// FullRank reports whether the scheme keeps one column per level.
func (s Scheme) FullRank() bool { return schemes[s].fullRank }

// ParseScheme maps a case-insensitive name or alias to a Scheme.
func ParseScheme(name string) (Scheme, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	for s, def := range schemes {
		if def.name == key {
			return s, nil
		}
		for _, a := range def.aliases {
			if a == key {
				return s, nil
			}
		}
	}

	return 0, fmt.Errorf("ParseScheme(%q): %w", name, ErrUnknownScheme)
}

func lookupScheme(s Scheme) (schemeDef, error) {
	def, ok := schemes[s]
	if !ok {
		return schemeDef{}, fmt.Errorf("%v: %w", s, ErrUnknownScheme)
	}

	return def, nil
}
