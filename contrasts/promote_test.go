// SPDX-License-Identifier: MIT

package contrasts_test

import (
	"testing"

	"github.com/katalvlaran/lvcontrast/contrasts"
	"github.com/stretchr/testify/require"
)

func TestPromote(t *testing.T) {
	levels := []string{"q", "r", "s", "t"}
	specs := []contrasts.Spec[string]{
		contrasts.Treatment(contrasts.WithBase("s")),
		contrasts.Sum[string](),
		contrasts.Helmert(contrasts.WithBase("t")),
		contrasts.Dummy[string](),
	}
	for _, spec := range specs {
		t.Run(spec.Scheme().String(), func(t *testing.T) {
			cm := mustNew(t, spec, levels)
			full, err := contrasts.Promote(cm)
			require.NoError(t, err)

			require.True(t, full.FullRank())
			require.Equal(t, contrasts.SchemeDummy, full.Scheme())
			require.Equal(t, levels, full.Levels())
			require.Equal(t, levels, full.TermNames())
			require.Equal(t, [][]float64{
				{1, 0, 0, 0},
				{0, 1, 0, 0},
				{0, 0, 1, 0},
				{0, 0, 0, 1},
			}, rowsOf(t, full.Matrix()))

			declared, ok := full.Spec().Levels()
			require.True(t, ok)
			require.Equal(t, levels, declared)
			_, ok = full.BaseLevel()
			require.False(t, ok)

			// The source matrix is untouched.
			require.Equal(t, spec.Scheme(), cm.Scheme())
		})
	}

	_, err := contrasts.Promote[string](nil)
	require.ErrorIs(t, err, contrasts.ErrNilContrast)
}

func TestDiagnostics(t *testing.T) {
	tests := []struct {
		name       string
		spec       contrasts.Spec[string]
		levels     []string
		centered   bool
		orthogonal bool
	}{
		{"treatment", contrasts.Treatment[string](), abc, false, true},
		{"sum two levels", contrasts.Sum[string](), []string{"a", "b"}, true, true},
		{"sum three levels", contrasts.Sum[string](), abc, true, false},
		{"helmert", contrasts.Helmert(contrasts.WithBase("c")), abc, true, true},
		{"dummy", contrasts.Dummy[string](), abc, false, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cm := mustNew(t, tt.spec, tt.levels)
			require.Equal(t, tt.centered, cm.IsCentered(1e-12))
			require.Equal(t, tt.orthogonal, cm.IsOrthogonal(1e-12))
		})
	}
}
