// SPDX-License-Identifier: MIT

package config_test

import (
	"testing"

	"github.com/katalvlaran/lvcontrast/config"
	"github.com/katalvlaran/lvcontrast/contrasts"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"
)

const yamlDoc = `
contrasts:
  dose:
    scheme: treatment
    base: low
    levels: [low, mid, high]
  site:
    scheme: effects
  batch:
    scheme: dummy
`

const tomlDoc = `
[contrasts.dose]
scheme = "treatment"
base = "low"
levels = ["low", "mid", "high"]

[contrasts.site]
scheme = "effects"

[contrasts.batch]
scheme = "dummy"
`

func TestParseEquivalentFormats(t *testing.T) {
	fromYAML, err := config.ParseYAML([]byte(yamlDoc))
	require.NoError(t, err)
	fromTOML, err := config.ParseTOML([]byte(tomlDoc))
	require.NoError(t, err)
	require.Equal(t, fromYAML, fromTOML)

	specs, err := fromYAML.Specs()
	require.NoError(t, err)
	require.Len(t, specs, 3)

	dose := specs["dose"]
	require.Equal(t, contrasts.SchemeTreatment, dose.Scheme())
	base, ok := dose.Base()
	require.True(t, ok)
	require.Equal(t, "low", base)
	levels, ok := dose.Levels()
	require.True(t, ok)
	require.Equal(t, []string{"low", "mid", "high"}, levels)

	site := specs["site"]
	require.Equal(t, contrasts.SchemeSum, site.Scheme())
	_, ok = site.Levels()
	require.False(t, ok)

	require.Equal(t, contrasts.SchemeDummy, specs["batch"].Scheme())

	cm, err := contrasts.New(dose, []string{"high", "low", "mid"})
	require.NoError(t, err)
	require.Equal(t, []string{"dose - mid", "dose - high"}, cm.CoefNames("dose"))
}

func TestParseRejectsUnknownKeys(t *testing.T) {
	_, err := config.ParseYAML([]byte("contrasts:\n  dose:\n    scheme: sum\n    colour: red\n"))
	require.ErrorIs(t, err, config.ErrUnknownKey)

	_, err = config.ParseTOML([]byte("[contrasts.dose]\nscheme = \"sum\"\ncolour = \"red\"\n"))
	require.ErrorIs(t, err, config.ErrUnknownKey)
}

func TestParseMalformed(t *testing.T) {
	_, err := config.ParseYAML([]byte("contrasts: [unclosed"))
	require.ErrorIs(t, err, config.ErrDecode)

	_, err = config.ParseTOML([]byte("[contrasts.dose\n"))
	require.ErrorIs(t, err, config.ErrDecode)
}

func TestParseEmpty(t *testing.T) {
	f, err := config.ParseYAML(nil)
	require.NoError(t, err)
	specs, err := f.Specs()
	require.NoError(t, err)
	require.Empty(t, specs)
}

func TestSpecsAggregatesErrors(t *testing.T) {
	doc := `
contrasts:
  a:
    scheme: polynomial
  b:
    scheme: dummy
    base: x
  c:
    scheme: helmert
    base: z
    levels: [x, y]
  d:
    scheme: helmert
`
	f, err := config.ParseYAML([]byte(doc))
	require.NoError(t, err)

	_, err = f.Specs()
	require.Error(t, err)
	require.Len(t, multierr.Errors(err), 3)
	require.ErrorIs(t, err, contrasts.ErrUnknownScheme)
	require.ErrorIs(t, err, config.ErrInvalidTerm)
	require.ErrorIs(t, err, contrasts.ErrBaseLevelNotFound)
	require.Contains(t, err.Error(), `term "a"`)
}
