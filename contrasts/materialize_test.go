// SPDX-License-Identifier: MIT

package contrasts_test

import (
	"context"
	"math"
	"testing"

	"github.com/katalvlaran/lvcontrast/contrasts"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"golang.org/x/sync/errgroup"
)

func TestMaterialize(t *testing.T) {
	cm := mustNew(t, contrasts.Sum[string](), abc)

	got, err := contrasts.Materialize([]int{2, 0, 0, 1}, abc, cm)
	require.NoError(t, err)
	require.Equal(t, [][]float64{{0, 1}, {-1, -1}, {-1, -1}, {1, 0}}, rowsOf(t, got))
}

// Codes are interpreted against the data's own level order.
func TestMaterializeReindexesDataOrder(t *testing.T) {
	cm := mustNew(t, contrasts.Helmert[string](), []string{"a", "b", "c", "d"})
	observations := []string{"d", "a", "c", "c", "b"}

	encode := func(dataLevels []string) []uint8 {
		pos := make(map[string]uint8, len(dataLevels))
		for i, l := range dataLevels {
			pos[l] = uint8(i)
		}
		codes := make([]uint8, len(observations))
		for k, l := range observations {
			codes[k] = pos[l]
		}

		return codes
	}

	want, err := contrasts.MaterializeLevels(observations, cm)
	require.NoError(t, err)

	for _, dataLevels := range [][]string{
		{"a", "b", "c", "d"},
		{"d", "c", "b", "a"},
		{"c", "a", "d", "b"},
	} {
		got, err := contrasts.Materialize(encode(dataLevels), dataLevels, cm)
		require.NoError(t, err)
		require.Equal(t, rowsOf(t, want), rowsOf(t, got), "data order %v", dataLevels)
	}

	for k, l := range observations {
		i, ok := cm.LevelIndex(l)
		require.True(t, ok)
		expected, err := cm.Row(i)
		require.NoError(t, err)
		row, err := want.Row(k)
		require.NoError(t, err)
		require.Equal(t, expected, row)
	}
}

// Data may carry a subset of the matrix levels (e.g. a filtered batch).
func TestMaterializeDataSubset(t *testing.T) {
	cm := mustNew(t, contrasts.Treatment[string](), abc)
	got, err := contrasts.Materialize([]int32{1, 0}, []string{"c", "b"}, cm)
	require.NoError(t, err)
	require.Equal(t, [][]float64{{1, 0}, {0, 1}}, rowsOf(t, got))
}

func TestMaterializeNoObservations(t *testing.T) {
	cm := mustNew(t, contrasts.Treatment[string](), abc)
	got, err := contrasts.Materialize([]int{}, abc, cm)
	require.NoError(t, err)
	require.Equal(t, 0, got.Rows())
	require.Equal(t, 2, got.Cols())
}

func TestMaterializeErrors(t *testing.T) {
	cm := mustNew(t, contrasts.Treatment[string](), abc)

	_, err := contrasts.Materialize([]int{0}, []string{"a", "z"}, cm)
	require.ErrorIs(t, err, contrasts.ErrUnknownLevel)

	_, err = contrasts.Materialize([]int{3}, abc, cm)
	require.ErrorIs(t, err, contrasts.ErrCodeOutOfRange)

	_, err = contrasts.Materialize([]int64{-1}, abc, cm)
	require.ErrorIs(t, err, contrasts.ErrCodeOutOfRange)

	_, err = contrasts.Materialize([]uint64{math.MaxUint64}, abc, cm)
	require.ErrorIs(t, err, contrasts.ErrCodeOutOfRange)

	_, err = contrasts.Materialize[string]([]int{0}, abc, nil)
	require.ErrorIs(t, err, contrasts.ErrNilContrast)

	_, err = contrasts.MaterializeLevels([]string{"a", "q"}, cm)
	require.ErrorIs(t, err, contrasts.ErrUnknownLevel)

	_, err = contrasts.MaterializeLevels[string](nil, nil)
	require.ErrorIs(t, err, contrasts.ErrNilContrast)
}

// One ContrastMatrix serves many batches concurrently without synchronization.
func TestMaterializeConcurrentReaders(t *testing.T) {
	defer goleak.VerifyNone(t)

	cm := mustNew(t, contrasts.Sum(contrasts.WithBase("b")), abc)
	want, err := contrasts.Materialize([]int{0, 1, 2}, abc, cm)
	require.NoError(t, err)
	wantRows := rowsOf(t, want)

	const batches = 16
	results := make([][][]float64, batches)
	g, _ := errgroup.WithContext(context.Background())
	for b := 0; b < batches; b++ {
		b := b
		g.Go(func() error {
			got, err := contrasts.Materialize([]int{0, 1, 2}, abc, cm)
			if err != nil {
				return err
			}
			rows := make([][]float64, got.Rows())
			for i := range rows {
				if rows[i], err = got.Row(i); err != nil {
					return err
				}
			}
			results[b] = rows

			return nil
		})
	}
	require.NoError(t, g.Wait())
	for _, rows := range results {
		require.Equal(t, wantRows, rows)
	}
}
