package random

import (
	"errors"
	"testing"

	"school-backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIntRangeStaysInBounds(t *testing.T) {
	src := New(42)
	seen := map[int]bool{}
	for i := 0; i < 1000; i++ {
		v := src.IntRange(10, 13)
		require.GreaterOrEqual(t, v, 10)
		require.LessOrEqual(t, v, 13)
		seen[v] = true
	}
	assert.Len(t, seen, 4)
	assert.Equal(t, 7, src.IntRange(7, 7))
}

func TestIntRangePanicsOnInvertedRange(t *testing.T) {
	assert.Panics(t, func() { New(1).IntRange(3, 2) })
}

func TestSameSeedSameSequence(t *testing.T) {
	a, b := New(2024), New(2024)
	for i := 0; i < 50; i++ {
		require.Equal(t, a.IntRange(0, 1000), b.IntRange(0, 1000))
	}
	assert.Equal(t, uint64(2024), a.Seed())
}

func TestSampleDistinct(t *testing.T) {
	src := New(7)
	population := []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}

	got, err := Sample(src, population, 6)
	require.NoError(t, err)
	require.Len(t, got, 6)

	seen := map[int]bool{}
	for _, v := range got {
		assert.False(t, seen[v], "duplicate %d", v)
		assert.Contains(t, population, v)
		seen[v] = true
	}
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}, population, "population must not be reordered")
}

func TestSampleWholePopulation(t *testing.T) {
	got, err := Sample(New(3), []string{"a", "b", "c"}, 3)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"a", "b", "c"}, got)
}

func TestSampleInsufficientCandidates(t *testing.T) {
	_, err := Sample(New(3), []string{"a", "b"}, 3)
	require.Error(t, err)
	assert.True(t, errors.Is(err, models.ErrInsufficientCandidates))

	_, err = Sample(New(3), []string{"a"}, -1)
	assert.ErrorIs(t, err, models.ErrInvalidBounds)
}
