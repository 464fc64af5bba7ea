package generators

import (
	"testing"

	"school-backend/models"
	"school-backend/random"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUniqueReturnsDistinctValues(t *testing.T) {
	src := random.New(11)
	got, err := Unique(func() int { return src.IntRange(1, 50) }, 30, 0)
	require.NoError(t, err)
	require.Len(t, got, 30)

	seen := map[int]bool{}
	for _, v := range got {
		require.False(t, seen[v], "duplicate %d", v)
		seen[v] = true
	}
}

func TestUniqueKeepsAcceptanceOrder(t *testing.T) {
	values := []string{"a", "a", "b", "a", "c", "b", "d"}
	i := 0
	got, err := Unique(func() string {
		v := values[i]
		i++
		return v
	}, 4, 10)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c", "d"}, got)
}

func TestUniqueZero(t *testing.T) {
	calls := 0
	got, err := Unique(func() int { calls++; return 1 }, 0, 10)
	require.NoError(t, err)
	assert.Empty(t, got)
	assert.Zero(t, calls)
}

func TestUniqueExhausted(t *testing.T) {
	src := random.New(5)
	calls := 0
	_, err := Unique(func() int {
		calls++
		return src.IntRange(1, 3)
	}, 4, 100)
	require.ErrorIs(t, err, models.ErrGenerationExhausted)
	assert.Equal(t, 3+101, calls)
}

func TestUniqueNegativeCount(t *testing.T) {
	_, err := Unique(func() int { return 1 }, -1, 10)
	assert.ErrorIs(t, err, models.ErrInvalidBounds)
}
