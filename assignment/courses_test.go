package assignment

import (
	"context"
	"testing"

	"school-backend/models"
	"school-backend/random"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ids(n int) []uint {
	out := make([]uint, n)
	for i := range out {
		out[i] = uint(i + 1)
	}
	return out
}

func TestCourseEngineBounds(t *testing.T) {
	store := newMemoryStore(0)
	students := ids(200)
	engine := NewCourseEngine(store, random.New(12))

	report, err := engine.Assign(context.Background(), students, ids(10), 1, 3)
	require.NoError(t, err)
	require.Len(t, report.Enrolled, 200)

	total := 0
	for _, id := range students {
		courses := store.appended[id]
		require.GreaterOrEqual(t, len(courses), 1, "student %d", id)
		require.LessOrEqual(t, len(courses), 3, "student %d", id)

		seen := map[uint]bool{}
		for _, c := range courses {
			require.False(t, seen[c], "student %d got course %d twice", id, c)
			require.GreaterOrEqual(t, c, uint(1))
			require.LessOrEqual(t, c, uint(10))
			seen[c] = true
		}
		assert.Equal(t, len(courses), report.Enrolled[id])
		total += len(courses)
	}
	assert.Equal(t, total, report.Total)
}

func TestCourseEngineInsufficientCandidates(t *testing.T) {
	store := newMemoryStore(0)
	_, err := NewCourseEngine(store, random.New(1)).Assign(context.Background(), ids(5), ids(2), 1, 3)

	require.ErrorIs(t, err, models.ErrInsufficientCandidates)
	assert.Empty(t, store.appended, "nothing may be written when the catalog is too small")
}

func TestCourseEngineInvalidBounds(t *testing.T) {
	_, err := NewCourseEngine(newMemoryStore(0), random.New(1)).Assign(context.Background(), ids(1), ids(5), 3, 1)
	assert.ErrorIs(t, err, models.ErrInvalidBounds)
}

// A second pass appends again: the engine is not idempotent and the number
// of appended enrollments per student goes past max.
func TestCourseEngineSecondPassExceedsMax(t *testing.T) {
	store := newMemoryStore(0)
	engine := NewCourseEngine(store, random.New(4))
	students := ids(3)

	_, err := engine.Assign(context.Background(), students, ids(10), 3, 3)
	require.NoError(t, err)
	_, err = engine.Assign(context.Background(), students, ids(10), 3, 3)
	require.NoError(t, err)

	for _, id := range students {
		assert.Len(t, store.appended[id], 6)
		assert.Greater(t, len(store.appended[id]), 3)
	}
}
