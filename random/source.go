// Package random provides the seedable random source threaded through every
// sampling call of the seeding pass.
package random

import (
	"fmt"
	"math/rand/v2"
	"time"

	"school-backend/models"
)

// Source is not safe for concurrent use.
type Source struct {
	seed uint64
	rng  *rand.Rand
}

// New returns a Source whose sequence is fully determined by seed.
func New(seed uint64) *Source {
	return &Source{
		seed: seed,
		rng:  rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
	}
}

// NewFromTime returns a Source seeded from the wall clock. Use Seed to log
// the value so a run can be reproduced.
func NewFromTime() *Source {
	return New(uint64(time.Now().UnixNano()))
}

func (s *Source) Seed() uint64 {
	return s.seed
}

// IntRange returns a uniformly distributed integer in [low, high].
func (s *Source) IntRange(low, high int) int {
	if high < low {
		panic(fmt.Sprintf("random: invalid range [%d, %d]", low, high))
	}
	return low + s.rng.IntN(high-low+1)
}

// Pick returns a uniformly chosen element of items.
func Pick[T any](s *Source, items []T) T {
	return items[s.rng.IntN(len(items))]
}

// Sample draws k distinct elements of population without replacement.
// The population is not modified.
func Sample[T any](s *Source, population []T, k int) ([]T, error) {
	if k < 0 {
		return nil, fmt.Errorf("%w: negative sample size %d", models.ErrInvalidBounds, k)
	}
	if k > len(population) {
		return nil, fmt.Errorf("%w: sample of %d from population of %d",
			models.ErrInsufficientCandidates, k, len(population))
	}

	pool := make([]T, len(population))
	copy(pool, population)

	// частичная перетасовка Фишера-Йетса
	for i := 0; i < k; i++ {
		j := i + s.rng.IntN(len(pool)-i)
		pool[i], pool[j] = pool[j], pool[i]
	}
	return pool[:k], nil
}
