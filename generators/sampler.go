package generators

import (
	"fmt"

	"school-backend/models"
)

// DefaultMaxRetries is the rejected-draw ceiling used when none is configured.
const DefaultMaxRetries = 10000

// Unique calls candidate until it has collected k distinct values and returns
// them in the order they were accepted. Every draw that repeats an accepted
// value counts against maxRetries; once more than maxRetries draws have been
// rejected the call fails with models.ErrGenerationExhausted. This bounds the
// loop when the candidate domain holds fewer than k values.
func Unique[T comparable](candidate func() T, k, maxRetries int) ([]T, error) {
	if k < 0 {
		return nil, fmt.Errorf("%w: negative count %d", models.ErrInvalidBounds, k)
	}
	if maxRetries <= 0 {
		maxRetries = DefaultMaxRetries
	}

	result := make([]T, 0, k)
	seen := make(map[T]struct{}, k)
	rejected := 0

	for len(result) < k {
		item := candidate()
		if _, ok := seen[item]; ok {
			rejected++
			if rejected > maxRetries {
				return nil, fmt.Errorf("%w: %d of %d unique values after %d rejected draws",
					models.ErrGenerationExhausted, len(result), k, rejected-1)
			}
			continue
		}
		seen[item] = struct{}{}
		result = append(result, item)
	}

	return result, nil
}
