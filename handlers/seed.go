package handlers

import (
	"context"
	"errors"
	"log"
	"net/http"

	"school-backend/cache"
	"school-backend/models"
)

type Seeder interface {
	Seed(ctx context.Context) (models.SeedResult, error)
}

type SeedHandler struct {
	seeder Seeder
	cache  cache.Cache
}

func NewSeedHandler(seeder Seeder, c cache.Cache) *SeedHandler {
	return &SeedHandler{seeder: seeder, cache: c}
}

// Seed заполняет базу случайными данными и возвращает сгенерированные записи.
func (h *SeedHandler) Seed(w http.ResponseWriter, r *http.Request) {
	result, err := h.seeder.Seed(r.Context())
	if err != nil {
		log.Printf("❌ Seeding failed: %v", err)
		switch {
		case errors.Is(err, models.ErrGenerationExhausted),
			errors.Is(err, models.ErrInsufficientCandidates),
			errors.Is(err, models.ErrInvalidBounds),
			errors.Is(err, models.ErrDuplicateCourse):
			respondError(w, r, http.StatusInternalServerError, err.Error())
		default:
			respondError(w, r, http.StatusInternalServerError, "Seeding failed")
		}
		return
	}

	if err := h.cache.DeletePrefix(r.Context(), groupsCachePrefix); err != nil {
		log.Printf("⚠️ Warning: could not invalidate groups cache: %v", err)
	}
	respond(w, r, http.StatusCreated, "seed", result)
}
