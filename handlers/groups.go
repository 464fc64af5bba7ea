package handlers

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"school-backend/cache"
	"school-backend/models"
)

const groupsCachePrefix = "groups:"

type GroupRepository interface {
	ListGroups(ctx context.Context, page models.Page) ([]models.GroupView, error)
	GroupsWithAtMost(ctx context.Context, threshold int64, page models.Page) ([]models.GroupView, error)
	GroupsByStudentCount(ctx context.Context, groupName string, page models.Page) ([]models.GroupView, error)
}

type GroupHandler struct {
	repo         GroupRepository
	cache        cache.Cache
	cacheTTL     time.Duration
	defaultLimit int
}

func NewGroupHandler(repo GroupRepository, c cache.Cache, cacheTTL time.Duration, defaultLimit int) *GroupHandler {
	return &GroupHandler{repo: repo, cache: c, cacheTTL: cacheTTL, defaultLimit: defaultLimit}
}

func (h *GroupHandler) GetGroups(w http.ResponseWriter, r *http.Request) {
	page, err := parsePage(r, h.defaultLimit)
	if err != nil {
		respondError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	key := fmt.Sprintf("%slist:%d:%d", groupsCachePrefix, page.Limit, page.Offset)
	groups, err := h.cached(r.Context(), key, func() ([]models.GroupView, error) {
		return h.repo.ListGroups(r.Context(), page)
	})
	if err != nil {
		handleStoreError(w, r, err)
		return
	}
	respond(w, r, http.StatusOK, "groups", groups)
}

// GetGroupsByCount returns groups with at most {count} students.
func (h *GroupHandler) GetGroupsByCount(w http.ResponseWriter, r *http.Request) {
	count, err := pathInt(r, "count")
	if err != nil {
		respondError(w, r, http.StatusBadRequest, err.Error())
		return
	}
	if count < 0 {
		respondError(w, r, http.StatusBadRequest, fmt.Sprintf("invalid count '%d'", count))
		return
	}
	page, err := parsePage(r, h.defaultLimit)
	if err != nil {
		respondError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	key := fmt.Sprintf("%scount:%d:%d:%d", groupsCachePrefix, count, page.Limit, page.Offset)
	groups, err := h.cached(r.Context(), key, func() ([]models.GroupView, error) {
		return h.repo.GroupsWithAtMost(r.Context(), count, page)
	})
	if err != nil {
		handleStoreError(w, r, err)
		return
	}
	respond(w, r, http.StatusOK, "groups", groups)
}

// GetGroupsByGroup returns groups with at most as many students as {group_name} has.
func (h *GroupHandler) GetGroupsByGroup(w http.ResponseWriter, r *http.Request) {
	page, err := parsePage(r, h.defaultLimit)
	if err != nil {
		respondError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	groupName := routeVar(r, "group_name")
	key := fmt.Sprintf("%sgroup:%s:%d:%d", groupsCachePrefix, groupName, page.Limit, page.Offset)
	groups, err := h.cached(r.Context(), key, func() ([]models.GroupView, error) {
		return h.repo.GroupsByStudentCount(r.Context(), groupName, page)
	})
	if err != nil {
		handleStoreError(w, r, err)
		return
	}
	respond(w, r, http.StatusOK, "groups", groups)
}

// cached отдаёт результат из кэша или вычисляет и сохраняет его.
// Ошибки кэша не ломают запрос.
func (h *GroupHandler) cached(ctx context.Context, key string, load func() ([]models.GroupView, error)) ([]models.GroupView, error) {
	var groups []models.GroupView
	err := h.cache.GetJSON(ctx, key, &groups)
	if err == nil {
		return groups, nil
	}
	if !errors.Is(err, cache.ErrNotFound) {
		log.Printf("⚠️ Warning: cache read %s: %v", key, err)
	}

	groups, err = load()
	if err != nil {
		return nil, err
	}
	if err := h.cache.SetJSON(ctx, key, groups, h.cacheTTL); err != nil {
		log.Printf("⚠️ Warning: cache write %s: %v", key, err)
	}
	return groups, nil
}
