package handlers

import (
	"context"
	"net/http"

	"school-backend/models"
)

type CourseRepository interface {
	ListCourses(ctx context.Context, page models.Page) ([]models.CourseView, error)
}

type CourseHandler struct {
	repo         CourseRepository
	defaultLimit int
}

func NewCourseHandler(repo CourseRepository, defaultLimit int) *CourseHandler {
	return &CourseHandler{repo: repo, defaultLimit: defaultLimit}
}

func (h *CourseHandler) GetCourses(w http.ResponseWriter, r *http.Request) {
	page, err := parsePage(r, h.defaultLimit)
	if err != nil {
		respondError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	courses, err := h.repo.ListCourses(r.Context(), page)
	if err != nil {
		handleStoreError(w, r, err)
		return
	}
	respond(w, r, http.StatusOK, "courses", courses)
}
