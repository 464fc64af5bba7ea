package handlers

import (
	"context"
	"encoding/json"
	"log"
	"net/http"

	"school-backend/cache"
	"school-backend/models"
)

type StudentRepository interface {
	ListStudents(ctx context.Context, page models.Page) ([]models.StudentView, error)
	StudentsByCourse(ctx context.Context, courseName string, page models.Page) ([]models.StudentView, error)
	AddStudent(ctx context.Context, firstName, lastName string) (models.StudentView, error)
	DeleteStudent(ctx context.Context, id uint) error
	AddStudentToCourses(ctx context.Context, studentID uint, courseNames []string) (models.StudentView, error)
	RemoveStudentFromCourse(ctx context.Context, studentID uint, courseName string) (models.StudentView, error)
}

type StudentHandler struct {
	repo         StudentRepository
	cache        cache.Cache
	defaultLimit int
}

func NewStudentHandler(repo StudentRepository, c cache.Cache, defaultLimit int) *StudentHandler {
	return &StudentHandler{repo: repo, cache: c, defaultLimit: defaultLimit}
}

type createStudentRequest struct {
	FirstName string `json:"first_name" validate:"required,max=150"`
	LastName  string `json:"last_name" validate:"required,max=150"`
}

func (h *StudentHandler) GetStudents(w http.ResponseWriter, r *http.Request) {
	page, err := parsePage(r, h.defaultLimit)
	if err != nil {
		respondError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	students, err := h.repo.ListStudents(r.Context(), page)
	if err != nil {
		handleStoreError(w, r, err)
		return
	}
	respond(w, r, http.StatusOK, "students", students)
}

func (h *StudentHandler) CreateStudent(w http.ResponseWriter, r *http.Request) {
	var req createStudentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("❌ Error decoding JSON: %v", err)
		respondError(w, r, http.StatusBadRequest, "Invalid JSON format")
		return
	}

	if err := validate.Struct(req); err != nil {
		log.Printf("❌ Validation failed: %v", err)
		respondError(w, r, http.StatusBadRequest, "Invalid data fields: "+validationMessage(err).Error())
		return
	}

	student, err := h.repo.AddStudent(r.Context(), req.FirstName, req.LastName)
	if err != nil {
		handleStoreError(w, r, err)
		return
	}
	h.invalidateGroups(r.Context())

	log.Printf("✅ Student created successfully with ID: %d", student.ID)
	respond(w, r, http.StatusCreated, "student", student)
}

func (h *StudentHandler) DeleteStudent(w http.ResponseWriter, r *http.Request) {
	id, err := pathUint(r, "student_id")
	if err != nil {
		respondError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.repo.DeleteStudent(r.Context(), id); err != nil {
		handleStoreError(w, r, err)
		return
	}
	h.invalidateGroups(r.Context())

	log.Printf("🗑️ Student %d deleted", id)
	respond(w, r, http.StatusOK, "result", map[string]bool{"success": true})
}

func (h *StudentHandler) GetStudentsByCourse(w http.ResponseWriter, r *http.Request) {
	page, err := parsePage(r, h.defaultLimit)
	if err != nil {
		respondError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	courseName := routeVar(r, "course_name")
	students, err := h.repo.StudentsByCourse(r.Context(), courseName, page)
	if err != nil {
		handleStoreError(w, r, err)
		return
	}
	respond(w, r, http.StatusOK, "students", students)
}

// AddToCourses handles PUT .../students_add_to_courses/{student_id}/?courses=A&courses=B
func (h *StudentHandler) AddToCourses(w http.ResponseWriter, r *http.Request) {
	id, err := pathUint(r, "student_id")
	if err != nil {
		respondError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	courses := r.URL.Query()["courses"]
	if len(courses) == 0 {
		respondError(w, r, http.StatusNotFound, "Courses not listed")
		return
	}

	student, err := h.repo.AddStudentToCourses(r.Context(), id, courses)
	if err != nil {
		handleStoreError(w, r, err)
		return
	}
	respond(w, r, http.StatusOK, "student", student)
}

// RemoveFromCourse handles PUT .../students_del_from_course/{student_id}/?course_name=X
func (h *StudentHandler) RemoveFromCourse(w http.ResponseWriter, r *http.Request) {
	id, err := pathUint(r, "student_id")
	if err != nil {
		respondError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	courseName := r.URL.Query().Get("course_name")
	if courseName == "" {
		respondError(w, r, http.StatusNotFound, "Course not specified")
		return
	}

	student, err := h.repo.RemoveStudentFromCourse(r.Context(), id, courseName)
	if err != nil {
		handleStoreError(w, r, err)
		return
	}
	respond(w, r, http.StatusOK, "student", student)
}

func (h *StudentHandler) invalidateGroups(ctx context.Context) {
	if err := h.cache.DeletePrefix(ctx, groupsCachePrefix); err != nil {
		log.Printf("⚠️ Warning: could not invalidate groups cache: %v", err)
	}
}
