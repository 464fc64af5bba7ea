package handlers

import (
	"net/http"
	"time"

	"school-backend/cache"
	"school-backend/middleware"

	"github.com/gorilla/mux"
)

const APIVersion = 1

// Repository is everything the HTTP layer reads and writes.
type Repository interface {
	StudentRepository
	GroupRepository
	CourseRepository
	Pinger
}

type Dependencies struct {
	Repo         Repository
	Seeder       Seeder
	Cache        cache.Cache
	CacheTTL     time.Duration
	DefaultLimit int
}

// NewRouter собирает все маршруты и middleware.
func NewRouter(deps Dependencies) *mux.Router {
	if deps.Cache == nil {
		deps.Cache = cache.Noop{}
	}

	studentHandler := NewStudentHandler(deps.Repo, deps.Cache, deps.DefaultLimit)
	groupHandler := NewGroupHandler(deps.Repo, deps.Cache, deps.CacheTTL, deps.DefaultLimit)
	courseHandler := NewCourseHandler(deps.Repo, deps.DefaultLimit)
	seedHandler := NewSeedHandler(deps.Seeder, deps.Cache)

	r := mux.NewRouter().StrictSlash(true)

	r.Use(middleware.RequestID)
	r.Use(middleware.CORS)
	r.Use(middleware.Logging)

	api := r.PathPrefix("/api/v1").Subrouter()

	// Студенты
	api.HandleFunc("/students/", studentHandler.GetStudents).Methods("GET")
	api.HandleFunc("/students/", studentHandler.CreateStudent).Methods("POST")
	api.HandleFunc("/students/{student_id}", studentHandler.DeleteStudent).Methods("DELETE")
	api.HandleFunc("/students_by_course/{course_name}/", studentHandler.GetStudentsByCourse).Methods("GET")
	api.HandleFunc("/students_add_to_courses/{student_id}/", studentHandler.AddToCourses).Methods("PUT")
	api.HandleFunc("/students_del_from_course/{student_id}/", studentHandler.RemoveFromCourse).Methods("PUT")

	// Группы
	api.HandleFunc("/groups/", groupHandler.GetGroups).Methods("GET")
	api.HandleFunc("/groups_by_count/{count}/", groupHandler.GetGroupsByCount).Methods("GET")
	api.HandleFunc("/groups_by_group/{group_name}/", groupHandler.GetGroupsByGroup).Methods("GET")

	// Курсы
	api.HandleFunc("/courses/", courseHandler.GetCourses).Methods("GET")

	if deps.Seeder != nil {
		api.HandleFunc("/seed/", seedHandler.Seed).Methods("POST")
	}

	r.HandleFunc("/health", healthHandler(deps.Repo)).Methods("GET")

	r.Methods("OPTIONS").HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	return r
}
