// Package seeding runs the one-shot pass that fills an empty database with
// random groups, students and courses and then distributes the students.
package seeding

import (
	"context"
	"fmt"
	"log"
	"sync"

	"school-backend/assignment"
	"school-backend/generators"
	"school-backend/models"
	"school-backend/random"
)

type Store interface {
	assignment.GroupStore
	assignment.EnrollmentStore
	CreateSeed(ctx context.Context, groups []models.GroupRecord, students []models.StudentRecord, courses []models.CourseRecord) (models.SeedIDs, error)
}

type Options struct {
	GroupsQty            int
	StudentsQty          int
	GroupMinSize         int
	GroupMaxSize         int
	MinCoursesPerStudent int
	MaxCoursesPerStudent int
	MaxSampleRetries     int
	// Courses replaces the default catalog when not empty.
	Courses []models.CourseRecord
}

// DefaultOptions: 10 групп, 200 студентов, от 10 до 30 студентов в группе,
// от 1 до 3 курсов на студента.
func DefaultOptions() Options {
	return Options{
		GroupsQty:            10,
		StudentsQty:          200,
		GroupMinSize:         10,
		GroupMaxSize:         30,
		MinCoursesPerStudent: 1,
		MaxCoursesPerStudent: 3,
		MaxSampleRetries:     generators.DefaultMaxRetries,
	}
}

// Service is safe for concurrent use: Seed calls run one at a time and
// share the random source in turn.
type Service struct {
	mu    sync.Mutex
	store Store
	rnd   *random.Source
	opts  Options
}

func NewService(store Store, rnd *random.Source, opts Options) *Service {
	return &Service{store: store, rnd: rnd, opts: opts}
}

// Seed generates the whole batch before touching the store, inserts it in one
// transaction and then runs the group and course assignment passes over the
// freshly inserted records. It must run once per empty database.
func (s *Service) Seed(ctx context.Context) (models.SeedResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var result models.SeedResult

	seeder := generators.NewSeeder(s.rnd, s.opts.MaxSampleRetries)
	if len(s.opts.Courses) > 0 {
		seeder.Catalog = s.opts.Courses
	}

	log.Printf("🌱 Generating %d groups and %d students (seed %d)...",
		s.opts.GroupsQty, s.opts.StudentsQty, s.rnd.Seed())

	groups, err := seeder.Groups(s.opts.GroupsQty)
	if err != nil {
		return result, err
	}
	students, err := seeder.Students(s.opts.StudentsQty)
	if err != nil {
		return result, err
	}
	courses, err := seeder.Courses()
	if err != nil {
		return result, err
	}
	// проверяем до вставки, иначе база останется заполненной наполовину
	if s.opts.MaxCoursesPerStudent > len(courses) {
		return result, fmt.Errorf("%w: up to %d courses per student, catalog has %d",
			models.ErrInsufficientCandidates, s.opts.MaxCoursesPerStudent, len(courses))
	}

	ids, err := s.store.CreateSeed(ctx, groups, students, courses)
	if err != nil {
		return result, fmt.Errorf("store seed batch: %w", err)
	}
	log.Printf("✅ Inserted %d groups, %d students, %d courses",
		len(ids.Groups), len(ids.StudentIDs), len(ids.CourseIDs))

	groupReport, err := assignment.NewGroupEngine(s.store, s.rnd).
		Assign(ctx, ids.Groups, s.opts.GroupMinSize, s.opts.GroupMaxSize)
	if err != nil {
		return result, fmt.Errorf("assign students to groups: %w", err)
	}
	log.Printf("✅ Students assigned to %d groups, %d left without a group",
		len(groupReport.Assigned), groupReport.Unassigned)

	courseReport, err := assignment.NewCourseEngine(s.store, s.rnd).
		Assign(ctx, ids.StudentIDs, ids.CourseIDs, s.opts.MinCoursesPerStudent, s.opts.MaxCoursesPerStudent)
	if err != nil {
		return result, fmt.Errorf("assign courses to students: %w", err)
	}
	log.Printf("✅ Created %d enrollments", courseReport.Total)

	result.Groups = groups
	result.Students = students
	result.Courses = courses
	return result, nil
}
