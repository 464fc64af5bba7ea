package assignment

import (
	"context"
	"fmt"

	"school-backend/models"
	"school-backend/random"
)

type CourseEngine struct {
	store EnrollmentStore
	rnd   *random.Source
}

func NewCourseEngine(store EnrollmentStore, rnd *random.Source) *CourseEngine {
	return &CourseEngine{store: store, rnd: rnd}
}

type CourseReport struct {
	// Enrolled holds the number of courses appended per student id.
	Enrolled map[uint]int
	Total    int
}

// Assign appends between min and max distinct random courses to every
// student. It never clears earlier enrollments, so running it twice over the
// same students enrolls them again.
func (e *CourseEngine) Assign(ctx context.Context, studentIDs, courseIDs []uint, min, max int) (CourseReport, error) {
	report := CourseReport{Enrolled: make(map[uint]int, len(studentIDs))}

	if min < 0 || min > max {
		return report, fmt.Errorf("%w: courses per student [%d, %d]", models.ErrInvalidBounds, min, max)
	}
	if max > len(courseIDs) {
		return report, fmt.Errorf("%w: up to %d courses per student, catalog has %d",
			models.ErrInsufficientCandidates, max, len(courseIDs))
	}

	for _, studentID := range studentIDs {
		count := e.rnd.IntRange(min, max)
		picked, err := random.Sample(e.rnd, courseIDs, count)
		if err != nil {
			return report, fmt.Errorf("sample courses for student %d: %w", studentID, err)
		}

		if err := e.store.Enroll(ctx, studentID, picked); err != nil {
			return report, fmt.Errorf("enroll student %d: %w", studentID, err)
		}

		report.Enrolled[studentID] = len(picked)
		report.Total += len(picked)
	}

	return report, nil
}
