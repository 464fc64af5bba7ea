// Package generators produces the raw records of a seeding pass: unique
// student names, unique group names and the course catalog.
package generators

import (
	"fmt"

	"school-backend/models"
	"school-backend/random"
)

type Seeder struct {
	rnd        *random.Source
	FirstNames []string
	LastNames  []string
	Catalog    []models.CourseRecord
	MaxRetries int
}

// NewSeeder returns a Seeder over the default name lists and course catalog.
func NewSeeder(rnd *random.Source, maxRetries int) *Seeder {
	return &Seeder{
		rnd:        rnd,
		FirstNames: StudentFirstNames,
		LastNames:  StudentLastNames,
		Catalog:    DefaultCourses,
		MaxRetries: maxRetries,
	}
}

// Students returns k students whose (first name, last name) pairs are unique.
// The same first or last name may repeat across students.
func (s *Seeder) Students(k int) ([]models.StudentRecord, error) {
	if len(s.FirstNames) == 0 || len(s.LastNames) == 0 {
		return nil, fmt.Errorf("%w: empty name list", models.ErrInsufficientCandidates)
	}

	pairs, err := Unique(func() models.StudentRecord {
		return models.StudentRecord{
			FirstName: random.Pick(s.rnd, s.FirstNames),
			LastName:  random.Pick(s.rnd, s.LastNames),
		}
	}, k, s.MaxRetries)
	if err != nil {
		return nil, fmt.Errorf("generate students: %w", err)
	}
	return pairs, nil
}

// Groups returns k groups with unique names like "AB_12".
func (s *Seeder) Groups(k int) ([]models.GroupRecord, error) {
	names, err := Unique(s.groupName, k, s.MaxRetries)
	if err != nil {
		return nil, fmt.Errorf("generate groups: %w", err)
	}

	groups := make([]models.GroupRecord, len(names))
	for i, name := range names {
		groups[i] = models.GroupRecord{Name: name}
	}
	return groups, nil
}

func (s *Seeder) groupName() string {
	return fmt.Sprintf("%c%c_%d%d",
		'A'+rune(s.rnd.IntRange(0, 25)),
		'A'+rune(s.rnd.IntRange(0, 25)),
		s.rnd.IntRange(0, 9),
		s.rnd.IntRange(0, 9),
	)
}

// Courses returns the catalog unchanged. Duplicate names are a configuration
// error.
func (s *Seeder) Courses() ([]models.CourseRecord, error) {
	seen := make(map[string]struct{}, len(s.Catalog))
	for _, c := range s.Catalog {
		if _, ok := seen[c.Name]; ok {
			return nil, fmt.Errorf("%w: %q", models.ErrDuplicateCourse, c.Name)
		}
		seen[c.Name] = struct{}{}
	}

	courses := make([]models.CourseRecord, len(s.Catalog))
	copy(courses, s.Catalog)
	return courses, nil
}
