package models

import "errors"

var (
	// ErrNotFound is returned when a referenced group, course or student does not exist.
	ErrNotFound = errors.New("not found")
	// ErrNotEnrolled is returned when a student is removed from a course they are not enrolled in.
	ErrNotEnrolled = errors.New("student not enrolled in course")
	// ErrGenerationExhausted is returned when unique sampling exceeds its retry ceiling.
	ErrGenerationExhausted = errors.New("unique generation exhausted")
	// ErrInsufficientCandidates is returned when a sample is larger than its population.
	ErrInsufficientCandidates = errors.New("insufficient candidates")
	ErrInvalidBounds          = errors.New("invalid bounds")
	ErrDuplicateCourse        = errors.New("duplicate course name")
)
