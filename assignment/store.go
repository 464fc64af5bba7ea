// Package assignment distributes freshly seeded students into groups and
// courses. Both engines run as a single forward pass and persist through the
// store interfaces below.
package assignment

import "context"

// GroupStore is the persistence used by GroupEngine.
type GroupStore interface {
	// UnassignedStudentIDs returns the ids of students without a group, ordered by id.
	UnassignedStudentIDs(ctx context.Context) ([]uint, error)
	// AssignToGroup links the students to the group and commits before returning.
	AssignToGroup(ctx context.Context, groupID uint, studentIDs []uint) error
}

// EnrollmentStore is the persistence used by CourseEngine.
type EnrollmentStore interface {
	// Enroll appends enrollments; existing ones are left untouched.
	Enroll(ctx context.Context, studentID uint, courseIDs []uint) error
}
