package database

import (
	"context"
	"fmt"

	"school-backend/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const insertBatchSize = 100

// CreateSeed inserts a generated batch in one transaction. Either every
// record is stored or none is.
func (s *Store) CreateSeed(ctx context.Context, groups []models.GroupRecord, students []models.StudentRecord, courses []models.CourseRecord) (models.SeedIDs, error) {
	var ids models.SeedIDs

	gs := make([]models.Group, len(groups))
	for i, g := range groups {
		gs[i] = models.Group{Name: g.Name}
	}
	ss := make([]models.Student, len(students))
	for i, st := range students {
		ss[i] = models.Student{FirstName: st.FirstName, LastName: st.LastName}
	}
	cs := make([]models.Course, len(courses))
	for i, c := range courses {
		cs[i] = models.Course{Name: c.Name, Description: c.Description}
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if len(gs) > 0 {
			if err := tx.CreateInBatches(&gs, insertBatchSize).Error; err != nil {
				return fmt.Errorf("insert groups: %w", err)
			}
		}
		if len(ss) > 0 {
			if err := tx.CreateInBatches(&ss, insertBatchSize).Error; err != nil {
				return fmt.Errorf("insert students: %w", err)
			}
		}
		if len(cs) > 0 {
			if err := tx.CreateInBatches(&cs, insertBatchSize).Error; err != nil {
				return fmt.Errorf("insert courses: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return ids, err
	}

	ids.Groups = gs
	for _, st := range ss {
		ids.StudentIDs = append(ids.StudentIDs, st.ID)
	}
	for _, c := range cs {
		ids.CourseIDs = append(ids.CourseIDs, c.ID)
	}
	return ids, nil
}

func (s *Store) UnassignedStudentIDs(ctx context.Context) ([]uint, error) {
	var ids []uint
	err := s.db.WithContext(ctx).
		Model(&models.Student{}).
		Where("group_id IS NULL").
		Order("id ASC").
		Pluck("id", &ids).Error
	return ids, err
}

// AssignToGroup links students to the group in its own transaction. Only
// students without a group are updated; if any of them was taken in the
// meantime the whole batch is rolled back.
func (s *Store) AssignToGroup(ctx context.Context, groupID uint, studentIDs []uint) error {
	if len(studentIDs) == 0 {
		return nil
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&models.Student{}).
			Where("id IN ? AND group_id IS NULL", studentIDs).
			Update("group_id", groupID)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected != int64(len(studentIDs)) {
			return fmt.Errorf("group %d: expected to assign %d students, updated %d",
				groupID, len(studentIDs), result.RowsAffected)
		}
		return nil
	})
}

// Enroll appends enrollments. Pairs that already exist are skipped.
func (s *Store) Enroll(ctx context.Context, studentID uint, courseIDs []uint) error {
	if len(courseIDs) == 0 {
		return nil
	}

	rows := make([]models.Enrollment, len(courseIDs))
	for i, courseID := range courseIDs {
		rows[i] = models.Enrollment{StudentID: studentID, CourseID: courseID}
	}

	return s.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&rows).Error
}
