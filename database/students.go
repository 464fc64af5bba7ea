package database

import (
	"context"
	"fmt"

	"school-backend/models"

	"gorm.io/gorm"
)

// ListStudents returns a page of students ordered by id.
func (s *Store) ListStudents(ctx context.Context, page models.Page) ([]models.StudentView, error) {
	var students []models.Student
	q := s.db.WithContext(ctx).Model(&models.Student{}).Order("id ASC")
	if err := Paginate(q, page).Find(&students).Error; err != nil {
		return nil, fmt.Errorf("list students: %w", err)
	}
	return s.studentViews(ctx, students)
}

func (s *Store) GetStudent(ctx context.Context, id uint) (models.StudentView, error) {
	student, err := s.findStudent(ctx, s.db, id)
	if err != nil {
		return models.StudentView{}, err
	}
	views, err := s.studentViews(ctx, []models.Student{student})
	if err != nil {
		return models.StudentView{}, err
	}
	return views[0], nil
}

// StudentsByCourse returns a page of the students enrolled in the named course.
func (s *Store) StudentsByCourse(ctx context.Context, courseName string, page models.Page) ([]models.StudentView, error) {
	course, err := s.findCourse(ctx, s.db, courseName)
	if err != nil {
		return nil, err
	}

	enrolled := s.db.Model(&models.Enrollment{}).Select("student_id").Where("course_id = ?", course.ID)

	var students []models.Student
	q := s.db.WithContext(ctx).Model(&models.Student{}).Where("id IN (?)", enrolled).Order("id ASC")
	if err := Paginate(q, page).Find(&students).Error; err != nil {
		return nil, fmt.Errorf("list students by course: %w", err)
	}
	return s.studentViews(ctx, students)
}

func (s *Store) AddStudent(ctx context.Context, firstName, lastName string) (models.StudentView, error) {
	student := models.Student{FirstName: firstName, LastName: lastName}
	if err := s.db.WithContext(ctx).Create(&student).Error; err != nil {
		return models.StudentView{}, fmt.Errorf("create student: %w", err)
	}
	return models.StudentView{
		ID:        student.ID,
		FirstName: student.FirstName,
		LastName:  student.LastName,
		Courses:   []models.CourseView{},
	}, nil
}

// DeleteStudent removes the student together with their enrollments.
func (s *Store) DeleteStudent(ctx context.Context, id uint) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := s.findStudent(ctx, tx, id); err != nil {
			return err
		}
		if err := tx.Where("student_id = ?", id).Delete(&models.Enrollment{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Student{}, id).Error
	})
}

// AddStudentToCourses enrolls the student in every named course. Courses
// the student already attends are left as they are.
func (s *Store) AddStudentToCourses(ctx context.Context, studentID uint, courseNames []string) (models.StudentView, error) {
	courseIDs := make([]uint, 0, len(courseNames))
	for _, name := range courseNames {
		course, err := s.findCourse(ctx, s.db, name)
		if err != nil {
			return models.StudentView{}, err
		}
		courseIDs = append(courseIDs, course.ID)
	}

	if _, err := s.findStudent(ctx, s.db, studentID); err != nil {
		return models.StudentView{}, err
	}
	if err := s.Enroll(ctx, studentID, courseIDs); err != nil {
		return models.StudentView{}, fmt.Errorf("enroll student %d: %w", studentID, err)
	}
	return s.GetStudent(ctx, studentID)
}

func (s *Store) RemoveStudentFromCourse(ctx context.Context, studentID uint, courseName string) (models.StudentView, error) {
	course, err := s.findCourse(ctx, s.db, courseName)
	if err != nil {
		return models.StudentView{}, err
	}
	if _, err := s.findStudent(ctx, s.db, studentID); err != nil {
		return models.StudentView{}, err
	}

	result := s.db.WithContext(ctx).
		Where("student_id = ? AND course_id = ?", studentID, course.ID).
		Delete(&models.Enrollment{})
	if result.Error != nil {
		return models.StudentView{}, result.Error
	}
	if result.RowsAffected == 0 {
		return models.StudentView{}, fmt.Errorf("%w: student with ID '%d' not assigned to course '%s'",
			models.ErrNotEnrolled, studentID, courseName)
	}
	return s.GetStudent(ctx, studentID)
}
