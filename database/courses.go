package database

import (
	"context"
	"fmt"

	"school-backend/models"
)

func (s *Store) ListCourses(ctx context.Context, page models.Page) ([]models.CourseView, error) {
	courses := []models.CourseView{}
	q := s.db.WithContext(ctx).Model(&models.Course{}).Select("id, name, description").Order("id ASC")
	if err := Paginate(q, page).Scan(&courses).Error; err != nil {
		return nil, fmt.Errorf("list courses: %w", err)
	}
	return courses, nil
}
