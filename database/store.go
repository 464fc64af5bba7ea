// Package database holds the PostgreSQL-backed store: GORM for writes and
// paginated queries, sqlx over the same pool for the hand-written lookups
// that assemble response views.
package database

import (
	"context"
	"errors"
	"fmt"

	"school-backend/models"

	"github.com/jmoiron/sqlx"
	"gorm.io/gorm"
)

type Store struct {
	db *gorm.DB
	x  *sqlx.DB
}

// NewStore wraps db. The sqlx handle shares db's connection pool.
func NewStore(db *gorm.DB) (*Store, error) {
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("error getting SQL DB: %w", err)
	}

	driverName := "postgres"
	if db.Dialector.Name() == "sqlite" {
		driverName = "sqlite3"
	}

	return &Store{db: db, x: sqlx.NewDb(sqlDB, driverName)}, nil
}

func (s *Store) DB() *gorm.DB {
	return s.db
}

// Ping проверяет, что база доступна.
func (s *Store) Ping(ctx context.Context) error {
	return s.x.PingContext(ctx)
}

func (s *Store) Close() error {
	return s.x.Close()
}

func notFound(err error, format string, args ...interface{}) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%w: %s", models.ErrNotFound, fmt.Sprintf(format, args...))
	}
	return err
}

func (s *Store) findStudent(ctx context.Context, tx *gorm.DB, id uint) (models.Student, error) {
	var student models.Student
	if err := tx.WithContext(ctx).First(&student, id).Error; err != nil {
		return student, notFound(err, "student with ID '%d' does not exist", id)
	}
	return student, nil
}

func (s *Store) findCourse(ctx context.Context, tx *gorm.DB, name string) (models.Course, error) {
	var course models.Course
	if err := tx.WithContext(ctx).Where("name = ?", name).First(&course).Error; err != nil {
		return course, notFound(err, "course named '%s' not found", name)
	}
	return course, nil
}
