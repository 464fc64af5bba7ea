package database

import (
	"school-backend/models"

	"gorm.io/gorm"
)

// Paginate применяет смещение и ограничение к уже упорядоченному запросу.
// Offset применяется всегда, Limit только если он больше нуля: 0 означает
// "все записи начиная с Offset".
func Paginate(q *gorm.DB, page models.Page) *gorm.DB {
	offset := page.Offset
	if offset < 0 {
		offset = 0
	}
	q = q.Offset(offset)
	if page.Limit > 0 {
		q = q.Limit(page.Limit)
	}
	return q
}
