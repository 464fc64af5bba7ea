package database

import (
	"fmt"
	"log"

	"school-backend/models"

	"gorm.io/gorm"
)

// Migrate создаёт таблицы. При reset существующие таблицы сначала удаляются,
// чтобы заполнение тестовыми данными шло по чистой базе.
func Migrate(db *gorm.DB, reset bool) error {
	log.Println("🔄 Starting database migration...")

	if reset {
		log.Println("🗑️ Dropping existing tables...")
		// Сначала зависимые таблицы
		dropOrder := []interface{}{
			&models.Enrollment{},
			&models.Student{},
			&models.Course{},
			&models.Group{},
		}
		for _, table := range dropOrder {
			if err := db.Migrator().DropTable(table); err != nil {
				log.Printf("⚠️ Warning: Could not drop table for %T: %v", table, err)
			}
		}
	}

	// В правильном порядке: сначала независимые таблицы, потом зависимые
	tables := []interface{}{
		&models.Group{},
		&models.Course{},
		&models.Student{},
		&models.Enrollment{},
	}

	for _, table := range tables {
		if err := db.AutoMigrate(table); err != nil {
			log.Printf("❌ Error migrating table %T: %v", table, err)
			return fmt.Errorf("migrate %T: %w", table, err)
		}
		log.Printf("✅ Created/Updated table for: %T", table)
	}

	createIndexes(db)

	log.Println("✅ Database migration completed successfully!")
	return nil
}

func createIndexes(db *gorm.DB) {
	log.Println("📊 Creating indexes...")

	indexes := []string{
		"CREATE INDEX IF NOT EXISTS idx_students_last_name ON students(last_name)",
		"CREATE INDEX IF NOT EXISTS idx_enrollments_student_id ON enrollments(student_id)",
	}
	for _, stmt := range indexes {
		if err := db.Exec(stmt).Error; err != nil {
			log.Printf("⚠️ Warning: %s: %v", stmt, err)
		}
	}

	log.Println("✅ Indexes created successfully!")
}
