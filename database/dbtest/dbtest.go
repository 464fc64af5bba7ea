// Package dbtest opens an in-memory SQLite store for tests.
package dbtest

import (
	"testing"

	"school-backend/database"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// New returns a migrated Store backed by a private in-memory database that is
// closed when the test ends.
func New(t testing.TB) *database.Store {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatal(err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatal(err)
	}
	// каждое новое соединение с :memory: получает свою пустую базу
	sqlDB.SetMaxOpenConns(1)

	if err := database.Migrate(db, false); err != nil {
		t.Fatal(err)
	}

	store, err := database.NewStore(db)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}
