package database

import (
	"database/sql"
	"fmt"
	"log"
	"time"

	"school-backend/config"

	_ "github.com/lib/pq" // драйвер PostgreSQL
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// InitDB открывает пул соединений через lib/pq и поднимает поверх него GORM.
// sqlx-обёртку над тем же пулом создаёт NewStore.
func InitDB(cfg *config.Config) (*gorm.DB, error) {
	psqlInfo := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		cfg.DBHost, cfg.DBPort, cfg.DBUser, cfg.DBPassword, cfg.DBName, cfg.DBSSLMode)

	// Сначала используем стандартный database/sql
	sqlDB, err := sql.Open("postgres", psqlInfo)
	if err != nil {
		return nil, fmt.Errorf("error opening database: %w", err)
	}

	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)

	// Проверяем подключение
	if err := sqlDB.Ping(); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("error pinging database: %w", err)
	}

	gormLogger := logger.Default.LogMode(logger.Info)
	if cfg.IsProduction() {
		gormLogger = logger.Default.LogMode(logger.Error)
	}

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger:      gormLogger,
		PrepareStmt: true,
	})
	if err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("error opening gorm: %w", err)
	}

	log.Println("✅ Successfully connected to PostgreSQL!")
	return db, nil
}
