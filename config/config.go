package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	GoEnv      string
	ServerPort string
	DBHost     string
	DBPort     int
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string
	DBReset    bool

	RedisURL string
	CacheTTL time.Duration

	// Параметры заполнения базы тестовыми данными
	RandomSeed           uint64 // 0: взять seed из текущего времени
	GroupsQty            int
	StudentsQty          int
	GroupMinSize         int
	GroupMaxSize         int
	MinCoursesPerStudent int
	MaxCoursesPerStudent int
	MaxSampleRetries     int
	SeedOnStart          bool

	DefaultPageLimit int
}

// Load reads envFile (when it exists) into the process environment and
// builds the configuration from environment variables. An explicitly named
// file that cannot be read is an error; the default ".env" is optional.
func Load(envFile string) (*Config, error) {
	if envFile == "" {
		envFile = ".env"
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("load %s: %w", envFile, err)
		}
	} else if err := godotenv.Load(envFile); err != nil {
		return nil, fmt.Errorf("load %s: %w", envFile, err)
	}

	cfg := &Config{
		GoEnv:      getEnv("GO_ENV", "development"),
		ServerPort: getEnv("SERVER_PORT", "8080"),
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnvAsInt("DB_PORT", 5432),
		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: getEnv("DB_PASSWORD", "postgres"),
		DBName:     getEnv("DB_NAME", "school_db"),
		DBSSLMode:  getEnv("DB_SSLMODE", "disable"),
		DBReset:    getEnvAsBool("DB_RESET", false),

		RedisURL: getEnv("REDIS_URL", ""),
		CacheTTL: time.Duration(getEnvAsInt("CACHE_TTL_SECONDS", 60)) * time.Second,

		RandomSeed:           getEnvAsUint64("RANDOM_SEED", 0),
		GroupsQty:            getEnvAsInt("GROUPS_QTY", 10),
		StudentsQty:          getEnvAsInt("STUDENTS_QTY", 200),
		GroupMinSize:         getEnvAsInt("GROUP_MIN_SIZE", 10),
		GroupMaxSize:         getEnvAsInt("GROUP_MAX_SIZE", 30),
		MinCoursesPerStudent: getEnvAsInt("MIN_COURSES_PER_STUDENT", 1),
		MaxCoursesPerStudent: getEnvAsInt("MAX_COURSES_PER_STUDENT", 3),
		MaxSampleRetries:     getEnvAsInt("MAX_SAMPLE_RETRIES", 10000),
		SeedOnStart:          getEnvAsBool("SEED_ON_START", false),

		DefaultPageLimit: getEnvAsInt("DEFAULT_PAGE_LIMIT", 50),
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) IsProduction() bool {
	return c.GoEnv == "production"
}

func (c *Config) validate() error {
	if c.GroupMinSize < 0 || c.GroupMinSize > c.GroupMaxSize {
		return fmt.Errorf("invalid group size bounds [%d, %d]", c.GroupMinSize, c.GroupMaxSize)
	}
	if c.MinCoursesPerStudent < 0 || c.MinCoursesPerStudent > c.MaxCoursesPerStudent {
		return fmt.Errorf("invalid courses per student bounds [%d, %d]", c.MinCoursesPerStudent, c.MaxCoursesPerStudent)
	}
	if c.GroupsQty < 0 || c.StudentsQty < 0 {
		return fmt.Errorf("groups and students quantities must not be negative")
	}
	if c.DefaultPageLimit < 0 {
		return fmt.Errorf("DEFAULT_PAGE_LIMIT must not be negative")
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsUint64(key string, defaultValue uint64) uint64 {
	if value, exists := os.LookupEnv(key); exists {
		if v, err := strconv.ParseUint(value, 10, 64); err == nil {
			return v
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		if v, err := strconv.ParseBool(value); err == nil {
			return v
		}
	}
	return defaultValue
}
