package commands

import (
	"context"
	"fmt"
	"log"
	"os"

	"school-backend/config"
	"school-backend/database"
	"school-backend/random"
	"school-backend/seeding"

	"github.com/spf13/cobra"
)

var (
	envFile    *string
	resetDB    *bool
	randomSeed *uint64
)

var rootCmd = &cobra.Command{
	Use:   "school-backend",
	Short: "school-backend serves the students, groups and courses REST API.",
}

func init() {
	envFile = rootCmd.PersistentFlags().String("env-file", "", "Path to a .env file (default: ./.env when present).")
	resetDB = rootCmd.PersistentFlags().Bool("reset", false, "Drop and recreate all tables before starting.")
	randomSeed = rootCmd.PersistentFlags().Uint64("seed", 0, "Random seed for data generation (overrides RANDOM_SEED, 0 uses the clock).")
}

func ExecuteContext(ctx context.Context) {
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// openStore loads the configuration, connects to PostgreSQL and migrates the schema.
func openStore() (*config.Config, *database.Store, error) {
	cfg, err := config.Load(*envFile)
	if err != nil {
		return nil, nil, err
	}
	log.Printf("📋 Configuration loaded: Server Port %s, env %s", cfg.ServerPort, cfg.GoEnv)

	db, err := database.InitDB(cfg)
	if err != nil {
		return nil, nil, err
	}

	if err := database.Migrate(db, cfg.DBReset || *resetDB); err != nil {
		if sqlDB, dbErr := db.DB(); dbErr == nil {
			sqlDB.Close()
		}
		return nil, nil, err
	}

	store, err := database.NewStore(db)
	if err != nil {
		return nil, nil, err
	}
	return cfg, store, nil
}

// newSeedService builds the seeding service with the configured quantities.
// The seed flag wins over RANDOM_SEED; when both are zero the clock is used.
func newSeedService(cfg *config.Config, store *database.Store) *seeding.Service {
	seed := cfg.RandomSeed
	if *randomSeed != 0 {
		seed = *randomSeed
	}

	var rnd *random.Source
	if seed == 0 {
		rnd = random.NewFromTime()
	} else {
		rnd = random.New(seed)
	}
	log.Printf("🎲 Random seed: %d", rnd.Seed())

	opts := seeding.DefaultOptions()
	opts.GroupsQty = cfg.GroupsQty
	opts.StudentsQty = cfg.StudentsQty
	opts.GroupMinSize = cfg.GroupMinSize
	opts.GroupMaxSize = cfg.GroupMaxSize
	opts.MinCoursesPerStudent = cfg.MinCoursesPerStudent
	opts.MaxCoursesPerStudent = cfg.MaxCoursesPerStudent
	opts.MaxSampleRetries = cfg.MaxSampleRetries

	return seeding.NewService(store, rnd, opts)
}
