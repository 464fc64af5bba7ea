package commands

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"school-backend/cache"
	"school-backend/handlers"

	"github.com/spf13/cobra"
)

var seedOnStart *bool

func init() {
	seedOnStart = serveCmd.Flags().Bool("seed-on-start", false, "Fill the database with random data before serving (same as SEED_ON_START).")
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server.",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		log.Println("🚀 Starting School Backend Server...")

		cfg, store, err := openStore()
		if err != nil {
			return err
		}
		defer store.Close()

		var groupCache cache.Cache = cache.Noop{}
		if cfg.RedisURL != "" {
			redisCache, err := cache.NewRedisCache(cfg.RedisURL)
			if err != nil {
				log.Printf("⚠️ Warning: Redis unavailable, caching disabled: %v", err)
			} else {
				defer redisCache.Close()
				groupCache = redisCache
				log.Printf("✅ Redis cache enabled (TTL %v)", cfg.CacheTTL)
			}
		}

		seeder := newSeedService(cfg, store)
		if cfg.SeedOnStart || *seedOnStart {
			if _, err := seeder.Seed(ctx); err != nil {
				return err
			}
		}

		router := handlers.NewRouter(handlers.Dependencies{
			Repo:         store,
			Seeder:       seeder,
			Cache:        groupCache,
			CacheTTL:     cfg.CacheTTL,
			DefaultLimit: cfg.DefaultPageLimit,
		})

		srv := &http.Server{
			Addr:              ":" + cfg.ServerPort,
			Handler:           router,
			ReadHeaderTimeout: 10 * time.Second,
		}

		errCh := make(chan error, 1)
		go func() {
			log.Printf("✅ Server successfully started on %s", srv.Addr)
			log.Printf("🌐 Available at: http://localhost%s/api/v%d/", srv.Addr, handlers.APIVersion)
			errCh <- srv.ListenAndServe()
		}()

		select {
		case err := <-errCh:
			if !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			return nil
		case <-ctx.Done():
		}

		log.Println("🛑 Shutting down server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	},
}
