package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"
)

type Pinger interface {
	Ping(ctx context.Context) error
}

func healthHandler(db Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		status, database, code := "ok", "up", http.StatusOK
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()
		if err := db.Ping(ctx); err != nil {
			status, database, code = "degraded", "down", http.StatusServiceUnavailable
		}

		response := map[string]interface{}{
			"status":    status,
			"service":   "school-backend",
			"database":  database,
			"timestamp": time.Now().Format(time.RFC3339),
		}

		w.WriteHeader(code)
		json.NewEncoder(w).Encode(response)
	}
}
