package middleware

import (
	"strings"
)

// IsQuietRoute проверяет, нужно ли пропускать маршрут в журнале запросов
// (служебные проверки вроде /health).
func IsQuietRoute(path string) bool {
	quietRoutes := []string{
		"/health",
		"/favicon.ico",
	}

	for _, route := range quietRoutes {
		if path == route {
			return true
		}
	}

	// Для подпутей
	return strings.HasPrefix(path, "/health/")
}
