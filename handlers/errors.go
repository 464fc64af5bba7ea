package handlers

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"school-backend/models"
)

// handleStoreError переводит доменные ошибки в HTTP-ответ.
func handleStoreError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, models.ErrNotFound), errors.Is(err, models.ErrNotEnrolled):
		respondError(w, r, http.StatusNotFound, domainMessage(err))
	default:
		log.Printf("❌ %s %s: %v", r.Method, r.URL.Path, err)
		respondError(w, r, http.StatusInternalServerError, "Internal server error")
	}
}

// domainMessage strips the sentinel prefix ("not found: ...") from a wrapped error.
func domainMessage(err error) string {
	msg := err.Error()
	for _, sentinel := range []error{models.ErrNotFound, models.ErrNotEnrolled} {
		msg = strings.TrimPrefix(msg, sentinel.Error()+": ")
	}
	return msg
}
