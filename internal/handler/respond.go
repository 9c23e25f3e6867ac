package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"portfolio/internal/repository"
	"portfolio/internal/service"
	"portfolio/internal/storage"
	"portfolio/internal/validation"
)

func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	err := json.NewEncoder(w).Encode(v)
	if err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}

// respondServiceError maps the error taxonomy onto HTTP statuses:
// validation 400, missing records 404, store failures 500.
func respondServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, validation.ErrFileInvalid),
		errors.Is(err, service.ErrTitleRequired):
		respondError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, repository.ErrProfileNotFound),
		errors.Is(err, repository.ErrProjectNotFound),
		errors.Is(err, repository.ErrCertificateNotFound),
		errors.Is(err, storage.ErrObjectNotFound):
		respondError(w, http.StatusNotFound, "Not found")
	default:
		slog.Error("request failed", "error", err)
		respondError(w, http.StatusInternalServerError, "Internal server error")
	}
}
