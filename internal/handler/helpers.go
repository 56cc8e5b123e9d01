package handler

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/arstudios/intake-api/internal/repository"
	"github.com/arstudios/intake-api/internal/service"
)

func readJSON(r *http.Request, v any) error {
	defer r.Body.Close()
	return json.NewDecoder(r.Body).Decode(v)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// serviceError maps service failures onto the response taxonomy: validation
// 400, missing record 404, anything else an opaque 500.
func serviceError(w http.ResponseWriter, err error) {
	var verr *service.ValidationError
	switch {
	case errors.As(err, &verr):
		writeError(w, http.StatusBadRequest, verr.Msg)
	case errors.Is(err, repository.ErrNotFound):
		writeError(w, http.StatusNotFound, "not found")
	default:
		log.Printf("Warning: request failed: %v", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}
