package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/arstudios/intake-api/internal/service"
)

type FileHandler struct {
	svc *service.FileService
}

func NewFileHandler(svc *service.FileService) *FileHandler {
	return &FileHandler{svc: svc}
}

// Get serves a stored file's raw bytes with its stored MIME type.
func (h *FileHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "fileId")
	data, file, err := h.svc.Fetch(r.Context(), id)
	if err != nil {
		serviceError(w, err)
		return
	}
	w.Header().Set("Content-Type", file.Mime)
	w.Header().Set("Content-Disposition", fmt.Sprintf(`inline; filename="%s"`, file.Filename))
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.Write(data)
}
