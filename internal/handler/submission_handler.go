package handler

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/arstudios/intake-api/internal/service"
)

type SubmissionHandler struct {
	svc *service.SubmissionService
}

func NewSubmissionHandler(svc *service.SubmissionService) *SubmissionHandler {
	return &SubmissionHandler{svc: svc}
}

// Submit is the public intake endpoint: multipart form fields plus an
// optional PDF attachment.
func (h *SubmissionHandler) Submit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(16 << 20); err != nil {
		writeError(w, http.StatusBadRequest, "invalid multipart form")
		return
	}

	in := service.CreateInput{
		Name:       r.FormValue("name"),
		Email:      r.FormValue("email"),
		NovelTitle: r.FormValue("novel_title"),
		Synopsis:   r.FormValue("synopsis"),
		Message:    r.FormValue("message"),
	}

	file, header, err := r.FormFile("file")
	switch {
	case err == nil:
		defer file.Close()
		data, err := io.ReadAll(file)
		if err != nil {
			writeError(w, http.StatusInternalServerError, "failed to read file")
			return
		}
		in.HasFile = true
		in.Filename = header.Filename
		in.FileData = data
		in.FileMime = header.Header.Get("Content-Type")
	case errors.Is(err, http.ErrMissingFile):
		// no attachment
	default:
		writeError(w, http.StatusBadRequest, "invalid file field")
		return
	}

	id, err := h.svc.Create(r.Context(), in)
	if err != nil {
		serviceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true, "id": id})
}

func (h *SubmissionHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	page, _ := strconv.Atoi(q.Get("page"))
	pageSize, _ := strconv.Atoi(q.Get("page_size"))

	result, err := h.svc.List(r.Context(), service.ListInput{
		Page:      page,
		PageSize:  pageSize,
		Q:         q.Get("q"),
		Status:    q.Get("status"),
		StartDate: q.Get("start_date"),
		EndDate:   q.Get("end_date"),
	})
	if err != nil {
		serviceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (h *SubmissionHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "submissionId")
	sub, err := h.svc.Get(r.Context(), id)
	if err != nil {
		serviceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, sub)
}

func (h *SubmissionHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "submissionId")
	var in service.UpdateInput
	if err := readJSON(r, &in); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.svc.Update(r.Context(), id, in); err != nil {
		serviceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true})
}

func (h *SubmissionHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "submissionId")
	if err := h.svc.Delete(r.Context(), id); err != nil {
		serviceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true})
}

// Download resolves a submission to its attached PDF.
func (h *SubmissionHandler) Download(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "submissionId")
	data, file, err := h.svc.Download(r.Context(), id)
	if err != nil {
		serviceError(w, err)
		return
	}
	w.Header().Set("Content-Type", file.Mime)
	w.Header().Set("Content-Disposition", fmt.Sprintf(`inline; filename="%s"`, file.Filename))
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.Write(data)
}
