package router

import (
	"github.com/go-chi/chi/v5"

	"github.com/arstudios/intake-api/internal/auth"
	"github.com/arstudios/intake-api/internal/handler"
	mw "github.com/arstudios/intake-api/internal/middleware"
)

func New(
	jwtSecret string,
	adminEmail string,
	healthH *handler.HealthHandler,
	authH *handler.AuthHandler,
	subH *handler.SubmissionHandler,
	fileH *handler.FileHandler,
) *chi.Mux {
	r := chi.NewRouter()

	// Global middleware
	r.Use(mw.Recovery)
	r.Use(mw.Logger)
	r.Use(mw.CORS)

	r.Get("/", healthH.Root)
	r.Get("/test", healthH.Test)

	r.Route("/api", func(r chi.Router) {
		// Public routes
		r.Post("/submit", subH.Submit)
		r.Get("/files/{fileId}", fileH.Get)
		r.Post("/admin/login", authH.Login)

		// Admin routes
		r.Route("/admin/submissions", func(r chi.Router) {
			r.Use(auth.Middleware(jwtSecret, adminEmail))

			r.Get("/", subH.List)
			r.Get("/{submissionId}", subH.Get)
			r.Patch("/{submissionId}", subH.Update)
			r.Delete("/{submissionId}", subH.Delete)
			r.Get("/{submissionId}/download", subH.Download)
		})
	})

	return r
}
