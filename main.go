package main

import (
	"context"
	"io"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/arstudios/intake-api/internal/config"
	"github.com/arstudios/intake-api/internal/db"
	"github.com/arstudios/intake-api/internal/gelf"
	"github.com/arstudios/intake-api/internal/handler"
	"github.com/arstudios/intake-api/internal/repository"
	"github.com/arstudios/intake-api/internal/router"
	"github.com/arstudios/intake-api/internal/service"
)

func main() {
	// Optional .env for local development; the environment wins.
	_ = godotenv.Load()
	cfg := config.Load()

	// GELF UDP logging
	if cfg.GelfAddr != "" {
		gelfWriter, err := gelf.New(cfg.GelfAddr)
		if err != nil {
			log.Printf("Warning: GELF init failed: %v", err)
		} else {
			log.SetOutput(io.MultiWriter(os.Stderr, gelfWriter))
			log.Printf("GELF logging: enabled (%s)", cfg.GelfAddr)
		}
	}

	// Connect to MongoDB
	database, disconnect, err := db.Connect(cfg.MongoURI, cfg.MongoDB)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer disconnect()
	log.Printf("Connected to MongoDB (database: %s)", cfg.MongoDB)

	// Repositories
	subRepo := repository.NewSubmissionRepo(database)
	fileRepo := repository.NewFileRepo(database)
	notifRepo := repository.NewNotificationRepo(database)

	// Services
	authSvc, err := service.NewAuthService(cfg.AdminEmail, cfg.AdminPass, cfg.JWTSecret)
	if err != nil {
		log.Fatalf("Failed to prepare admin identity: %v", err)
	}
	fileSvc := service.NewFileService(fileRepo)
	subSvc := service.NewSubmissionService(subRepo, fileSvc, notifRepo, cfg.StudioEmail)

	// Handlers
	healthH := handler.NewHealthHandler(database)
	authH := handler.NewAuthHandler(authSvc)
	subH := handler.NewSubmissionHandler(subSvc)
	fileH := handler.NewFileHandler(fileSvc)

	// Router
	r := router.New(cfg.JWTSecret, cfg.AdminEmail, healthH, authH, subH, fileH)

	// Index creation runs in the background so startup never blocks on it.
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := subRepo.EnsureIndexes(ctx); err != nil {
			log.Printf("Warning: submission index creation failed: %v", err)
		} else {
			log.Printf("Background init: submission indexes ready")
		}
	}()

	log.Printf("Intake API server starting on %s", cfg.Addr)
	if err := http.ListenAndServe(cfg.Addr, r); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
