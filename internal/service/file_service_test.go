package service_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/arstudios/intake-api/internal/repository"
	"github.com/arstudios/intake-api/internal/service"
)

func TestFileStoreFetchRoundTrip(t *testing.T) {
	store := newFakeFileStore()
	svc := service.NewFileService(store)

	raw := []byte{0x25, 0x50, 0x44, 0x46, 0x00, 0xFF, 0xFE}
	id, err := svc.Store(context.Background(), "a.pdf", raw, "application/pdf")
	if err != nil {
		t.Fatalf("store: %v", err)
	}

	// Persisted form is text-safe, not the raw bytes.
	if bytes.Contains([]byte(store.byID[id].ContentB64), []byte{0x00}) {
		t.Fatal("stored body is not encoded")
	}

	data, file, err := svc.Fetch(context.Background(), id)
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if !bytes.Equal(data, raw) {
		t.Fatal("decoded bytes differ from original")
	}
	if file.Mime != "application/pdf" {
		t.Fatalf("unexpected mime %q", file.Mime)
	}
}

func TestFileStoreDefaultsMime(t *testing.T) {
	store := newFakeFileStore()
	svc := service.NewFileService(store)

	id, err := svc.Store(context.Background(), "a.pdf", []byte("x"), "")
	if err != nil {
		t.Fatalf("store: %v", err)
	}
	if store.byID[id].Mime != "application/pdf" {
		t.Fatalf("expected default mime, got %q", store.byID[id].Mime)
	}
}

func TestFileFetchUnknownIDIsNotFound(t *testing.T) {
	svc := service.NewFileService(newFakeFileStore())
	_, _, err := svc.Fetch(context.Background(), primitive.NewObjectID().Hex())
	if !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
