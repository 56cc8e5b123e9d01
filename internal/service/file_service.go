package service

import (
	"context"
	"encoding/base64"
	"fmt"

	"github.com/arstudios/intake-api/internal/models"
)

// FileStore is the persistence contract for uploaded attachments.
type FileStore interface {
	Save(ctx context.Context, file *models.StoredFile) (string, error)
	FindByID(ctx context.Context, id string) (*models.StoredFile, error)
}

// FileService persists attachment bytes base64-encoded in the document store.
// A stand-in for real blob storage: the key -> bytes + content-type contract
// would survive a swap to an object store.
type FileService struct {
	files FileStore
}

func NewFileService(files FileStore) *FileService {
	return &FileService{files: files}
}

// Store encodes and persists an upload, returning the new file's id.
func (s *FileService) Store(ctx context.Context, filename string, data []byte, mime string) (string, error) {
	if mime == "" {
		mime = "application/pdf"
	}
	file := &models.StoredFile{
		Filename:   filename,
		ContentB64: base64.StdEncoding.EncodeToString(data),
		Mime:       mime,
	}
	return s.files.Save(ctx, file)
}

// Fetch returns the decoded bytes and record for a stored file.
func (s *FileService) Fetch(ctx context.Context, id string) ([]byte, *models.StoredFile, error) {
	file, err := s.files.FindByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	data, err := base64.StdEncoding.DecodeString(file.ContentB64)
	if err != nil {
		return nil, nil, fmt.Errorf("decode file %s: %w", id, err)
	}
	return data, file, nil
}
