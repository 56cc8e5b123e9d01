package service

import (
	"context"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/arstudios/intake-api/internal/models"
	"github.com/arstudios/intake-api/internal/repository"
)

// MaxFileSize is the inclusive upload limit for attached PDFs.
const MaxFileSize = 10 << 20 // 10 MiB

// ValidationError marks bad caller input; handlers map it to a 400.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

// SubmissionStore is the persistence contract for submissions.
type SubmissionStore interface {
	Insert(ctx context.Context, sub *models.Submission) (string, error)
	FindByID(ctx context.Context, id string) (*models.Submission, error)
	Find(ctx context.Context, q models.SubmissionQuery) ([]models.Submission, int64, error)
	AppendNote(ctx context.Context, id, note string) error
	Update(ctx context.Context, id string, status *models.Status, updatedAt time.Time) error
	Delete(ctx context.Context, id string) error
}

// NotificationSink records submission events for the downstream notifier.
type NotificationSink interface {
	Log(ctx context.Context, entry *models.NotificationLog) error
}

type SubmissionService struct {
	subs          SubmissionStore
	files         *FileService
	notifications NotificationSink
	studioEmail   string
}

func NewSubmissionService(subs SubmissionStore, files *FileService, notifications NotificationSink, studioEmail string) *SubmissionService {
	return &SubmissionService{subs: subs, files: files, notifications: notifications, studioEmail: studioEmail}
}

// CreateInput is a public submission. HasFile distinguishes "no file" from an
// empty upload.
type CreateInput struct {
	Name       string
	Email      string
	NovelTitle string
	Synopsis   string
	Message    string

	HasFile  bool
	Filename string
	FileData []byte
	FileMime string
}

// Create validates and persists a new submission, storing the optional PDF
// first and logging a notification event after. The file and notification
// writes are not rolled back if a later write fails.
func (s *SubmissionService) Create(ctx context.Context, in CreateInput) (string, error) {
	if err := validateCreate(in); err != nil {
		return "", err
	}

	sub := &models.Submission{
		Name:        in.Name,
		Email:       in.Email,
		NovelTitle:  in.NovelTitle,
		Synopsis:    in.Synopsis,
		Message:     in.Message,
		Status:      models.StatusPending,
		Notes:       []string{},
		SubmittedAt: time.Now().UTC(),
	}

	if in.HasFile {
		fileID, err := s.files.Store(ctx, in.Filename, in.FileData, in.FileMime)
		if err != nil {
			return "", err
		}
		sub.FileKey = fileID
		sub.FileURL = "/api/files/" + fileID
	}

	id, err := s.subs.Insert(ctx, sub)
	if err != nil {
		return "", err
	}

	entry := &models.NotificationLog{
		EventID:   uuid.NewString(),
		Type:      "new_submission",
		To:        s.studioEmail,
		Subject:   fmt.Sprintf("New Submission: %s", in.NovelTitle),
		Payload:   *sub,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.notifications.Log(ctx, entry); err != nil {
		return "", err
	}

	return id, nil
}

func validateCreate(in CreateInput) error {
	if in.Name == "" || in.Email == "" || in.NovelTitle == "" || in.Synopsis == "" {
		return &ValidationError{Msg: "name, email, novel_title and synopsis are required"}
	}
	if _, err := mail.ParseAddress(in.Email); err != nil {
		return &ValidationError{Msg: "invalid email address"}
	}
	if in.HasFile {
		if !strings.HasSuffix(strings.ToLower(in.Filename), ".pdf") {
			return &ValidationError{Msg: "Only PDF uploads are allowed"}
		}
		if len(in.FileData) > MaxFileSize {
			return &ValidationError{Msg: "File too large (max 10MB)"}
		}
	}
	return nil
}

// ListInput carries the raw admin query parameters. Dates are ISO-8601
// strings and fail parsing before any store call.
type ListInput struct {
	Page      int
	PageSize  int
	Q         string
	Status    string
	StartDate string
	EndDate   string
}

type ListResult struct {
	Items    []models.SubmissionResponse `json:"items"`
	Total    int64                       `json:"total"`
	Page     int                         `json:"page"`
	PageSize int                         `json:"page_size"`
}

func (s *SubmissionService) List(ctx context.Context, in ListInput) (*ListResult, error) {
	if in.Page < 1 {
		in.Page = 1
	}
	if in.PageSize < 1 {
		in.PageSize = 10
	}

	query := models.SubmissionQuery{
		Q:      in.Q,
		Status: in.Status,
		Skip:   int64((in.Page - 1) * in.PageSize),
		Limit:  int64(in.PageSize),
	}
	if in.StartDate != "" {
		t, err := parseDate(in.StartDate)
		if err != nil {
			return nil, &ValidationError{Msg: "invalid start_date"}
		}
		query.Start = &t
	}
	if in.EndDate != "" {
		t, err := parseDate(in.EndDate)
		if err != nil {
			return nil, &ValidationError{Msg: "invalid end_date"}
		}
		query.End = &t
	}

	subs, total, err := s.subs.Find(ctx, query)
	if err != nil {
		return nil, err
	}

	items := make([]models.SubmissionResponse, 0, len(subs))
	for i := range subs {
		items = append(items, subs[i].ToResponse())
	}
	return &ListResult{Items: items, Total: total, Page: in.Page, PageSize: in.PageSize}, nil
}

func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", s)
}

func (s *SubmissionService) Get(ctx context.Context, id string) (*models.SubmissionResponse, error) {
	sub, err := s.subs.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := sub.ToResponse()
	return &resp, nil
}

// UpdateInput is the admin PATCH body. Both fields are optional.
type UpdateInput struct {
	Status  *models.Status `json:"status"`
	AddNote *string        `json:"add_note"`
}

// Update appends the note (if any), then sets status and updated_at.
// updated_at is touched even when neither field is provided. The note push
// and the status set are two separate store writes, not one atomic update.
func (s *SubmissionService) Update(ctx context.Context, id string, in UpdateInput) error {
	if in.Status != nil && !models.ValidStatus(*in.Status) {
		return &ValidationError{Msg: "invalid status"}
	}
	if in.AddNote != nil && *in.AddNote != "" {
		if err := s.subs.AppendNote(ctx, id, *in.AddNote); err != nil {
			return err
		}
	}
	return s.subs.Update(ctx, id, in.Status, time.Now().UTC())
}

// Delete removes the submission. Unknown ids succeed, and an attached file is
// not reclaimed.
func (s *SubmissionService) Delete(ctx context.Context, id string) error {
	return s.subs.Delete(ctx, id)
}

// Download resolves a submission to its attached file.
func (s *SubmissionService) Download(ctx context.Context, id string) ([]byte, *models.StoredFile, error) {
	sub, err := s.subs.FindByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	if sub.FileKey == "" {
		return nil, nil, repository.ErrNotFound
	}
	return s.files.Fetch(ctx, sub.FileKey)
}
