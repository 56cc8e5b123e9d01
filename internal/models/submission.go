package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Status is the review state of a submission.
type Status string

const (
	StatusPending   Status = "Pending"
	StatusInReview  Status = "In Review"
	StatusApproved  Status = "Approved"
	StatusCompleted Status = "Completed"
)

// ValidStatus reports whether s is one of the four known states.
func ValidStatus(s Status) bool {
	switch s {
	case StatusPending, StatusInReview, StatusApproved, StatusCompleted:
		return true
	}
	return false
}

// Submission is an author proposal as stored in the "submission" collection.
type Submission struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	Name        string             `bson:"name" json:"name"`
	Email       string             `bson:"email" json:"email"`
	NovelTitle  string             `bson:"novel_title" json:"novel_title"`
	Synopsis    string             `bson:"synopsis" json:"synopsis"`
	Message     string             `bson:"message,omitempty" json:"message,omitempty"`
	FileURL     string             `bson:"file_url,omitempty" json:"file_url,omitempty"`
	FileKey     string             `bson:"file_key,omitempty" json:"file_key,omitempty"`
	Status      Status             `bson:"status" json:"status"`
	Notes       []string           `bson:"notes" json:"notes"`
	SubmittedAt time.Time          `bson:"submitted_at" json:"submitted_at"`
	UpdatedAt   *time.Time         `bson:"updated_at,omitempty" json:"updated_at,omitempty"`
}

// SubmissionResponse is the client-facing shape: the store id surfaced as a
// plain string, internal _id hidden.
type SubmissionResponse struct {
	ID string `json:"id"`
	Submission
}

func (s *Submission) ToResponse() SubmissionResponse {
	return SubmissionResponse{ID: s.ID.Hex(), Submission: *s}
}

// SubmissionQuery carries the admin list filters down to the store.
// Start and End are inclusive bounds on submitted_at.
type SubmissionQuery struct {
	Q      string
	Status string
	Start  *time.Time
	End    *time.Time
	Skip   int64
	Limit  int64
}
