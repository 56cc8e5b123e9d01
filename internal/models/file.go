package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// StoredFile is an uploaded PDF persisted in the "submission_files"
// collection. The body is kept base64-encoded so the record stays a plain
// text document. Immutable once created.
type StoredFile struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	Filename   string             `bson:"filename" json:"filename"`
	ContentB64 string             `bson:"content_b64" json:"-"`
	Mime       string             `bson:"mime" json:"mime"`
}
