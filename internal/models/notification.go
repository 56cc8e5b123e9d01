package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// NotificationLog is a write-only audit record in the "notifications"
// collection. A downstream notifier consumes these; this service never reads
// them back.
type NotificationLog struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	EventID   string             `bson:"event_id"`
	Type      string             `bson:"type"`
	To        string             `bson:"to"`
	Subject   string             `bson:"subject"`
	Payload   Submission         `bson:"payload"`
	CreatedAt time.Time          `bson:"created_at"`
}
