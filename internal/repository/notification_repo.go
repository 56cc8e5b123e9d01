package repository

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/arstudios/intake-api/internal/models"
)

const NotificationsCollection = "notifications"

// NotificationRepo is a write-only sink; nothing in this service reads the
// records back.
type NotificationRepo struct {
	coll *mongo.Collection
}

func NewNotificationRepo(db *mongo.Database) *NotificationRepo {
	return &NotificationRepo{coll: db.Collection(NotificationsCollection)}
}

func (r *NotificationRepo) Log(ctx context.Context, entry *models.NotificationLog) error {
	if _, err := r.coll.InsertOne(ctx, entry); err != nil {
		return fmt.Errorf("insert notification: %w", err)
	}
	return nil
}
