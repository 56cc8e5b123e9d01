package repository

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/arstudios/intake-api/internal/models"
)

const SubmissionsCollection = "submission"

// ErrNotFound is returned when a record (or a well-formed id for one) does
// not exist in its collection.
var ErrNotFound = errors.New("not found")

type SubmissionRepo struct {
	coll *mongo.Collection
}

func NewSubmissionRepo(db *mongo.Database) *SubmissionRepo {
	return &SubmissionRepo{coll: db.Collection(SubmissionsCollection)}
}

func (r *SubmissionRepo) EnsureIndexes(ctx context.Context) error {
	_, err := r.coll.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "submitted_at", Value: -1}}},
		{Keys: bson.D{{Key: "status", Value: 1}}},
	})
	return err
}

func (r *SubmissionRepo) Insert(ctx context.Context, sub *models.Submission) (string, error) {
	res, err := r.coll.InsertOne(ctx, sub)
	if err != nil {
		return "", fmt.Errorf("insert submission: %w", err)
	}
	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", fmt.Errorf("insert submission: unexpected id type %T", res.InsertedID)
	}
	sub.ID = oid
	return oid.Hex(), nil
}

func (r *SubmissionRepo) FindByID(ctx context.Context, id string) (*models.Submission, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}
	var sub models.Submission
	err = r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&sub)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find submission: %w", err)
	}
	return &sub, nil
}

// Find returns one page of submissions newest-first, plus the total count
// matching the filter before pagination.
func (r *SubmissionRepo) Find(ctx context.Context, q models.SubmissionQuery) ([]models.Submission, int64, error) {
	filter := buildFilter(q)

	total, err := r.coll.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("count submissions: %w", err)
	}

	cur, err := r.coll.Find(ctx, filter, options.Find().
		SetSort(bson.D{{Key: "submitted_at", Value: -1}}).
		SetSkip(q.Skip).
		SetLimit(q.Limit))
	if err != nil {
		return nil, 0, fmt.Errorf("find submissions: %w", err)
	}
	var subs []models.Submission
	if err := cur.All(ctx, &subs); err != nil {
		return nil, 0, fmt.Errorf("decode submissions: %w", err)
	}
	return subs, total, nil
}

// AppendNote pushes a note onto the submission's notes list. A missing id is
// a silent no-op, same as the update below.
func (r *SubmissionRepo) AppendNote(ctx context.Context, id, note string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrNotFound
	}
	_, err = r.coll.UpdateByID(ctx, oid, bson.M{"$push": bson.M{"notes": note}})
	return err
}

// Update sets updated_at and, when provided, the status. Issued separately
// from AppendNote: the two writes are deliberately not atomic.
func (r *SubmissionRepo) Update(ctx context.Context, id string, status *models.Status, updatedAt time.Time) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrNotFound
	}
	set := bson.M{"updated_at": updatedAt}
	if status != nil {
		set["status"] = *status
	}
	_, err = r.coll.UpdateByID(ctx, oid, bson.M{"$set": set})
	return err
}

// Delete removes the submission if present. Deleting an unknown id succeeds.
func (r *SubmissionRepo) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrNotFound
	}
	_, err = r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	return err
}

// buildFilter translates admin list filters into a store query: exact status
// match, case-insensitive substring match across name/email/novel_title, and
// an inclusive submitted_at range.
func buildFilter(q models.SubmissionQuery) bson.M {
	filter := bson.M{}
	if q.Status != "" {
		filter["status"] = q.Status
	}
	if q.Q != "" {
		re := primitive.Regex{Pattern: regexp.QuoteMeta(q.Q), Options: "i"}
		filter["$or"] = bson.A{
			bson.M{"name": re},
			bson.M{"email": re},
			bson.M{"novel_title": re},
		}
	}
	if q.Start != nil || q.End != nil {
		bounds := bson.M{}
		if q.Start != nil {
			bounds["$gte"] = *q.Start
		}
		if q.End != nil {
			bounds["$lte"] = *q.End
		}
		filter["submitted_at"] = bounds
	}
	return filter
}
