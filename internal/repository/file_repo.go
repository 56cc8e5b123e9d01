package repository

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/arstudios/intake-api/internal/models"
)

const FilesCollection = "submission_files"

type FileRepo struct {
	coll *mongo.Collection
}

func NewFileRepo(db *mongo.Database) *FileRepo {
	return &FileRepo{coll: db.Collection(FilesCollection)}
}

func (r *FileRepo) Save(ctx context.Context, file *models.StoredFile) (string, error) {
	res, err := r.coll.InsertOne(ctx, file)
	if err != nil {
		return "", fmt.Errorf("insert file: %w", err)
	}
	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", fmt.Errorf("insert file: unexpected id type %T", res.InsertedID)
	}
	file.ID = oid
	return oid.Hex(), nil
}

func (r *FileRepo) FindByID(ctx context.Context, id string) (*models.StoredFile, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}
	var file models.StoredFile
	err = r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&file)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find file: %w", err)
	}
	return &file, nil
}
