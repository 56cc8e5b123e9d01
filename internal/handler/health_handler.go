package handler

import (
	"context"
	"net/http"
	"os"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

type HealthHandler struct {
	db *mongo.Database
}

func NewHealthHandler(db *mongo.Database) *HealthHandler {
	return &HealthHandler{db: db}
}

func (h *HealthHandler) Root(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"message": "AR Studios API running"})
}

// Test reports store connectivity and configuration presence for quick
// deployment checks.
func (h *HealthHandler) Test(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	resp := map[string]any{
		"backend":           "running",
		"database":          "not available",
		"connection_status": "not connected",
		"collections":       []string{},
		"mongo_uri_set":     os.Getenv("MONGO_URI") != "",
		"mongo_db_set":      os.Getenv("MONGO_DB") != "",
	}

	if err := h.db.Client().Ping(ctx, readpref.Primary()); err == nil {
		resp["database"] = "connected"
		resp["connection_status"] = "connected"
		resp["database_name"] = h.db.Name()
		if names, err := h.db.ListCollectionNames(ctx, bson.D{}); err == nil {
			if len(names) > 10 {
				names = names[:10]
			}
			resp["collections"] = names
		}
	}

	writeJSON(w, http.StatusOK, resp)
}
