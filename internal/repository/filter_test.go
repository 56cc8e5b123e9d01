package repository

import (
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/arstudios/intake-api/internal/models"
)

func TestBuildFilterEmpty(t *testing.T) {
	filter := buildFilter(models.SubmissionQuery{})
	if len(filter) != 0 {
		t.Fatalf("expected empty filter, got %v", filter)
	}
}

func TestBuildFilterStatus(t *testing.T) {
	filter := buildFilter(models.SubmissionQuery{Status: "Approved"})
	if filter["status"] != "Approved" {
		t.Fatalf("status filter missing: %v", filter)
	}
	if _, ok := filter["$or"]; ok {
		t.Fatal("unexpected $or clause")
	}
}

func TestBuildFilterTextSearch(t *testing.T) {
	filter := buildFilter(models.SubmissionQuery{Q: "a.b"})
	or, ok := filter["$or"].(bson.A)
	if !ok || len(or) != 3 {
		t.Fatalf("expected 3-way $or, got %v", filter["$or"])
	}

	fields := map[string]bool{}
	for _, clause := range or {
		m := clause.(bson.M)
		for field, v := range m {
			fields[field] = true
			re, ok := v.(primitive.Regex)
			if !ok {
				t.Fatalf("%s clause is not a regex: %v", field, v)
			}
			if re.Options != "i" {
				t.Fatalf("%s regex not case-insensitive", field)
			}
			// The query text is matched literally, not as a pattern.
			if re.Pattern != `a\.b` {
				t.Fatalf("pattern not escaped: %q", re.Pattern)
			}
		}
	}
	for _, field := range []string{"name", "email", "novel_title"} {
		if !fields[field] {
			t.Fatalf("field %s missing from $or", field)
		}
	}
}

func TestBuildFilterDateRange(t *testing.T) {
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)

	filter := buildFilter(models.SubmissionQuery{Start: &start, End: &end})
	bounds, ok := filter["submitted_at"].(bson.M)
	if !ok {
		t.Fatalf("submitted_at bounds missing: %v", filter)
	}
	if bounds["$gte"] != start || bounds["$lte"] != end {
		t.Fatalf("unexpected bounds: %v", bounds)
	}

	filter = buildFilter(models.SubmissionQuery{Start: &start})
	bounds = filter["submitted_at"].(bson.M)
	if _, ok := bounds["$lte"]; ok {
		t.Fatal("upper bound set without end date")
	}
	if bounds["$gte"] != start {
		t.Fatalf("lower bound missing: %v", bounds)
	}
}
