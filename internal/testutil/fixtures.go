// internal/testutil/fixtures.go
package testutil

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/lumenadvising/lumenhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/mongo"
)

// Fixtures provides helper methods for creating test data.
type Fixtures struct {
	db *mongo.Database
	t  *testing.T
}

// NewFixtures creates a new Fixtures instance for the given test database.
func NewFixtures(t *testing.T, db *mongo.Database) *Fixtures {
	t.Helper()
	return &Fixtures{db: db, t: t}
}

// DB returns the underlying database for direct access in tests.
func (f *Fixtures) DB() *mongo.Database {
	return f.db
}

// CreateStudent inserts an active student with the given name.
func (f *Fixtures) CreateStudent(ctx context.Context, name string) models.Student {
	f.t.Helper()

	now := time.Now().UTC()
	st := models.Student{
		ID:        uuid.NewString(),
		Name:      name,
		NameCI:    strings.ToLower(name),
		Status:    models.StudentActive,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if _, err := f.db.Collection("students").InsertOne(ctx, st); err != nil {
		f.t.Fatalf("failed to create test student: %v", err)
	}
	return st
}

// CreateService inserts a service for a student.
func (f *Fixtures) CreateService(ctx context.Context, studentID, name, category, status string) models.Service {
	f.t.Helper()

	now := time.Now().UTC()
	svc := models.Service{
		ID:        uuid.NewString(),
		StudentID: studentID,
		Name:      name,
		Category:  category,
		Status:    status,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if _, err := f.db.Collection("services").InsertOne(ctx, svc); err != nil {
		f.t.Fatalf("failed to create test service: %v", err)
	}
	return svc
}

// CreateServiceWith inserts a fully specified service record, for tests
// exercising the raw staffing shapes or parent/child links.
func (f *Fixtures) CreateServiceWith(ctx context.Context, svc models.Service) models.Service {
	f.t.Helper()

	now := time.Now().UTC()
	if svc.ID == "" {
		svc.ID = uuid.NewString()
	}
	if svc.CreatedAt.IsZero() {
		svc.CreatedAt = now
	}
	if svc.UpdatedAt.IsZero() {
		svc.UpdatedAt = now
	}
	if _, err := f.db.Collection("services").InsertOne(ctx, svc); err != nil {
		f.t.Fatalf("failed to create test service: %v", err)
	}
	return svc
}

// CreateMentor inserts a mentor directory entry.
func (f *Fixtures) CreateMentor(ctx context.Context, id int64, name string) models.Mentor {
	f.t.Helper()

	now := time.Now().UTC()
	m := models.Mentor{
		ID:        id,
		Name:      name,
		NameCI:    strings.ToLower(name),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if _, err := f.db.Collection("mentors").InsertOne(ctx, m); err != nil {
		f.t.Fatalf("failed to create test mentor: %v", err)
	}
	return m
}
