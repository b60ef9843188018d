// internal/app/store/services/servicestore.go

// Package services is the persistence gateway for service records. The
// team editor's diff output lands here: one SaveMentorRoles call per
// changed service, fired concurrently by the feature layer.
package services

import (
	"context"
	"time"

	"github.com/lumenadvising/lumenhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("services")}
}

// Create inserts a service record.
func (s *Store) Create(ctx context.Context, svc models.Service) (models.Service, error) {
	now := time.Now().UTC()
	if svc.CreatedAt.IsZero() {
		svc.CreatedAt = now
	}
	if svc.UpdatedAt.IsZero() {
		svc.UpdatedAt = now
	}
	_, err := s.c.InsertOne(ctx, svc)
	return svc, err
}

// GetByID returns a single service.
func (s *Store) GetByID(ctx context.Context, id string) (models.Service, error) {
	var svc models.Service
	err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&svc)
	return svc, err
}

// SaveMentorRoles replaces a service's canonical role structure. The raw
// staffing shapes are cleared at the same time: once the editor has saved,
// the canonical roles are the single source of truth for that service.
func (s *Store) SaveMentorRoles(ctx context.Context, id string, roles []models.MentorRole) error {
	res, err := s.c.UpdateOne(ctx, bson.M{"_id": id}, bson.M{
		"$set": bson.M{
			"roles":      roles,
			"updated_at": time.Now().UTC(),
		},
		"$unset": bson.M{
			"assignments": "",
			"mentors":     "",
		},
	})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// SaveStatus updates a service's workflow status.
func (s *Store) SaveStatus(ctx context.Context, id, status string) error {
	res, err := s.c.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{
		"status":     status,
		"updated_at": time.Now().UTC(),
	}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// DeleteByStudent removes all services of one student. Returns the number
// of documents deleted.
func (s *Store) DeleteByStudent(ctx context.Context, studentID string) (int64, error) {
	res, err := s.c.DeleteMany(ctx, bson.M{"student_id": studentID})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}
