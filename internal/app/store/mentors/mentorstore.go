// internal/app/store/mentors/mentorstore.go
package mentors

import (
	"context"
	"strings"
	"time"

	"github.com/lumenadvising/lumenhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("mentors")}
}

// Create inserts a mentor directory entry.
func (s *Store) Create(ctx context.Context, m models.Mentor) (models.Mentor, error) {
	now := time.Now().UTC()
	if m.CreatedAt.IsZero() {
		m.CreatedAt = now
	}
	if m.UpdatedAt.IsZero() {
		m.UpdatedAt = now
	}
	m.NameCI = strings.ToLower(m.Name)
	_, err := s.c.InsertOne(ctx, m)
	return m, err
}

// GetByID returns a single mentor.
func (s *Store) GetByID(ctx context.Context, id int64) (models.Mentor, error) {
	var m models.Mentor
	err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&m)
	return m, err
}

// List returns the whole directory ordered by case-folded name. The
// directory is small (staff, not students), so no paging.
func (s *Store) List(ctx context.Context) ([]models.Mentor, error) {
	cur, err := s.c.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "name_ci", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var out []models.Mentor
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Delete removes a mentor from the directory. Existing role assignments
// keep their copied name; they are not rewritten.
func (s *Store) Delete(ctx context.Context, id int64) error {
	_, err := s.c.DeleteOne(ctx, bson.M{"_id": id})
	return err
}
