// internal/app/store/students/studentstore.go
package students

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
	students *mongo.Collection
	services *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{
		students: db.Collection("students"),
		services: db.Collection("services"),
	}
}

// Create inserts a student. CreatedAt/UpdatedAt are set if zero; NameCI
// is derived from Name.
func (s *Store) Create(ctx context.Context, st models.Student) (models.Student, error) {
	now := time.Now().UTC()
	if st.CreatedAt.IsZero() {
		st.CreatedAt = now
	}
	if st.UpdatedAt.IsZero() {
		st.UpdatedAt = now
	}
	st.NameCI = strings.ToLower(st.Name)
	_, err := s.students.InsertOne(ctx, st)
	return st, err
}

// GetByID returns a single student.
func (s *Store) GetByID(ctx context.Context, id string) (models.Student, error) {
	var st models.Student
	err := s.students.FindOne(ctx, bson.M{"_id": id}).Decode(&st)
	return st, err
}

// List returns all students ordered by case-folded name.
func (s *Store) List(ctx context.Context) ([]models.Student, error) {
	opts := options.Find().SetSort(bson.D{{Key: "name_ci", Value: 1}})
	cur, err := s.students.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var out []models.Student
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ListWithServices returns every student together with their services,
// grouped by student id. This is the one read the whole console is built
// from; the roster cache calls it on every refresh.
func (s *Store) ListWithServices(ctx context.Context) ([]models.Student, map[string][]models.Service, error) {
	sts, err := s.List(ctx)
	if err != nil {
		return nil, nil, err
	}

	cur, err := s.services.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}}))
	if err != nil {
		return nil, nil, err
	}
	defer cur.Close(ctx)

	byStudent := make(map[string][]models.Service)
	for cur.Next(ctx) {
		var svc models.Service
		if err := cur.Decode(&svc); err != nil {
			return nil, nil, err
		}
		byStudent[svc.StudentID] = append(byStudent[svc.StudentID], svc)
	}
	if err := cur.Err(); err != nil {
		return nil, nil, err
	}
	return sts, byStudent, nil
}

// ServicesByStudent returns one student's services in creation order.
func (s *Store) ServicesByStudent(ctx context.Context, studentID string) ([]models.Service, error) {
	cur, err := s.services.Find(ctx, bson.M{"student_id": studentID},
		options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var out []models.Service
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// UpdateStatus changes a student's status.
func (s *Store) UpdateStatus(ctx context.Context, id, status string) error {
	res, err := s.students.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{
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

// Delete removes a student. Services are left to the caller; they may be
// retained for billing history.
func (s *Store) Delete(ctx context.Context, id string) error {
	_, err := s.students.DeleteOne(ctx, bson.M{"_id": id})
	return err
}
