// internal/app/system/indexes/indexes.go

// Package indexes creates the MongoDB indexes the stores rely on. Every
// ensure function is idempotent; errors are aggregated so a startup
// problem names all offending collections at once.
package indexes

import (
	"context"
	"errors"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureAll is called at startup, before the roster cache is primed.
func EnsureAll(ctx context.Context, db *mongo.Database) error {
	var problems []string

	if err := ensureStudents(ctx, db); err != nil {
		problems = append(problems, "students: "+err.Error())
	}
	if err := ensureServices(ctx, db); err != nil {
		problems = append(problems, "services: "+err.Error())
	}
	if err := ensureMentors(ctx, db); err != nil {
		problems = append(problems, "mentors: "+err.Error())
	}

	if len(problems) > 0 {
		return errors.New(strings.Join(problems, "; "))
	}
	return nil
}

func ensureStudents(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection("students").Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "name_ci", Value: 1}},
			Options: options.Index().SetName("name_ci_1"),
		},
		{
			Keys:    bson.D{{Key: "status", Value: 1}},
			Options: options.Index().SetName("status_1"),
		},
	})
	return err
}

func ensureServices(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection("services").Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			// The roster rebuild and the team editor both read by student.
			Keys:    bson.D{{Key: "student_id", Value: 1}, {Key: "created_at", Value: 1}},
			Options: options.Index().SetName("student_id_1_created_at_1"),
		},
		{
			Keys:    bson.D{{Key: "parent_id", Value: 1}},
			Options: options.Index().SetName("parent_id_1").SetSparse(true),
		},
	})
	return err
}

func ensureMentors(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection("mentors").Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "name_ci", Value: 1}},
			Options: options.Index().SetName("name_ci_1"),
		},
	})
	return err
}
