package services

import (
	"errors"
	"testing"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/lumenadvising/lumenhub/internal/domain/models"
	"github.com/lumenadvising/lumenhub/internal/testutil"
)

func TestStore_CreateAndGet(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	created, err := store.Create(ctx, models.Service{
		ID:        "svc-1",
		StudentID: "stu-1",
		Name:      "美本申请",
		Category:  "留学申请",
		Status:    models.ServiceInProgress,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if created.CreatedAt.IsZero() {
		t.Error("CreatedAt not set on create")
	}

	got, err := store.GetByID(ctx, "svc-1")
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.Name != "美本申请" || got.StudentID != "stu-1" {
		t.Errorf("got %+v, want the created service back", got)
	}
}

func TestStore_SaveMentorRoles(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := New(db)
	fix := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	// Seed a record still carrying both raw staffing shapes.
	svc := fix.CreateServiceWith(ctx, models.Service{
		StudentID: "stu-1",
		Name:      "美本申请",
		Status:    models.ServiceInProgress,
		Assignments: []models.AssignmentRow{
			{MentorID: "1", Name: "A", RoleKey: "primary", RoleName: "主导师"},
		},
		Mentors: []models.LegacyMentorRow{
			{ID: "2", Name: "B", Role: "essay"},
		},
	})

	roles := []models.MentorRole{
		{RoleKey: "primary", RoleName: "主导师", Members: []models.MentorTeamMember{
			{ID: 1, Name: "A", RoleKey: "primary", RoleName: "主导师", IsPrimary: true},
		}},
	}
	if err := store.SaveMentorRoles(ctx, svc.ID, roles); err != nil {
		t.Fatalf("SaveMentorRoles: %v", err)
	}

	got, err := store.GetByID(ctx, svc.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if len(got.Roles) != 1 || got.Roles[0].RoleKey != "primary" {
		t.Errorf("Roles = %+v, want the saved canonical structure", got.Roles)
	}
	if len(got.Roles[0].Members) != 1 || !got.Roles[0].Members[0].IsPrimary {
		t.Errorf("Members = %+v, want member 1 flagged primary", got.Roles[0].Members)
	}

	// Raw shapes must be gone once the canonical structure is saved.
	var raw bson.M
	if err := db.Collection("services").FindOne(ctx, bson.M{"_id": svc.ID}).Decode(&raw); err != nil {
		t.Fatalf("raw lookup: %v", err)
	}
	if _, ok := raw["assignments"]; ok {
		t.Error("assignments field still present after save")
	}
	if _, ok := raw["mentors"]; ok {
		t.Error("mentors field still present after save")
	}
}

func TestStore_SaveMentorRoles_UnknownService(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	err := store.SaveMentorRoles(ctx, "nope", nil)
	if !errors.Is(err, mongo.ErrNoDocuments) {
		t.Errorf("err = %v, want mongo.ErrNoDocuments", err)
	}
}

func TestStore_SaveStatus(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := New(db)
	fix := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	svc := fix.CreateService(ctx, "stu-1", "雅思培训", "语言培训", models.ServiceInProgress)
	if err := store.SaveStatus(ctx, svc.ID, models.ServiceCompleted); err != nil {
		t.Fatalf("SaveStatus: %v", err)
	}

	got, err := store.GetByID(ctx, svc.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.Status != models.ServiceCompleted {
		t.Errorf("Status = %q, want completed", got.Status)
	}
	if !got.UpdatedAt.After(svc.UpdatedAt) {
		t.Error("UpdatedAt not advanced by status save")
	}

	if err := store.SaveStatus(ctx, "nope", models.ServicePaused); !errors.Is(err, mongo.ErrNoDocuments) {
		t.Errorf("err = %v, want mongo.ErrNoDocuments for unknown service", err)
	}
}

func TestStore_DeleteByStudent(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := New(db)
	fix := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	fix.CreateService(ctx, "stu-1", "a", "", models.ServiceInProgress)
	fix.CreateService(ctx, "stu-1", "b", "", models.ServiceInProgress)
	fix.CreateService(ctx, "stu-2", "c", "", models.ServiceInProgress)

	n, err := store.DeleteByStudent(ctx, "stu-1")
	if err != nil {
		t.Fatalf("DeleteByStudent: %v", err)
	}
	if n != 2 {
		t.Errorf("deleted %d, want 2", n)
	}
	remaining, err := db.Collection("services").CountDocuments(ctx, bson.M{"student_id": "stu-2"})
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if remaining != 1 {
		t.Errorf("other student has %d services after delete, want 1", remaining)
	}
}
