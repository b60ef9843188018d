// internal/domain/models/service.go
package models

import "time"

// Service statuses as stored in the services collection.
const (
	ServiceNotStarted = "not_started"
	ServicePreparing  = "preparing"
	ServiceInProgress = "in_progress"
	ServiceApplying   = "applying"
	ServicePaused     = "paused"
	ServiceCancelled  = "cancelled"
	ServiceCompleted  = "completed"
)

// Service is one engagement a student has purchased (e.g. a US undergrad
// application package or an IELTS course).
//
// Mentor staffing arrives in one of two shapes, and both are kept on the
// document so older records keep working:
//   - Assignments: structured per-role rows (authoritative when non-empty)
//   - Mentors: the legacy flat mentor list with looser field naming
//
// Roles is the canonical per-role structure the editor saves back; it is
// what SaveMentorRoles writes. Readers should not consume Roles directly —
// the mentorteam package folds all three shapes into one aggregate view.
type Service struct {
	ID        string `bson:"_id" json:"id"`
	StudentID string `bson:"student_id" json:"student_id"`

	Name     string `bson:"name" json:"name"`
	Category string `bson:"category,omitempty" json:"category,omitempty"`

	// Status: not_started | preparing | in_progress | applying | paused |
	// cancelled | completed
	Status string `bson:"status" json:"status"`

	// ParentID links a sub-service (e.g. one school within an application
	// package) to its rolled-up parent service row.
	ParentID string `bson:"parent_id,omitempty" json:"parent_id,omitempty"`

	Assignments []AssignmentRow   `bson:"assignments,omitempty" json:"assignments,omitempty"`
	Mentors     []LegacyMentorRow `bson:"mentors,omitempty" json:"mentors,omitempty"`
	Roles       []MentorRole      `bson:"roles,omitempty" json:"roles,omitempty"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}

// AssignmentRow is the structured mentor staffing shape: one row per
// (mentor, role) pair on a service.
type AssignmentRow struct {
	MentorID         string `bson:"mentor_id" json:"mentorId"`
	Name             string `bson:"name" json:"name"`
	RoleKey          string `bson:"role_key" json:"roleKey"`
	RoleName         string `bson:"role_name" json:"roleName"`
	Responsibilities string `bson:"responsibilities,omitempty" json:"responsibilities,omitempty"`
	IsPrimary        bool   `bson:"is_primary" json:"isPrimary"`
}

// LegacyMentorRow is the flat mentor shape used by records imported from
// the old consultant spreadsheet. Field naming is loose: the role may be
// in Role, RoleLabel, or Roles[0], and the duty text in Responsibilities
// or Task. IDs are numeric strings and are not guaranteed to parse.
type LegacyMentorRow struct {
	ID               string   `bson:"id" json:"id"`
	Name             string   `bson:"name" json:"name"`
	Role             string   `bson:"role,omitempty" json:"role,omitempty"`
	RoleLabel        string   `bson:"role_label,omitempty" json:"roleLabel,omitempty"`
	Roles            []string `bson:"roles,omitempty" json:"roles,omitempty"`
	Responsibilities string   `bson:"responsibilities,omitempty" json:"responsibilities,omitempty"`
	Task             string   `bson:"task,omitempty" json:"task,omitempty"`
	IsPrimary        bool     `bson:"is_primary,omitempty" json:"isPrimary,omitempty"`
}
