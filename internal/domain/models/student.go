// internal/domain/models/student.go
package models

import "time"

// Student statuses as stored in the students collection.
const (
	StudentActive   = "active"
	StudentOnLeave  = "on_leave"
	StudentArchived = "archived"
)

// Student represents one client of the advising business.
//
// Services are stored in their own collection (see Service) and joined by
// StudentID; the view-model layer assembles the two into a single record.
type Student struct {
	ID     string `bson:"_id" json:"id"`
	Name   string `bson:"name" json:"name"`
	NameCI string `bson:"name_ci" json:"name_ci"` // lowercase for search

	Email  string `bson:"email,omitempty" json:"email,omitempty"`
	Phone  string `bson:"phone,omitempty" json:"phone,omitempty"`
	Grade  string `bson:"grade,omitempty" json:"grade,omitempty"`
	School string `bson:"school,omitempty" json:"school,omitempty"`

	// Status: active | on_leave | archived
	Status string `bson:"status" json:"status"`

	// Advisor is the account-level counselor of record. The per-service
	// mentor team is tracked on Service, not here.
	Advisor string `bson:"advisor,omitempty" json:"advisor,omitempty"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}
