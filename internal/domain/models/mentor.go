// internal/domain/models/mentor.go
package models

import "time"

// Mentor is a staff directory entry. Mentor IDs are numeric and shared
// with the upstream HR system, which is why they are int64 here rather
// than ObjectIDs.
type Mentor struct {
	ID     int64  `bson:"_id" json:"id"`
	Name   string `bson:"name" json:"name"`
	NameCI string `bson:"name_ci" json:"name_ci"`

	Email           string   `bson:"email,omitempty" json:"email,omitempty"`
	Specializations []string `bson:"specializations,omitempty" json:"specializations,omitempty"`
	ExpertiseLevel  string   `bson:"expertise_level,omitempty" json:"expertiseLevel,omitempty"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}
