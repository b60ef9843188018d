// internal/domain/models/mentor_role.go
package models

// MentorRole groups the mentors holding one role on one service. RoleKey
// is unique within a service; RoleName and Responsibilities describe the
// role itself and are mirrored onto each member so either level can be
// rendered on its own.
type MentorRole struct {
	RoleKey          string             `bson:"role_key" json:"roleKey"`
	RoleName         string             `bson:"role_name" json:"roleName"`
	Responsibilities string             `bson:"responsibilities,omitempty" json:"responsibilities,omitempty"`
	Members          []MentorTeamMember `bson:"members" json:"members"`
}

// MentorTeamMember is one mentor serving under one role. Identity is the
// (ID, RoleKey) pair: the same mentor may appear under several roles of
// the same service as distinct members.
type MentorTeamMember struct {
	ID               int64  `bson:"id" json:"id"`
	Name             string `bson:"name" json:"name"`
	RoleKey          string `bson:"role_key" json:"roleKey"`
	RoleName         string `bson:"role_name" json:"roleName"`
	Responsibilities string `bson:"responsibilities,omitempty" json:"responsibilities,omitempty"`
	IsPrimary        bool   `bson:"is_primary" json:"isPrimary"`
}

// HasMember reports whether the role already contains the mentor.
func (r MentorRole) HasMember(mentorID int64) bool {
	for _, m := range r.Members {
		if m.ID == mentorID {
			return true
		}
	}
	return false
}

// CloneRoles deep-copies a role slice, including each role's member slice.
// Editor state transitions operate on clones so shared snapshots are never
// mutated in place.
func CloneRoles(roles []MentorRole) []MentorRole {
	if roles == nil {
		return nil
	}
	out := make([]MentorRole, len(roles))
	for i, r := range roles {
		out[i] = r
		if r.Members != nil {
			out[i].Members = make([]MentorTeamMember, len(r.Members))
			copy(out[i].Members, r.Members)
		}
	}
	return out
}
