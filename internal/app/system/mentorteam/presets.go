// internal/app/system/mentorteam/presets.go
package mentorteam

import "github.com/lumenadvising/lumenhub/internal/domain/models"

// Well-known role keys. Custom roles created in the editor get generated
// keys and never collide with these.
const (
	RolePrimary      = "primary"
	RoleCollaborator = "collaborator"
	RoleEssay        = "essay"
	RoleApplication  = "application"
)

// presetNames maps well-known role keys to their display names. The
// Chinese labels are the ones consultants see in the console.
var presetNames = map[string]string{
	RolePrimary:      "主导师",
	RoleCollaborator: "协同导师",
	RoleEssay:        "文书导师",
	RoleApplication:  "申请导师",
}

// DefaultRoles returns the four baseline roles every service exposes when
// it has no staffing at all, so the team editor always has a role set to
// populate. The set and its order are a product decision; keep them in
// sync with what the console renders.
func DefaultRoles() []models.MentorRole {
	return []models.MentorRole{
		{RoleKey: RolePrimary, RoleName: presetNames[RolePrimary], Members: []models.MentorTeamMember{}},
		{RoleKey: RoleCollaborator, RoleName: presetNames[RoleCollaborator], Members: []models.MentorTeamMember{}},
		{RoleKey: RoleEssay, RoleName: presetNames[RoleEssay], Members: []models.MentorTeamMember{}},
		{RoleKey: RoleApplication, RoleName: presetNames[RoleApplication], Members: []models.MentorTeamMember{}},
	}
}
