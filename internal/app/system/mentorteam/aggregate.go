// internal/app/system/mentorteam/aggregate.go
package mentorteam

import (
	"github.com/lumenadvising/lumenhub/internal/domain/models"
)

// Aggregate deduplicates normalized assignment rows and groups them into
// per-role structures.
//
// Dedup key is the (MentorID, RoleKey) pair. When the same pair arrives
// more than once the duplicates are merged: IsPrimary is OR-ed, and the
// responsibilities text of the first row that has any wins. Roles come
// out in first-seen order carrying the first-seen role metadata, so the
// result is identical for any permutation-free rerun of the same input.
//
// A service with no assignments at all yields the four default role
// presets with empty member lists.
func Aggregate(rows []Assignment) []models.MentorRole {
	if len(rows) == 0 {
		return DefaultRoles()
	}

	type pairKey struct {
		mentorID int64
		roleKey  string
	}

	merged := make(map[pairKey]*models.MentorTeamMember)
	var pairOrder []pairKey

	for _, row := range rows {
		k := pairKey{row.MentorID, row.RoleKey}
		if m, ok := merged[k]; ok {
			m.IsPrimary = m.IsPrimary || row.IsPrimary
			if m.Responsibilities == "" {
				m.Responsibilities = row.Responsibilities
			}
			continue
		}
		merged[k] = &models.MentorTeamMember{
			ID:               row.MentorID,
			Name:             row.Name,
			RoleKey:          row.RoleKey,
			RoleName:         row.RoleName,
			Responsibilities: row.Responsibilities,
			IsPrimary:        row.IsPrimary,
		}
		pairOrder = append(pairOrder, k)
	}

	roleIdx := make(map[string]int)
	var roles []models.MentorRole

	for _, k := range pairOrder {
		m := merged[k]
		i, ok := roleIdx[m.RoleKey]
		if !ok {
			roles = append(roles, models.MentorRole{
				RoleKey:          m.RoleKey,
				RoleName:         m.RoleName,
				Responsibilities: m.Responsibilities,
				Members:          []models.MentorTeamMember{},
			})
			i = len(roles) - 1
			roleIdx[m.RoleKey] = i
		}
		roles[i].Members = append(roles[i].Members, *m)
	}
	return roles
}

// ForService folds a service's staffing data, whatever shape it is in,
// into the canonical role structure. Saved canonical roles take priority
// over the raw shapes and keep their structure (including member-less
// custom roles); only the dedup and mirror invariants are re-applied.
func ForService(svc models.Service) (roles []models.MentorRole, dropped int) {
	if len(svc.Roles) > 0 {
		return CleanRoles(svc.Roles), 0
	}
	rows, dropped := Normalize(svc)
	return Aggregate(rows), dropped
}

// CleanRoles re-establishes the aggregate invariants on an existing role
// structure: members are deduplicated by id within each role (IsPrimary
// OR-ed together) and re-stamped with the owning role's metadata.
func CleanRoles(roles []models.MentorRole) []models.MentorRole {
	out := make([]models.MentorRole, 0, len(roles))
	for _, r := range roles {
		clean := models.MentorRole{
			RoleKey:          r.RoleKey,
			RoleName:         r.RoleName,
			Responsibilities: r.Responsibilities,
			Members:          []models.MentorTeamMember{},
		}
		idx := make(map[int64]int)
		for _, m := range r.Members {
			if i, ok := idx[m.ID]; ok {
				clean.Members[i].IsPrimary = clean.Members[i].IsPrimary || m.IsPrimary
				continue
			}
			m.RoleKey = r.RoleKey
			m.RoleName = r.RoleName
			m.Responsibilities = r.Responsibilities
			clean.Members = append(clean.Members, m)
			idx[m.ID] = len(clean.Members) - 1
		}
		out = append(out, clean)
	}
	return out
}

// Flatten expands a role structure back into normalized assignment rows,
// re-stamping each member with the owning role's metadata.
func Flatten(roles []models.MentorRole) []Assignment {
	var rows []Assignment
	for _, r := range roles {
		for _, m := range r.Members {
			rows = append(rows, Assignment{
				MentorID:         m.ID,
				Name:             m.Name,
				RoleKey:          r.RoleKey,
				RoleName:         r.RoleName,
				Responsibilities: r.Responsibilities,
				IsPrimary:        m.IsPrimary,
			})
		}
	}
	return rows
}

// TeamNames returns the deduplicated mentor display names across all
// roles, in first-appearance order. This is the flattened "mentor team"
// line shown on student cards.
func TeamNames(roles []models.MentorRole) []string {
	seen := make(map[string]bool)
	var names []string
	for _, r := range roles {
		for _, m := range r.Members {
			if m.Name == "" || seen[m.Name] {
				continue
			}
			seen[m.Name] = true
			names = append(names, m.Name)
		}
	}
	return names
}
