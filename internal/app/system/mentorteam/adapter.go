// internal/app/system/mentorteam/adapter.go

// Package mentorteam normalizes the two mentor-staffing shapes found on
// service records and folds them into the canonical per-role structure
// used everywhere else (cards, lists, the team editor, saves).
package mentorteam

import (
	"strconv"
	"strings"

	"github.com/lumenadvising/lumenhub/internal/domain/models"
)

// Assignment is the single normalized staffing row both raw shapes reduce
// to: one concrete (MentorID, RoleKey) pair with its display fields.
type Assignment struct {
	MentorID         int64
	Name             string
	RoleKey          string
	RoleName         string
	Responsibilities string
	IsPrimary        bool
}

// Normalize reduces a service's raw staffing data to one assignment list.
//
// Precedence: if the structured Assignments shape is present and non-empty
// it is authoritative and the legacy Mentors list is ignored; otherwise the
// legacy rows are mapped field by field. Rows whose id does not parse as an
// integer are excluded from the result and counted in dropped so callers
// can log them — they are data-entry problems, not valid assignments.
func Normalize(svc models.Service) (rows []Assignment, dropped int) {
	if len(svc.Assignments) > 0 {
		for _, a := range svc.Assignments {
			id, err := strconv.ParseInt(strings.TrimSpace(a.MentorID), 10, 64)
			if err != nil {
				dropped++
				continue
			}
			roleKey := strings.TrimSpace(a.RoleKey)
			if roleKey == "" {
				roleKey = RoleCollaborator
			}
			rows = append(rows, Assignment{
				MentorID:         id,
				Name:             strings.TrimSpace(a.Name),
				RoleKey:          roleKey,
				RoleName:         roleNameOrDefault(a.RoleName, roleKey),
				Responsibilities: strings.TrimSpace(a.Responsibilities),
				IsPrimary:        a.IsPrimary,
			})
		}
		return rows, dropped
	}

	for _, m := range svc.Mentors {
		id, err := strconv.ParseInt(strings.TrimSpace(m.ID), 10, 64)
		if err != nil {
			dropped++
			continue
		}
		roleKey := legacyRoleKey(m)
		rows = append(rows, Assignment{
			MentorID:         id,
			Name:             strings.TrimSpace(m.Name),
			RoleKey:          roleKey,
			RoleName:         roleNameOrDefault("", roleKey),
			Responsibilities: legacyResponsibilities(m),
			IsPrimary:        m.IsPrimary,
		})
	}
	return rows, dropped
}

// legacyRoleKey picks the role from the loosest-first legacy fields,
// defaulting to the generic collaborator role.
func legacyRoleKey(m models.LegacyMentorRow) string {
	if k := strings.TrimSpace(m.Role); k != "" {
		return k
	}
	if k := strings.TrimSpace(m.RoleLabel); k != "" {
		return k
	}
	if len(m.Roles) > 0 {
		if k := strings.TrimSpace(m.Roles[0]); k != "" {
			return k
		}
	}
	return RoleCollaborator
}

func legacyResponsibilities(m models.LegacyMentorRow) string {
	if s := strings.TrimSpace(m.Responsibilities); s != "" {
		return s
	}
	return strings.TrimSpace(m.Task)
}

// roleNameOrDefault returns the given display name if present, otherwise
// the preset name for known role keys, otherwise the key itself.
func roleNameOrDefault(name, roleKey string) string {
	if n := strings.TrimSpace(name); n != "" {
		return n
	}
	if preset, ok := presetNames[roleKey]; ok {
		return preset
	}
	return roleKey
}
