// internal/app/system/assignedit/diff.go
package assignedit

import (
	"reflect"
	"sort"
	"strings"

	"github.com/lumenadvising/lumenhub/internal/domain/models"
)

// NormalizeRoles puts a role structure into canonical form for equality
// checks: roles sorted by key, members sorted by numeric id, every string
// field trimmed, and member role fields re-mirrored from the owning role.
// The input is not modified.
func NormalizeRoles(roles []models.MentorRole) []models.MentorRole {
	norm := models.CloneRoles(roles)
	if norm == nil {
		norm = []models.MentorRole{}
	}
	for i := range norm {
		norm[i].RoleKey = strings.TrimSpace(norm[i].RoleKey)
		norm[i].RoleName = strings.TrimSpace(norm[i].RoleName)
		norm[i].Responsibilities = strings.TrimSpace(norm[i].Responsibilities)
		if norm[i].Members == nil {
			norm[i].Members = []models.MentorTeamMember{}
		}
		for j := range norm[i].Members {
			m := &norm[i].Members[j]
			m.Name = strings.TrimSpace(m.Name)
			m.RoleKey = norm[i].RoleKey
			m.RoleName = norm[i].RoleName
			m.Responsibilities = norm[i].Responsibilities
		}
		sort.Slice(norm[i].Members, func(a, b int) bool {
			return norm[i].Members[a].ID < norm[i].Members[b].ID
		})
	}
	sort.Slice(norm, func(a, b int) bool { return norm[a].RoleKey < norm[b].RoleKey })
	return norm
}

// RolesEqual reports whether two role structures are equal after
// normalization, i.e. ignoring role and member ordering and surrounding
// whitespace.
func RolesEqual(a, b []models.MentorRole) bool {
	return reflect.DeepEqual(NormalizeRoles(a), NormalizeRoles(b))
}

// ChangedServices compares two snapshots service by service and returns
// the sorted ids of services whose normalized role structure differs.
// Services present in only one snapshot count as changed.
func ChangedServices(initial, working Snapshot) []string {
	ids := make(map[string]bool, len(initial)+len(working))
	for id := range initial {
		ids[id] = true
	}
	for id := range working {
		ids[id] = true
	}

	var changed []string
	for id := range ids {
		a, inA := initial[id]
		b, inB := working[id]
		if inA != inB || !RolesEqual(a, b) {
			changed = append(changed, id)
		}
	}
	sort.Strings(changed)
	return changed
}
