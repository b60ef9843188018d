// internal/app/roster/folding.go
package roster

import (
	"strings"

	"github.com/lumenadvising/lumenhub/internal/domain/models"
)

// FoldServices collapses parent/child service pairs for display. When a
// service references a parent that is itself present as a top-level row,
// the parent row is suppressed (it is just the rolled-up package entry)
// and the child is renamed to "{parentName} · {suffix}" so the package
// context stays visible on the child. Services whose parent is not in
// the list are passed through untouched.
func FoldServices(svcs []models.Service) []models.Service {
	byID := make(map[string]models.Service, len(svcs))
	for _, svc := range svcs {
		byID[svc.ID] = svc
	}

	hasChild := make(map[string]bool)
	for _, svc := range svcs {
		if svc.ParentID != "" {
			if _, ok := byID[svc.ParentID]; ok {
				hasChild[svc.ParentID] = true
			}
		}
	}

	out := make([]models.Service, 0, len(svcs))
	for _, svc := range svcs {
		if hasChild[svc.ID] {
			continue
		}
		if svc.ParentID != "" {
			if parent, ok := byID[svc.ParentID]; ok {
				svc.Name = parent.Name + " · " + childSuffix(parent.Name, svc.Name)
			}
		}
		out = append(out, svc)
	}
	return out
}

// childSuffix derives the short child label from the pair of names:
// strip the shared parent prefix if there is one, otherwise take what
// follows a " - " delimiter, otherwise use the child name as is.
func childSuffix(parentName, childName string) string {
	if s := strings.TrimLeft(strings.TrimPrefix(childName, parentName), " -·"); s != "" && s != childName {
		return s
	}
	if _, after, ok := strings.Cut(childName, " - "); ok && strings.TrimSpace(after) != "" {
		return strings.TrimSpace(after)
	}
	return childName
}
