// internal/app/roster/build.go
package roster

import (
	"github.com/lumenadvising/lumenhub/internal/app/system/businessline"
	"github.com/lumenadvising/lumenhub/internal/app/system/mentorteam"
	"github.com/lumenadvising/lumenhub/internal/domain/models"
)

// BuildRecord folds one student and their services into a view model.
// dropped is the number of staffing rows excluded for unparsable mentor
// ids across all services; callers log it so bad legacy data stays
// visible instead of silently disappearing.
func BuildRecord(st models.Student, svcs []models.Service) (rec StudentRecord, dropped int) {
	folded := FoldServices(svcs)

	rec = StudentRecord{
		ID:     st.ID,
		Name:   st.Name,
		Status: st.Status,
		Grade:  st.Grade,
		School: st.School,
	}

	pairs := make([][2]string, 0, len(folded))
	seenNames := make(map[string]bool)

	for _, svc := range folded {
		roles, d := mentorteam.ForService(svc)
		dropped += d

		rec.Services = append(rec.Services, ServiceItem{
			ID:       svc.ID,
			Name:     svc.Name,
			Status:   svc.Status,
			Progress: ProgressFor(svc.Status),
			Roles:    roles,
		})
		pairs = append(pairs, [2]string{svc.Category, svc.Name})

		for _, name := range mentorteam.TeamNames(roles) {
			if !seenNames[name] {
				seenNames[name] = true
				rec.MentorTeam = append(rec.MentorTeam, name)
			}
		}
	}

	rec.BusinessLines = businessline.ForServices(pairs)
	rec.PrimaryBusinessLine = businessline.Primary(rec.BusinessLines)
	rec.Risk = riskFor(st, folded)
	rec.Satisfaction = satisfactionByRisk[rec.Risk]
	rec.TasksPending = pendingTasks(folded)
	rec.PrimaryAdvisor = primaryAdvisor(rec.Services)

	return rec, dropped
}

// riskFor derives the student's risk level. Any paused or cancelled
// service trumps everything; a student on leave is medium; otherwise low.
func riskFor(st models.Student, svcs []models.Service) string {
	for _, svc := range svcs {
		if svc.Status == models.ServicePaused || svc.Status == models.ServiceCancelled {
			return RiskHigh
		}
	}
	if st.Status == models.StudentOnLeave {
		return RiskMedium
	}
	return RiskLow
}

// pendingTasks is the derived workload count: two open tasks per
// not-yet-completed service.
func pendingTasks(svcs []models.Service) int {
	n := 0
	for _, svc := range svcs {
		if svc.Status != models.ServiceCompleted {
			n++
		}
	}
	return 2 * n
}

// primaryAdvisor picks the displayed advisor: the first primary-flagged
// member across services in order, then the first member of the first
// staffed service, then the unassigned placeholder.
func primaryAdvisor(items []ServiceItem) string {
	for _, item := range items {
		for _, role := range item.Roles {
			for _, m := range role.Members {
				if m.IsPrimary {
					return m.Name
				}
			}
		}
	}
	for _, item := range items {
		for _, role := range item.Roles {
			if len(role.Members) > 0 {
				return role.Members[0].Name
			}
		}
	}
	return "unassigned"
}
