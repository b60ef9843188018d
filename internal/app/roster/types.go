// internal/app/roster/types.go

// Package roster builds and caches the denormalized student records every
// presentation surface (list, card, grid, kanban) reads from. It owns the
// derived fields: business lines, aggregated mentor roles, risk, and the
// placeholder satisfaction score.
package roster

import (
	"github.com/lumenadvising/lumenhub/internal/app/system/businessline"
	"github.com/lumenadvising/lumenhub/internal/domain/models"
)

// Risk levels derived per student.
const (
	RiskLow    = "low"
	RiskMedium = "medium"
	RiskHigh   = "high"
)

// ServiceItem is one service as displayed on a student record. Roles is
// the fully aggregated mentor-team structure; Progress is derived from
// Status and not user-editable.
type ServiceItem struct {
	ID       string              `json:"id"`
	Name     string              `json:"name"`
	Status   string              `json:"status"`
	Progress int                 `json:"progress"`
	Roles    []models.MentorRole `json:"roles"`
}

// StudentRecord is the denormalized view model for one student.
type StudentRecord struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Status string `json:"status"`
	Grade  string `json:"grade,omitempty"`
	School string `json:"school,omitempty"`

	BusinessLines       []businessline.Line `json:"businessLines"`
	PrimaryBusinessLine businessline.Line   `json:"primaryBusinessLine"`

	Services   []ServiceItem `json:"services"`
	MentorTeam []string      `json:"mentorTeam"`

	PrimaryAdvisor string `json:"primaryAdvisor"`

	Risk string `json:"risk"`
	// Satisfaction is a fixed lookup from Risk, kept only so the console
	// has a number to render. It is a placeholder, not a measured metric.
	Satisfaction float64 `json:"satisfaction"`
	TasksPending int     `json:"tasksPending"`
}

// Summary is the portfolio-level rollup shown above the student list.
type Summary struct {
	Total           int     `json:"total"`
	ActiveCount     int     `json:"activeCount"`
	ActiveRate      float64 `json:"activeRate"`
	AtRiskCount     int     `json:"atRiskCount"`
	AvgSatisfaction float64 `json:"avgSatisfaction"`
}

// progressByStatus maps a service status to its fixed progress value.
var progressByStatus = map[string]int{
	models.ServiceCompleted:  100,
	models.ServiceInProgress: 65,
	models.ServiceApplying:   45,
	models.ServicePaused:     45,
	models.ServiceCancelled:  45,
	models.ServicePreparing:  20,
	models.ServiceNotStarted: 20,
}

// ProgressFor returns the display progress for a service status.
// Unknown statuses get the "barely started" floor.
func ProgressFor(status string) int {
	if p, ok := progressByStatus[status]; ok {
		return p
	}
	return 20
}

// satisfactionByRisk is the placeholder satisfaction lookup.
var satisfactionByRisk = map[string]float64{
	RiskHigh:   3.7,
	RiskMedium: 4.3,
	RiskLow:    4.8,
}
