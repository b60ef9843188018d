// internal/app/features/students/team.go
package students

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/lumenadvising/lumenhub/internal/app/system/assignedit"
	"github.com/lumenadvising/lumenhub/internal/app/system/mentorteam"
	"github.com/lumenadvising/lumenhub/internal/app/system/notify"
	"github.com/lumenadvising/lumenhub/internal/app/system/timeouts"
	"github.com/lumenadvising/lumenhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// teamService is one service inside the editor payload.
type teamService struct {
	ID     string              `json:"id"`
	Name   string              `json:"name"`
	Status string              `json:"status"`
	Roles  []models.MentorRole `json:"roles"`
}

// teamResponse is what the team editor opens with: the student's
// services with fully aggregated roles, plus the mentor directory to
// drag members from.
type teamResponse struct {
	StudentID string          `json:"studentId"`
	Services  []teamService   `json:"services"`
	Mentors   []models.Mentor `json:"mentors"`
}

// ServeTeam returns the editable per-service role structure for one
// student together with the mentor directory.
//
// GET /students/{id}/team
func (h *Handler) ServeTeam(w http.ResponseWriter, r *http.Request) {
	studentID := chi.URLParam(r, "id")

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	if _, err := h.Students.GetByID(ctx, studentID); err != nil {
		if err == mongo.ErrNoDocuments {
			writeJSON(w, http.StatusNotFound, errorBody{Error: "student not found"})
			return
		}
		h.serverError(w, "team: student lookup failed", err, zap.String("student_id", studentID))
		return
	}

	svcs, err := h.Students.ServicesByStudent(ctx, studentID)
	if err != nil {
		h.serverError(w, "team: service fetch failed", err, zap.String("student_id", studentID))
		return
	}

	directory, err := h.Mentors.List(ctx)
	if err != nil {
		h.serverError(w, "team: mentor directory fetch failed", err)
		return
	}

	resp := teamResponse{StudentID: studentID, Mentors: directory}
	for _, svc := range svcs {
		roles, dropped := mentorteam.ForService(svc)
		if dropped > 0 {
			h.Log.Warn("team: staffing rows dropped for unparsable mentor ids",
				zap.String("service_id", svc.ID), zap.Int("dropped", dropped))
		}
		resp.Services = append(resp.Services, teamService{
			ID:     svc.ID,
			Name:   svc.Name,
			Status: svc.Status,
			Roles:  roles,
		})
	}
	writeJSON(w, http.StatusOK, resp)
}

// teamSaveRequest carries the edited role structure per service id.
type teamSaveRequest struct {
	Services map[string][]models.MentorRole `json:"services"`
}

// teamSaveResponse lists the services that were actually written.
type teamSaveResponse struct {
	Updated []string `json:"updated"`
}

// HandleTeamSave persists an edited mentor team. The diff is recomputed
// server-side against freshly fetched state, so only services whose
// normalized role structure genuinely changed are written. Writes for
// the changed services fan out concurrently; if any one fails the whole
// batch is reported as failed (there is no partial-success bookkeeping,
// and an in-flight write is not cancelled by the client going away).
// An empty diff is a successful no-op.
//
// PUT /students/{id}/team
func (h *Handler) HandleTeamSave(w http.ResponseWriter, r *http.Request) {
	studentID := chi.URLParam(r, "id")

	var req teamSaveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		validationError(w, "请求体格式错误")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Long())
	defer cancel()

	svcs, err := h.Students.ServicesByStudent(ctx, studentID)
	if err != nil {
		h.serverError(w, "team save: service fetch failed", err, zap.String("student_id", studentID))
		return
	}

	owned := make(map[string]bool, len(svcs))
	initial := make(assignedit.Snapshot, len(svcs))
	for _, svc := range svcs {
		owned[svc.ID] = true
		roles, _ := mentorteam.ForService(svc)
		initial[svc.ID] = roles
	}

	working := initial.Clone()
	for svcID, roles := range req.Services {
		if !owned[svcID] {
			validationError(w, "服务不属于该学生")
			return
		}
		for _, role := range roles {
			if strings.TrimSpace(role.RoleName) == "" {
				validationError(w, "角色名称不能为空")
				return
			}
		}
		working[svcID] = mentorteam.CleanRoles(roles)
	}

	changed := assignedit.ChangedServices(initial, working)
	if len(changed) == 0 {
		writeJSON(w, http.StatusOK, teamSaveResponse{Updated: []string{}})
		return
	}

	g, gctx := errgroup.WithContext(ctx)
	for _, svcID := range changed {
		roles := working[svcID]
		g.Go(func() error {
			return h.Services.SaveMentorRoles(gctx, svcID, roles)
		})
	}
	if err := g.Wait(); err != nil {
		h.serverError(w, "team save: batch write failed", err,
			zap.String("student_id", studentID), zap.Strings("changed", changed))
		return
	}

	h.Bus.Publish(notify.EntityServices)
	writeJSON(w, http.StatusOK, teamSaveResponse{Updated: changed})
}

// HandleServiceStatus updates one service's workflow status. This is the
// separate status interaction on the service card, not part of the team
// editor.
//
// POST /services/{id}/status
func (h *Handler) HandleServiceStatus(w http.ResponseWriter, r *http.Request) {
	serviceID := chi.URLParam(r, "id")

	var req struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		validationError(w, "请求体格式错误")
		return
	}
	if !validServiceStatus(req.Status) {
		validationError(w, "无效的服务状态")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	if err := h.Services.SaveStatus(ctx, serviceID, req.Status); err != nil {
		if err == mongo.ErrNoDocuments {
			writeJSON(w, http.StatusNotFound, errorBody{Error: "service not found"})
			return
		}
		h.serverError(w, "service status update failed", err, zap.String("service_id", serviceID))
		return
	}

	h.Bus.Publish(notify.EntityServices)
	writeJSON(w, http.StatusOK, map[string]string{"status": req.Status})
}

func validServiceStatus(status string) bool {
	switch status {
	case models.ServiceNotStarted, models.ServicePreparing, models.ServiceInProgress,
		models.ServiceApplying, models.ServicePaused, models.ServiceCancelled, models.ServiceCompleted:
		return true
	}
	return false
}
