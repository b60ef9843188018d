// internal/app/features/students/routes.go
package students

import "github.com/go-chi/chi/v5"

// Routes mounts the student roster endpoints.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()

	r.Get("/", h.ServeList)
	r.Get("/summary", h.ServeSummary)

	// Mentor-team editor round trip
	r.Get("/{id}/team", h.ServeTeam)
	r.Put("/{id}/team", h.HandleTeamSave)

	return r
}

// ServiceRoutes mounts the service-level endpoints (status updates).
func ServiceRoutes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Post("/{id}/status", h.HandleServiceStatus)
	return r
}
