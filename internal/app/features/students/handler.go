// internal/app/features/students/handler.go
package students

import (
	"encoding/json"
	"net/http"

	"github.com/lumenadvising/lumenhub/internal/app/roster"
	mentorstore "github.com/lumenadvising/lumenhub/internal/app/store/mentors"
	servicestore "github.com/lumenadvising/lumenhub/internal/app/store/services"
	studentstore "github.com/lumenadvising/lumenhub/internal/app/store/students"
	"github.com/lumenadvising/lumenhub/internal/app/system/notify"
	"go.uber.org/zap"
)

// Handler provides the JSON endpoints for the student roster and the
// per-student mentor-team editor.
type Handler struct {
	Roster   *roster.Store
	Students *studentstore.Store
	Services *servicestore.Store
	Mentors  *mentorstore.Store
	Bus      *notify.Bus
	Log      *zap.Logger
}

// NewHandler creates a students Handler.
func NewHandler(rosterStore *roster.Store, studentStore *studentstore.Store, serviceStore *servicestore.Store, mentorStore *mentorstore.Store, bus *notify.Bus, logger *zap.Logger) *Handler {
	return &Handler{
		Roster:   rosterStore,
		Students: studentStore,
		Services: serviceStore,
		Mentors:  mentorStore,
		Bus:      bus,
		Log:      logger,
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// errorBody is the single error shape of this API: a message, nothing
// structured. Validation messages are safe to show inline; everything
// else is generic and the detail goes to the log.
type errorBody struct {
	Error string `json:"error"`
}

func (h *Handler) serverError(w http.ResponseWriter, msg string, err error, fields ...zap.Field) {
	h.Log.Error(msg, append(fields, zap.Error(err))...)
	writeJSON(w, http.StatusBadGateway, errorBody{Error: "操作失败，请稍后重试"})
}

func validationError(w http.ResponseWriter, msg string) {
	writeJSON(w, http.StatusUnprocessableEntity, errorBody{Error: msg})
}
