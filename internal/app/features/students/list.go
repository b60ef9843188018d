// internal/app/features/students/list.go
package students

import (
	"net/http"
	"strings"

	"github.com/lumenadvising/lumenhub/internal/app/roster"
	"github.com/lumenadvising/lumenhub/internal/app/system/businessline"
)

// listResponse is the payload behind every student surface; the client
// renders the same records as a table, cards, or a kanban board.
type listResponse struct {
	Students []roster.StudentRecord `json:"students"`
	Summary  roster.Summary         `json:"summary"`
}

// ServeList returns the cached student view models, optionally filtered
// by business line (?line=study_application) or a name substring
// (?search=...). Filtering happens on the cache; no database round trip.
//
// GET /students
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	records := h.Roster.GetAll()

	if line := strings.TrimSpace(r.URL.Query().Get("line")); line != "" {
		records = filterByLine(records, businessline.Line(line))
	}
	if q := strings.TrimSpace(r.URL.Query().Get("search")); q != "" {
		records = filterByName(records, q)
	}

	writeJSON(w, http.StatusOK, listResponse{
		Students: records,
		Summary:  roster.Summarize(records),
	})
}

// ServeSummary returns the portfolio rollup for the full roster.
//
// GET /students/summary
func (h *Handler) ServeSummary(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Roster.Summary())
}

func filterByLine(records []roster.StudentRecord, line businessline.Line) []roster.StudentRecord {
	var out []roster.StudentRecord
	for _, rec := range records {
		for _, l := range rec.BusinessLines {
			if l == line {
				out = append(out, rec)
				break
			}
		}
	}
	return out
}

func filterByName(records []roster.StudentRecord, q string) []roster.StudentRecord {
	q = strings.ToLower(q)
	var out []roster.StudentRecord
	for _, rec := range records {
		if strings.Contains(strings.ToLower(rec.Name), q) {
			out = append(out, rec)
		}
	}
	return out
}
