package http

import (
	"net/http"

	"github.com/avreyes/lingap/internal/utils"
)

// dashboard serves the aggregated landing-page payload: status counts,
// the five most recently created cases expanded with their details, and
// the staff-activity feed built from the five most recent notes.
func (h *Handler) dashboard(w http.ResponseWriter, r *http.Request) {
	stats, err := h.services.CaseService.GetDashboardStats(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, stats, http.StatusOK)
}
