// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"net/http"
	"strconv"

	"github.com/agendapro/agendapro/internal/domain/timegrid"
)

// ScheduleHandler serves the placed day-column projection of the calendar.
type ScheduleHandler struct {
	deps Dependencies
}

// NewScheduleHandler creates a new schedule handler.
func NewScheduleHandler(deps Dependencies) *ScheduleHandler {
	return &ScheduleHandler{deps: deps}
}

type nowResponse struct {
	Day    int     `json:"day"`
	Offset float64 `json:"offset"`
}

type scheduleResponse struct {
	Day        int                  `json:"day"`
	Placements []timegrid.Placement `json:"placements"`
	Now        *nowResponse         `json:"now,omitempty"`
}

// HandleSchedule handles GET /schedule?day=N requests. The response carries
// computed block geometry, so clients never re-derive offsets from times.
func (h *ScheduleHandler) HandleSchedule(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}

	day, err := strconv.Atoi(r.URL.Query().Get("day"))
	if err != nil || day < 0 || day > 6 {
		writeError(w, http.StatusBadRequest, "bad_query", ErrBadQuery)
		return
	}

	resp := scheduleResponse{Day: day, Placements: h.deps.Schedule(r.Context(), day)}
	if resp.Placements == nil {
		resp.Placements = []timegrid.Placement{}
	}
	if nowDay, offset, ok := h.deps.NowIndicator(); ok && nowDay == day {
		resp.Now = &nowResponse{Day: nowDay, Offset: offset}
	}
	writeJSON(w, http.StatusOK, resp)
}
