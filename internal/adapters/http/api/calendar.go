// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/agendapro/agendapro/internal/ics"
)

// CalendarHandler exports the week as an iCalendar feed.
type CalendarHandler struct {
	deps Dependencies
}

// NewCalendarHandler creates a new calendar export handler.
func NewCalendarHandler(deps Dependencies) *CalendarHandler {
	return &CalendarHandler{deps: deps}
}

// HandleExport handles GET /calendar.ics?offset=N requests, where offset
// shifts the exported week relative to the current one.
func (h *CalendarHandler) HandleExport(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}

	offset := 0
	if raw := r.URL.Query().Get("offset"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, "bad_query", ErrBadQuery)
			return
		}
		offset = n
	}

	ctx := r.Context()
	feed := ics.ExportWeek(h.deps.Appointments(ctx), h.deps.TimeBlocks(ctx), time.Now(), offset)

	w.Header().Set("Content-Type", "text/calendar; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="agendapro.ics"`)
	_, _ = w.Write([]byte(feed))
}
