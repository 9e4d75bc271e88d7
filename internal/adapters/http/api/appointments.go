// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/agendapro/agendapro/internal/adapters/repository"
	"github.com/agendapro/agendapro/internal/domain/model"
	"github.com/agendapro/agendapro/internal/domain/view"
)

// AppointmentsHandler handles appointment CRUD and move requests.
type AppointmentsHandler struct {
	deps Dependencies
}

// NewAppointmentsHandler creates a new appointments handler.
func NewAppointmentsHandler(deps Dependencies) *AppointmentsHandler {
	return &AppointmentsHandler{deps: deps}
}

type listResponse struct {
	Appointments []model.Appointment `json:"appointments"`
	Count        int                 `json:"count"`
}

// HandleCollection handles GET and POST /appointments.
// GET accepts q (free text), staff, and day query parameters; filters
// compose with AND and never reorder results.
func (h *AppointmentsHandler) HandleCollection(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.list(w, r)
	case http.MethodPost:
		h.create(w, r)
	default:
		http.NotFound(w, r)
	}
}

func (h *AppointmentsHandler) list(w http.ResponseWriter, r *http.Request) {
	f := view.Filter{
		Search: r.URL.Query().Get("q"),
		Staff:  r.URL.Query().Get("staff"),
		Day:    view.NoDay,
	}
	if raw := r.URL.Query().Get("day"); raw != "" {
		day, err := strconv.Atoi(raw)
		if err != nil || day < 0 || day > 6 {
			writeError(w, http.StatusBadRequest, "bad_query", ErrBadQuery)
			return
		}
		f.Day = day
	}

	appointments := view.Apply(h.deps.Appointments(r.Context()), f)
	if appointments == nil {
		appointments = []model.Appointment{}
	}
	writeJSON(w, http.StatusOK, listResponse{Appointments: appointments, Count: len(appointments)})
}

func (h *AppointmentsHandler) create(w http.ResponseWriter, r *http.Request) {
	var req appointmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_json", ErrBadRequest)
		return
	}
	if err := req.validate(); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_appointment", err)
		return
	}

	created, err := h.deps.Create(r.Context(), req.appointment(""))
	if err != nil {
		writeError(w, http.StatusInternalServerError, "create_failed", err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

// HandleItem handles /appointments/{id} and /appointments/{id}/move.
func (h *AppointmentsHandler) HandleItem(w http.ResponseWriter, r *http.Request) {
	rest := strings.Trim(strings.TrimPrefix(r.URL.Path, "/appointments/"), "/")
	parts := strings.Split(rest, "/")

	switch {
	case len(parts) == 1 && parts[0] != "":
		h.item(w, r, parts[0])
	case len(parts) == 2 && parts[1] == "move":
		h.move(w, r, parts[0])
	default:
		http.NotFound(w, r)
	}
}

func (h *AppointmentsHandler) item(w http.ResponseWriter, r *http.Request, id string) {
	switch r.Method {
	case http.MethodGet:
		appt, err := h.deps.Get(r.Context(), id)
		if err != nil {
			h.writeLookupError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, appt)

	case http.MethodPut:
		var req appointmentRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "bad_json", ErrBadRequest)
			return
		}
		if err := req.validate(); err != nil {
			writeError(w, http.StatusBadRequest, "invalid_appointment", err)
			return
		}
		updated, err := h.deps.Update(r.Context(), req.appointment(id))
		if err != nil {
			writeError(w, http.StatusInternalServerError, "update_failed", err)
			return
		}
		writeJSON(w, http.StatusOK, updated)

	case http.MethodDelete:
		if err := h.deps.Delete(r.Context(), id); err != nil {
			h.writeLookupError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)

	default:
		http.NotFound(w, r)
	}
}

func (h *AppointmentsHandler) move(w http.ResponseWriter, r *http.Request, id string) {
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}

	var req moveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_json", ErrBadRequest)
		return
	}
	if err := req.validate(); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_move", err)
		return
	}

	moved, err := h.deps.Move(r.Context(), id, req.Day, req.Hour)
	if err != nil {
		h.writeLookupError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, moved)
}

// writeLookupError maps store lookup failures onto HTTP statuses.
func (h *AppointmentsHandler) writeLookupError(w http.ResponseWriter, err error) {
	if errors.Is(err, repository.ErrNotFound) {
		writeError(w, http.StatusNotFound, "not_found", err)
		return
	}
	writeError(w, http.StatusInternalServerError, "internal_error", err)
}
