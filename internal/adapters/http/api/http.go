// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/agendapro/agendapro/internal/domain/model"
	"github.com/agendapro/agendapro/internal/domain/timegrid"
)

// Dependencies required by HTTP handlers. Using an interface bundle keeps
// the handler layer loosely coupled to implementations in other packages.
type Dependencies interface {
	// Appointments returns the stored appointments in insertion order.
	Appointments(ctx context.Context) []model.Appointment

	// Get returns a single appointment by id.
	Get(ctx context.Context, id string) (model.Appointment, error)

	// Create adds an appointment, assigning an id when none is supplied.
	Create(ctx context.Context, appt model.Appointment) (model.Appointment, error)

	// Update replaces an appointment wholesale by id.
	Update(ctx context.Context, appt model.Appointment) (model.Appointment, error)

	// Delete removes an appointment by id.
	Delete(ctx context.Context, id string) error

	// Move reschedules an appointment to a whole-hour grid cell.
	Move(ctx context.Context, id string, day, hour int) (model.Appointment, error)

	// Schedule computes the placed geometry for one day column.
	Schedule(ctx context.Context, day int) []timegrid.Placement

	// TimeBlocks returns the staff time blocks.
	TimeBlocks(ctx context.Context) []model.TimeBlock

	// ListStaff returns the staff roster.
	ListStaff(ctx context.Context) []string

	// ListServices returns the service catalog.
	ListServices(ctx context.Context) []model.Service

	// NowIndicator reports the current-time line, if visible.
	NowIndicator() (day int, offset float64, ok bool)
}

// Server wires HTTP routes for the scheduling API.
type Server struct {
	healthHandler       *HealthHandler
	statsHandler        *StatsHandler
	appointmentsHandler *AppointmentsHandler
	scheduleHandler     *ScheduleHandler
	directoryHandler    *DirectoryHandler
	calendarHandler     *CalendarHandler
}

// NewServer creates a new API server with all handlers.
func NewServer(deps Dependencies, statsProvider StatsProvider) *Server {
	return &Server{
		healthHandler:       NewHealthHandler(),
		statsHandler:        NewStatsHandler(statsProvider),
		appointmentsHandler: NewAppointmentsHandler(deps),
		scheduleHandler:     NewScheduleHandler(deps),
		directoryHandler:    NewDirectoryHandler(deps),
		calendarHandler:     NewCalendarHandler(deps),
	}
}

// Register attaches all HTTP routes to mux.
func (s *Server) Register(ctx context.Context, mux *http.ServeMux) {
	// Specific paths first (most specific to least specific)
	mux.HandleFunc("/healthz", MetricsMiddleware(s.healthHandler.HandleHealth, "healthz"))
	mux.HandleFunc("/stats", MetricsMiddleware(s.statsHandler.HandleStats, "stats"))
	mux.HandleFunc("/appointments", MetricsMiddleware(s.appointmentsHandler.HandleCollection, "appointments"))
	mux.HandleFunc("/appointments/", MetricsMiddleware(s.appointmentsHandler.HandleItem, "appointment"))
	mux.HandleFunc("/schedule", MetricsMiddleware(s.scheduleHandler.HandleSchedule, "schedule"))
	mux.HandleFunc("/calendar.ics", MetricsMiddleware(s.calendarHandler.HandleExport, "calendar"))
	mux.HandleFunc("/staff", MetricsMiddleware(s.directoryHandler.HandleStaff, "staff"))
	mux.HandleFunc("/services", MetricsMiddleware(s.directoryHandler.HandleServices, "services"))
}

// appointmentRequest mirrors the write schema for POST and PUT /appointments.
type appointmentRequest struct {
	ClientName  string  `json:"client_name"`
	ClientEmail string  `json:"client_email"`
	ClientPhone string  `json:"client_phone"`
	ServiceName string  `json:"service_name"`
	StaffMember string  `json:"staff_member"`
	Day         int     `json:"day"`
	StartTime   float64 `json:"start_time"`
	Duration    float64 `json:"duration"`
	Color       string  `json:"color"`
	Status      string  `json:"status"`
	Notes       string  `json:"notes"`
}

func (a appointmentRequest) validate() error {
	switch {
	case strings.TrimSpace(a.ClientName) == "":
		return errors.New("missing client_name")
	case strings.TrimSpace(a.ServiceName) == "":
		return errors.New("missing service_name")
	case a.Day < 0 || a.Day > 6:
		return errors.New("day must be 0-6")
	case a.StartTime < 0 || a.StartTime >= 24:
		return errors.New("start_time must be an hour of day")
	case a.Duration <= 0:
		return errors.New("duration must be positive")
	}
	if a.Status != "" && !model.Status(a.Status).Valid() {
		return errors.New("unknown status")
	}
	return nil
}

// appointment builds the domain record; id comes from the route, if any.
func (a appointmentRequest) appointment(id string) model.Appointment {
	status := model.Status(a.Status)
	if a.Status == "" {
		status = model.StatusConfirmed
	}
	return model.Appointment{
		ID:          id,
		ClientName:  strings.TrimSpace(a.ClientName),
		ClientEmail: strings.TrimSpace(a.ClientEmail),
		ClientPhone: strings.TrimSpace(a.ClientPhone),
		ServiceName: strings.TrimSpace(a.ServiceName),
		StaffMember: strings.TrimSpace(a.StaffMember),
		Day:         a.Day,
		StartTime:   a.StartTime,
		Duration:    a.Duration,
		Color:       a.Color,
		Status:      status,
		Notes:       a.Notes,
	}
}

// moveRequest mirrors the schema for POST /appointments/{id}/move.
type moveRequest struct {
	Day  int `json:"day"`
	Hour int `json:"hour"`
}

func (m moveRequest) validate() error {
	if m.Day < 0 || m.Day > 6 {
		return errors.New("day must be 0-6")
	}
	if m.Hour < 0 || m.Hour > 23 {
		return errors.New("hour must be 0-23")
	}
	return nil
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string, err error) {
	msg := http.StatusText(status)
	if err != nil {
		msg = err.Error()
	}
	writeJSON(w, status, errorResponse{Code: code, Message: msg})
}
