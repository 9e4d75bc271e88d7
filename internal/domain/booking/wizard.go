// Package booking implements the client-facing booking wizard as a linear
// step machine: service -> date & time -> details -> confirmed.
package booking

import (
	"errors"
	"strings"

	"github.com/agendapro/agendapro/internal/domain/model"
)

// ErrNotConfirmed is returned when the appointment is requested before the
// wizard reached the confirmed step.
var ErrNotConfirmed = errors.New("booking not confirmed")

// Step is the wizard position.
type Step int

// Wizard steps, in order.
const (
	StepService Step = iota
	StepSchedule
	StepDetails
	StepConfirmed
)

// defaultColor tags wizard-created appointments for the calendar.
const defaultColor = "blue"

// Wizard collects a booking across steps. Each step gates Next on its
// required fields; Back never discards entered data.
type Wizard struct {
	step Step

	service    model.Service
	hasService bool

	day     int
	hasDay  bool
	start   float64
	hasTime bool

	clientName  string
	clientEmail string
	clientPhone string
}

// New creates a wizard at the service selection step.
func New() *Wizard {
	return &Wizard{}
}

// Step returns the current wizard step.
func (w *Wizard) Step() Step { return w.step }

// SelectService records the chosen service.
func (w *Wizard) SelectService(svc model.Service) {
	w.service = svc
	w.hasService = true
}

// SelectDay records the chosen day (0-6, Monday first).
func (w *Wizard) SelectDay(day int) {
	if day >= 0 && day <= 6 {
		w.day = day
		w.hasDay = true
	}
}

// SelectTime records the chosen start time as a fractional hour-of-day.
func (w *Wizard) SelectTime(start float64) {
	w.start = start
	w.hasTime = true
}

// SetClientInfo records the client contact details.
func (w *Wizard) SetClientInfo(name, email, phone string) {
	w.clientName = strings.TrimSpace(name)
	w.clientEmail = strings.TrimSpace(email)
	w.clientPhone = strings.TrimSpace(phone)
}

// CanProceed reports whether the current step's required fields are filled,
// which gates the Next action.
func (w *Wizard) CanProceed() bool {
	switch w.step {
	case StepService:
		return w.hasService
	case StepSchedule:
		return w.hasDay && w.hasTime
	case StepDetails:
		return w.clientName != "" && w.clientEmail != "" && w.clientPhone != ""
	default:
		return false
	}
}

// Next advances one step when the current step is complete. Advancing past
// the details step confirms the booking.
func (w *Wizard) Next() bool {
	if !w.CanProceed() {
		return false
	}
	w.step++
	return true
}

// Back returns to the previous step without discarding input.
func (w *Wizard) Back() {
	if w.step > StepService && w.step < StepConfirmed {
		w.step--
	}
}

// Reset clears all selections for booking another appointment.
func (w *Wizard) Reset() {
	*w = Wizard{}
}

// Appointment builds the appointment record for a confirmed booking. The
// duration comes from the selected service.
func (w *Wizard) Appointment() (model.Appointment, error) {
	if w.step != StepConfirmed {
		return model.Appointment{}, ErrNotConfirmed
	}
	return model.Appointment{
		ClientName:  w.clientName,
		ClientEmail: w.clientEmail,
		ClientPhone: w.clientPhone,
		ServiceName: w.service.Name,
		Day:         w.day,
		StartTime:   w.start,
		Duration:    w.service.Duration,
		Color:       defaultColor,
		Status:      model.StatusConfirmed,
	}, nil
}
