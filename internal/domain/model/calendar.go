// Package model contains domain models passed between layers.
package model

// Status tracks the lifecycle of an appointment.
type Status string

// Appointment statuses.
const (
	StatusConfirmed Status = "confirmed"
	StatusPending   Status = "pending"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

// Valid reports whether s is one of the known statuses.
func (s Status) Valid() bool {
	switch s {
	case StatusConfirmed, StatusPending, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// BlockType classifies a time block.
type BlockType string

// Time block types.
const (
	BlockBreak       BlockType = "break"
	BlockMeeting     BlockType = "meeting"
	BlockUnavailable BlockType = "unavailable"
	BlockVacation    BlockType = "vacation"
)

// Kind discriminates the calendar event union.
type Kind int

// Calendar event kinds.
const (
	KindAppointment Kind = iota
	KindTimeBlock
)

// Slot is the span of a calendar event on the weekly grid.
// Day is 0-6 for Mon-Sun; StartTime is the hour-of-day on a 24h clock with
// fractional values permitted (9.5 = 9:30); Duration is in hours.
type Slot struct {
	Day       int
	StartTime float64
	Duration  float64
}

// CalendarEvent is the tagged union over appointments and time blocks.
// Placement code consumes this interface instead of checking field presence.
type CalendarEvent interface {
	EventKind() Kind
	EventID() string
	Span() Slot
}

// Appointment represents a booked client visit.
type Appointment struct {
	ID          string  `json:"id"`
	ClientName  string  `json:"client_name"`
	ClientEmail string  `json:"client_email,omitempty"`
	ClientPhone string  `json:"client_phone,omitempty"`
	ServiceName string  `json:"service_name"`
	StaffMember string  `json:"staff_member"`
	Day         int     `json:"day"`
	StartTime   float64 `json:"start_time"`
	Duration    float64 `json:"duration"`
	Color       string  `json:"color"`
	Status      Status  `json:"status"`
	Notes       string  `json:"notes,omitempty"`
}

// EventKind identifies the appointment variant.
func (a Appointment) EventKind() Kind { return KindAppointment }

// EventID returns the appointment id.
func (a Appointment) EventID() string { return a.ID }

// Span returns the appointment's grid slot.
func (a Appointment) Span() Slot {
	return Slot{Day: a.Day, StartTime: a.StartTime, Duration: a.Duration}
}

// TimeBlock represents staff time reserved outside of client appointments,
// e.g. breaks, meetings, or vacation.
type TimeBlock struct {
	ID          string    `json:"id"`
	BlockType   BlockType `json:"block_type"`
	StaffMember string    `json:"staff_member"`
	Day         int       `json:"day"`
	StartTime   float64   `json:"start_time"`
	Duration    float64   `json:"duration"`
	Title       string    `json:"title"`
	Notes       string    `json:"notes,omitempty"`
}

// EventKind identifies the time block variant.
func (b TimeBlock) EventKind() Kind { return KindTimeBlock }

// EventID returns the time block id.
func (b TimeBlock) EventID() string { return b.ID }

// Span returns the time block's grid slot.
func (b TimeBlock) Span() Slot {
	return Slot{Day: b.Day, StartTime: b.StartTime, Duration: b.Duration}
}

// Service describes a bookable service offered by the business.
type Service struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Duration    float64 `json:"duration"` // hours
	Price       string  `json:"price"`
	Description string  `json:"description,omitempty"`
}

// DayNames are the short weekday names in grid order, Monday first.
var DayNames = [7]string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

// DayNamesLong are the full weekday names in grid order.
var DayNamesLong = [7]string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}
