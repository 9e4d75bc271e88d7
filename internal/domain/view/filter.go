// Package view derives read-only projections of the appointment store.
package view

import (
	"sort"
	"strings"

	"github.com/agendapro/agendapro/internal/domain/model"
)

// NoDay disables day filtering.
const NoDay = -1

// Filter describes the active projection predicates. Zero values disable a
// predicate: empty Search and Staff match everything, Day of NoDay matches
// every day.
type Filter struct {
	// Search is matched case-insensitively against client name, service,
	// staff, email, and phone.
	Search string
	// Staff keeps only appointments assigned to this staff member.
	Staff string
	// Day keeps only appointments on this day (0-6), or NoDay for all.
	Day int
}

// All matches every appointment.
func All() Filter {
	return Filter{Day: NoDay}
}

// ByDay matches appointments on a single day.
func ByDay(day int) Filter {
	return Filter{Day: day}
}

// Matches reports whether a single appointment passes the filter.
func (f Filter) Matches(appt model.Appointment) bool {
	if f.Staff != "" && appt.StaffMember != f.Staff {
		return false
	}
	if f.Day != NoDay && appt.Day != f.Day {
		return false
	}
	if f.Search != "" {
		q := strings.ToLower(f.Search)
		if !strings.Contains(strings.ToLower(appt.ClientName), q) &&
			!strings.Contains(strings.ToLower(appt.ServiceName), q) &&
			!strings.Contains(strings.ToLower(appt.StaffMember), q) &&
			!strings.Contains(strings.ToLower(appt.ClientEmail), q) &&
			!strings.Contains(strings.ToLower(appt.ClientPhone), q) {
			return false
		}
	}
	return true
}

// Apply returns the appointments passing the filter, preserving insertion
// order. It is a pure function: identical inputs yield identical results and
// the input slice is never mutated.
func Apply(appointments []model.Appointment, f Filter) []model.Appointment {
	out := make([]model.Appointment, 0, len(appointments))
	for _, appt := range appointments {
		if f.Matches(appt) {
			out = append(out, appt)
		}
	}
	return out
}

// DaySummary returns the appointments for one day sorted ascending by start
// time, as shown on the "today" summary.
func DaySummary(appointments []model.Appointment, day int) []model.Appointment {
	out := Apply(appointments, ByDay(day))
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].StartTime < out[j].StartTime
	})
	return out
}

// Events widens a filtered appointment slice into the calendar event union,
// appending any time blocks, for consumption by grid placement.
func Events(appointments []model.Appointment, blocks []model.TimeBlock) []model.CalendarEvent {
	events := make([]model.CalendarEvent, 0, len(appointments)+len(blocks))
	for _, appt := range appointments {
		events = append(events, appt)
	}
	for _, b := range blocks {
		events = append(events, b)
	}
	return events
}
