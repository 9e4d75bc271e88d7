// Package ics serializes the weekly schedule as an iCalendar feed.
package ics

import (
	"fmt"
	"time"

	ical "github.com/arran4/golang-ical"

	"github.com/agendapro/agendapro/internal/domain/model"
	"github.com/agendapro/agendapro/internal/domain/timegrid"
)

const productID = "-//AgendaPro//Scheduling//EN"

// WeekStart returns the Monday 00:00 of the week containing now, shifted by
// offset weeks. The grid indexes days Monday-first, so all slot-to-date math
// anchors here.
func WeekStart(now time.Time, offset int) time.Time {
	// time.Weekday is Sunday=0; the grid is Monday=0.
	day := (int(now.Weekday()) + 6) % 7
	monday := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return monday.AddDate(0, 0, -day+offset*7)
}

// slotTimes converts a grid slot into absolute start and end times within
// the week beginning at weekStart.
func slotTimes(weekStart time.Time, slot model.Slot) (time.Time, time.Time) {
	day := weekStart.AddDate(0, 0, slot.Day)
	start := day.Add(time.Duration(slot.StartTime * float64(time.Hour)))
	end := start.Add(time.Duration(slot.Duration * float64(time.Hour)))
	return start, end
}

// ExportWeek serializes the given appointments and time blocks onto the week
// containing now, shifted by offset weeks, and returns the iCalendar text.
func ExportWeek(appointments []model.Appointment, blocks []model.TimeBlock, now time.Time, offset int) string {
	cal := ical.NewCalendar()
	cal.SetMethod(ical.MethodPublish)
	cal.SetProductId(productID)

	monday := WeekStart(now, offset)

	for _, appt := range appointments {
		start, end := slotTimes(monday, appt.Span())
		ev := cal.AddEvent(appt.ID)
		ev.SetDtStampTime(now)
		ev.SetStartAt(start)
		ev.SetEndAt(end)
		ev.SetSummary(fmt.Sprintf("%s - %s", appt.ServiceName, appt.ClientName))
		ev.SetDescription(fmt.Sprintf("Staff: %s\nDuration: %s\nStatus: %s",
			appt.StaffMember, timegrid.FormatDuration(appt.Duration), appt.Status))
		if appt.Notes != "" {
			ev.SetLocation(appt.Notes)
		}
	}

	for _, block := range blocks {
		start, end := slotTimes(monday, block.Span())
		ev := cal.AddEvent(block.ID)
		ev.SetDtStampTime(now)
		ev.SetStartAt(start)
		ev.SetEndAt(end)
		title := block.Title
		if title == "" {
			title = string(block.BlockType)
		}
		ev.SetSummary(fmt.Sprintf("%s (%s)", title, block.StaffMember))
	}

	return cal.Serialize()
}
