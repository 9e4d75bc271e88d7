// Package timegrid provides pure coordinate math between appointment time
// fields and the pixel geometry of the weekly calendar grid.
package timegrid

import (
	"fmt"
	"math"

	"github.com/agendapro/agendapro/internal/domain/model"
)

// Default grid geometry constants.
const (
	defaultRowHeight      = 64 // display units per hour row
	defaultVisibleStart   = 8  // first rendered hour (8 AM)
	defaultVisibleRows    = 13 // hours 8..20 inclusive
	defaultMinBlockHeight = 32 // floor so short appointments stay clickable
)

// Cell identifies one (day, hour-row) unit of the visible grid.
type Cell struct {
	Day  int `json:"day"`
	Hour int `json:"hour"`
}

// Grid holds the geometry of the visible calendar and converts between
// calendar coordinates and display offsets. It carries no mutable state.
type Grid struct {
	rowHeight      float64
	visibleStart   float64
	visibleRows    int
	minBlockHeight float64
}

// Option applies a configuration option to the Grid.
type Option func(*Grid)

// WithRowHeight sets the display height of one hour row.
func WithRowHeight(h float64) Option {
	return func(g *Grid) {
		if h > 0 {
			g.rowHeight = h
		}
	}
}

// WithVisibleRange sets the first rendered hour and the number of hour rows.
func WithVisibleRange(start float64, rows int) Option {
	return func(g *Grid) {
		if start >= 0 && rows > 0 {
			g.visibleStart = start
			g.visibleRows = rows
		}
	}
}

// WithMinBlockHeight sets the visual height floor for short appointments.
func WithMinBlockHeight(h float64) Option {
	return func(g *Grid) {
		if h > 0 {
			g.minBlockHeight = h
		}
	}
}

// New constructs a Grid with default geometry.
func New(opts ...Option) *Grid {
	g := &Grid{
		rowHeight:      defaultRowHeight,
		visibleStart:   defaultVisibleStart,
		visibleRows:    defaultVisibleRows,
		minBlockHeight: defaultMinBlockHeight,
	}

	for _, opt := range opts {
		opt(g)
	}

	return g
}

// RowHeight returns the display height of one hour row.
func (g *Grid) RowHeight() float64 { return g.rowHeight }

// VisibleStart returns the first rendered hour.
func (g *Grid) VisibleStart() float64 { return g.visibleStart }

// VisibleRows returns the number of rendered hour rows.
func (g *Grid) VisibleRows() int { return g.visibleRows }

// Rows returns the hour value of every visible row, top to bottom.
func (g *Grid) Rows() []int {
	rows := make([]int, g.visibleRows)
	for i := range rows {
		rows[i] = int(g.visibleStart) + i
	}
	return rows
}

// TopOffset maps a start time to the vertical offset of its block.
// Start times before the visible range clamp to 0; appointments before
// opening hours are not renderable and pin to the top of the grid.
func (g *Grid) TopOffset(startTime float64) float64 {
	offset := (startTime - g.visibleStart) * g.rowHeight
	if offset < 0 {
		return 0
	}
	return offset
}

// BlockHeight maps a duration in hours to a block height, with a floor so
// very short appointments remain clickable. The floor is cosmetic only and
// never alters the stored duration.
func (g *Grid) BlockHeight(duration float64) float64 {
	return math.Max(duration*g.rowHeight, g.minBlockHeight)
}

// Renderable reports whether an event starting at startTime falls inside the
// visible hour range. An event may overflow past the last row and still
// render; only the start must be visible.
func (g *Grid) Renderable(startTime float64) bool {
	return startTime >= g.visibleStart && startTime < g.visibleStart+float64(g.visibleRows)
}

// CellFromPointer resolves a rendered grid cell back to its coordinate pair.
// Drop targets only exist at whole-hour granularity; sub-hour positions are
// display-only. Known limitation carried over from the original calendar.
func (g *Grid) CellFromPointer(day, hour int) Cell {
	return Cell{Day: day, Hour: hour}
}

// Contains reports whether a cell lies inside the visible grid.
func (g *Grid) Contains(c Cell) bool {
	if c.Day < 0 || c.Day > 6 {
		return false
	}
	h := float64(c.Hour)
	return h >= g.visibleStart && h < g.visibleStart+float64(g.visibleRows)
}

// Placement is the computed display geometry for one calendar event.
type Placement struct {
	Event  model.CalendarEvent `json:"-"`
	ID     string              `json:"id"`
	Kind   model.Kind          `json:"kind"`
	Day    int                 `json:"day"`
	Top    float64             `json:"top"`
	Height float64             `json:"height"`
	Label  string              `json:"label"`
}

// Place computes the display geometry for every renderable event on the given
// day. Events whose start falls outside the visible range are dropped; events
// sharing a cell are kept in input order and rendered stacked.
func (g *Grid) Place(events []model.CalendarEvent, day int) []Placement {
	var placed []Placement
	for _, ev := range events {
		span := ev.Span()
		if span.Day != day || !g.Renderable(span.StartTime) {
			continue
		}
		placed = append(placed, Placement{
			Event:  ev,
			ID:     ev.EventID(),
			Kind:   ev.EventKind(),
			Day:    span.Day,
			Top:    g.TopOffset(span.StartTime),
			Height: g.BlockHeight(span.Duration),
			Label:  TimeOfDayLabel(span.StartTime),
		})
	}
	return placed
}

// TimeLabel formats an hour plus minute offset into a 12-hour clock label.
// Hours 0 and 12 render as 12, never 0.
func TimeLabel(hour, minutes int) string {
	suffix := "AM"
	if hour >= 12 {
		suffix = "PM"
	}
	h := hour % 12
	if h == 0 {
		h = 12
	}
	return fmt.Sprintf("%d:%02d %s", h, minutes, suffix)
}

// TimeOfDayLabel formats a fractional hour-of-day, e.g. 9.5 -> "9:30 AM".
func TimeOfDayLabel(t float64) string {
	hour := int(t)
	minutes := int(math.Round((t - float64(hour)) * 60))
	if minutes == 60 {
		hour++
		minutes = 0
	}
	return TimeLabel(hour, minutes)
}

// FormatDuration renders a duration in hours as human-readable text,
// e.g. 0.5 -> "30 minutes", 1 -> "1 hour", 1.5 -> "1 hour 30 minutes".
func FormatDuration(duration float64) string {
	hours := int(duration)
	minutes := int(math.Round((duration - float64(hours)) * 60))

	switch {
	case hours == 0:
		return fmt.Sprintf("%d minutes", minutes)
	case minutes == 0:
		if hours == 1 {
			return "1 hour"
		}
		return fmt.Sprintf("%d hours", hours)
	default:
		hourText := "hours"
		if hours == 1 {
			hourText = "hour"
		}
		return fmt.Sprintf("%d %s %d minutes", hours, hourText, minutes)
	}
}
