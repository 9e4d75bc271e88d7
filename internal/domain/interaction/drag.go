// Package interaction models the calendar's pointer and keyboard protocols
// as explicit state machines, decoupled from rendering and storage.
package interaction

import (
	"github.com/agendapro/agendapro/internal/domain/timegrid"
)

// Phase is the state of an in-progress drag.
type Phase int

// Drag phases.
const (
	PhaseIdle Phase = iota
	PhaseDragging
	PhaseTargeting
)

// Drag is the five-phase drag-to-reschedule state machine:
//
//	idle -> dragging (Start) -> targeting (Over) <-> dragging (Leave)
//	targeting -> idle (Drop) ; any -> idle (End)
//
// At most one drop target is active at a time; End always clears state, so a
// cancelled drag can never leak a highlight.
type Drag struct {
	phase  Phase
	id     string
	target timegrid.Cell
}

// NewDrag creates an idle drag state machine.
func NewDrag() *Drag {
	return &Drag{}
}

// Phase returns the current drag phase.
func (d *Drag) Phase() Phase { return d.phase }

// DraggingID returns the id of the appointment being dragged, or "" when idle.
func (d *Drag) DraggingID() string {
	if d.phase == PhaseIdle {
		return ""
	}
	return d.id
}

// Target returns the current drop target, if one is active.
func (d *Drag) Target() (timegrid.Cell, bool) {
	if d.phase != PhaseTargeting {
		return timegrid.Cell{}, false
	}
	return d.target, true
}

// Start begins dragging the appointment with the given id. Starting while a
// drag is already active replaces it; the latest event wins.
func (d *Drag) Start(id string) {
	d.phase = PhaseDragging
	d.id = id
	d.target = timegrid.Cell{}
}

// Over marks a candidate cell as the current drop target, replacing any
// previous target. Ignored when no drag is active.
func (d *Drag) Over(cell timegrid.Cell) bool {
	if d.phase == PhaseIdle {
		return false
	}
	d.phase = PhaseTargeting
	d.target = cell
	return true
}

// Leave clears the drop target only when the pointer left the cell that is
// the current target. Leave events from child elements of the target carry
// the same cell and are therefore harmless; events from other cells must not
// clear the active target.
func (d *Drag) Leave(cell timegrid.Cell) {
	if d.phase == PhaseTargeting && d.target == cell {
		d.phase = PhaseDragging
		d.target = timegrid.Cell{}
	}
}

// Drop completes the drag, yielding the dragged id and the drop cell. It
// reports false when no target is active, in which case nothing changes for
// the caller to apply. State is cleared either way a drop fires.
func (d *Drag) Drop() (string, timegrid.Cell, bool) {
	if d.phase != PhaseTargeting {
		d.reset()
		return "", timegrid.Cell{}, false
	}
	id, cell := d.id, d.target
	d.reset()
	return id, cell, true
}

// End clears all drag state. It fires on cancel as well as after a drop, so
// it must be safe to call from any phase.
func (d *Drag) End() {
	d.reset()
}

func (d *Drag) reset() {
	d.phase = PhaseIdle
	d.id = ""
	d.target = timegrid.Cell{}
}
