package interaction

import (
	"errors"

	"github.com/agendapro/agendapro/internal/domain/timegrid"
)

// ErrInvalidTransition is returned when a dialog action is not legal in the
// current state.
var ErrInvalidTransition = errors.New("invalid dialog transition")

// DialogState is the state of the appointment detail dialog.
type DialogState int

// Dialog states.
const (
	DialogClosed DialogState = iota
	DialogViewing
	DialogEditing
	DialogCreating
	DialogConfirmingDelete
)

// Dialog is the appointment detail dialog state machine:
//
//	closed -> viewing  (click existing appointment)
//	closed -> creating (click empty cell or new action)
//	viewing -> editing (Edit)
//	viewing|editing -> confirming-delete (Delete)
//	editing|creating -> closed (Save commits, Cancel discards)
//	confirming-delete -> closed (Confirm commits delete, Cancel discards)
//
// Cancelling the delete confirmation returns to closed rather than the prior
// state; that matches the current product behavior and is a known UX gap.
type Dialog struct {
	state DialogState

	// appointmentID is set while viewing/editing an existing appointment.
	appointmentID string

	// prefill holds the cell a create flow was opened from, if any.
	prefill    timegrid.Cell
	hasPrefill bool
}

// NewDialog creates a closed dialog.
func NewDialog() *Dialog {
	return &Dialog{}
}

// State returns the current dialog state.
func (d *Dialog) State() DialogState { return d.state }

// AppointmentID returns the id of the appointment being viewed or edited.
func (d *Dialog) AppointmentID() string { return d.appointmentID }

// Prefill returns the grid cell a create flow was opened from, if any.
func (d *Dialog) Prefill() (timegrid.Cell, bool) {
	return d.prefill, d.hasPrefill
}

// OpenView opens the dialog on an existing appointment. Appointment blocks
// intercept the underlying cell's click, so an occupied cell resolves here
// and never to OpenCreate.
func (d *Dialog) OpenView(id string) error {
	if d.state != DialogClosed {
		return ErrInvalidTransition
	}
	d.state = DialogViewing
	d.appointmentID = id
	return nil
}

// OpenCreate opens the creation flow, pre-filled from a clicked empty cell.
func (d *Dialog) OpenCreate(cell timegrid.Cell) error {
	if d.state != DialogClosed {
		return ErrInvalidTransition
	}
	d.state = DialogCreating
	d.prefill = cell
	d.hasPrefill = true
	return nil
}

// OpenCreateBlank opens the creation flow with no pre-filled cell, as
// triggered by the new-appointment keyboard shortcut.
func (d *Dialog) OpenCreateBlank() error {
	if d.state != DialogClosed {
		return ErrInvalidTransition
	}
	d.state = DialogCreating
	d.hasPrefill = false
	return nil
}

// Edit switches from viewing to editing.
func (d *Dialog) Edit() error {
	if d.state != DialogViewing {
		return ErrInvalidTransition
	}
	d.state = DialogEditing
	return nil
}

// RequestDelete moves to the delete confirmation, reachable from both the
// view and edit states.
func (d *Dialog) RequestDelete() error {
	if d.state != DialogViewing && d.state != DialogEditing {
		return ErrInvalidTransition
	}
	d.state = DialogConfirmingDelete
	return nil
}

// Save closes an editing or creating dialog; the caller commits to the store.
func (d *Dialog) Save() error {
	if d.state != DialogEditing && d.state != DialogCreating {
		return ErrInvalidTransition
	}
	d.reset()
	return nil
}

// ConfirmDelete closes the confirmation; the caller commits the delete.
// Returns the id of the appointment to delete.
func (d *Dialog) ConfirmDelete() (string, error) {
	if d.state != DialogConfirmingDelete {
		return "", ErrInvalidTransition
	}
	id := d.appointmentID
	d.reset()
	return id, nil
}

// Cancel closes the dialog from any open state, discarding pending input.
func (d *Dialog) Cancel() {
	d.reset()
}

func (d *Dialog) reset() {
	d.state = DialogClosed
	d.appointmentID = ""
	d.prefill = timegrid.Cell{}
	d.hasPrefill = false
}
