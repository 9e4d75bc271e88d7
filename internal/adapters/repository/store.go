// Package repository defines the appointment store interface and errors.
package repository

import (
	"context"

	"github.com/agendapro/agendapro/internal/domain/model"
)

// Store owns the canonical ordered collection of appointments.
//
// Ordering guarantee: List returns appointments in insertion order, and every
// mutation is serialized behind a single writer lock so readers never observe
// a partially-applied mutation.
type Store interface {
	// Create adds an appointment, assigning a fresh unique id when the
	// caller supplies none, and returns the stored record.
	Create(ctx context.Context, appt model.Appointment) (model.Appointment, error)

	// Update replaces the appointment with the same id wholesale, keeping
	// its position. An unknown id degrades to an append instead of an
	// error; callers relying on strict updates should Get first.
	Update(ctx context.Context, appt model.Appointment) (model.Appointment, error)

	// Delete removes the appointment with the given id.
	// Returns ErrNotFound if the id is unknown.
	Delete(ctx context.Context, id string) error

	// Get returns the appointment with the given id.
	// Returns ErrNotFound if the id is unknown.
	Get(ctx context.Context, id string) (model.Appointment, error)

	// List returns a copy of all appointments in insertion order.
	List(ctx context.Context) []model.Appointment

	// Count returns the number of stored appointments.
	Count(ctx context.Context) int

	// AddTimeBlock adds a staff time block alongside the appointments.
	AddTimeBlock(ctx context.Context, block model.TimeBlock) (model.TimeBlock, error)

	// ListTimeBlocks returns a copy of all time blocks in insertion order.
	ListTimeBlocks(ctx context.Context) []model.TimeBlock
}
