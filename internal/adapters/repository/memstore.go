package repository

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/agendapro/agendapro/internal/domain/model"
	"github.com/agendapro/agendapro/pkg/logger"
	"github.com/agendapro/agendapro/pkg/metrics"
)

// MemStore implements Store with an ordered in-memory collection guarded by
// a single writer lock.
type MemStore struct {
	mu           sync.RWMutex
	appointments []model.Appointment
	index        map[string]int // id -> position in appointments
	blocks       []model.TimeBlock

	logger logger.Logger
}

// Option applies a configuration option to the MemStore.
type Option func(*MemStore)

// WithLogger sets a custom logger for the store.
func WithLogger(l logger.Logger) Option {
	return func(s *MemStore) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithSeed pre-populates the store. Seed records keep their ids.
func WithSeed(appointments []model.Appointment, blocks []model.TimeBlock) Option {
	return func(s *MemStore) {
		for _, appt := range appointments {
			s.index[appt.ID] = len(s.appointments)
			s.appointments = append(s.appointments, appt)
		}
		s.blocks = append(s.blocks, blocks...)
	}
}

// NewMemStore creates an in-memory appointment store.
func NewMemStore(opts ...Option) *MemStore {
	s := &MemStore{
		index:  make(map[string]int),
		logger: logger.Get().Named("store"),
	}

	for _, opt := range opts {
		opt(s)
	}

	metrics.UpdateAppointmentCount(len(s.appointments))
	metrics.UpdateTimeBlockCount(len(s.blocks))

	return s
}

// Create adds an appointment, assigning a fresh id when the caller supplies none.
func (s *MemStore) Create(ctx context.Context, appt model.Appointment) (model.Appointment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if appt.ID == "" {
		appt.ID = uuid.NewString()
	}
	s.index[appt.ID] = len(s.appointments)
	s.appointments = append(s.appointments, appt)

	metrics.RecordAppointmentCreated()
	metrics.UpdateAppointmentCount(len(s.appointments))
	s.logger.Debug(ctx, "appointment created",
		logger.String("id", appt.ID),
		logger.Int("day", appt.Day),
		logger.Float64("startTime", appt.StartTime),
	)

	return appt, nil
}

// Update replaces the appointment with the same id wholesale, keeping its
// position. An unknown id degrades to an append; that almost always means a
// caller bug, so it is logged and counted without failing the operation.
func (s *MemStore) Update(ctx context.Context, appt model.Appointment) (model.Appointment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if appt.ID == "" {
		return model.Appointment{}, ErrInvalidID
	}

	pos, ok := s.index[appt.ID]
	if !ok {
		s.logger.Warn(ctx, "update of unknown appointment id; inserting",
			logger.String("id", appt.ID),
		)
		metrics.RecordUpdateAsInsert()
		s.index[appt.ID] = len(s.appointments)
		s.appointments = append(s.appointments, appt)
		metrics.UpdateAppointmentCount(len(s.appointments))
		return appt, nil
	}

	s.appointments[pos] = appt
	metrics.RecordAppointmentUpdated()

	return appt, nil
}

// Delete removes the appointment with the given id.
func (s *MemStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	pos, ok := s.index[id]
	if !ok {
		return ErrNotFound
	}

	s.appointments = append(s.appointments[:pos], s.appointments[pos+1:]...)
	delete(s.index, id)
	for i := pos; i < len(s.appointments); i++ {
		s.index[s.appointments[i].ID] = i
	}

	metrics.RecordAppointmentDeleted()
	metrics.UpdateAppointmentCount(len(s.appointments))
	s.logger.Debug(ctx, "appointment deleted", logger.String("id", id))

	return nil
}

// Get returns the appointment with the given id.
func (s *MemStore) Get(ctx context.Context, id string) (model.Appointment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	pos, ok := s.index[id]
	if !ok {
		return model.Appointment{}, ErrNotFound
	}
	return s.appointments[pos], nil
}

// List returns a copy of all appointments in insertion order.
func (s *MemStore) List(ctx context.Context) []model.Appointment {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.Appointment, len(s.appointments))
	copy(out, s.appointments)
	return out
}

// Count returns the number of stored appointments.
func (s *MemStore) Count(ctx context.Context) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.appointments)
}

// AddTimeBlock adds a staff time block, assigning a fresh id when needed.
func (s *MemStore) AddTimeBlock(ctx context.Context, block model.TimeBlock) (model.TimeBlock, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if block.ID == "" {
		block.ID = uuid.NewString()
	}
	s.blocks = append(s.blocks, block)
	metrics.UpdateTimeBlockCount(len(s.blocks))

	return block, nil
}

// ListTimeBlocks returns a copy of all time blocks in insertion order.
func (s *MemStore) ListTimeBlocks(ctx context.Context) []model.TimeBlock {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.TimeBlock, len(s.blocks))
	copy(out, s.blocks)
	return out
}
