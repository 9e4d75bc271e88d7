// Package service provides the core scheduling service that implements
// the dependencies required by the HTTP API: the appointment store, the
// time-grid geometry, and the interaction controller over both.
package service

import (
	"context"
	"sync"
	"time"

	"github.com/agendapro/agendapro/internal/adapters/directory"
	eventqueue "github.com/agendapro/agendapro/internal/adapters/mq/queue"
	workerpool "github.com/agendapro/agendapro/internal/adapters/mq/worker"
	"github.com/agendapro/agendapro/internal/adapters/repository"
	"github.com/agendapro/agendapro/internal/domain/booking"
	"github.com/agendapro/agendapro/internal/domain/interaction"
	"github.com/agendapro/agendapro/internal/domain/model"
	"github.com/agendapro/agendapro/internal/domain/timegrid"
	"github.com/agendapro/agendapro/internal/domain/view"
	"github.com/agendapro/agendapro/internal/notify"
	"github.com/agendapro/agendapro/pkg/logger"
	"github.com/agendapro/agendapro/pkg/metrics"
)

// Default dialog creation prefills when no cell was clicked.
const (
	defaultCreateDay  = 0
	defaultCreateHour = 9.0
)

// Service owns the application state of the calendar: the canonical store,
// the active filters, and the interaction state machines. All mutation is
// serialized behind a single mutex, so filtered views are always consistent
// with the most recent store mutation (no torn reads).
type Service struct {
	mu sync.Mutex

	// Core components
	store     repository.Store
	directory *directory.Directory
	grid      *timegrid.Grid
	queue     eventqueue.Queue
	workers   *workerpool.Pool
	notifier  notify.Notifier

	// Interaction state
	drag   *interaction.Drag
	dialog *interaction.Dialog
	nav    *interaction.Navigator

	// Active filters
	search      string
	staffFilter string

	// Current-time indicator, refreshed by the clock ticker only.
	nowOffset float64
	nowDay    int
	hasNow    bool

	// Configuration
	queueSize     int
	workerCount   int
	clockInterval time.Duration
	seedDemo      bool
	gridOpts      []timegrid.Option

	// State
	started bool
	stopCh  chan struct{}

	// Logging
	logger logger.Logger
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithWorkerCount sets the number of notification workers.
func WithWorkerCount(count int) Option {
	return func(s *Service) {
		if count > 0 {
			s.workerCount = count
		}
	}
}

// WithQueueSize sets the maximum size of the confirmation queue.
func WithQueueSize(size int) Option {
	return func(s *Service) {
		if size > 0 {
			s.queueSize = size
		}
	}
}

// WithClockInterval sets the current-time indicator refresh interval.
func WithClockInterval(interval time.Duration) Option {
	return func(s *Service) {
		if interval > 0 {
			s.clockInterval = interval
		}
	}
}

// WithGridGeometry overrides the grid geometry.
func WithGridGeometry(opts ...timegrid.Option) Option {
	return func(s *Service) {
		s.gridOpts = opts
	}
}

// WithSeedData controls whether the demo week is loaded at start.
func WithSeedData(seed bool) Option {
	return func(s *Service) {
		s.seedDemo = seed
	}
}

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithNotifier sets a custom confirmation notifier.
func WithNotifier(n notify.Notifier) Option {
	return func(s *Service) {
		if n != nil {
			s.notifier = n
		}
	}
}

// New constructs a new Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{
		queueSize:     1024,
		workerCount:   2,
		clockInterval: time.Minute,
		seedDemo:      true,
		drag:          interaction.NewDrag(),
		dialog:        interaction.NewDialog(),
		nav:           interaction.NewNavigator(),
		stopCh:        make(chan struct{}),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Start initializes and starts the service components.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return nil
	}

	if s.logger == nil {
		s.logger = logger.Get()
	}

	s.logger.Info(ctx, "starting scheduling service...")

	storeOpts := []repository.Option{repository.WithLogger(s.logger.Named("store"))}
	if s.seedDemo {
		storeOpts = append(storeOpts, repository.WithSeed(demoAppointments(), demoTimeBlocks()))
	}
	s.store = repository.NewMemStore(storeOpts...)
	s.directory = directory.New()
	s.grid = timegrid.New(s.gridOpts...)
	s.queue = eventqueue.NewInMemoryQueue(eventqueue.WithCapacity(s.queueSize))
	if s.notifier == nil {
		s.notifier = notify.NewLogNotifier()
	}

	s.workers = workerpool.NewPool(s.workerCount, s.queue, s.notifier)
	s.workers.Start(ctx)

	s.refreshNow(time.Now())
	go s.runClock(ctx)

	s.started = true
	s.logger.Info(ctx, "scheduling service started",
		logger.Int("workers", s.workerCount),
		logger.Int("queueSize", s.queueSize),
		logger.Int("appointments", s.store.Count(ctx)),
	)

	return nil
}

// Stop gracefully shuts down the service.
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return
	}

	ctx := context.Background()
	s.logger.Info(ctx, "stopping scheduling service...")

	if q, ok := s.queue.(*eventqueue.InMemoryQueue); ok {
		_ = q.Close()
	}
	if s.workers != nil {
		s.workers.Stop()
	}

	select {
	case <-s.stopCh:
	default:
		close(s.stopCh)
	}

	s.started = false
	s.logger.Info(ctx, "scheduling service stopped")
}

// runClock refreshes the current-time indicator. This is the only
// background-triggered mutation and it never touches the appointment store.
func (s *Service) runClock(ctx context.Context) {
	ticker := time.NewTicker(s.clockInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-s.stopCh:
			return
		case t := <-ticker.C:
			s.mu.Lock()
			s.refreshNow(t)
			s.mu.Unlock()
		}
	}
}

// refreshNow recomputes the indicator position. Caller holds the lock.
func (s *Service) refreshNow(t time.Time) {
	hour := float64(t.Hour()) + float64(t.Minute())/60
	s.nowDay = (int(t.Weekday()) + 6) % 7 // grid is Monday-first
	s.hasNow = s.grid.Renderable(hour)
	if s.hasNow {
		s.nowOffset = s.grid.TopOffset(hour)
	}
}

// NowIndicator returns the vertical offset and day of the current-time line,
// if the current time falls inside the visible hour range.
func (s *Service) NowIndicator() (day int, offset float64, ok bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.nowDay, s.nowOffset, s.hasNow
}

// Grid exposes the grid geometry to rendering layers.
func (s *Service) Grid() *timegrid.Grid { return s.grid }

// Navigator exposes the keyboard navigation state.
func (s *Service) Navigator() *interaction.Navigator { return s.nav }

// Dialog exposes the detail dialog state.
func (s *Service) Dialog() *interaction.Dialog { return s.dialog }

// SetSearch sets the free-text filter applied to appointment views.
func (s *Service) SetSearch(q string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.search = q
}

// SetStaffFilter sets the staff filter; empty shows all staff.
func (s *Service) SetStaffFilter(staff string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.staffFilter = staff
}

// currentFilter snapshots the active predicates. Caller holds the lock.
func (s *Service) currentFilter() view.Filter {
	return view.Filter{Search: s.search, Staff: s.staffFilter, Day: view.NoDay}
}

// Appointments returns the filtered view of the store under the active
// search and staff predicates, in insertion order.
func (s *Service) Appointments(ctx context.Context) []model.Appointment {
	s.mu.Lock()
	f := s.currentFilter()
	s.mu.Unlock()
	return view.Apply(s.store.List(ctx), f)
}

// AppointmentsForDay narrows the filtered view to a single day.
func (s *Service) AppointmentsForDay(ctx context.Context, day int) []model.Appointment {
	s.mu.Lock()
	f := s.currentFilter()
	s.mu.Unlock()
	f.Day = day
	return view.Apply(s.store.List(ctx), f)
}

// DaySummary returns one day's appointments sorted ascending by start time.
func (s *Service) DaySummary(ctx context.Context, day int) []model.Appointment {
	return view.DaySummary(s.store.List(ctx), day)
}

// Schedule computes the placed geometry for one day column: every filtered
// appointment plus staff time blocks, through the grid's placement function.
func (s *Service) Schedule(ctx context.Context, day int) []timegrid.Placement {
	appointments := s.AppointmentsForDay(ctx, day)
	blocks := s.store.ListTimeBlocks(ctx)
	return s.grid.Place(view.Events(appointments, blocks), day)
}

// Get returns a single appointment by id.
func (s *Service) Get(ctx context.Context, id string) (model.Appointment, error) {
	return s.store.Get(ctx, id)
}

// Create adds an appointment to the store.
func (s *Service) Create(ctx context.Context, appt model.Appointment) (model.Appointment, error) {
	return s.store.Create(ctx, appt)
}

// Update replaces an appointment wholesale by id. An unknown id degrades to
// an insert; see the store contract.
func (s *Service) Update(ctx context.Context, appt model.Appointment) (model.Appointment, error) {
	return s.store.Update(ctx, appt)
}

// Delete removes an appointment by id.
func (s *Service) Delete(ctx context.Context, id string) error {
	return s.store.Delete(ctx, id)
}

// TimeBlocks returns the staff time blocks.
func (s *Service) TimeBlocks(ctx context.Context) []model.TimeBlock {
	return s.store.ListTimeBlocks(ctx)
}

// ListStaff returns the staff roster.
func (s *Service) ListStaff(ctx context.Context) []string {
	return s.directory.ListStaff(ctx)
}

// ListServices returns the service catalog.
func (s *Service) ListServices(ctx context.Context) []model.Service {
	return s.directory.ListServices(ctx)
}

// ClickCell handles a click on an empty grid cell: the creation flow opens
// pre-filled with that cell's day and hour.
func (s *Service) ClickCell(ctx context.Context, day, hour int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dialog.OpenCreate(s.grid.CellFromPointer(day, hour))
}

// ClickAppointment handles a click on an appointment block, which intercepts
// the underlying cell's click and opens the view flow instead.
func (s *Service) ClickAppointment(ctx context.Context, id string) error {
	if _, err := s.store.Get(ctx, id); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dialog.OpenView(id)
}

// CreationDefaults builds the pre-filled form for a new appointment: the
// clicked cell's coordinates when one was clicked, the first service and
// staff member otherwise, status confirmed.
func (s *Service) CreationDefaults(ctx context.Context) model.Appointment {
	s.mu.Lock()
	cell, hasCell := s.dialog.Prefill()
	s.mu.Unlock()

	appt := model.Appointment{
		Day:       defaultCreateDay,
		StartTime: defaultCreateHour,
		Duration:  1,
		Status:    model.StatusConfirmed,
		Color:     "blue",
	}
	if hasCell {
		appt.Day = cell.Day
		appt.StartTime = float64(cell.Hour)
	}
	if services := s.directory.ListServices(ctx); len(services) > 0 {
		appt.ServiceName = services[0].Name
		appt.Duration = services[0].Duration
	}
	if staff := s.directory.ListStaff(ctx); len(staff) > 0 {
		appt.StaffMember = staff[0]
	}
	return appt
}

// SaveDialog commits the dialog's appointment: create when the dialog is in
// the creating state, update otherwise. The dialog closes on success.
func (s *Service) SaveDialog(ctx context.Context, appt model.Appointment) (model.Appointment, error) {
	s.mu.Lock()
	state := s.dialog.State()
	if err := s.dialog.Save(); err != nil {
		s.mu.Unlock()
		return model.Appointment{}, err
	}
	s.mu.Unlock()

	if state == interaction.DialogCreating {
		return s.store.Create(ctx, appt)
	}
	return s.store.Update(ctx, appt)
}

// RequestDelete opens the delete confirmation from the view or edit state.
func (s *Service) RequestDelete(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dialog.RequestDelete()
}

// ConfirmDelete commits the pending delete and closes the dialog.
func (s *Service) ConfirmDelete(ctx context.Context) error {
	s.mu.Lock()
	id, err := s.dialog.ConfirmDelete()
	s.mu.Unlock()
	if err != nil {
		return err
	}
	return s.store.Delete(ctx, id)
}

// CancelDialog closes the dialog from any open state, discarding input.
func (s *Service) CancelDialog(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.dialog.Cancel()
}

// DragStart begins dragging the appointment with the given id.
func (s *Service) DragStart(ctx context.Context, id string) error {
	if _, err := s.store.Get(ctx, id); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.drag.Start(id)
	return nil
}

// DragOver marks a candidate cell as the current drop target.
func (s *Service) DragOver(ctx context.Context, day, hour int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.drag.Over(s.grid.CellFromPointer(day, hour))
}

// DragLeave clears the drop target when the pointer truly left it.
func (s *Service) DragLeave(ctx context.Context, day, hour int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.drag.Leave(s.grid.CellFromPointer(day, hour))
}

// DropTarget returns the currently highlighted drop cell, if any.
func (s *Service) DropTarget() (timegrid.Cell, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.drag.Target()
}

// Drop applies the active drop target to the dragged appointment, moving it
// to the target's day and hour while preserving every other field, duration
// included. No overlap validation is performed; appointments sharing a cell
// render stacked.
func (s *Service) Drop(ctx context.Context) (model.Appointment, error) {
	s.mu.Lock()
	id, cell, ok := s.drag.Drop()
	s.mu.Unlock()
	if !ok {
		metrics.RecordDragCancelled()
		return model.Appointment{}, ErrNoDropTarget
	}

	appt, err := s.store.Get(ctx, id)
	if err != nil {
		return model.Appointment{}, err
	}

	appt.Day = cell.Day
	appt.StartTime = float64(cell.Hour)
	moved, err := s.store.Update(ctx, appt)
	if err != nil {
		return model.Appointment{}, err
	}

	metrics.RecordDragCompleted()
	s.logger.Debug(ctx, "appointment rescheduled",
		logger.String("id", id),
		logger.Int("day", cell.Day),
		logger.Int("hour", cell.Hour),
	)
	return moved, nil
}

// Move reschedules an appointment to a whole-hour cell by driving the drag
// pipeline end to end, so programmatic moves and pointer drags share one
// code path.
func (s *Service) Move(ctx context.Context, id string, day, hour int) (model.Appointment, error) {
	if err := s.DragStart(ctx, id); err != nil {
		return model.Appointment{}, err
	}
	s.DragOver(ctx, day, hour)
	appt, err := s.Drop(ctx)
	s.DragEnd(ctx)
	return appt, err
}

// DragEnd clears all drag state; it fires after a drop and on cancel alike.
func (s *Service) DragEnd(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.drag.Phase() != interaction.PhaseIdle {
		metrics.RecordDragCancelled()
	}
	s.drag.End()
}

// HandleKey dispatches a global keyboard shortcut.
func (s *Service) HandleKey(ctx context.Context, key string, mod bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if cmd := s.nav.HandleKey(key, mod); cmd == interaction.CommandNewAppointment {
		_ = s.dialog.OpenCreateBlank()
	}
}

// ConfirmBooking advances a wizard past its details step, commits the
// resulting appointment, and queues the confirmation for delivery. The
// appointment is assigned to the first available staff member.
func (s *Service) ConfirmBooking(ctx context.Context, w *booking.Wizard) (model.Appointment, error) {
	if !w.Next() {
		return model.Appointment{}, booking.ErrNotConfirmed
	}
	appt, err := w.Appointment()
	if err != nil {
		return model.Appointment{}, err
	}
	if staff := s.directory.ListStaff(ctx); len(staff) > 0 {
		appt.StaffMember = staff[0]
	}

	created, err := s.store.Create(ctx, appt)
	if err != nil {
		return model.Appointment{}, err
	}

	metrics.RecordBookingConfirmed()
	if !s.queue.Enqueue(ctx, eventqueue.Job{Appointment: created}) {
		s.logger.Warn(ctx, "confirmation queue full; notification dropped",
			logger.String("id", created.ID),
		)
	}
	return created, nil
}

// GetStats returns service statistics for monitoring.
func (s *Service) GetStats() map[string]interface{} {
	s.mu.Lock()
	started := s.started
	mode := s.nav.Mode()
	s.mu.Unlock()

	ctx := context.Background()
	stats := map[string]interface{}{
		"started":     started,
		"workerCount": s.workerCount,
		"queueSize":   s.queueSize,
		"viewMode":    string(mode),
	}

	if started {
		stats["appointments"] = s.store.Count(ctx)
		stats["queueLength"] = s.queue.Len(ctx)
	}

	return stats
}
