// Package worker delivers queued booking confirmations asynchronously.
package worker

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/agendapro/agendapro/internal/adapters/mq/queue"
	"github.com/agendapro/agendapro/internal/notify"
	"github.com/agendapro/agendapro/pkg/logger"
	"github.com/agendapro/agendapro/pkg/metrics"
)

// Default worker configuration constants.
const (
	defaultWorkerCount    = 2
	workerShutdownTimeout = 5 * time.Second
)

// Source defines how workers receive confirmation jobs.
type Source interface {
	Dequeue(ctx context.Context) <-chan queue.Job
}

// Worker drains the confirmation queue and delivers through a Notifier.
type Worker struct {
	source   Source
	notifier notify.Notifier
	name     string

	shutdown chan struct{}
	done     chan struct{}

	logger logger.Logger
}

// New creates a worker with configuration options.
func New(source Source, notifier notify.Notifier, opts ...Option) *Worker {
	w := &Worker{
		source:   source,
		notifier: notifier,
		name:     "worker",
		shutdown: make(chan struct{}),
		done:     make(chan struct{}),
		logger:   logger.Get().Named("worker"),
	}

	for _, opt := range opts {
		opt(w)
	}

	if w.name != "worker" {
		w.logger = w.logger.Named(w.name)
	}

	return w
}

// Run starts the worker loop until ctx is canceled or the queue closes.
func (w *Worker) Run(ctx context.Context) {
	defer close(w.done)

	jobs := w.source.Dequeue(ctx)
	for {
		select {
		case <-ctx.Done():
			return
		case <-w.shutdown:
			return
		case job, ok := <-jobs:
			if !ok {
				return
			}
			if err := w.deliver(ctx, job); err != nil {
				w.logger.Error(ctx, "confirmation delivery failed", logger.Error(err))
			}
		}
	}
}

// Shutdown gracefully stops the worker.
func (w *Worker) Shutdown(ctx context.Context) error {
	close(w.shutdown)

	select {
	case <-w.done:
		return nil
	case <-ctx.Done():
		w.logger.Warn(ctx, "shutdown timed out")
		return fmt.Errorf("shutdown timed out: %w", ctx.Err())
	}
}

// deliver handles a single confirmation job.
func (w *Worker) deliver(ctx context.Context, job queue.Job) error {
	start := time.Now()
	err := w.notifier.BookingConfirmed(ctx, job.Appointment)
	metrics.RecordNotifyLatency(float64(time.Since(start).Milliseconds()))

	if err != nil {
		metrics.RecordNotifyError()
		return fmt.Errorf("notify booking %s: %w", job.Appointment.ID, err)
	}
	return nil
}

// Pool manages a fixed set of confirmation workers.
type Pool struct {
	workers []*Worker

	logger logger.Logger
}

// NewPool creates a worker pool reading from the given source.
func NewPool(workerCount int, source Source, notifier notify.Notifier) *Pool {
	if workerCount < 1 {
		workerCount = defaultWorkerCount
	}

	pool := &Pool{
		workers: make([]*Worker, workerCount),
		logger:  logger.Get().Named("worker-pool"),
	}

	for i := 0; i < workerCount; i++ {
		pool.workers[i] = New(source, notifier, WithName("worker-"+strconv.Itoa(i)))
	}

	metrics.UpdateWorkerCount(workerCount)

	return pool
}

// Start starts all workers in the pool.
func (p *Pool) Start(ctx context.Context) {
	for _, w := range p.workers {
		go w.Run(ctx)
	}
}

// Stop gracefully stops all workers.
func (p *Pool) Stop() {
	ctx, cancel := context.WithTimeout(context.Background(), workerShutdownTimeout)
	defer cancel()

	for _, w := range p.workers {
		if err := w.Shutdown(ctx); err != nil {
			p.logger.Warn(ctx, "worker stop timed out", logger.Error(err))
		}
	}
}
