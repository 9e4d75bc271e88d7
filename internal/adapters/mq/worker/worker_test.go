package worker_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/agendapro/agendapro/internal/adapters/mq/queue"
	"github.com/agendapro/agendapro/internal/adapters/mq/worker"
	"github.com/agendapro/agendapro/internal/domain/model"
	"github.com/agendapro/agendapro/pkg/logger"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	// Initialize logging for tests
	if err := logger.Init(); err != nil {
		panic(err)
	}
}

// recordingNotifier captures delivered confirmations for assertions.
type recordingNotifier struct {
	mu        sync.Mutex
	delivered []model.Appointment
	fail      bool
}

func (r *recordingNotifier) BookingConfirmed(ctx context.Context, appt model.Appointment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.fail {
		return errors.New("delivery refused")
	}
	r.delivered = append(r.delivered, appt)
	return nil
}

func (r *recordingNotifier) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.delivered)
}

func waitFor(cond func() bool) bool {
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return true
		}
		time.Sleep(10 * time.Millisecond)
	}
	return cond()
}

func TestWorker_Delivery(t *testing.T) {
	Convey("Given a worker draining a queue", t, func() {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		q := queue.NewInMemoryQueue(queue.WithCapacity(8))
		notifier := &recordingNotifier{}
		w := worker.New(q, notifier, worker.WithName("test-worker"))
		go w.Run(ctx)

		Convey("When confirmations are enqueued", func() {
			So(q.Enqueue(ctx, queue.Job{Appointment: model.Appointment{ID: "1"}}), ShouldBeTrue)
			So(q.Enqueue(ctx, queue.Job{Appointment: model.Appointment{ID: "2"}}), ShouldBeTrue)

			Convey("Then both are delivered", func() {
				So(waitFor(func() bool { return notifier.count() == 2 }), ShouldBeTrue)
			})
		})

		Convey("When the worker is shut down", func() {
			shutdownCtx, stop := context.WithTimeout(context.Background(), time.Second)
			defer stop()

			So(w.Shutdown(shutdownCtx), ShouldBeNil)
		})
	})
}

func TestWorker_DeliveryFailure(t *testing.T) {
	Convey("Given a notifier that refuses delivery", t, func() {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		q := queue.NewInMemoryQueue(queue.WithCapacity(8))
		notifier := &recordingNotifier{fail: true}
		w := worker.New(q, notifier)
		go w.Run(ctx)

		Convey("When a confirmation is enqueued", func() {
			So(q.Enqueue(ctx, queue.Job{Appointment: model.Appointment{ID: "1"}}), ShouldBeTrue)

			Convey("Then the worker keeps running and the queue drains", func() {
				So(waitFor(func() bool { return q.Len(ctx) == 0 }), ShouldBeTrue)

				shutdownCtx, stop := context.WithTimeout(context.Background(), time.Second)
				defer stop()
				So(w.Shutdown(shutdownCtx), ShouldBeNil)
			})
		})
	})
}

func TestPool(t *testing.T) {
	Convey("Given a pool of workers", t, func() {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		q := queue.NewInMemoryQueue(queue.WithCapacity(32))
		notifier := &recordingNotifier{}
		pool := worker.NewPool(3, q, notifier)
		pool.Start(ctx)

		Convey("When many confirmations are enqueued", func() {
			for i := 0; i < 10; i++ {
				So(q.Enqueue(ctx, queue.Job{Appointment: model.Appointment{ID: "appt"}}), ShouldBeTrue)
			}

			Convey("Then the pool delivers all of them", func() {
				So(waitFor(func() bool { return notifier.count() == 10 }), ShouldBeTrue)
				pool.Stop()
			})
		})

		Convey("When the pool stops with an idle queue", func() {
			pool.Stop()
			So(notifier.count(), ShouldEqual, 0)
		})
	})
}
