// Package notify defines the booking confirmation hook. Delivery is
// simulated: the log-backed notifier stands in for a future email sender.
package notify

import (
	"context"

	"github.com/agendapro/agendapro/internal/domain/model"
	"github.com/agendapro/agendapro/internal/domain/timegrid"
	"github.com/agendapro/agendapro/pkg/logger"
)

// Notifier delivers booking confirmations to clients.
type Notifier interface {
	// BookingConfirmed notifies the client of a confirmed appointment.
	BookingConfirmed(ctx context.Context, appt model.Appointment) error
}

// LogNotifier implements Notifier by logging the confirmation. No email is
// dispatched; a real sender would plug in behind the same interface.
type LogNotifier struct {
	logger logger.Logger
}

// NewLogNotifier creates a log-backed notifier.
func NewLogNotifier() *LogNotifier {
	return &LogNotifier{logger: logger.Get().Named("notify")}
}

// BookingConfirmed logs the confirmation that would be emailed to the client.
func (n *LogNotifier) BookingConfirmed(ctx context.Context, appt model.Appointment) error {
	n.logger.Info(ctx, "booking confirmed",
		logger.String("id", appt.ID),
		logger.String("client", appt.ClientName),
		logger.String("email", appt.ClientEmail),
		logger.String("service", appt.ServiceName),
		logger.String("day", model.DayNamesLong[appt.Day]),
		logger.String("time", timegrid.TimeOfDayLabel(appt.StartTime)),
	)
	return nil
}
