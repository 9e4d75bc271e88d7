// Package directory holds the staff roster and service catalog consumed by
// the calendar for creation defaults and by the booking wizard.
package directory

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"

	"github.com/agendapro/agendapro/internal/domain/model"
)

// ErrServiceNotFound is returned when a service id or name is unknown.
var ErrServiceNotFound = errors.New("service not found")

// Directory is an in-memory staff and service registry.
type Directory struct {
	mu       sync.RWMutex
	staff    []string
	services []model.Service
}

// Option applies a configuration option to the Directory.
type Option func(*Directory)

// WithStaff replaces the default staff roster.
func WithStaff(staff []string) Option {
	return func(d *Directory) {
		if len(staff) > 0 {
			d.staff = staff
		}
	}
}

// WithServices replaces the default service catalog.
func WithServices(services []model.Service) Option {
	return func(d *Directory) {
		if len(services) > 0 {
			d.services = services
		}
	}
}

// New creates a directory seeded with the default roster and catalog.
func New(opts ...Option) *Directory {
	d := &Directory{
		staff: []string{"Anna", "Mark"},
		services: []model.Service{
			{ID: "1", Name: "Haircut", Duration: 0.75, Price: "$90.00", Description: "Professional haircut and styling"},
			{ID: "2", Name: "Hair Coloring", Duration: 1.5, Price: "$150.00", Description: "Full color treatment"},
			{ID: "3", Name: "Manicure", Duration: 0.5, Price: "$45.00", Description: "Classic manicure service"},
			{ID: "4", Name: "Pedicure", Duration: 0.75, Price: "$60.00", Description: "Relaxing pedicure treatment"},
			{ID: "5", Name: "Facial Treatment", Duration: 1, Price: "$120.00", Description: "Deep cleansing facial"},
		},
	}

	for _, opt := range opts {
		opt(d)
	}

	return d
}

// ListStaff returns the staff roster.
func (d *Directory) ListStaff(ctx context.Context) []string {
	d.mu.RLock()
	defer d.mu.RUnlock()

	out := make([]string, len(d.staff))
	copy(out, d.staff)
	return out
}

// ListServices returns the service catalog in insertion order.
func (d *Directory) ListServices(ctx context.Context) []model.Service {
	d.mu.RLock()
	defer d.mu.RUnlock()

	out := make([]model.Service, len(d.services))
	copy(out, d.services)
	return out
}

// ServiceByName returns the service with the given name.
func (d *Directory) ServiceByName(ctx context.Context, name string) (model.Service, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	for _, svc := range d.services {
		if svc.Name == name {
			return svc, nil
		}
	}
	return model.Service{}, ErrServiceNotFound
}

// AddService appends a service, assigning a fresh id when needed.
func (d *Directory) AddService(ctx context.Context, svc model.Service) model.Service {
	d.mu.Lock()
	defer d.mu.Unlock()

	if svc.ID == "" {
		svc.ID = uuid.NewString()
	}
	d.services = append(d.services, svc)
	return svc
}

// UpdateService replaces the service with the same id, keeping its position.
func (d *Directory) UpdateService(ctx context.Context, svc model.Service) (model.Service, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	for i := range d.services {
		if d.services[i].ID == svc.ID {
			d.services[i] = svc
			return svc, nil
		}
	}
	return model.Service{}, ErrServiceNotFound
}

// RemoveService deletes the service with the given id.
func (d *Directory) RemoveService(ctx context.Context, id string) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	for i := range d.services {
		if d.services[i].ID == id {
			d.services = append(d.services[:i], d.services[i+1:]...)
			return nil
		}
	}
	return ErrServiceNotFound
}
