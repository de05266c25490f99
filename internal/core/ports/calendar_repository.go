package ports

import (
	"context"

	"github.com/agrovia/farm-management/internal/core/domain"
)

// CalendarRepository defines persistence operations for calendar events.
type CalendarRepository interface {
	Create(ctx context.Context, event *domain.CalendarEvent) (*domain.CalendarEvent, error)
	FindByID(ctx context.Context, id string) (*domain.CalendarEvent, error)
	ListByOwner(ctx context.Context, ownerID string) ([]*domain.CalendarEvent, error)
	Update(ctx context.Context, event *domain.CalendarEvent) (*domain.CalendarEvent, error)
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
}
