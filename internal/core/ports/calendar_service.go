package ports

import (
	"context"
	"time"

	"github.com/agrovia/farm-management/internal/core/domain"
)

// CalendarEventInput carries the payload for creating or updating an event.
type CalendarEventInput struct {
	Date        time.Time
	Title       string
	Description string
	Type        string
}

// CalendarService defines use-case operations for the action calendar.
// Events are strictly scoped to their owner; admins may list any user's
// calendar through the same session rules as farms.
type CalendarService interface {
	CreateEvent(ctx context.Context, session domain.Session, input CalendarEventInput) (*domain.CalendarEvent, error)
	ListEvents(ctx context.Context, session domain.Session) ([]*domain.CalendarEvent, error)
	UpdateEvent(ctx context.Context, session domain.Session, eventID string, input CalendarEventInput) (*domain.CalendarEvent, error)
	DeleteEvent(ctx context.Context, session domain.Session, eventID string) error
}
