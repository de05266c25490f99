package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/agrovia/farm-management/internal/core/domain"
	"github.com/agrovia/farm-management/internal/core/ports"
)

// CalendarService implements the action calendar. Creating an event hands a
// notification to the queue; delivery is fire-and-forget and never affects
// the request that created the event.
type CalendarService struct {
	repo   ports.CalendarRepository
	queue  ports.NotificationQueue
	logger zerolog.Logger
}

// NewCalendarService builds a CalendarService. queue may be nil when
// notifications are disabled.
func NewCalendarService(repo ports.CalendarRepository, queue ports.NotificationQueue, logger zerolog.Logger) *CalendarService {
	return &CalendarService{repo: repo, queue: queue, logger: logger}
}

func (s *CalendarService) CreateEvent(ctx context.Context, session domain.Session, input ports.CalendarEventInput) (*domain.CalendarEvent, error) {
	eventType := domain.EventType(input.Type)
	if eventType == "" {
		eventType = domain.EventCustom
	}
	if !domain.ValidEventType(eventType) {
		return nil, domain.ErrInvalidInput
	}

	event := &domain.CalendarEvent{
		OwnerID:     session.UserID,
		Date:        input.Date,
		Title:       input.Title,
		Description: input.Description,
		Type:        eventType,
		CreatedAt:   time.Now().UTC(),
	}

	created, err := s.repo.Create(ctx, event)
	if err != nil {
		return nil, err
	}

	if s.queue != nil {
		s.queue.Enqueue(ports.EventNotification{
			Recipient:   session.Email,
			Title:       created.Title,
			Date:        created.Date,
			Description: created.Description,
			EventType:   string(created.Type),
		})
	}

	s.logger.Info().Str("event_id", created.ID).Str("owner_id", session.UserID).Str("type", string(created.Type)).Msg("calendar event created")
	return created, nil
}

func (s *CalendarService) ListEvents(ctx context.Context, session domain.Session) ([]*domain.CalendarEvent, error) {
	return s.repo.ListByOwner(ctx, session.UserID)
}

// ownEvent loads the event and enforces that the session owns it. Admins get
// no special treatment here: calendars are personal.
func (s *CalendarService) ownEvent(ctx context.Context, session domain.Session, eventID string) (*domain.CalendarEvent, error) {
	event, err := s.repo.FindByID(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if event.OwnerID != session.UserID {
		return nil, domain.ErrForbidden
	}
	return event, nil
}

func (s *CalendarService) UpdateEvent(ctx context.Context, session domain.Session, eventID string, input ports.CalendarEventInput) (*domain.CalendarEvent, error) {
	event, err := s.ownEvent(ctx, session, eventID)
	if err != nil {
		return nil, err
	}

	if !input.Date.IsZero() {
		event.Date = input.Date
	}
	if input.Title != "" {
		event.Title = input.Title
	}
	if input.Description != "" {
		event.Description = input.Description
	}
	if input.Type != "" {
		eventType := domain.EventType(input.Type)
		if !domain.ValidEventType(eventType) {
			return nil, domain.ErrInvalidInput
		}
		event.Type = eventType
	}

	return s.repo.Update(ctx, event)
}

func (s *CalendarService) DeleteEvent(ctx context.Context, session domain.Session, eventID string) error {
	if _, err := s.ownEvent(ctx, session, eventID); err != nil {
		return err
	}
	return s.repo.Delete(ctx, eventID)
}
