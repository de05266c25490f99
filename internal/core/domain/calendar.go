package domain

import (
	"errors"
	"time"
)

var ErrEventNotFound = errors.New("event not found")

// EventType categorises a calendar entry.
type EventType string

const (
	EventIrrigation EventType = "irrigation"
	EventFertilizer EventType = "fertilizer"
	EventPesticide  EventType = "pesticide"
	EventHarvest    EventType = "harvest"
	EventCustom     EventType = "custom"
)

// ValidEventType reports whether t is a known event type.
func ValidEventType(t EventType) bool {
	switch t {
	case EventIrrigation, EventFertilizer, EventPesticide, EventHarvest, EventCustom:
		return true
	}
	return false
}

// CalendarEvent is a dated action on a user's action calendar.
type CalendarEvent struct {
	ID          string    `json:"id"`
	OwnerID     string    `json:"owner_id"`
	Date        time.Time `json:"date"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Type        EventType `json:"type"`
	CreatedAt   time.Time `json:"created_at"`
}
