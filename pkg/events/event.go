package events

import "time"

// Event types published to the dashboard feed.
const (
	TypeRatingCreated = "RATING_CREATED"
	TypeNewUser       = "NEW_USER"
)

// Event is the contract for everything that goes over the event bus.
type Event interface {
	// EventType returns the unique code for this event (e.g. "NEW_USER").
	EventType() string

	// Payload returns the data associated with the event.
	Payload() map[string]interface{}

	// Timestamp returns when the event occurred.
	Timestamp() time.Time
}

type BaseEvent struct {
	Type       string
	Data       map[string]interface{}
	OccurredAt time.Time
}

func (e BaseEvent) EventType() string {
	return e.Type
}

func (e BaseEvent) Payload() map[string]interface{} {
	return e.Data
}

func (e BaseEvent) Timestamp() time.Time {
	return e.OccurredAt
}

// NewRatingCreated is emitted whenever a student submits a rating. The
// payload is the fully enriched rating (name, email, modality) so the
// dashboard can append it without another round trip.
func NewRatingCreated(rating map[string]interface{}) Event {
	return BaseEvent{
		Type:       TypeRatingCreated,
		Data:       rating,
		OccurredAt: time.Now(),
	}
}

// NewUserRegistered is emitted when a student finishes the onboarding
// tutorial for the first time.
func NewUserRegistered(rut string) Event {
	return BaseEvent{
		Type: TypeNewUser,
		Data: map[string]interface{}{
			"rut": rut,
		},
		OccurredAt: time.Now(),
	}
}
