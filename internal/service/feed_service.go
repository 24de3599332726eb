package service

import (
	"context"

	"ducochat-be/internal/pkg/logger"
	"ducochat-be/pkg/events"
	"ducochat-be/pkg/nats"
)

// Broadcaster pushes a named event to every connected dashboard.
type Broadcaster interface {
	Broadcast(event string, data interface{})
}

// FeedService bridges the event bus to the websocket dashboard feed. The
// wire event names are part of the frontend contract and stay in Spanish.
type FeedService struct {
	subscriber *nats.Subscriber
	hub        Broadcaster
	logger     logger.ILogger
}

func NewFeedService(subscriber *nats.Subscriber, hub Broadcaster, log logger.ILogger) *FeedService {
	return &FeedService{
		subscriber: subscriber,
		hub:        hub,
		logger:     log,
	}
}

// Start begins listening to the event bus.
func (s *FeedService) Start() {
	if s.subscriber == nil {
		s.logger.Warn("FeedService", "No event bus connection, dashboard feed disabled", nil)
		return
	}

	err := s.subscriber.Subscribe("dashboard.>", "dashboard-feed-worker", s.handleEvent)
	if err != nil {
		s.logger.Error("FeedService", "Failed to start dashboard feed subscriber", map[string]interface{}{"error": err.Error()})
		return
	}
	s.logger.Info("FeedService", "Dashboard feed started, listening to dashboard.>", nil)
}

func (s *FeedService) handleEvent(ctx context.Context, event events.Event) error {
	switch event.EventType() {
	case events.TypeRatingCreated:
		s.hub.Broadcast("actualizar_calificaciones", event.Payload())
	case events.TypeNewUser:
		s.hub.Broadcast("nuevo-usuario", event.Payload())
	default:
		s.logger.Debug("FeedService", "Ignoring unknown event type", map[string]interface{}{"type": event.EventType()})
	}
	return nil
}
