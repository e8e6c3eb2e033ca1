package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// EventType identifies a dashboard event. It doubles as the routing key.
type EventType string

const (
	EventAdminRegistered      EventType = "user.admin_registered"
	EventProfileUpdated       EventType = "user.profile_updated"
	EventPasswordChanged      EventType = "user.password_changed"
	EventUserDeleted          EventType = "user.deleted"
	EventCabRegistered        EventType = "cab.registered"
	EventCabUpdated           EventType = "cab.updated"
	EventCabDeleted           EventType = "cab.deleted"
	EventBookingStatusChanged EventType = "booking.status_changed"
	EventBookingModified      EventType = "booking.modified"
	EventOfferCreated         EventType = "offer.created"
	EventOfferUpdated         EventType = "offer.updated"
	EventOfferDeleted         EventType = "offer.deleted"
)

// Notification is an event published after a successful change.
type Notification struct {
	ID        string         `json:"id"`
	Type      EventType      `json:"type"`
	ActorID   string         `json:"actorId"`
	Entity    string         `json:"entity"`
	EntityID  string         `json:"entityId,omitempty"`
	Data      map[string]any `json:"data,omitempty"`
	CreatedAt time.Time      `json:"createdAt"`
}

// EventPublisher publishes JSON messages under a routing key.
type EventPublisher interface {
	PublishJSON(ctx context.Context, key string, v any) error
}

// NotificationService delivers dashboard events. Without a publisher events are only logged.
type NotificationService struct {
	publisher EventPublisher
}

// NewNotificationService creates a new NotificationService. publisher may be nil.
func NewNotificationService(publisher EventPublisher) *NotificationService {
	return &NotificationService{publisher: publisher}
}

// Notify publishes n.
func (s *NotificationService) Notify(ctx context.Context, n Notification) error {
	if n.ID == "" {
		n.ID = uuid.New().String()
	}
	if n.CreatedAt.IsZero() {
		n.CreatedAt = time.Now()
	}

	entry := logrus.WithFields(logrus.Fields{
		"event":     n.Type,
		"actor":     n.ActorID,
		"entity":    n.Entity,
		"entity_id": n.EntityID,
	})
	if s == nil || s.publisher == nil {
		entry.Info("dashboard event")
		return nil
	}
	if err := s.publisher.PublishJSON(ctx, string(n.Type), n); err != nil {
		entry.WithError(err).Warn("failed to publish dashboard event")
		return err
	}
	entry.Debug("dashboard event published")
	return nil
}
