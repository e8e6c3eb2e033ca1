package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"cabadmin/internal/domain"
	"cabadmin/internal/redis"
	"cabadmin/internal/repository"
)

// ActivityService records what administrators changed and announces it.
// Failures are logged and never fail the change itself.
type ActivityService struct {
	repo          repository.ActivityRepository
	notifications *NotificationService
	summaries     redis.SummaryCacheInterface
	now           func() time.Time
}

// NewActivityService creates a new ActivityService. repo may be nil when the activity log is disabled;
// summaries, when set, has the actor's cached dashboard totals dropped after each change.
func NewActivityService(
	repo repository.ActivityRepository,
	notifications *NotificationService,
	summaries redis.SummaryCacheInterface,
) *ActivityService {
	return &ActivityService{
		repo:          repo,
		notifications: notifications,
		summaries:     summaries,
		now:           time.Now,
	}
}

// Change describes one administrator change.
type Change struct {
	Event    EventType
	Entity   string
	EntityID string
	Detail   string
	Data     map[string]any
}

// Record stores and publishes change on behalf of the session's user.
func (s *ActivityService) Record(ctx context.Context, session *domain.Session, change Change) {
	if s == nil {
		return
	}
	now := s.now()

	var actorID, actorName string
	if session != nil {
		actorID, actorName = session.UserID, session.Name
	}

	if s.repo != nil {
		activity := &domain.Activity{
			ID:        uuid.New().String(),
			ActorID:   actorID,
			ActorName: actorName,
			Action:    string(change.Event),
			Entity:    change.Entity,
			EntityID:  change.EntityID,
			Detail:    change.Detail,
			CreatedAt: now,
		}
		if err := s.repo.Record(ctx, activity); err != nil {
			logrus.WithError(err).WithField("action", change.Event).Warn("failed to record activity")
		}
	}

	if s.summaries != nil && session != nil && session.ID != "" {
		if err := s.summaries.InvalidateSummary(ctx, session.ID); err != nil {
			logrus.WithError(err).Debug("failed to invalidate dashboard summary")
		}
	}

	_ = s.notifications.Notify(ctx, Notification{
		Type:      change.Event,
		ActorID:   actorID,
		Entity:    change.Entity,
		EntityID:  change.EntityID,
		Data:      change.Data,
		CreatedAt: now,
	})
}

// Recent returns the newest activity entries.
func (s *ActivityService) Recent(ctx context.Context, limit int) ([]*domain.Activity, error) {
	if s == nil || s.repo == nil {
		return []*domain.Activity{}, nil
	}
	return s.repo.ListRecent(ctx, limit)
}

// History returns the entries about one record.
func (s *ActivityService) History(ctx context.Context, entity, entityID string) ([]*domain.Activity, error) {
	if s == nil || s.repo == nil {
		return []*domain.Activity{}, nil
	}
	return s.repo.ListByEntity(ctx, entity, entityID)
}
