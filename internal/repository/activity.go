package repository

import (
	"context"

	"cabadmin/internal/domain"
)

// ActivityRepository defines the persistence operations for the administrator activity log.
type ActivityRepository interface {
	// Record appends an entry to the log.
	Record(ctx context.Context, activity *domain.Activity) error

	// ListRecent retrieves the newest entries, newest first.
	ListRecent(ctx context.Context, limit int) ([]*domain.Activity, error)

	// ListByEntity retrieves the entries about one record, newest first.
	ListByEntity(ctx context.Context, entity, entityID string) ([]*domain.Activity, error)
}
