package postgres

import (
	"context"
	"database/sql"

	"cabadmin/internal/domain"
)

// ActivityRepository is a PostgreSQL implementation of repository.ActivityRepository.
type ActivityRepository struct {
	q Querier
}

// NewActivityRepository creates a new PostgreSQL activity repository.
func NewActivityRepository(db *sql.DB) *ActivityRepository {
	return &ActivityRepository{q: db}
}

// Record appends an entry to the log.
func (r *ActivityRepository) Record(ctx context.Context, a *domain.Activity) error {
	query := `
		INSERT INTO admin_activity (id, actor_id, actor_name, action, entity, entity_id, detail, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	var entityID sql.NullString
	if a.EntityID != "" {
		entityID = sql.NullString{String: a.EntityID, Valid: true}
	}

	var detail sql.NullString
	if a.Detail != "" {
		detail = sql.NullString{String: a.Detail, Valid: true}
	}

	_, err := r.q.ExecContext(ctx, query,
		a.ID,
		a.ActorID,
		a.ActorName,
		a.Action,
		a.Entity,
		entityID,
		detail,
		a.CreatedAt,
	)
	return err
}

// ListRecent retrieves the newest entries, newest first.
func (r *ActivityRepository) ListRecent(ctx context.Context, limit int) ([]*domain.Activity, error) {
	if limit <= 0 {
		limit = 20
	}
	query := `
		SELECT id, actor_id, actor_name, action, entity, entity_id, detail, created_at
		FROM admin_activity ORDER BY created_at DESC LIMIT $1
	`
	return r.list(ctx, query, limit)
}

// ListByEntity retrieves the entries about one record, newest first.
func (r *ActivityRepository) ListByEntity(ctx context.Context, entity, entityID string) ([]*domain.Activity, error) {
	query := `
		SELECT id, actor_id, actor_name, action, entity, entity_id, detail, created_at
		FROM admin_activity WHERE entity = $1 AND entity_id = $2 ORDER BY created_at DESC
	`
	return r.list(ctx, query, entity, entityID)
}

func (r *ActivityRepository) list(ctx context.Context, query string, args ...any) ([]*domain.Activity, error) {
	rows, err := r.q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var activities []*domain.Activity
	for rows.Next() {
		var a domain.Activity
		var entityID sql.NullString
		var detail sql.NullString
		if err := rows.Scan(
			&a.ID,
			&a.ActorID,
			&a.ActorName,
			&a.Action,
			&a.Entity,
			&entityID,
			&detail,
			&a.CreatedAt,
		); err != nil {
			return nil, err
		}
		a.EntityID = entityID.String
		a.Detail = detail.String
		activities = append(activities, &a)
	}

	return activities, rows.Err()
}
