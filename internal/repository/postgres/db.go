package postgres

import (
	"context"
	"database/sql"
)

// Querier is an interface satisfied by both *sql.DB and *sql.Tx.
type Querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

// Ensure interfaces are satisfied.
var (
	_ Querier = (*sql.DB)(nil)
	_ Querier = (*sql.Tx)(nil)
)

const schema = `
CREATE TABLE IF NOT EXISTS admin_activity (
	id          UUID PRIMARY KEY,
	actor_id    TEXT NOT NULL,
	actor_name  TEXT NOT NULL,
	action      TEXT NOT NULL,
	entity      TEXT NOT NULL,
	entity_id   TEXT,
	detail      TEXT,
	created_at  TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
CREATE INDEX IF NOT EXISTS idx_admin_activity_created_at ON admin_activity (created_at DESC);
CREATE INDEX IF NOT EXISTS idx_admin_activity_entity ON admin_activity (entity, entity_id);
`

// EnsureSchema creates the activity log tables if they do not exist.
func EnsureSchema(ctx context.Context, q Querier) error {
	_, err := q.ExecContext(ctx, schema)
	return err
}
