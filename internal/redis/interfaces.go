package redis

import (
	"context"
	"time"

	"cabadmin/internal/domain"
)

// SessionStoreInterface defines the interface for dashboard session storage.
type SessionStoreInterface interface {
	Create(ctx context.Context, session *domain.Session) error
	Get(ctx context.Context, id string) (*domain.Session, error)
	UpdateProfile(ctx context.Context, id string, user *domain.User) error
	Delete(ctx context.Context, id string) error
}

// ModificationStoreInterface defines the interface for booking modification storage.
type ModificationStoreInterface interface {
	GetModification(ctx context.Context, id string) (*domain.Modification, error)
	SetModification(ctx context.Context, m *domain.Modification) error
	DeleteModification(ctx context.Context, id string) error
}

// LockStoreInterface defines the interface for distributed locking.
type LockStoreInterface interface {
	AcquireLock(ctx context.Context, key string, ttl time.Duration) (bool, error)
	ReleaseLock(ctx context.Context, key string) error
}

// SummaryCacheInterface defines the interface for caching dashboard summaries.
type SummaryCacheInterface interface {
	GetSummary(ctx context.Context, sessionID string) (*domain.DashboardSummary, error)
	SetSummary(ctx context.Context, sessionID string, summary *domain.DashboardSummary) error
	InvalidateSummary(ctx context.Context, sessionID string) error
}

// ResponseCacheInterface defines the interface for replaying responses to repeated requests.
type ResponseCacheInterface interface {
	GetResponse(ctx context.Context, key string) ([]byte, error)
	SetResponse(ctx context.Context, key string, data []byte, ttl time.Duration) error
}

// Ensure concrete types implement interfaces.
var (
	_ SessionStoreInterface      = (*SessionStore)(nil)
	_ ResponseCacheInterface     = (*CacheStore)(nil)
	_ ModificationStoreInterface = (*ModificationStore)(nil)
	_ LockStoreInterface         = (*LockStore)(nil)
	_ SummaryCacheInterface      = (*CacheStore)(nil)
)
