package redis

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"cabadmin/internal/domain"
)

// SummaryCacheTTL keeps the dashboard totals briefly so the landing page
// does not refetch every collection on each visit.
const SummaryCacheTTL = 30 * time.Second

const summaryCachePrefix = "cache:summary:"

// CacheStore handles short-lived caching in Redis.
type CacheStore struct {
	client *redis.Client
}

// NewCacheStore creates a new CacheStore.
func NewCacheStore(client *redis.Client) *CacheStore {
	return &CacheStore{client: client}
}

// GetSummary retrieves a session's dashboard summary. It returns nil, nil on a cache miss.
func (s *CacheStore) GetSummary(ctx context.Context, sessionID string) (*domain.DashboardSummary, error) {
	data, err := s.client.Get(ctx, summaryCachePrefix+sessionID).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil // Cache miss
		}
		return nil, err
	}

	var summary domain.DashboardSummary
	if err := json.Unmarshal(data, &summary); err != nil {
		return nil, err
	}
	return &summary, nil
}

// SetSummary stores a session's dashboard summary.
func (s *CacheStore) SetSummary(ctx context.Context, sessionID string, summary *domain.DashboardSummary) error {
	data, err := json.Marshal(summary)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, summaryCachePrefix+sessionID, data, SummaryCacheTTL).Err()
}

// InvalidateSummary removes a session's cached summary.
func (s *CacheStore) InvalidateSummary(ctx context.Context, sessionID string) error {
	return s.client.Del(ctx, summaryCachePrefix+sessionID).Err()
}

const responseCachePrefix = "idempotency:"

// GetResponse retrieves a stored response. It returns nil, nil on a cache miss.
func (s *CacheStore) GetResponse(ctx context.Context, key string) ([]byte, error) {
	data, err := s.client.Get(ctx, responseCachePrefix+key).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, err
	}
	return data, nil
}

// SetResponse stores a response for ttl.
func (s *CacheStore) SetResponse(ctx context.Context, key string, data []byte, ttl time.Duration) error {
	return s.client.Set(ctx, responseCachePrefix+key, data, ttl).Err()
}
