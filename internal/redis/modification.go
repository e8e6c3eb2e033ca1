package redis

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"cabadmin/internal/domain"
)

// ModificationTTL bounds how long an abandoned modification is kept.
const ModificationTTL = time.Hour

const modificationPrefix = "modification:"

// ModificationStore keeps in-progress booking modifications in Redis.
type ModificationStore struct {
	client *redis.Client
}

// NewModificationStore creates a new ModificationStore.
func NewModificationStore(client *redis.Client) *ModificationStore {
	return &ModificationStore{client: client}
}

// GetModification retrieves a modification. It returns nil, nil when none exists.
func (s *ModificationStore) GetModification(ctx context.Context, id string) (*domain.Modification, error) {
	data, err := s.client.Get(ctx, modificationPrefix+id).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, err
	}

	var m domain.Modification
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, err
	}
	return &m, nil
}

// SetModification stores a modification and refreshes its TTL.
func (s *ModificationStore) SetModification(ctx context.Context, m *domain.Modification) error {
	data, err := json.Marshal(m)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, modificationPrefix+m.ID, data, ModificationTTL).Err()
}

// DeleteModification removes a modification.
func (s *ModificationStore) DeleteModification(ctx context.Context, id string) error {
	return s.client.Del(ctx, modificationPrefix+id).Err()
}
