package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"cabadmin/internal/domain"
)

const sessionPrefix = "session:"

// Session hash fields.
const (
	fieldAuthToken = "authToken"
	fieldUserID    = "userId"
	fieldName      = "name"
	fieldEmail     = "email"
	fieldPhone     = "phone"
	fieldRole      = "role"
	fieldImageURL  = "imageUrl"
	fieldCreatedAt = "createdAt"
)

// SessionStore keeps dashboard sessions as Redis hashes.
type SessionStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewSessionStore creates a new SessionStore. A zero ttl keeps sessions until deleted.
func NewSessionStore(client *redis.Client, ttl time.Duration) *SessionStore {
	return &SessionStore{client: client, ttl: ttl}
}

// Create stores a new session.
func (s *SessionStore) Create(ctx context.Context, session *domain.Session) error {
	key := sessionPrefix + session.ID
	pipe := s.client.TxPipeline()
	pipe.HSet(ctx, key, map[string]any{
		fieldAuthToken: session.AuthToken,
		fieldUserID:    session.UserID,
		fieldName:      session.Name,
		fieldEmail:     session.Email,
		fieldPhone:     session.Phone,
		fieldRole:      string(session.Role),
		fieldImageURL:  session.ImageURL,
		fieldCreatedAt: session.CreatedAt.Format(time.RFC3339),
	})
	if s.ttl > 0 {
		pipe.Expire(ctx, key, s.ttl)
	}
	_, err := pipe.Exec(ctx)
	return err
}

// Get retrieves a session. It returns nil, nil when the session does not exist.
func (s *SessionStore) Get(ctx context.Context, id string) (*domain.Session, error) {
	fields, err := s.client.HGetAll(ctx, sessionPrefix+id).Result()
	if err != nil {
		return nil, err
	}
	if len(fields) == 0 {
		return nil, nil
	}

	createdAt, _ := time.Parse(time.RFC3339, fields[fieldCreatedAt])
	return &domain.Session{
		ID:        id,
		AuthToken: fields[fieldAuthToken],
		UserID:    fields[fieldUserID],
		Name:      fields[fieldName],
		Email:     fields[fieldEmail],
		Phone:     fields[fieldPhone],
		Role:      domain.Role(fields[fieldRole]),
		ImageURL:  fields[fieldImageURL],
		CreatedAt: createdAt,
	}, nil
}

// UpdateProfile rewrites the profile fields of an existing session.
func (s *SessionStore) UpdateProfile(ctx context.Context, id string, user *domain.User) error {
	key := sessionPrefix + id
	exists, err := s.client.Exists(ctx, key).Result()
	if err != nil {
		return err
	}
	if exists == 0 {
		return fmt.Errorf("session %s not found", id)
	}
	return s.client.HSet(ctx, key, map[string]any{
		fieldName:     user.Name,
		fieldEmail:    user.Email,
		fieldPhone:    user.Phone,
		fieldImageURL: user.ImageURL,
	}).Err()
}

// Delete removes a session.
func (s *SessionStore) Delete(ctx context.Context, id string) error {
	return s.client.Del(ctx, sessionPrefix+id).Err()
}
