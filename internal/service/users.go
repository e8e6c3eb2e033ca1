package service

import (
	"context"

	"cabadmin/internal/domain"
	"cabadmin/internal/listing"
)

// UserService handles the user management pages.
type UserService struct {
	upstream UpstreamFor
	activity *ActivityService
}

// NewUserService creates a new UserService.
func NewUserService(upstream UpstreamFor, activity *ActivityService) *UserService {
	return &UserService{upstream: upstream, activity: activity}
}

// List returns one page of users matching q.
func (s *UserService) List(ctx context.Context, session *domain.Session, q listing.Query) (listing.Page[domain.User], error) {
	users, err := s.upstream(session.AuthToken).ListUsers(ctx)
	if err != nil {
		return listing.Page[domain.User]{}, err
	}
	return listing.Apply(users, q, UserSchema), nil
}

// Get returns a single user.
func (s *UserService) Get(ctx context.Context, session *domain.Session, id string) (*domain.User, error) {
	if id == "" {
		return nil, ErrInvalidID
	}
	return s.upstream(session.AuthToken).GetUser(ctx, id)
}

// Delete removes a user once confirmed and returns the refreshed list.
func (s *UserService) Delete(ctx context.Context, session *domain.Session, id string, confirmed bool, q listing.Query) (listing.Page[domain.User], error) {
	if id == "" {
		return listing.Page[domain.User]{}, ErrInvalidID
	}
	if !confirmed {
		return listing.Page[domain.User]{}, ErrConfirmationRequired
	}

	if err := s.upstream(session.AuthToken).DeleteUser(ctx, id); err != nil {
		return listing.Page[domain.User]{}, err
	}
	s.activity.Record(ctx, session, Change{
		Event:    EventUserDeleted,
		Entity:   "user",
		EntityID: id,
	})

	return s.List(ctx, session, q)
}
