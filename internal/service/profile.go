package service

import (
	"context"

	"github.com/sirupsen/logrus"

	"cabadmin/internal/domain"
	"cabadmin/internal/gateway"
	"cabadmin/internal/redis"
)

// ProfileService handles the signed-in administrator's own account.
type ProfileService struct {
	upstream UpstreamFor
	sessions redis.SessionStoreInterface
	activity *ActivityService
}

// NewProfileService creates a new ProfileService.
func NewProfileService(upstream UpstreamFor, sessions redis.SessionStoreInterface, activity *ActivityService) *ProfileService {
	return &ProfileService{
		upstream: upstream,
		sessions: sessions,
		activity: activity,
	}
}

// Get returns the account record behind the session.
func (s *ProfileService) Get(ctx context.Context, session *domain.Session) (*domain.User, error) {
	return s.upstream(session.AuthToken).GetUser(ctx, session.UserID)
}

// ProfileUpdate contains the profile settings form.
type ProfileUpdate struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Phone    string `json:"phone" validate:"required,len=10,numeric"`
	ImageURL string `json:"imageUrl"`
}

// Update saves profile changes and rewrites the session's profile fields.
func (s *ProfileService) Update(ctx context.Context, session *domain.Session, req ProfileUpdate) (*domain.User, error) {
	if err := validateStruct(req, nil); err != nil {
		return nil, err
	}

	user, err := s.upstream(session.AuthToken).UpdateUser(ctx, gateway.UpdateUserRequest{
		ID:       session.UserID,
		Name:     req.Name,
		Email:    req.Email,
		Phone:    req.Phone,
		ImageURL: req.ImageURL,
	})
	if err != nil {
		return nil, err
	}

	// The user service may echo only part of the record.
	if user.ID == "" {
		user.ID = session.UserID
	}
	if user.Role == "" {
		user.Role = session.Role
	}
	if err := s.sessions.UpdateProfile(ctx, session.ID, user); err != nil {
		logrus.WithError(err).WithField("session_id", session.ID).Warn("failed to refresh session profile")
	}
	session.Name, session.Email, session.Phone, session.ImageURL = user.Name, user.Email, user.Phone, user.ImageURL

	s.activity.Record(ctx, session, Change{
		Event:    EventProfileUpdated,
		Entity:   "user",
		EntityID: session.UserID,
	})
	return user, nil
}

// PasswordChange contains the account settings form.
type PasswordChange struct {
	OldPassword     string `json:"oldPassword" validate:"required"`
	NewPassword     string `json:"newPassword" validate:"required,min=6"`
	ConfirmPassword string `json:"confirmPassword" validate:"required,eqfield=NewPassword"`
}

// ChangePassword replaces the signed-in administrator's password.
func (s *ProfileService) ChangePassword(ctx context.Context, session *domain.Session, req PasswordChange) error {
	if err := validateStruct(req, nil); err != nil {
		return err
	}
	if err := s.upstream(session.AuthToken).UpdatePassword(ctx, session.UserID, req.OldPassword, req.NewPassword); err != nil {
		return err
	}
	s.activity.Record(ctx, session, Change{
		Event:    EventPasswordChanged,
		Entity:   "user",
		EntityID: session.UserID,
	})
	return nil
}
