package service

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"cabadmin/internal/domain"
	"cabadmin/internal/gateway"
	"cabadmin/internal/redis"
)

// AuthService handles sign-in, sign-out and the public account pages.
type AuthService struct {
	upstream UpstreamFor
	sessions redis.SessionStoreInterface
	tokens   *SessionTokens
	activity *ActivityService
	now      func() time.Time
}

// NewAuthService creates a new AuthService.
func NewAuthService(
	upstream UpstreamFor,
	sessions redis.SessionStoreInterface,
	tokens *SessionTokens,
	activity *ActivityService,
) *AuthService {
	return &AuthService{
		upstream: upstream,
		sessions: sessions,
		tokens:   tokens,
		activity: activity,
		now:      time.Now,
	}
}

// LoginRequest contains the sign-in form.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginResult contains the signed session token and the session it refers to.
type LoginResult struct {
	Token   string
	Session *domain.Session
}

// Login authenticates against the user service and opens a dashboard session.
func (s *AuthService) Login(ctx context.Context, req LoginRequest) (*LoginResult, error) {
	if err := validateStruct(req, nil); err != nil {
		return nil, err
	}

	user, err := s.upstream("").Login(ctx, req.Username, req.Password)
	if err != nil {
		if isRejected(err) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if user.Token == "" {
		return nil, ErrInvalidCredentials
	}
	if !user.Role.CanUseDashboard() {
		return nil, ErrRoleNotPermitted
	}

	session := &domain.Session{
		ID:        uuid.New().String(),
		AuthToken: user.Token,
		UserID:    user.ID,
		Name:      user.Name,
		Email:     user.Email,
		Phone:     user.Phone,
		Role:      user.Role,
		ImageURL:  user.ImageURL,
		CreatedAt: s.now(),
	}
	if err := s.sessions.Create(ctx, session); err != nil {
		return nil, err
	}

	token, err := s.tokens.Issue(session)
	if err != nil {
		_ = s.sessions.Delete(ctx, session.ID)
		return nil, err
	}

	logrus.WithFields(logrus.Fields{"user_id": user.ID, "role": user.Role}).Info("administrator signed in")
	return &LoginResult{Token: token, Session: session}, nil
}

// Authenticate resolves a session token to a live session.
func (s *AuthService) Authenticate(ctx context.Context, token string) (*domain.Session, error) {
	if token == "" {
		return nil, ErrUnauthenticated
	}
	claims, err := s.tokens.Parse(token)
	if err != nil {
		return nil, err
	}
	session, err := s.sessions.Get(ctx, claims.SessionID)
	if err != nil {
		return nil, err
	}
	if !session.Authenticated() {
		return nil, ErrUnauthenticated
	}
	return session, nil
}

// Logout clears the session.
func (s *AuthService) Logout(ctx context.Context, session *domain.Session) error {
	if session == nil {
		return ErrUnauthenticated
	}
	return s.sessions.Delete(ctx, session.ID)
}

// ForgotPasswordRequest contains the forgot-password form.
type ForgotPasswordRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// ForgotPassword asks the user service to send a one-time password.
func (s *AuthService) ForgotPassword(ctx context.Context, req ForgotPasswordRequest) error {
	if err := validateStruct(req, nil); err != nil {
		return err
	}
	return s.upstream("").ForgotPassword(ctx, req.Email)
}

// ResetPasswordRequest contains the reset-password form.
type ResetPasswordRequest struct {
	Username        string `json:"username" validate:"required"`
	OTP             string `json:"otp" validate:"required"`
	NewPassword     string `json:"newPassword" validate:"required,min=6"`
	ConfirmPassword string `json:"confirmPassword" validate:"required,eqfield=NewPassword"`
}

// ResetPassword sets a new password using a one-time password.
func (s *AuthService) ResetPassword(ctx context.Context, req ResetPasswordRequest) error {
	if err := validateStruct(req, nil); err != nil {
		return err
	}
	return s.upstream("").ResetPassword(ctx, req.Username, req.OTP, req.NewPassword)
}

// RegisterAdminRequest contains the admin registration form.
type RegisterAdminRequest struct {
	Name            string `json:"name" validate:"required"`
	Email           string `json:"email" validate:"required,email"`
	Phone           string `json:"phone" validate:"required,len=10,numeric"`
	Password        string `json:"password" validate:"required,min=6"`
	ConfirmPassword string `json:"confirmPassword" validate:"required,eqfield=Password"`
}

// RegisterAdmin creates an account with the ADMIN role.
func (s *AuthService) RegisterAdmin(ctx context.Context, req RegisterAdminRequest) (*domain.User, error) {
	if err := validateStruct(req, nil); err != nil {
		return nil, err
	}

	user, err := s.upstream("").RegisterUser(ctx, gateway.RegisterUserRequest{
		Name:     req.Name,
		Email:    req.Email,
		Phone:    req.Phone,
		Password: req.Password,
		Role:     domain.RoleAdmin,
	})
	if err != nil {
		return nil, err
	}

	s.activity.Record(ctx, &domain.Session{UserID: user.ID, Name: user.Name}, Change{
		Event:    EventAdminRegistered,
		Entity:   "user",
		EntityID: user.ID,
		Detail:   user.Email,
	})
	return user, nil
}

// isRejected reports whether the user service refused the credentials rather than failing.
func isRejected(err error) bool {
	var apiErr *gateway.APIError
	if !errors.As(err, &apiErr) {
		return false
	}
	if !apiErr.HTTPFailure() {
		return true
	}
	return apiErr.Status == http.StatusUnauthorized || apiErr.Status == http.StatusForbidden ||
		apiErr.Status == http.StatusNotFound || apiErr.Status == http.StatusBadRequest
}
