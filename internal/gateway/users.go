package gateway

import (
	"context"
	"net/http"

	"cabadmin/internal/domain"
	"cabadmin/internal/endpoint"
)

// LoginRequest is the body of POST /users/login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// ResetPasswordRequest is the body of POST /users/reset-password.
type ResetPasswordRequest struct {
	Username    string `json:"username"`
	OTP         string `json:"otp"`
	NewPassword string `json:"newPassword"`
}

// RegisterUserRequest is the body of POST /users/register.
type RegisterUserRequest struct {
	Name     string      `json:"name"`
	Email    string      `json:"email"`
	Phone    string      `json:"phone"`
	Password string      `json:"password"`
	Role     domain.Role `json:"role"`
}

// UpdateUserRequest is the body of PATCH /users/update.
type UpdateUserRequest struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	ImageURL string `json:"imageUrl,omitempty"`
}

// UpdatePasswordRequest is the body of PATCH /users/update/password.
type UpdatePasswordRequest struct {
	UserID      string `json:"userId"`
	OldPassword string `json:"oldPassword"`
	NewPassword string `json:"newPassword"`
}

// Login authenticates username/password. The password is digested before sending.
func (c *Client) Login(ctx context.Context, username, password string) (*domain.User, error) {
	var user domain.User
	_, err := c.call(ctx, http.MethodPost, endpoint.Login, "", LoginRequest{
		Username: username,
		Password: PasswordDigest(password),
	}, &user)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// ForgotPassword asks the user service to send a one-time password to email.
func (c *Client) ForgotPassword(ctx context.Context, email string) error {
	_, err := c.call(ctx, http.MethodPost, endpoint.ForgotPassword, "", plainText(email), nil)
	return err
}

// ResetPassword sets a new password using a one-time password.
func (c *Client) ResetPassword(ctx context.Context, username, otp, newPassword string) error {
	_, err := c.call(ctx, http.MethodPost, endpoint.ResetPassword, "", ResetPasswordRequest{
		Username:    username,
		OTP:         otp,
		NewPassword: PasswordDigest(newPassword),
	}, nil)
	return err
}

// ListUsers returns every user.
func (c *Client) ListUsers(ctx context.Context) ([]domain.User, error) {
	var users []domain.User
	if _, err := c.call(ctx, http.MethodGet, endpoint.GetAllUsers, "", nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// GetUser returns a single user.
func (c *Client) GetUser(ctx context.Context, id string) (*domain.User, error) {
	var user domain.User
	if _, err := c.call(ctx, http.MethodGet, endpoint.GetUser, id, nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// RegisterUser creates an account. req.Password must be the plain password.
func (c *Client) RegisterUser(ctx context.Context, req RegisterUserRequest) (*domain.User, error) {
	req.Password = PasswordDigest(req.Password)

	var user domain.User
	if _, err := c.call(ctx, http.MethodPost, endpoint.RegisterUser, "", req, &user); err != nil {
		if isEmptyData(err) {
			return &domain.User{Name: req.Name, Email: req.Email, Phone: req.Phone, Role: req.Role}, nil
		}
		return nil, err
	}
	return &user, nil
}

// UpdateUser updates profile fields of a user.
func (c *Client) UpdateUser(ctx context.Context, req UpdateUserRequest) (*domain.User, error) {
	var user domain.User
	if _, err := c.call(ctx, http.MethodPatch, endpoint.UpdateUser, "", req, &user); err != nil {
		if isEmptyData(err) {
			return &domain.User{ID: req.ID, Name: req.Name, Email: req.Email, Phone: req.Phone, ImageURL: req.ImageURL}, nil
		}
		return nil, err
	}
	return &user, nil
}

// UpdatePassword changes a user's password. Both passwords are plain and digested here.
func (c *Client) UpdatePassword(ctx context.Context, userID, oldPassword, newPassword string) error {
	_, err := c.call(ctx, http.MethodPatch, endpoint.UpdatePassword, "", UpdatePasswordRequest{
		UserID:      userID,
		OldPassword: PasswordDigest(oldPassword),
		NewPassword: PasswordDigest(newPassword),
	}, nil)
	return err
}

// DeleteUser removes a user.
func (c *Client) DeleteUser(ctx context.Context, id string) error {
	_, err := c.call(ctx, http.MethodDelete, endpoint.DeleteUser, id, nil, nil)
	return err
}
