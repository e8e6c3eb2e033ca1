package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"cabadmin/internal/domain"
	"cabadmin/internal/service"
)

// AuthHandler handles sign-in, sign-out and the public account pages.
type AuthHandler struct {
	auth *service.AuthService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(auth *service.AuthService) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// SessionResponse is the header data of a signed-in user.
type SessionResponse struct {
	UserID   string      `json:"userId"`
	Name     string      `json:"name"`
	Email    string      `json:"email"`
	Phone    string      `json:"phone"`
	Role     domain.Role `json:"role"`
	ImageURL string      `json:"imageUrl"`
}

func newSessionResponse(s *domain.Session) SessionResponse {
	return SessionResponse{
		UserID:   s.UserID,
		Name:     s.Name,
		Email:    s.Email,
		Phone:    s.Phone,
		Role:     s.Role,
		ImageURL: s.ImageURL,
	}
}

// LoginResponse is the HTTP response for a successful sign-in.
type LoginResponse struct {
	Token string          `json:"token"`
	User  SessionResponse `json:"user"`
}

// Login handles POST /v1/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req service.LoginRequest
	if !bindJSON(c, &req) {
		return
	}

	result, err := h.auth.Login(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusOK, "Login successful", LoginResponse{
		Token: result.Token,
		User:  newSessionResponse(result.Session),
	})
}

// Logout handles POST /v1/auth/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	if err := h.auth.Logout(c.Request.Context(), session(c)); err != nil {
		respondError(c, err)
		return
	}
	respondJSON(c, http.StatusOK, "Logged out", nil)
}

// ForgotPassword handles POST /v1/auth/forgot-password
func (h *AuthHandler) ForgotPassword(c *gin.Context) {
	var req service.ForgotPasswordRequest
	if !bindJSON(c, &req) {
		return
	}
	if err := h.auth.ForgotPassword(c.Request.Context(), req); err != nil {
		respondError(c, err)
		return
	}
	respondJSON(c, http.StatusOK, "A one-time password has been sent to your email", nil)
}

// ResetPassword handles POST /v1/auth/reset-password
func (h *AuthHandler) ResetPassword(c *gin.Context) {
	var req service.ResetPasswordRequest
	if !bindJSON(c, &req) {
		return
	}
	if err := h.auth.ResetPassword(c.Request.Context(), req); err != nil {
		respondError(c, err)
		return
	}
	respondJSON(c, http.StatusOK, "Password has been reset", nil)
}

// RegisterAdmin handles POST /v1/auth/register-admin
func (h *AuthHandler) RegisterAdmin(c *gin.Context) {
	var req service.RegisterAdminRequest
	if !bindJSON(c, &req) {
		return
	}
	user, err := h.auth.RegisterAdmin(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	respondJSON(c, http.StatusCreated, "Admin registered", user)
}

// SessionInfo is the layout chrome: header data plus the sidebar visible to the role.
type SessionInfo struct {
	User       SessionResponse   `json:"user"`
	Navigation []service.NavItem `json:"navigation"`
}

// Session handles GET /v1/session
func (h *AuthHandler) Session(c *gin.Context) {
	sess := session(c)
	nav := service.Navigation(sess.Role)
	if nav == nil {
		nav = []service.NavItem{}
	}
	respondJSON(c, http.StatusOK, "", SessionInfo{
		User:       newSessionResponse(sess),
		Navigation: nav,
	})
}
