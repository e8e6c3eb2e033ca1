package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"cabadmin/internal/service"
)

// ProfileHandler handles the profile and account settings pages.
type ProfileHandler struct {
	profiles *service.ProfileService
}

// NewProfileHandler creates a new ProfileHandler.
func NewProfileHandler(profiles *service.ProfileService) *ProfileHandler {
	return &ProfileHandler{profiles: profiles}
}

// Get handles GET /v1/profile
func (h *ProfileHandler) Get(c *gin.Context) {
	user, err := h.profiles.Get(c.Request.Context(), session(c))
	if err != nil {
		respondError(c, err)
		return
	}
	respondJSON(c, http.StatusOK, "", user)
}

// Update handles PUT /v1/profile
func (h *ProfileHandler) Update(c *gin.Context) {
	var req service.ProfileUpdate
	if !bindJSON(c, &req) {
		return
	}
	user, err := h.profiles.Update(c.Request.Context(), session(c), req)
	if err != nil {
		respondError(c, err)
		return
	}
	respondJSON(c, http.StatusOK, "Profile updated", user)
}

// ChangePassword handles PUT /v1/account/password
func (h *ProfileHandler) ChangePassword(c *gin.Context) {
	var req service.PasswordChange
	if !bindJSON(c, &req) {
		return
	}
	if err := h.profiles.ChangePassword(c.Request.Context(), session(c), req); err != nil {
		respondError(c, err)
		return
	}
	respondJSON(c, http.StatusOK, "Password changed", nil)
}
