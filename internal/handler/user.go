package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"cabadmin/internal/service"
)

// UserHandler handles HTTP requests for user management.
type UserHandler struct {
	users *service.UserService
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(users *service.UserService) *UserHandler {
	return &UserHandler{users: users}
}

// List handles GET /v1/users
func (h *UserHandler) List(c *gin.Context) {
	page, err := h.users.List(c.Request.Context(), session(c), listQuery(c))
	if err != nil {
		respondError(c, err)
		return
	}
	respondJSON(c, http.StatusOK, "", page)
}

// Get handles GET /v1/users/:id
func (h *UserHandler) Get(c *gin.Context) {
	user, err := h.users.Get(c.Request.Context(), session(c), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	respondJSON(c, http.StatusOK, "", user)
}

// Delete handles DELETE /v1/users/:id?confirm=true and returns the refreshed list.
func (h *UserHandler) Delete(c *gin.Context) {
	page, err := h.users.Delete(c.Request.Context(), session(c), c.Param("id"), confirmed(c), listQuery(c))
	if err != nil {
		respondError(c, err)
		return
	}
	respondJSON(c, http.StatusOK, "User deleted", page)
}
