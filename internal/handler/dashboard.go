package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"cabadmin/internal/service"
)

// DashboardHandler serves the landing page.
type DashboardHandler struct {
	dashboard *service.DashboardService
}

// NewDashboardHandler creates a new DashboardHandler.
func NewDashboardHandler(dashboard *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboard: dashboard}
}

// Get handles GET /v1/dashboard
func (h *DashboardHandler) Get(c *gin.Context) {
	dash, err := h.dashboard.Get(c.Request.Context(), session(c))
	if err != nil {
		respondError(c, err)
		return
	}
	respondJSON(c, http.StatusOK, "", dash)
}
