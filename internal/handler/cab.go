package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"cabadmin/internal/domain"
	"cabadmin/internal/service"
)

// CabHandler handles HTTP requests for cab registrations.
type CabHandler struct {
	cabs *service.CabService
}

// NewCabHandler creates a new CabHandler.
func NewCabHandler(cabs *service.CabService) *CabHandler {
	return &CabHandler{cabs: cabs}
}

// List handles GET /v1/cabs
func (h *CabHandler) List(c *gin.Context) {
	page, err := h.cabs.List(c.Request.Context(), session(c), listQuery(c))
	if err != nil {
		respondError(c, err)
		return
	}
	respondJSON(c, http.StatusOK, "", page)
}

// Get handles GET /v1/cabs/:id
func (h *CabHandler) Get(c *gin.Context) {
	cab, err := h.cabs.Get(c.Request.Context(), session(c), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	respondJSON(c, http.StatusOK, "", cab)
}

// Register handles POST /v1/cabs
func (h *CabHandler) Register(c *gin.Context) {
	var req domain.CabRegistration
	if !bindJSON(c, &req) {
		return
	}
	cab, err := h.cabs.Register(c.Request.Context(), session(c), req)
	if err != nil {
		respondError(c, err)
		return
	}
	respondJSON(c, http.StatusCreated, "Cab registered", cab)
}

// Update handles PUT /v1/cabs/:id
func (h *CabHandler) Update(c *gin.Context) {
	var req domain.CabRegistration
	if !bindJSON(c, &req) {
		return
	}
	cab, err := h.cabs.Update(c.Request.Context(), session(c), c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	respondJSON(c, http.StatusOK, "Cab updated", cab)
}

// Delete handles DELETE /v1/cabs/:id?confirm=true
func (h *CabHandler) Delete(c *gin.Context) {
	if err := h.cabs.Delete(c.Request.Context(), session(c), c.Param("id"), confirmed(c)); err != nil {
		respondError(c, err)
		return
	}
	respondJSON(c, http.StatusOK, "Cab deleted", nil)
}
