package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"cabadmin/internal/service"
	"cabadmin/internal/workflow"
)

// ModificationHandler drives the booking modification dialog.
type ModificationHandler struct {
	modifications *service.ModificationService
}

// NewModificationHandler creates a new ModificationHandler.
func NewModificationHandler(modifications *service.ModificationService) *ModificationHandler {
	return &ModificationHandler{modifications: modifications}
}

// SelectCabRequest is the HTTP request body for picking a cab.
type SelectCabRequest struct {
	CabRegistrationID string `json:"cabRegistrationId"`
}

// Open handles POST /v1/bookings/:id/modifications
func (h *ModificationHandler) Open(c *gin.Context) {
	view, err := h.modifications.Open(c.Request.Context(), session(c), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	respondJSON(c, http.StatusCreated, "", view)
}

// Get handles GET /v1/modifications/:id and GET /v1/modifications/:id/cabs
func (h *ModificationHandler) Get(c *gin.Context) {
	view, err := h.modifications.Get(c.Request.Context(), session(c), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	respondJSON(c, http.StatusOK, "", view)
}

// Edit handles PATCH /v1/modifications/:id
func (h *ModificationHandler) Edit(c *gin.Context) {
	var changes workflow.DraftChanges
	if !bindJSON(c, &changes) {
		return
	}
	view, err := h.modifications.Edit(c.Request.Context(), session(c), c.Param("id"), changes)
	if err != nil {
		respondError(c, err)
		return
	}
	respondJSON(c, http.StatusOK, "", view)
}

// Calculate handles POST /v1/modifications/:id/calculate
// An empty or failed search is not an HTTP error: the view carries the message inline.
func (h *ModificationHandler) Calculate(c *gin.Context) {
	view, err := h.modifications.CalculateFare(c.Request.Context(), session(c), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	respondJSON(c, http.StatusOK, "", view)
}

// LoadMore handles POST /v1/modifications/:id/cabs/more
func (h *ModificationHandler) LoadMore(c *gin.Context) {
	view, err := h.modifications.LoadMore(c.Request.Context(), session(c), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	respondJSON(c, http.StatusOK, "", view)
}

// Select handles POST /v1/modifications/:id/select
func (h *ModificationHandler) Select(c *gin.Context) {
	var req SelectCabRequest
	if !bindJSON(c, &req) {
		return
	}
	view, err := h.modifications.SelectCab(c.Request.Context(), session(c), c.Param("id"), req.CabRegistrationID)
	if err != nil {
		respondError(c, err)
		return
	}
	respondJSON(c, http.StatusOK, "", view)
}

// Save handles POST /v1/modifications/:id/save
func (h *ModificationHandler) Save(c *gin.Context) {
	view, err := h.modifications.Save(c.Request.Context(), session(c), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	message := ""
	if view.RefreshList {
		message = "Booking updated"
	}
	respondJSON(c, http.StatusOK, message, view)
}

// Cancel handles DELETE /v1/modifications/:id
func (h *ModificationHandler) Cancel(c *gin.Context) {
	view, err := h.modifications.Cancel(c.Request.Context(), session(c), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	respondJSON(c, http.StatusOK, "", view)
}
