package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"cabadmin/internal/service"
)

// BookingHandler handles HTTP requests for the booking list.
type BookingHandler struct {
	bookings *service.BookingService
	activity *service.ActivityService
}

// NewBookingHandler creates a new BookingHandler.
func NewBookingHandler(bookings *service.BookingService, activity *service.ActivityService) *BookingHandler {
	return &BookingHandler{bookings: bookings, activity: activity}
}

// List handles GET /v1/bookings
func (h *BookingHandler) List(c *gin.Context) {
	page, err := h.bookings.List(c.Request.Context(), session(c), listQuery(c))
	if err != nil {
		respondError(c, err)
		return
	}
	respondJSON(c, http.StatusOK, "", page)
}

// UpdateStatus handles PUT /v1/bookings/:id/status
func (h *BookingHandler) UpdateStatus(c *gin.Context) {
	var req service.StatusUpdate
	if !bindJSON(c, &req) {
		return
	}
	if err := h.bookings.UpdateStatus(c.Request.Context(), session(c), c.Param("id"), req); err != nil {
		respondError(c, err)
		return
	}
	respondJSON(c, http.StatusOK, "Booking status updated", nil)
}

// History handles GET /v1/bookings/:id/history
func (h *BookingHandler) History(c *gin.Context) {
	entries, err := h.activity.History(c.Request.Context(), "booking", c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	respondJSON(c, http.StatusOK, "", entries)
}
