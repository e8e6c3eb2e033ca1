package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"cabadmin/internal/domain"
	"cabadmin/internal/service"
)

// OfferHandler handles HTTP requests for promotional offers.
type OfferHandler struct {
	offers *service.OfferService
}

// NewOfferHandler creates a new OfferHandler.
func NewOfferHandler(offers *service.OfferService) *OfferHandler {
	return &OfferHandler{offers: offers}
}

// List handles GET /v1/offers
func (h *OfferHandler) List(c *gin.Context) {
	page, err := h.offers.List(c.Request.Context(), session(c), listQuery(c))
	if err != nil {
		respondError(c, err)
		return
	}
	respondJSON(c, http.StatusOK, "", page)
}

// Get handles GET /v1/offers/:id
func (h *OfferHandler) Get(c *gin.Context) {
	offer, err := h.offers.Get(c.Request.Context(), session(c), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	respondJSON(c, http.StatusOK, "", offer)
}

// Create handles POST /v1/offers
func (h *OfferHandler) Create(c *gin.Context) {
	var req domain.Offer
	if !bindJSON(c, &req) {
		return
	}
	offer, err := h.offers.Create(c.Request.Context(), session(c), req)
	if err != nil {
		respondError(c, err)
		return
	}
	respondJSON(c, http.StatusCreated, "Offer created", offer)
}

// Update handles PUT /v1/offers/:id
func (h *OfferHandler) Update(c *gin.Context) {
	var req domain.Offer
	if !bindJSON(c, &req) {
		return
	}
	offer, err := h.offers.Update(c.Request.Context(), session(c), c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	respondJSON(c, http.StatusOK, "Offer updated", offer)
}

// Delete handles DELETE /v1/offers/:id?confirm=true
func (h *OfferHandler) Delete(c *gin.Context) {
	if err := h.offers.Delete(c.Request.Context(), session(c), c.Param("id"), confirmed(c)); err != nil {
		respondError(c, err)
		return
	}
	respondJSON(c, http.StatusOK, "Offer deleted", nil)
}
