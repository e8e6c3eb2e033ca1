package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"cabadmin/internal/service"
)

// ImageHandler handles image uploads.
type ImageHandler struct {
	images *service.ImageService
}

// NewImageHandler creates a new ImageHandler.
func NewImageHandler(images *service.ImageService) *ImageHandler {
	return &ImageHandler{images: images}
}

// ImageResponse is the HTTP response for an uploaded image.
type ImageResponse struct {
	URL string `json:"url"`
}

// Upload handles POST /v1/images with a multipart "image" field.
func (h *ImageHandler) Upload(c *gin.Context) {
	header, err := c.FormFile("image")
	if err != nil {
		respondError(c, service.ErrImageRequired)
		return
	}
	file, err := header.Open()
	if err != nil {
		respondError(c, service.ErrImageRequired)
		return
	}
	defer file.Close()

	url, err := h.images.Upload(c.Request.Context(), session(c), file)
	if err != nil {
		respondError(c, err)
		return
	}
	respondJSON(c, http.StatusCreated, "Image uploaded", ImageResponse{URL: url})
}
