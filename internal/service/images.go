package service

import (
	"context"
	"io"

	"cabadmin/internal/domain"
	"cabadmin/internal/imaging"
)

// ImageService compresses and uploads images for cab and profile records.
type ImageService struct {
	upstream UpstreamFor
}

// NewImageService creates a new ImageService.
func NewImageService(upstream UpstreamFor) *ImageService {
	return &ImageService{upstream: upstream}
}

// Upload compresses r and uploads it under the session's user. It returns the stored image URL.
func (s *ImageService) Upload(ctx context.Context, session *domain.Session, r io.Reader) (string, error) {
	if r == nil {
		return "", ErrImageRequired
	}
	dataURL, err := imaging.CompressToDataURL(r)
	if err != nil {
		return "", err
	}
	return s.upstream(session.AuthToken).UploadImage(ctx, session.UserID, dataURL)
}
