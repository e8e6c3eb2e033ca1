package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"cabadmin/internal/endpoint"
)

// UploadImageRequest is the body of POST /common/uploadBase64Image.
type UploadImageRequest struct {
	UserID      string `json:"userId"`
	Base64Image string `json:"base64Image"`
}

// UploadImage uploads a base64 encoded image and returns its public URL.
func (c *Client) UploadImage(ctx context.Context, userID, base64Image string) (string, error) {
	var raw json.RawMessage
	if _, err := c.call(ctx, http.MethodPost, endpoint.UploadImage, "", UploadImageRequest{
		UserID:      userID,
		Base64Image: base64Image,
	}, &raw); err != nil {
		return "", err
	}

	url, err := imageURL(raw)
	if err != nil {
		return "", fmt.Errorf("%w: upload image: %v", ErrInvalidPayload, err)
	}
	return url, nil
}

// imageURL accepts a bare string or an object carrying imageUrl/url,
// optionally wrapped in a one-element array.
func imageURL(raw json.RawMessage) (string, error) {
	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err == nil {
		if len(items) == 0 {
			return "", errors.New("no image url in response")
		}
		raw = items[0]
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil && s != "" {
		return s, nil
	}

	var obj struct {
		ImageURL string `json:"imageUrl"`
		URL      string `json:"url"`
	}
	if err := json.Unmarshal(raw, &obj); err != nil {
		return "", err
	}
	if obj.ImageURL != "" {
		return obj.ImageURL, nil
	}
	if obj.URL != "" {
		return obj.URL, nil
	}
	return "", errors.New("no image url in response")
}

func isEmptyData(err error) bool {
	return errors.Is(err, ErrEmptyData)
}
