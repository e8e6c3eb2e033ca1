package gateway

import (
	"context"
	"net/http"

	"cabadmin/internal/domain"
	"cabadmin/internal/endpoint"
)

// ListOffers returns every promotional offer.
func (c *Client) ListOffers(ctx context.Context) ([]domain.Offer, error) {
	var offers []domain.Offer
	if _, err := c.call(ctx, http.MethodGet, endpoint.GetAllOffers, "", nil, &offers); err != nil {
		return nil, err
	}
	return offers, nil
}

// GetOffer returns a single offer.
func (c *Client) GetOffer(ctx context.Context, id string) (*domain.Offer, error) {
	var offer domain.Offer
	if _, err := c.call(ctx, http.MethodGet, endpoint.GetOffer, id, nil, &offer); err != nil {
		return nil, err
	}
	return &offer, nil
}

// CreateOffer creates an offer.
func (c *Client) CreateOffer(ctx context.Context, offer domain.Offer) (*domain.Offer, error) {
	var created domain.Offer
	if _, err := c.call(ctx, http.MethodPost, endpoint.CreateOffer, "", offer, &created); err != nil {
		if isEmptyData(err) {
			return &offer, nil
		}
		return nil, err
	}
	return &created, nil
}

// UpdateOffer replaces an offer.
func (c *Client) UpdateOffer(ctx context.Context, id string, offer domain.Offer) (*domain.Offer, error) {
	var updated domain.Offer
	if _, err := c.call(ctx, http.MethodPut, endpoint.UpdateOffer, id, offer, &updated); err != nil {
		if isEmptyData(err) {
			offer.ID = id
			return &offer, nil
		}
		return nil, err
	}
	return &updated, nil
}

// DeleteOffer removes an offer.
func (c *Client) DeleteOffer(ctx context.Context, id string) error {
	_, err := c.call(ctx, http.MethodDelete, endpoint.DeleteOffer, id, nil, nil)
	return err
}
