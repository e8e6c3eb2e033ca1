package gateway

import (
	"context"
	"net/http"

	"cabadmin/internal/domain"
	"cabadmin/internal/endpoint"
)

// ListCabs returns every cab registration.
func (c *Client) ListCabs(ctx context.Context) ([]domain.CabRegistration, error) {
	var cabs []domain.CabRegistration
	if _, err := c.call(ctx, http.MethodGet, endpoint.GetAllCabs, "", nil, &cabs); err != nil {
		return nil, err
	}
	return cabs, nil
}

// GetCab returns a single cab registration.
func (c *Client) GetCab(ctx context.Context, id string) (*domain.CabRegistration, error) {
	var cab domain.CabRegistration
	if _, err := c.call(ctx, http.MethodGet, endpoint.GetCab, id, nil, &cab); err != nil {
		return nil, err
	}
	return &cab, nil
}

// RegisterCab creates a cab registration.
func (c *Client) RegisterCab(ctx context.Context, reg domain.CabRegistration) (*domain.CabRegistration, error) {
	var created domain.CabRegistration
	if _, err := c.call(ctx, http.MethodPost, endpoint.RegisterCab, "", reg, &created); err != nil {
		if isEmptyData(err) {
			return &reg, nil
		}
		return nil, err
	}
	return &created, nil
}

// UpdateCab replaces a cab registration.
func (c *Client) UpdateCab(ctx context.Context, id string, reg domain.CabRegistration) (*domain.CabRegistration, error) {
	var updated domain.CabRegistration
	if _, err := c.call(ctx, http.MethodPut, endpoint.UpdateCab, id, reg, &updated); err != nil {
		if isEmptyData(err) {
			reg.RegistrationID = id
			return &reg, nil
		}
		return nil, err
	}
	return &updated, nil
}

// DeleteCab removes a cab registration.
func (c *Client) DeleteCab(ctx context.Context, id string) error {
	_, err := c.call(ctx, http.MethodDelete, endpoint.DeleteCab, id, nil, nil)
	return err
}

// SearchCabs finds cabs that can serve a route and time window. Entries may be nil
// when the service returns null elements. The returned message is the service's
// responseMessage, useful when the list is empty.
func (c *Client) SearchCabs(ctx context.Context, search domain.CabSearch) ([]*domain.CabCandidate, string, error) {
	var candidates []*domain.CabCandidate
	env, err := c.call(ctx, http.MethodPost, endpoint.SearchCabs, "", search, &candidates)
	message := ""
	if env != nil {
		message = env.ResponseMessage
	}
	if err != nil {
		return nil, message, err
	}
	return candidates, message, nil
}
