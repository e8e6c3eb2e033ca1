package gateway

import (
	"context"
	"net/http"

	"cabadmin/internal/domain"
	"cabadmin/internal/endpoint"
)

// ListBookings returns every booking.
func (c *Client) ListBookings(ctx context.Context) ([]domain.Booking, error) {
	var bookings []domain.Booking
	if _, err := c.call(ctx, http.MethodGet, endpoint.GetAllBookings, "", nil, &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}

// UpdateBooking replaces a booking with the given payload.
func (c *Client) UpdateBooking(ctx context.Context, id string, booking domain.Booking) error {
	_, err := c.call(ctx, http.MethodPut, endpoint.UpdateBooking, id, booking, nil)
	return err
}

// UpdateBookingStatus changes the status of a booking.
func (c *Client) UpdateBookingStatus(ctx context.Context, update domain.BookingStatusUpdate) error {
	_, err := c.call(ctx, http.MethodPut, endpoint.UpdateBookingStatus, "", update, nil)
	return err
}
