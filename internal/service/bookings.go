package service

import (
	"context"

	"cabadmin/internal/domain"
	"cabadmin/internal/listing"
)

// BookingService handles the bookings page.
type BookingService struct {
	upstream UpstreamFor
	activity *ActivityService
}

// NewBookingService creates a new BookingService.
func NewBookingService(upstream UpstreamFor, activity *ActivityService) *BookingService {
	return &BookingService{upstream: upstream, activity: activity}
}

// List returns one page of bookings matching q.
func (s *BookingService) List(ctx context.Context, session *domain.Session, q listing.Query) (listing.Page[domain.Booking], error) {
	bookings, err := s.upstream(session.AuthToken).ListBookings(ctx)
	if err != nil {
		return listing.Page[domain.Booking]{}, err
	}
	return listing.Apply(bookings, q, BookingSchema), nil
}

// StatusUpdate contains the booking status form.
type StatusUpdate struct {
	BookingStatus domain.BookingStatus `json:"bookingStatus" validate:"required,oneof=Pending Completed Canceled"`
	PaymentStatus string               `json:"paymentStatus"`
}

// UpdateStatus changes a booking's status on behalf of the session's role.
func (s *BookingService) UpdateStatus(ctx context.Context, session *domain.Session, id string, req StatusUpdate) error {
	if id == "" {
		return ErrInvalidID
	}
	if err := validateStruct(req, nil); err != nil {
		return err
	}

	err := s.upstream(session.AuthToken).UpdateBookingStatus(ctx, domain.BookingStatusUpdate{
		BookingID:     id,
		BookingStatus: req.BookingStatus,
		PaymentStatus: req.PaymentStatus,
		Role:          session.Role,
	})
	if err != nil {
		return err
	}
	s.activity.Record(ctx, session, Change{
		Event:    EventBookingStatusChanged,
		Entity:   "booking",
		EntityID: id,
		Detail:   string(req.BookingStatus),
		Data:     map[string]any{"bookingStatus": req.BookingStatus, "paymentStatus": req.PaymentStatus},
	})
	return nil
}

// findBooking returns the booking with id. The booking service has no single-booking read.
func findBooking(ctx context.Context, upstream Upstream, id string) (*domain.Booking, error) {
	bookings, err := upstream.ListBookings(ctx)
	if err != nil {
		return nil, err
	}
	for i := range bookings {
		if bookings[i].BookingID == id {
			return &bookings[i], nil
		}
	}
	return nil, ErrBookingNotFound
}
