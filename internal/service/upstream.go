package service

import (
	"context"
	"errors"

	"cabadmin/internal/domain"
	"cabadmin/internal/gateway"
)

// Upstream is the set of remote service calls the dashboard makes.
type Upstream interface {
	Login(ctx context.Context, username, password string) (*domain.User, error)
	ForgotPassword(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, username, otp, newPassword string) error
	ListUsers(ctx context.Context) ([]domain.User, error)
	GetUser(ctx context.Context, id string) (*domain.User, error)
	RegisterUser(ctx context.Context, req gateway.RegisterUserRequest) (*domain.User, error)
	UpdateUser(ctx context.Context, req gateway.UpdateUserRequest) (*domain.User, error)
	UpdatePassword(ctx context.Context, userID, oldPassword, newPassword string) error
	DeleteUser(ctx context.Context, id string) error

	ListCabs(ctx context.Context) ([]domain.CabRegistration, error)
	GetCab(ctx context.Context, id string) (*domain.CabRegistration, error)
	RegisterCab(ctx context.Context, reg domain.CabRegistration) (*domain.CabRegistration, error)
	UpdateCab(ctx context.Context, id string, reg domain.CabRegistration) (*domain.CabRegistration, error)
	DeleteCab(ctx context.Context, id string) error
	SearchCabs(ctx context.Context, search domain.CabSearch) ([]*domain.CabCandidate, string, error)

	ListBookings(ctx context.Context) ([]domain.Booking, error)
	UpdateBooking(ctx context.Context, id string, booking domain.Booking) error
	UpdateBookingStatus(ctx context.Context, update domain.BookingStatusUpdate) error

	ListOffers(ctx context.Context) ([]domain.Offer, error)
	GetOffer(ctx context.Context, id string) (*domain.Offer, error)
	CreateOffer(ctx context.Context, offer domain.Offer) (*domain.Offer, error)
	UpdateOffer(ctx context.Context, id string, offer domain.Offer) (*domain.Offer, error)
	DeleteOffer(ctx context.Context, id string) error

	UploadImage(ctx context.Context, userID, base64Image string) (string, error)
}

// UpstreamFor returns an Upstream that authenticates with token.
type UpstreamFor func(token string) Upstream

// Ensure gateway.Client implements Upstream.
var _ Upstream = (*gateway.Client)(nil)

// GatewayUpstream adapts a gateway client to UpstreamFor.
func GatewayUpstream(client *gateway.Client) UpstreamFor {
	return func(token string) Upstream {
		return client.WithToken(token)
	}
}

// UserMessage returns the text to show for a failed remote call: the service's own
// message when it sent one, otherwise the generic message.
func UserMessage(err error) string {
	var apiErr *gateway.APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return domain.GenericErrorMessage
}
