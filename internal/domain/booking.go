package domain

// BookingStatus represents the lifecycle status of a booking.
type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "Pending"
	BookingStatusCompleted BookingStatus = "Completed"
	BookingStatusCanceled  BookingStatus = "Canceled"
)

// Valid reports whether s is a known booking status.
func (s BookingStatus) Valid() bool {
	switch s {
	case BookingStatusPending, BookingStatusCompleted, BookingStatusCanceled:
		return true
	}
	return false
}

// PaymentDetails describes how a booking was paid.
type PaymentDetails struct {
	PaymentMethod string   `json:"paymentMethod,omitempty"`
	TransactionID string   `json:"transactionId,omitempty"`
	PaymentDate   string   `json:"paymentDate,omitempty"`
	Amount        *float64 `json:"amount,omitempty"`
	PaymentStatus string   `json:"paymentStatus,omitempty"`
}

// Booking is a cab booking held by the booking service.
// Money fields are pointers because the service omits or nulls them.
type Booking struct {
	BookingID         string          `json:"bookingId"`
	UserID            string          `json:"userId"`
	CabRegistrationID string          `json:"cabRegistrationId"`
	PickupLocation    string          `json:"pickupLocation"`
	DropLocation      string          `json:"dropLocation"`
	PickupDateTime    string          `json:"pickupDateTime"`
	DropDateTime      string          `json:"dropDateTime"`
	Fare              *float64        `json:"fare"`
	PromoDiscount     *float64        `json:"promoDiscount"`
	TokenAmount       *float64        `json:"tokenAmount"`
	BalanceAmount     *float64        `json:"balanceAmount"`
	BookingStatus     BookingStatus   `json:"bookingStatus"`
	PaymentDetails    *PaymentDetails `json:"paymentDetails,omitempty"`
}

// BookingStatusUpdate is the request body for changing a booking's status.
type BookingStatusUpdate struct {
	BookingID     string        `json:"bookingId"`
	BookingStatus BookingStatus `json:"bookingStatus"`
	PaymentStatus string        `json:"paymentStatus"`
	Role          Role          `json:"role"`
}

// Balance returns fare minus promo discount minus token amount, treating nil as zero.
func Balance(fare, promoDiscount, tokenAmount *float64) float64 {
	return valueOf(fare) - valueOf(promoDiscount) - valueOf(tokenAmount)
}

// Float returns a pointer to v.
func Float(v float64) *float64 {
	return &v
}

func valueOf(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}
