package domain

// CabStatus represents whether a registered cab accepts bookings.
type CabStatus string

const (
	CabStatusActive   CabStatus = "Active"
	CabStatusInactive CabStatus = "Inactive"
)

// Cab is the vehicle part of a cab registration.
type Cab struct {
	CabID           string `json:"cabId,omitempty"`
	Name            string `json:"cabName" validate:"required"`
	Type            string `json:"cabType" validate:"required"`
	Number          string `json:"cabNumber" validate:"required"`
	Model           string `json:"model" validate:"required"`
	Color           string `json:"color" validate:"required"`
	Capacity        int    `json:"capacity" validate:"gte=1,lte=20"`
	InsuranceNumber string `json:"insuranceNumber" validate:"required"`
	ImageURL        string `json:"imageUrl,omitempty"`
	City            string `json:"city" validate:"required"`
	State           string `json:"state" validate:"required"`
}

// CabRegistration binds a cab to its owner, driver and pricing.
type CabRegistration struct {
	RegistrationID string    `json:"registrationId,omitempty"`
	OwnerName      string    `json:"ownerName" validate:"required"`
	DriverName     string    `json:"driverName" validate:"required"`
	DriverContact  string    `json:"driverContact" validate:"required,len=10,numeric"`
	DriverLicense  string    `json:"driverLicense" validate:"required"`
	Address        string    `json:"address" validate:"required"`
	Latitude       float64   `json:"latitude" validate:"gte=-90,lte=90"`
	Longitude      float64   `json:"longitude" validate:"gte=-180,lte=180"`
	PerKmRate      float64   `json:"perKmRate" validate:"gt=0"`
	BaseFare       float64   `json:"baseFare" validate:"gte=0"`
	Status         CabStatus `json:"status" validate:"oneof=Active Inactive"`
	Cab            Cab       `json:"cab"`
}

// CabCandidate is one entry of a cab search result: a registration that can serve a route,
// with the fare quoted for it.
type CabCandidate struct {
	CabRegistrationID string  `json:"cabRegistrationId"`
	Fare              float64 `json:"fare"`
	DriverName        string  `json:"driverName,omitempty"`
	DriverContact     string  `json:"driverContact,omitempty"`
	PerKmRate         float64 `json:"perKmRate,omitempty"`
	BaseFare          float64 `json:"baseFare,omitempty"`
	Distance          float64 `json:"distance,omitempty"`
	Cab               *Cab    `json:"cab,omitempty"`
}

// CabSearch is the request body for finding cabs that can serve a route and time window.
type CabSearch struct {
	PickupLocation string `json:"pickupLocation"`
	DropLocation   string `json:"dropLocation"`
	PickupDateTime string `json:"pickupDateTime"`
	DropDateTime   string `json:"dropDateTime"`
	Radius         int    `json:"radius"`
}
