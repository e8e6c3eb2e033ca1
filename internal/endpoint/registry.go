// Package endpoint maps logical upstream operations to fully-qualified URLs.
package endpoint

import "strings"

// Operation names an upstream call.
type Operation string

// User service operations.
const (
	Login          Operation = "login"
	ForgotPassword Operation = "forgotPassword"
	ResetPassword  Operation = "resetPassword"
	GetAllUsers    Operation = "getAllUsers"
	GetUser        Operation = "getUser"
	RegisterUser   Operation = "registerUser"
	UpdateUser     Operation = "updateUser"
	UpdatePassword Operation = "updatePassword"
	DeleteUser     Operation = "deleteUser"
)

// Booking service operations.
const (
	GetAllCabs          Operation = "getAllCabs"
	GetCab              Operation = "getCab"
	RegisterCab         Operation = "registerCab"
	UpdateCab           Operation = "updateCab"
	DeleteCab           Operation = "deleteCab"
	SearchCabs          Operation = "searchCabs"
	GetAllBookings      Operation = "getAllBookings"
	UpdateBooking       Operation = "updateBooking"
	UpdateBookingStatus Operation = "updateBookingStatus"
)

// Common service operations.
const (
	UploadImage  Operation = "uploadImage"
	GetAllOffers Operation = "getAllOffers"
	GetOffer     Operation = "getOffer"
	CreateOffer  Operation = "createOffer"
	UpdateOffer  Operation = "updateOffer"
	DeleteOffer  Operation = "deleteOffer"
)

type service int

const (
	userService service = iota
	bookingService
	commonService
)

type route struct {
	service service
	path    string
	withID  bool
}

var routes = map[Operation]route{
	Login:          {userService, "/users/login", false},
	ForgotPassword: {userService, "/users/forgot-password", false},
	ResetPassword:  {userService, "/users/reset-password", false},
	GetAllUsers:    {userService, "/users/all", false},
	GetUser:        {userService, "/users/", true},
	RegisterUser:   {userService, "/users/register", false},
	UpdateUser:     {userService, "/users/update", false},
	UpdatePassword: {userService, "/users/update/password", false},
	DeleteUser:     {userService, "/users/", true},

	GetAllCabs:          {bookingService, "/cab/registration/get/all", false},
	GetCab:              {bookingService, "/cab/registration/get/", true},
	RegisterCab:         {bookingService, "/cab/registration/register", false},
	UpdateCab:           {bookingService, "/cab/registration/update/", true},
	DeleteCab:           {bookingService, "/cab/registration/delete/", true},
	SearchCabs:          {bookingService, "/cab/registration/search", false},
	GetAllBookings:      {bookingService, "/cab/booking/find/all", false},
	UpdateBooking:       {bookingService, "/cab/booking/update/", true},
	UpdateBookingStatus: {bookingService, "/cab/booking/update-booking-status", false},

	UploadImage:  {commonService, "/common/uploadBase64Image", false},
	GetAllOffers: {commonService, "/common/offer/all", false},
	GetOffer:     {commonService, "/common/offer/", true},
	CreateOffer:  {commonService, "/common/offer/create", false},
	UpdateOffer:  {commonService, "/common/offer/update/", true},
	DeleteOffer:  {commonService, "/common/offer/delete/", true},
}

// Registry builds URLs against the configured base URL of each service.
type Registry struct {
	bases [3]string
}

// NewRegistry creates a Registry. Trailing slashes on base URLs are ignored.
func NewRegistry(userBase, bookingBase, commonBase string) Registry {
	return Registry{bases: [3]string{
		strings.TrimRight(userBase, "/"),
		strings.TrimRight(bookingBase, "/"),
		strings.TrimRight(commonBase, "/"),
	}}
}

// URL returns the URL for op. The id is appended as-is for operations that take one
// and ignored otherwise. Unknown operations yield "".
func (r Registry) URL(op Operation, id string) string {
	rt, ok := routes[op]
	if !ok {
		return ""
	}
	u := r.bases[rt.service] + rt.path
	if rt.withID {
		u += id
	}
	return u
}
