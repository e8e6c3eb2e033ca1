package service

import "errors"

var (
	// ErrInvalidCredentials is returned when the user service rejects a login.
	ErrInvalidCredentials = errors.New("invalid username or password")

	// ErrRoleNotPermitted is returned when an account's role may not use the dashboard.
	ErrRoleNotPermitted = errors.New("role not permitted to use the dashboard")

	// ErrUnauthenticated is returned when a request carries no usable session.
	ErrUnauthenticated = errors.New("not signed in")

	// ErrConfirmationRequired is returned when a delete is attempted without confirmation.
	ErrConfirmationRequired = errors.New("deletion must be confirmed")

	// ErrInFlight is returned when a search or save is already running for a modification.
	ErrInFlight = errors.New("request already in progress")

	// ErrModificationNotFound is returned when a modification does not exist or belongs to another session.
	ErrModificationNotFound = errors.New("modification not found")

	// ErrModificationClosed is returned when a result arrives after the modification was closed or restarted.
	ErrModificationClosed = errors.New("modification was closed or changed while the request was running")

	// ErrBookingNotFound is returned when a booking id is not in the booking list.
	ErrBookingNotFound = errors.New("booking not found")

	// ErrInvalidID is returned when an id parameter is empty.
	ErrInvalidID = errors.New("invalid id")

	// ErrImageRequired is returned when an upload carries no image.
	ErrImageRequired = errors.New("image is required")
)
