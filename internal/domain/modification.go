package domain

import "time"

// ModificationState is the state of a booking modification.
type ModificationState string

const (
	ModificationClosed         ModificationState = "CLOSED"
	ModificationEditing        ModificationState = "EDITING"
	ModificationSearchingCabs  ModificationState = "SEARCHING_CABS"
	ModificationCabSelection   ModificationState = "CAB_SELECTION"
	ModificationFareCalculated ModificationState = "FARE_CALCULATED"
	ModificationSaving         ModificationState = "SAVING"
)

// Modification is an in-progress edit of a booking.
// Revision is bumped whenever a search or save starts so that late results can be recognised.
type Modification struct {
	ID             string            `json:"id"`
	SessionID      string            `json:"sessionId"`
	State          ModificationState `json:"state"`
	Revision       int               `json:"revision"`
	Original       Booking           `json:"original"`
	Draft          Booking           `json:"draft"`
	FareCalculated bool              `json:"fareCalculated"`
	Candidates     []*CabCandidate   `json:"candidates,omitempty"`
	PickerExpanded bool              `json:"pickerExpanded"`
	Error          string            `json:"error,omitempty"`
	CreatedAt      time.Time         `json:"createdAt"`
	UpdatedAt      time.Time         `json:"updatedAt"`
}
