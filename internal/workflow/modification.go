package workflow

import (
	"errors"
	"time"

	"cabadmin/internal/domain"
)

// SearchRadius is the radius sent with every cab search.
const SearchRadius = 15

// Action is a user action offered for a modification in its current state.
type Action string

const (
	ActionCalculateFare Action = "calculateFare"
	ActionSaveChanges   Action = "saveChanges"
	ActionSelectCab     Action = "selectCab"
	ActionLoadMore      Action = "loadMore"
	ActionCancel        Action = "cancel"
)

var (
	// ErrCabNotFound is returned when a picked cab is not among the search results.
	ErrCabNotFound = errors.New("cab not among search results")

	// ErrCabNotSelected is returned when saving before a cab has been picked.
	ErrCabNotSelected = errors.New("no cab selected")
)

// DraftChanges holds the editable fields of a draft. Nil fields are left unchanged.
// Fare, promo discount and token amount are not editable.
type DraftChanges struct {
	PickupLocation *string                `json:"pickupLocation"`
	DropLocation   *string                `json:"dropLocation"`
	PickupDateTime *string                `json:"pickupDateTime"`
	DropDateTime   *string                `json:"dropDateTime"`
	BookingStatus  *domain.BookingStatus  `json:"bookingStatus"`
	PaymentDetails *domain.PaymentDetails `json:"paymentDetails"`
}

// New opens a modification of booking for a session.
func New(id, sessionID string, booking domain.Booking, now time.Time) (*domain.Modification, error) {
	state, err := Next(domain.ModificationClosed, EventOpen)
	if err != nil {
		return nil, err
	}
	draft := copyBooking(booking)
	draft.BalanceAmount = domain.Float(domain.Balance(draft.Fare, draft.PromoDiscount, draft.TokenAmount))
	return &domain.Modification{
		ID:        id,
		SessionID: sessionID,
		State:     state,
		Original:  copyBooking(booking),
		Draft:     draft,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// ApplyEdit merges changes into the draft. Changing the route or times after a fare was
// calculated discards the calculation and returns the modification to editing.
func ApplyEdit(m *domain.Modification, changes DraftChanges) error {
	event := EventEdit
	if routeChanged(m.Draft, changes) {
		event = EventRouteChanged
	}
	next, err := Next(m.State, event)
	if err != nil {
		return err
	}

	d := &m.Draft
	if changes.PickupLocation != nil {
		d.PickupLocation = *changes.PickupLocation
	}
	if changes.DropLocation != nil {
		d.DropLocation = *changes.DropLocation
	}
	if changes.PickupDateTime != nil {
		d.PickupDateTime = *changes.PickupDateTime
	}
	if changes.DropDateTime != nil {
		d.DropDateTime = *changes.DropDateTime
	}
	if changes.BookingStatus != nil {
		d.BookingStatus = *changes.BookingStatus
	}
	if changes.PaymentDetails != nil {
		pd := *changes.PaymentDetails
		d.PaymentDetails = &pd
	}

	if event == EventRouteChanged {
		discardFare(m)
	}
	m.State = next
	m.Error = ""
	return nil
}

// SearchRequest builds the cab search body for the current draft.
func SearchRequest(m *domain.Modification) domain.CabSearch {
	return domain.CabSearch{
		PickupLocation: m.Draft.PickupLocation,
		DropLocation:   m.Draft.DropLocation,
		PickupDateTime: NormalizeDateTime(m.Draft.PickupDateTime),
		DropDateTime:   NormalizeDateTime(m.Draft.DropDateTime),
		Radius:         SearchRadius,
	}
}

// StartSearch moves the modification into cab search and bumps its revision.
// A fare calculated by an earlier search is discarded.
func StartSearch(m *domain.Modification) error {
	next, err := Next(m.State, EventCalculate)
	if err != nil {
		return err
	}
	discardFare(m)
	m.State = next
	m.Revision++
	m.Error = ""
	m.Candidates = nil
	m.PickerExpanded = false
	return nil
}

// CompleteSearch records the result of a search. An empty result keeps the draft editable
// and reports message, or NoCabsMessage when the service gave none.
func CompleteSearch(m *domain.Modification, candidates []*domain.CabCandidate, message string) error {
	if NewCabPicker(candidates, m.Draft.CabRegistrationID).Len() == 0 {
		return FailSearch(m, EventNotFound, noCabsMessage(message))
	}
	next, err := Next(m.State, EventFound)
	if err != nil {
		return err
	}
	m.State = next
	m.Candidates = candidates
	m.PickerExpanded = false
	m.Error = ""
	return nil
}

// FailSearch ends a search with an error message. event is EventNotFound or EventSearchFailed.
func FailSearch(m *domain.Modification, event Event, message string) error {
	next, err := Next(m.State, event)
	if err != nil {
		return err
	}
	m.State = next
	m.Candidates = nil
	m.Error = message
	return nil
}

// ExpandPicker reveals the candidates hidden behind the pinned one.
func ExpandPicker(m *domain.Modification) error {
	next, err := Next(m.State, EventLoadMore)
	if err != nil {
		return err
	}
	m.State = next
	m.PickerExpanded = true
	return nil
}

// Pick adopts a candidate's registration and fare and recomputes the balance.
func Pick(m *domain.Modification, cabRegistrationID string) error {
	next, err := Next(m.State, EventPick)
	if err != nil {
		return err
	}
	candidate, ok := PickerOf(m).Find(cabRegistrationID)
	if !ok {
		return ErrCabNotFound
	}
	d := &m.Draft
	d.CabRegistrationID = candidate.CabRegistrationID
	d.Fare = domain.Float(candidate.Fare)
	d.BalanceAmount = domain.Float(domain.Balance(d.Fare, d.PromoDiscount, d.TokenAmount))
	m.FareCalculated = true
	m.Candidates = nil
	m.PickerExpanded = false
	m.State = next
	m.Error = ""
	return nil
}

// StartSave moves the modification into saving and bumps its revision.
func StartSave(m *domain.Modification) error {
	next, err := Next(m.State, EventSave)
	if err != nil {
		return err
	}
	if !m.FareCalculated || m.Draft.CabRegistrationID == "" {
		return ErrCabNotSelected
	}
	m.State = next
	m.Revision++
	m.Error = ""
	return nil
}

// CompleteSave closes the modification after the booking service accepted it.
func CompleteSave(m *domain.Modification) error {
	next, err := Next(m.State, EventSaved)
	if err != nil {
		return err
	}
	m.State = next
	return nil
}

// FailSave returns the modification to its calculated state with an inline error.
func FailSave(m *domain.Modification, message string) error {
	next, err := Next(m.State, EventSaveFailed)
	if err != nil {
		return err
	}
	m.State = next
	m.Error = message
	return nil
}

// Close cancels the modification.
func Close(m *domain.Modification) {
	m.State, _ = Next(m.State, EventCancel)
	m.Candidates = nil
}

// SavePayload builds the full booking sent to the booking service. Payment details fall back
// field by field to the original booking's.
func SavePayload(m *domain.Modification) domain.Booking {
	b := copyBooking(m.Draft)
	b.BookingID = m.Original.BookingID
	b.UserID = m.Original.UserID
	b.PickupDateTime = NormalizeDateTime(b.PickupDateTime)
	b.DropDateTime = NormalizeDateTime(b.DropDateTime)
	b.BalanceAmount = domain.Float(domain.Balance(b.Fare, b.PromoDiscount, b.TokenAmount))
	b.PaymentDetails = mergePayment(m.Draft.PaymentDetails, m.Original.PaymentDetails)
	return b
}

// PickerOf returns the cab picker for a modification's current search results.
func PickerOf(m *domain.Modification) CabPicker {
	p := NewCabPicker(m.Candidates, m.Draft.CabRegistrationID)
	p.Expanded = m.PickerExpanded
	p.Loading = m.State == domain.ModificationSearchingCabs
	return p
}

// AvailableActions lists what the user can do next. Calculate and save are never offered together.
func AvailableActions(m *domain.Modification) []Action {
	var actions []Action
	switch m.State {
	case domain.ModificationClosed:
		return nil
	case domain.ModificationEditing:
		actions = append(actions, ActionCalculateFare)
	case domain.ModificationCabSelection:
		actions = append(actions, ActionSelectCab)
		if PickerOf(m).CanLoadMore() {
			actions = append(actions, ActionLoadMore)
		}
		actions = append(actions, ActionCalculateFare)
	case domain.ModificationFareCalculated:
		if m.FareCalculated && m.Draft.CabRegistrationID != "" {
			actions = append(actions, ActionSaveChanges)
		} else {
			actions = append(actions, ActionCalculateFare)
		}
	}
	return append(actions, ActionCancel)
}

func routeChanged(d domain.Booking, c DraftChanges) bool {
	changed := func(cur string, next *string) bool { return next != nil && *next != cur }
	return changed(d.PickupLocation, c.PickupLocation) ||
		changed(d.DropLocation, c.DropLocation) ||
		changed(d.PickupDateTime, c.PickupDateTime) ||
		changed(d.DropDateTime, c.DropDateTime)
}

// discardFare reverts the draft's cab and fare to the booking's own.
func discardFare(m *domain.Modification) {
	if !m.FareCalculated {
		return
	}
	m.FareCalculated = false
	d := &m.Draft
	d.CabRegistrationID = m.Original.CabRegistrationID
	d.Fare = copyFloat(m.Original.Fare)
	d.BalanceAmount = domain.Float(domain.Balance(d.Fare, d.PromoDiscount, d.TokenAmount))
}

func noCabsMessage(message string) string {
	if message == "" {
		return domain.NoCabsMessage
	}
	return message
}

func mergePayment(draft, original *domain.PaymentDetails) *domain.PaymentDetails {
	if draft == nil && original == nil {
		return nil
	}
	var out domain.PaymentDetails
	if draft != nil {
		out = *draft
		out.Amount = copyFloat(draft.Amount)
	}
	if original == nil {
		return &out
	}
	if out.PaymentMethod == "" {
		out.PaymentMethod = original.PaymentMethod
	}
	if out.TransactionID == "" {
		out.TransactionID = original.TransactionID
	}
	if out.PaymentDate == "" {
		out.PaymentDate = original.PaymentDate
	}
	if out.Amount == nil {
		out.Amount = copyFloat(original.Amount)
	}
	if out.PaymentStatus == "" {
		out.PaymentStatus = original.PaymentStatus
	}
	return &out
}

func copyBooking(b domain.Booking) domain.Booking {
	out := b
	out.Fare = copyFloat(b.Fare)
	out.PromoDiscount = copyFloat(b.PromoDiscount)
	out.TokenAmount = copyFloat(b.TokenAmount)
	out.BalanceAmount = copyFloat(b.BalanceAmount)
	if b.PaymentDetails != nil {
		pd := *b.PaymentDetails
		pd.Amount = copyFloat(b.PaymentDetails.Amount)
		out.PaymentDetails = &pd
	}
	return out
}

func copyFloat(v *float64) *float64 {
	if v == nil {
		return nil
	}
	return domain.Float(*v)
}
