// Package workflow implements the booking modification flow: edit a booking's route and
// times, search for cabs, pick one, recompute the fare and persist the change.
package workflow

import (
	"errors"
	"fmt"

	"cabadmin/internal/domain"
)

// Event triggers a transition.
type Event string

const (
	EventOpen         Event = "open"
	EventEdit         Event = "edit"
	EventRouteChanged Event = "routeChanged"
	EventCalculate    Event = "calculate"
	EventFound        Event = "found"
	EventNotFound     Event = "notFound"
	EventSearchFailed Event = "searchFailed"
	EventPick         Event = "pick"
	EventLoadMore     Event = "loadMore"
	EventSave         Event = "save"
	EventSaved        Event = "saved"
	EventSaveFailed   Event = "saveFailed"
	EventCancel       Event = "cancel"
)

// ErrInvalidTransition is returned when an event is not allowed in the current state.
var ErrInvalidTransition = errors.New("action not allowed in current state")

var transitions = map[domain.ModificationState]map[Event]domain.ModificationState{
	domain.ModificationClosed: {
		EventOpen: domain.ModificationEditing,
	},
	domain.ModificationEditing: {
		EventEdit:         domain.ModificationEditing,
		EventRouteChanged: domain.ModificationEditing,
		EventCalculate:    domain.ModificationSearchingCabs,
	},
	domain.ModificationSearchingCabs: {
		EventFound:        domain.ModificationCabSelection,
		EventNotFound:     domain.ModificationEditing,
		EventSearchFailed: domain.ModificationEditing,
	},
	domain.ModificationCabSelection: {
		EventPick:      domain.ModificationFareCalculated,
		EventLoadMore:  domain.ModificationCabSelection,
		EventCalculate: domain.ModificationSearchingCabs,
	},
	domain.ModificationFareCalculated: {
		EventEdit:         domain.ModificationFareCalculated,
		EventRouteChanged: domain.ModificationEditing,
		EventCalculate:    domain.ModificationSearchingCabs,
		EventSave:         domain.ModificationSaving,
	},
	domain.ModificationSaving: {
		EventSaved:      domain.ModificationClosed,
		EventSaveFailed: domain.ModificationFareCalculated,
	},
}

// Next returns the state reached from s on e. Cancel closes from any state.
func Next(s domain.ModificationState, e Event) (domain.ModificationState, error) {
	if e == EventCancel {
		return domain.ModificationClosed, nil
	}
	if to, ok := transitions[s][e]; ok {
		return to, nil
	}
	return s, fmt.Errorf("%w: %s on %s", ErrInvalidTransition, e, s)
}
