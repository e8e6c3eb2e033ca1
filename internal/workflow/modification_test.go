package workflow

import (
	"errors"
	"testing"
	"time"

	"cabadmin/internal/domain"
)

func testBooking() domain.Booking {
	return domain.Booking{
		BookingID:         "bk-1",
		UserID:            "user-1",
		CabRegistrationID: "cab-1",
		PickupLocation:    "Airport",
		DropLocation:      "Station",
		PickupDateTime:    "2024-05-01T10:30",
		DropDateTime:      "2024-05-01T11:30:00.000",
		Fare:              domain.Float(500),
		PromoDiscount:     domain.Float(50),
		TokenAmount:       nil,
		BookingStatus:     domain.BookingStatusPending,
		PaymentDetails: &domain.PaymentDetails{
			PaymentMethod: "UPI",
			TransactionID: "tx-1",
			PaymentStatus: "Paid",
		},
	}
}

func openModification(t *testing.T) *domain.Modification {
	t.Helper()
	m, err := New("mod-1", "sess-1", testBooking(), time.Now())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return m
}

func hasAction(actions []Action, a Action) bool {
	for _, x := range actions {
		if x == a {
			return true
		}
	}
	return false
}

func TestNew_CopiesBookingAndComputesBalance(t *testing.T) {
	t.Parallel()

	m := openModification(t)
	if m.State != domain.ModificationEditing {
		t.Fatalf("expected EDITING, got %s", m.State)
	}
	if m.FareCalculated {
		t.Error("fare should not be calculated on open")
	}
	if m.Draft.BalanceAmount == nil || *m.Draft.BalanceAmount != 450 {
		t.Errorf("expected balance 450, got %v", m.Draft.BalanceAmount)
	}

	*m.Draft.Fare = 1
	if *m.Original.Fare != 500 {
		t.Error("draft and original must not share fare storage")
	}
}

func TestModification_HappyPath(t *testing.T) {
	t.Parallel()

	m := openModification(t)
	if !hasAction(AvailableActions(m), ActionCalculateFare) || hasAction(AvailableActions(m), ActionSaveChanges) {
		t.Fatalf("editing should offer calculate only, got %v", AvailableActions(m))
	}

	if err := StartSearch(m); err != nil {
		t.Fatalf("start search: %v", err)
	}
	if m.Revision != 1 || !PickerOf(m).Loading {
		t.Errorf("expected revision 1 and loading picker, got %d %v", m.Revision, PickerOf(m).Loading)
	}

	req := SearchRequest(m)
	if req.Radius != 15 || req.PickupDateTime != "2024-05-01T10:30:00" || req.DropDateTime != "2024-05-01T11:30:00" {
		t.Errorf("unexpected search request: %+v", req)
	}

	err := CompleteSearch(m, []*domain.CabCandidate{
		{CabRegistrationID: "cab-1", Fare: 520},
		nil,
		{CabRegistrationID: "cab-2", Fare: 610},
	}, "success")
	if err != nil {
		t.Fatalf("complete search: %v", err)
	}
	if m.State != domain.ModificationCabSelection {
		t.Fatalf("expected CAB_SELECTION, got %s", m.State)
	}
	if !hasAction(AvailableActions(m), ActionLoadMore) {
		t.Error("expected load more with a pinned cab and hidden candidates")
	}

	if err := ExpandPicker(m); err != nil {
		t.Fatalf("expand: %v", err)
	}
	if len(PickerOf(m).Visible()) != 2 {
		t.Errorf("expected both candidates visible, got %d", len(PickerOf(m).Visible()))
	}

	if err := Pick(m, "cab-2"); err != nil {
		t.Fatalf("pick: %v", err)
	}
	if m.State != domain.ModificationFareCalculated || !m.FareCalculated {
		t.Fatalf("expected FARE_CALCULATED with fare calculated, got %s %v", m.State, m.FareCalculated)
	}
	if *m.Draft.Fare != 610 || *m.Draft.BalanceAmount != 560 {
		t.Errorf("expected fare 610 balance 560, got %v %v", *m.Draft.Fare, *m.Draft.BalanceAmount)
	}
	actions := AvailableActions(m)
	if !hasAction(actions, ActionSaveChanges) || hasAction(actions, ActionCalculateFare) {
		t.Errorf("fare calculated should offer save only, got %v", actions)
	}

	if err := StartSave(m); err != nil {
		t.Fatalf("start save: %v", err)
	}
	payload := SavePayload(m)
	if payload.BookingID != "bk-1" || payload.UserID != "user-1" || payload.CabRegistrationID != "cab-2" {
		t.Errorf("unexpected identity fields: %+v", payload)
	}
	if payload.PickupDateTime != "2024-05-01T10:30:00" || payload.DropDateTime != "2024-05-01T11:30:00" {
		t.Errorf("expected normalized times, got %s %s", payload.PickupDateTime, payload.DropDateTime)
	}
	if *payload.BalanceAmount != 560 {
		t.Errorf("expected balance 560, got %v", *payload.BalanceAmount)
	}

	if err := CompleteSave(m); err != nil {
		t.Fatalf("complete save: %v", err)
	}
	if m.State != domain.ModificationClosed {
		t.Errorf("expected CLOSED, got %s", m.State)
	}
}

func TestCompleteSearch_EmptyResultKeepsEditing(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		candidates []*domain.CabCandidate
		message    string
		want       string
	}{
		{"empty list with server message", []*domain.CabCandidate{}, "No cabs in radius", "No cabs in radius"},
		{"only null entries", []*domain.CabCandidate{nil, nil}, "", domain.NoCabsMessage},
		{"nil list", nil, "", domain.NoCabsMessage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := openModification(t)
			if err := StartSearch(m); err != nil {
				t.Fatalf("start search: %v", err)
			}
			if err := CompleteSearch(m, tt.candidates, tt.message); err != nil {
				t.Fatalf("complete search: %v", err)
			}
			if m.State != domain.ModificationEditing {
				t.Errorf("expected EDITING, got %s", m.State)
			}
			if m.FareCalculated {
				t.Error("fare must stay uncalculated")
			}
			if m.Error != tt.want {
				t.Errorf("expected error %q, got %q", tt.want, m.Error)
			}
			if hasAction(AvailableActions(m), ActionSaveChanges) {
				t.Error("save must stay unavailable")
			}
			if PickerOf(m).Len() != 0 {
				t.Error("picker must stay empty")
			}
		})
	}
}

func TestStartSearch_EmptyResearchDiscardsPickedFare(t *testing.T) {
	t.Parallel()

	m := openModification(t)
	_ = StartSearch(m)
	_ = CompleteSearch(m, []*domain.CabCandidate{{CabRegistrationID: "cab-9", Fare: 700}}, "")
	if err := Pick(m, "cab-9"); err != nil {
		t.Fatalf("pick: %v", err)
	}

	if err := StartSearch(m); err != nil {
		t.Fatalf("search again: %v", err)
	}
	if m.FareCalculated {
		t.Error("a new search must discard the calculated fare")
	}
	if err := CompleteSearch(m, nil, ""); err != nil {
		t.Fatalf("complete search: %v", err)
	}

	if m.State != domain.ModificationEditing || m.FareCalculated {
		t.Fatalf("expected EDITING with fare uncalculated, got %s %v", m.State, m.FareCalculated)
	}
	if m.Draft.CabRegistrationID != "cab-1" {
		t.Errorf("expected original cab restored, got %s", m.Draft.CabRegistrationID)
	}
	if *m.Draft.Fare != 500 || *m.Draft.BalanceAmount != 450 {
		t.Errorf("expected fare 500 balance 450, got %v %v", *m.Draft.Fare, *m.Draft.BalanceAmount)
	}
	actions := AvailableActions(m)
	if !hasAction(actions, ActionCalculateFare) || hasAction(actions, ActionSaveChanges) {
		t.Errorf("expected calculate only, got %v", actions)
	}
}

func TestApplyEdit_RouteChangeDiscardsFare(t *testing.T) {
	t.Parallel()

	m := openModification(t)
	_ = StartSearch(m)
	_ = CompleteSearch(m, []*domain.CabCandidate{{CabRegistrationID: "cab-9", Fare: 900}}, "")
	if err := Pick(m, "cab-9"); err != nil {
		t.Fatalf("pick: %v", err)
	}

	status := domain.BookingStatusCompleted
	if err := ApplyEdit(m, DraftChanges{BookingStatus: &status}); err != nil {
		t.Fatalf("status edit: %v", err)
	}
	if m.State != domain.ModificationFareCalculated || !m.FareCalculated {
		t.Fatalf("status edit should keep the calculated fare, got %s", m.State)
	}

	drop := "Harbour"
	if err := ApplyEdit(m, DraftChanges{DropLocation: &drop}); err != nil {
		t.Fatalf("route edit: %v", err)
	}
	if m.State != domain.ModificationEditing || m.FareCalculated {
		t.Errorf("route edit should return to EDITING, got %s %v", m.State, m.FareCalculated)
	}
	if m.Draft.CabRegistrationID != "cab-1" || *m.Draft.Fare != 500 {
		t.Errorf("expected original cab and fare restored, got %s %v", m.Draft.CabRegistrationID, *m.Draft.Fare)
	}
	if m.Draft.DropLocation != "Harbour" {
		t.Errorf("expected drop location updated, got %s", m.Draft.DropLocation)
	}
}

func TestApplyEdit_RejectedWhileSearching(t *testing.T) {
	t.Parallel()

	m := openModification(t)
	_ = StartSearch(m)
	drop := "Harbour"
	if err := ApplyEdit(m, DraftChanges{DropLocation: &drop}); !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("expected ErrInvalidTransition, got %v", err)
	}
}

func TestPick_UnknownCab(t *testing.T) {
	t.Parallel()

	m := openModification(t)
	_ = StartSearch(m)
	_ = CompleteSearch(m, []*domain.CabCandidate{{CabRegistrationID: "cab-2", Fare: 1}}, "")
	if err := Pick(m, "nope"); !errors.Is(err, ErrCabNotFound) {
		t.Errorf("expected ErrCabNotFound, got %v", err)
	}
	if m.State != domain.ModificationCabSelection {
		t.Errorf("state should be unchanged, got %s", m.State)
	}
}

func TestFailSave_ReturnsToFareCalculated(t *testing.T) {
	t.Parallel()

	m := openModification(t)
	_ = StartSearch(m)
	_ = CompleteSearch(m, []*domain.CabCandidate{{CabRegistrationID: "cab-2", Fare: 1}}, "")
	_ = Pick(m, "cab-2")
	_ = StartSave(m)

	if err := FailSave(m, "Booking locked"); err != nil {
		t.Fatalf("fail save: %v", err)
	}
	if m.State != domain.ModificationFareCalculated || m.Error != "Booking locked" {
		t.Errorf("expected FARE_CALCULATED with error, got %s %q", m.State, m.Error)
	}
}

func TestSavePayload_PaymentFallback(t *testing.T) {
	t.Parallel()

	m := openModification(t)
	m.Draft.PaymentDetails = &domain.PaymentDetails{PaymentStatus: "Refunded"}

	got := SavePayload(m).PaymentDetails
	if got == nil {
		t.Fatal("expected payment details")
	}
	if got.PaymentStatus != "Refunded" || got.PaymentMethod != "UPI" || got.TransactionID != "tx-1" {
		t.Errorf("unexpected payment details: %+v", got)
	}

	m.Draft.PaymentDetails = nil
	m.Original.PaymentDetails = nil
	if SavePayload(m).PaymentDetails != nil {
		t.Error("expected no payment details when neither side has any")
	}
}

func TestClose_FromAnyState(t *testing.T) {
	t.Parallel()

	m := openModification(t)
	_ = StartSearch(m)
	Close(m)
	if m.State != domain.ModificationClosed {
		t.Errorf("expected CLOSED, got %s", m.State)
	}
	if AvailableActions(m) != nil {
		t.Error("closed modification offers no actions")
	}
}
