package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"cabadmin/internal/domain"
	"cabadmin/internal/gateway"
	"cabadmin/internal/redis"
	"cabadmin/internal/workflow"
)

const (
	searchLockTTL = 30 * time.Second
	saveLockTTL   = 30 * time.Second
)

// ModificationService drives the booking modification workflow.
// Modifications live in Redis and are only visible to the session that opened them.
type ModificationService struct {
	upstream UpstreamFor
	store    redis.ModificationStoreInterface
	locks    redis.LockStoreInterface
	activity *ActivityService
	now      func() time.Time
}

// NewModificationService creates a new ModificationService.
func NewModificationService(
	upstream UpstreamFor,
	store redis.ModificationStoreInterface,
	locks redis.LockStoreInterface,
	activity *ActivityService,
) *ModificationService {
	return &ModificationService{
		upstream: upstream,
		store:    store,
		locks:    locks,
		activity: activity,
		now:      time.Now,
	}
}

// PickerView is the cab picker as shown to the user.
type PickerView struct {
	Candidates  []domain.CabCandidate `json:"candidates"`
	PinnedID    string                `json:"pinnedId,omitempty"`
	CanLoadMore bool                  `json:"canLoadMore"`
	Loading     bool                  `json:"loading"`
}

// ModificationView is a modification with the actions and picker derived from its state.
type ModificationView struct {
	*domain.Modification
	Actions []workflow.Action `json:"actions"`
	Picker  *PickerView       `json:"picker,omitempty"`
	// RefreshList is set once the change was saved and the booking list is stale.
	RefreshList bool `json:"refreshList"`
}

func newView(m *domain.Modification) *ModificationView {
	v := &ModificationView{Modification: m, Actions: workflow.AvailableActions(m)}
	if m.State == domain.ModificationCabSelection || m.State == domain.ModificationSearchingCabs {
		p := workflow.PickerOf(m)
		v.Picker = &PickerView{
			Candidates:  p.Visible(),
			CanLoadMore: p.CanLoadMore(),
			Loading:     p.Loading,
		}
		if p.Pinned != nil {
			v.Picker.PinnedID = p.Pinned.CabRegistrationID
		}
	}
	if v.Actions == nil {
		v.Actions = []workflow.Action{}
	}
	return v
}

// Open starts modifying a booking.
func (s *ModificationService) Open(ctx context.Context, session *domain.Session, bookingID string) (*ModificationView, error) {
	if bookingID == "" {
		return nil, ErrInvalidID
	}
	booking, err := findBooking(ctx, s.upstream(session.AuthToken), bookingID)
	if err != nil {
		return nil, err
	}

	m, err := workflow.New(uuid.New().String(), session.ID, *booking, s.now())
	if err != nil {
		return nil, err
	}
	if err := s.store.SetModification(ctx, m); err != nil {
		return nil, err
	}
	return newView(m), nil
}

// Get returns a modification owned by the session.
func (s *ModificationService) Get(ctx context.Context, session *domain.Session, id string) (*ModificationView, error) {
	m, err := s.load(ctx, session, id)
	if err != nil {
		return nil, err
	}
	return newView(m), nil
}

// Edit applies draft changes.
func (s *ModificationService) Edit(ctx context.Context, session *domain.Session, id string, changes workflow.DraftChanges) (*ModificationView, error) {
	if changes.BookingStatus != nil && !changes.BookingStatus.Valid() {
		verr := &ValidationError{}
		verr.Add("bookingStatus", "must be one of Pending, Completed, Canceled")
		return nil, verr
	}
	return s.update(ctx, session, id, func(m *domain.Modification) error {
		return workflow.ApplyEdit(m, changes)
	})
}

// CalculateFare searches for cabs that can serve the draft's route and time.
// Only one search runs per modification; a result that arrives after the modification
// was closed or restarted is discarded.
func (s *ModificationService) CalculateFare(ctx context.Context, session *domain.Session, id string) (*ModificationView, error) {
	if _, err := s.load(ctx, session, id); err != nil {
		return nil, err
	}

	lockKey := "modification:" + id + ":search"
	locked, err := s.locks.AcquireLock(ctx, lockKey, searchLockTTL)
	if err != nil {
		return nil, err
	}
	if !locked {
		return nil, ErrInFlight
	}
	defer func() { _ = s.locks.ReleaseLock(context.WithoutCancel(ctx), lockKey) }()

	// Reload under the lock.
	m, err := s.load(ctx, session, id)
	if err != nil {
		return nil, err
	}
	// Holding the lock means no search is running, so a stored search state
	// was left behind by an expired lock.
	if m.State == domain.ModificationSearchingCabs {
		logrus.WithField("modification_id", id).Warn("restarting abandoned cab search")
		if err := workflow.FailSearch(m, workflow.EventSearchFailed, ""); err != nil {
			return nil, err
		}
	}
	if err := workflow.StartSearch(m); err != nil {
		return nil, err
	}
	if err := s.save(ctx, m); err != nil {
		return nil, err
	}
	revision := m.Revision

	candidates, _, searchErr := s.upstream(session.AuthToken).SearchCabs(ctx, workflow.SearchRequest(m))

	m, err = s.current(context.WithoutCancel(ctx), session, id, revision, domain.ModificationSearchingCabs)
	if err != nil {
		return nil, err
	}

	switch event, message := classifySearch(searchErr); event {
	case workflow.EventFound:
		err = workflow.CompleteSearch(m, candidates, "")
	default:
		if event == workflow.EventSearchFailed {
			logrus.WithError(searchErr).WithField("modification_id", id).Warn("cab search failed")
		}
		err = workflow.FailSearch(m, event, message)
	}
	if err != nil {
		return nil, err
	}
	if err := s.save(context.WithoutCancel(ctx), m); err != nil {
		return nil, err
	}
	return newView(m), nil
}

// classifySearch maps a search error to the workflow event and the message to show.
// A refusal inside a successful response or an unreadable payload means no cabs;
// anything else is a failed search.
func classifySearch(err error) (workflow.Event, string) {
	if err == nil {
		return workflow.EventFound, ""
	}
	var apiErr *gateway.APIError
	if errors.As(err, &apiErr) && !apiErr.HTTPFailure() {
		if apiErr.Message != "" {
			return workflow.EventNotFound, apiErr.Message
		}
		return workflow.EventNotFound, domain.NoCabsMessage
	}
	if errors.Is(err, gateway.ErrInvalidPayload) || errors.Is(err, gateway.ErrEmptyData) {
		return workflow.EventNotFound, domain.NoCabsMessage
	}
	return workflow.EventSearchFailed, domain.GenericErrorMessage
}

// LoadMore reveals the cabs hidden behind the pinned one.
func (s *ModificationService) LoadMore(ctx context.Context, session *domain.Session, id string) (*ModificationView, error) {
	return s.update(ctx, session, id, workflow.ExpandPicker)
}

// SelectCab adopts a cab from the search results.
func (s *ModificationService) SelectCab(ctx context.Context, session *domain.Session, id, cabRegistrationID string) (*ModificationView, error) {
	if cabRegistrationID == "" {
		verr := &ValidationError{}
		verr.Add("cabRegistrationId", "is required")
		return nil, verr
	}
	return s.update(ctx, session, id, func(m *domain.Modification) error {
		return workflow.Pick(m, cabRegistrationID)
	})
}

// Save sends the modified booking to the booking service. On success the modification
// is closed and removed; on failure it stays open with the error attached.
func (s *ModificationService) Save(ctx context.Context, session *domain.Session, id string) (*ModificationView, error) {
	lockKey := "modification:" + id + ":save"
	locked, err := s.locks.AcquireLock(ctx, lockKey, saveLockTTL)
	if err != nil {
		return nil, err
	}
	if !locked {
		return nil, ErrInFlight
	}
	defer func() { _ = s.locks.ReleaseLock(context.WithoutCancel(ctx), lockKey) }()

	m, err := s.load(ctx, session, id)
	if err != nil {
		return nil, err
	}
	if err := workflow.StartSave(m); err != nil {
		return nil, err
	}
	if err := s.save(ctx, m); err != nil {
		return nil, err
	}
	revision := m.Revision
	payload := workflow.SavePayload(m)

	saveErr := s.upstream(session.AuthToken).UpdateBooking(ctx, payload.BookingID, payload)

	m, err = s.current(context.WithoutCancel(ctx), session, id, revision, domain.ModificationSaving)
	if err != nil {
		return nil, err
	}

	if saveErr != nil {
		logrus.WithError(saveErr).WithField("modification_id", id).Warn("booking update failed")
		if err := workflow.FailSave(m, UserMessage(saveErr)); err != nil {
			return nil, err
		}
		if err := s.save(context.WithoutCancel(ctx), m); err != nil {
			return nil, err
		}
		return newView(m), nil
	}

	if err := workflow.CompleteSave(m); err != nil {
		return nil, err
	}
	if err := s.store.DeleteModification(context.WithoutCancel(ctx), id); err != nil {
		logrus.WithError(err).WithField("modification_id", id).Warn("failed to remove saved modification")
	}
	s.activity.Record(ctx, session, Change{
		Event:    EventBookingModified,
		Entity:   "booking",
		EntityID: payload.BookingID,
		Detail:   payload.CabRegistrationID,
		Data: map[string]any{
			"cabRegistrationId": payload.CabRegistrationID,
			"fare":              payload.Fare,
			"balanceAmount":     payload.BalanceAmount,
		},
	})

	view := newView(m)
	view.RefreshList = true
	return view, nil
}

// Cancel closes a modification from any state. Requests still running for it are left
// to finish; their results are discarded.
func (s *ModificationService) Cancel(ctx context.Context, session *domain.Session, id string) (*ModificationView, error) {
	m, err := s.load(ctx, session, id)
	if err != nil {
		return nil, err
	}
	workflow.Close(m)
	if err := s.store.DeleteModification(ctx, id); err != nil {
		return nil, err
	}
	return newView(m), nil
}

func (s *ModificationService) update(ctx context.Context, session *domain.Session, id string, apply func(*domain.Modification) error) (*ModificationView, error) {
	m, err := s.load(ctx, session, id)
	if err != nil {
		return nil, err
	}
	if err := apply(m); err != nil {
		return nil, err
	}
	if err := s.save(ctx, m); err != nil {
		return nil, err
	}
	return newView(m), nil
}

func (s *ModificationService) load(ctx context.Context, session *domain.Session, id string) (*domain.Modification, error) {
	if id == "" {
		return nil, ErrInvalidID
	}
	m, err := s.store.GetModification(ctx, id)
	if err != nil {
		return nil, err
	}
	if m == nil || m.SessionID != session.ID {
		return nil, ErrModificationNotFound
	}
	return m, nil
}

// current reloads a modification after a remote call and checks that it is still
// the one the call was made for.
func (s *ModificationService) current(ctx context.Context, session *domain.Session, id string, revision int, state domain.ModificationState) (*domain.Modification, error) {
	m, err := s.load(ctx, session, id)
	if errors.Is(err, ErrModificationNotFound) {
		logrus.WithField("modification_id", id).Info("discarding result for closed modification")
		return nil, ErrModificationClosed
	}
	if err != nil {
		return nil, err
	}
	if m.Revision != revision || m.State != state {
		logrus.WithField("modification_id", id).Info("discarding stale result")
		return nil, ErrModificationClosed
	}
	return m, nil
}

func (s *ModificationService) save(ctx context.Context, m *domain.Modification) error {
	m.UpdatedAt = s.now()
	return s.store.SetModification(ctx, m)
}
