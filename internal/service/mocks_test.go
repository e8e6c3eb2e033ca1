package service

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"cabadmin/internal/domain"
	"cabadmin/internal/gateway"
)

// ──────────────────────────────────────────────
// MOCK UPSTREAM
// ──────────────────────────────────────────────

// MockUpstream is an in-memory stand-in for the remote services.
type MockUpstream struct {
	mu sync.RWMutex

	users    []domain.User
	cabs     []domain.CabRegistration
	bookings []domain.Booking
	offers   []domain.Offer

	LoginUser       *domain.User
	SearchResult    []*domain.CabCandidate
	SearchMessage   string
	UploadedURL     string
	UpdatedBookings []domain.Booking
	StatusUpdates   []domain.BookingStatusUpdate
	DeletedUsers    []string
	UploadedImages  []string
	Tokens          []string

	// Hooks run before the call returns.
	BeforeSearch func()
	BeforeUpdate func()

	// Counters for verification
	SearchCallCount int32
	DeleteCallCount int32

	// Error injection
	LoginError        error
	ListError         error
	SearchError       error
	UpdateError       error
	DeleteError       error
	RegisterUserError error
}

// NewMockUpstream creates a new mock upstream.
func NewMockUpstream() *MockUpstream {
	return &MockUpstream{}
}

// For returns an UpstreamFor that records the token and answers from m.
func (m *MockUpstream) For() UpstreamFor {
	return func(token string) Upstream {
		m.mu.Lock()
		m.Tokens = append(m.Tokens, token)
		m.mu.Unlock()
		return m
	}
}

func (m *MockUpstream) AddUser(u domain.User) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.users = append(m.users, u)
}

func (m *MockUpstream) AddCab(c domain.CabRegistration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.cabs = append(m.cabs, c)
}

func (m *MockUpstream) AddBooking(b domain.Booking) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.bookings = append(m.bookings, b)
}

func (m *MockUpstream) AddOffer(o domain.Offer) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.offers = append(m.offers, o)
}

func (m *MockUpstream) Login(ctx context.Context, username, password string) (*domain.User, error) {
	if m.LoginError != nil {
		return nil, m.LoginError
	}
	return m.LoginUser, nil
}

func (m *MockUpstream) ForgotPassword(ctx context.Context, email string) error { return nil }

func (m *MockUpstream) ResetPassword(ctx context.Context, username, otp, newPassword string) error {
	return nil
}

func (m *MockUpstream) ListUsers(ctx context.Context) ([]domain.User, error) {
	if m.ListError != nil {
		return nil, m.ListError
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]domain.User(nil), m.users...), nil
}

func (m *MockUpstream) GetUser(ctx context.Context, id string) (*domain.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, u := range m.users {
		if u.ID == id {
			u := u
			return &u, nil
		}
	}
	return nil, gateway.ErrEmptyData
}

func (m *MockUpstream) RegisterUser(ctx context.Context, req gateway.RegisterUserRequest) (*domain.User, error) {
	if m.RegisterUserError != nil {
		return nil, m.RegisterUserError
	}
	u := domain.User{ID: "new-user", Name: req.Name, Email: req.Email, Phone: req.Phone, Role: req.Role}
	m.AddUser(u)
	return &u, nil
}

func (m *MockUpstream) UpdateUser(ctx context.Context, req gateway.UpdateUserRequest) (*domain.User, error) {
	if m.UpdateError != nil {
		return nil, m.UpdateError
	}
	return &domain.User{ID: req.ID, Name: req.Name, Email: req.Email, Phone: req.Phone, ImageURL: req.ImageURL}, nil
}

func (m *MockUpstream) UpdatePassword(ctx context.Context, userID, oldPassword, newPassword string) error {
	return m.UpdateError
}

func (m *MockUpstream) DeleteUser(ctx context.Context, id string) error {
	atomic.AddInt32(&m.DeleteCallCount, 1)
	if m.DeleteError != nil {
		return m.DeleteError
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.DeletedUsers = append(m.DeletedUsers, id)
	kept := m.users[:0]
	for _, u := range m.users {
		if u.ID != id {
			kept = append(kept, u)
		}
	}
	m.users = kept
	return nil
}

func (m *MockUpstream) ListCabs(ctx context.Context) ([]domain.CabRegistration, error) {
	if m.ListError != nil {
		return nil, m.ListError
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]domain.CabRegistration(nil), m.cabs...), nil
}

func (m *MockUpstream) GetCab(ctx context.Context, id string) (*domain.CabRegistration, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, c := range m.cabs {
		if c.RegistrationID == id {
			c := c
			return &c, nil
		}
	}
	return nil, gateway.ErrEmptyData
}

func (m *MockUpstream) RegisterCab(ctx context.Context, reg domain.CabRegistration) (*domain.CabRegistration, error) {
	if m.UpdateError != nil {
		return nil, m.UpdateError
	}
	reg.RegistrationID = "reg-new"
	m.AddCab(reg)
	return &reg, nil
}

func (m *MockUpstream) UpdateCab(ctx context.Context, id string, reg domain.CabRegistration) (*domain.CabRegistration, error) {
	if m.UpdateError != nil {
		return nil, m.UpdateError
	}
	return &reg, nil
}

func (m *MockUpstream) DeleteCab(ctx context.Context, id string) error {
	atomic.AddInt32(&m.DeleteCallCount, 1)
	return m.DeleteError
}

func (m *MockUpstream) SearchCabs(ctx context.Context, search domain.CabSearch) ([]*domain.CabCandidate, string, error) {
	atomic.AddInt32(&m.SearchCallCount, 1)
	if m.BeforeSearch != nil {
		m.BeforeSearch()
	}
	if m.SearchError != nil {
		return nil, m.SearchMessage, m.SearchError
	}
	return m.SearchResult, m.SearchMessage, nil
}

func (m *MockUpstream) ListBookings(ctx context.Context) ([]domain.Booking, error) {
	if m.ListError != nil {
		return nil, m.ListError
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]domain.Booking(nil), m.bookings...), nil
}

func (m *MockUpstream) UpdateBooking(ctx context.Context, id string, booking domain.Booking) error {
	if m.BeforeUpdate != nil {
		m.BeforeUpdate()
	}
	if m.UpdateError != nil {
		return m.UpdateError
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.UpdatedBookings = append(m.UpdatedBookings, booking)
	return nil
}

func (m *MockUpstream) UpdateBookingStatus(ctx context.Context, update domain.BookingStatusUpdate) error {
	if m.UpdateError != nil {
		return m.UpdateError
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.StatusUpdates = append(m.StatusUpdates, update)
	return nil
}

func (m *MockUpstream) ListOffers(ctx context.Context) ([]domain.Offer, error) {
	if m.ListError != nil {
		return nil, m.ListError
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]domain.Offer(nil), m.offers...), nil
}

func (m *MockUpstream) GetOffer(ctx context.Context, id string) (*domain.Offer, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, o := range m.offers {
		if o.ID == id {
			o := o
			return &o, nil
		}
	}
	return nil, gateway.ErrEmptyData
}

func (m *MockUpstream) CreateOffer(ctx context.Context, offer domain.Offer) (*domain.Offer, error) {
	if m.UpdateError != nil {
		return nil, m.UpdateError
	}
	offer.ID = "offer-new"
	m.AddOffer(offer)
	return &offer, nil
}

func (m *MockUpstream) UpdateOffer(ctx context.Context, id string, offer domain.Offer) (*domain.Offer, error) {
	if m.UpdateError != nil {
		return nil, m.UpdateError
	}
	return &offer, nil
}

func (m *MockUpstream) DeleteOffer(ctx context.Context, id string) error {
	atomic.AddInt32(&m.DeleteCallCount, 1)
	return m.DeleteError
}

func (m *MockUpstream) UploadImage(ctx context.Context, userID, base64Image string) (string, error) {
	if m.UpdateError != nil {
		return "", m.UpdateError
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.UploadedImages = append(m.UploadedImages, base64Image)
	return m.UploadedURL, nil
}

// ──────────────────────────────────────────────
// MOCK SESSION STORE
// ──────────────────────────────────────────────

// MockSessionStore is a mock implementation of redis.SessionStoreInterface.
type MockSessionStore struct {
	mu       sync.RWMutex
	sessions map[string]*domain.Session

	CreateError error
}

// NewMockSessionStore creates a new mock session store.
func NewMockSessionStore() *MockSessionStore {
	return &MockSessionStore{sessions: make(map[string]*domain.Session)}
}

func (m *MockSessionStore) Create(ctx context.Context, session *domain.Session) error {
	if m.CreateError != nil {
		return m.CreateError
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *session
	m.sessions[session.ID] = &cp
	return nil
}

func (m *MockSessionStore) Get(ctx context.Context, id string) (*domain.Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.sessions[id]
	if !ok {
		return nil, nil
	}
	cp := *s
	return &cp, nil
}

func (m *MockSessionStore) UpdateProfile(ctx context.Context, id string, user *domain.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.sessions[id]
	if !ok {
		return nil
	}
	s.Name, s.Email, s.Phone, s.ImageURL = user.Name, user.Email, user.Phone, user.ImageURL
	return nil
}

func (m *MockSessionStore) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, id)
	return nil
}

// Count returns the number of stored sessions.
func (m *MockSessionStore) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}

// ──────────────────────────────────────────────
// MOCK MODIFICATION STORE
// ──────────────────────────────────────────────

// MockModificationStore is a mock implementation of redis.ModificationStoreInterface.
// Modifications are stored by value.
type MockModificationStore struct {
	mu            sync.RWMutex
	modifications map[string]domain.Modification
}

// NewMockModificationStore creates a new mock modification store.
func NewMockModificationStore() *MockModificationStore {
	return &MockModificationStore{modifications: make(map[string]domain.Modification)}
}

func (m *MockModificationStore) GetModification(ctx context.Context, id string) (*domain.Modification, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	mod, ok := m.modifications[id]
	if !ok {
		return nil, nil
	}
	return &mod, nil
}

func (m *MockModificationStore) SetModification(ctx context.Context, mod *domain.Modification) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.modifications[mod.ID] = *mod
	return nil
}

func (m *MockModificationStore) DeleteModification(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.modifications, id)
	return nil
}

// Has reports whether a modification is stored.
func (m *MockModificationStore) Has(id string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.modifications[id]
	return ok
}

// ──────────────────────────────────────────────
// MOCK LOCK STORE
// ──────────────────────────────────────────────

// MockLockStore is a mock implementation of redis.LockStoreInterface.
type MockLockStore struct {
	mu    sync.Mutex
	locks map[string]bool
}

// NewMockLockStore creates a new mock lock store.
func NewMockLockStore() *MockLockStore {
	return &MockLockStore{locks: make(map[string]bool)}
}

func (m *MockLockStore) AcquireLock(ctx context.Context, key string, ttl time.Duration) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.locks[key] {
		return false, nil
	}
	m.locks[key] = true
	return true, nil
}

func (m *MockLockStore) ReleaseLock(ctx context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.locks, key)
	return nil
}

// Held reports whether key is locked.
func (m *MockLockStore) Held(key string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.locks[key]
}

// ──────────────────────────────────────────────
// MOCK ACTIVITY REPOSITORY / PUBLISHER / CACHE
// ──────────────────────────────────────────────

// MockActivityRepository is a mock implementation of repository.ActivityRepository.
type MockActivityRepository struct {
	mu         sync.RWMutex
	activities []*domain.Activity

	RecordError error
}

// NewMockActivityRepository creates a new mock activity repository.
func NewMockActivityRepository() *MockActivityRepository {
	return &MockActivityRepository{}
}

func (m *MockActivityRepository) Record(ctx context.Context, a *domain.Activity) error {
	if m.RecordError != nil {
		return m.RecordError
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.activities = append(m.activities, a)
	return nil
}

func (m *MockActivityRepository) ListRecent(ctx context.Context, limit int) ([]*domain.Activity, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []*domain.Activity
	for i := len(m.activities) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, m.activities[i])
	}
	return out, nil
}

func (m *MockActivityRepository) ListByEntity(ctx context.Context, entity, entityID string) ([]*domain.Activity, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []*domain.Activity
	for i := len(m.activities) - 1; i >= 0; i-- {
		if a := m.activities[i]; a.Entity == entity && a.EntityID == entityID {
			out = append(out, a)
		}
	}
	return out, nil
}

// Actions returns the recorded actions in order.
func (m *MockActivityRepository) Actions() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]string, len(m.activities))
	for i, a := range m.activities {
		out[i] = a.Action
	}
	return out
}

// MockPublisher records published events.
type MockPublisher struct {
	mu   sync.Mutex
	Keys []string

	PublishError error
}

func (m *MockPublisher) PublishJSON(ctx context.Context, key string, v any) error {
	if m.PublishError != nil {
		return m.PublishError
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Keys = append(m.Keys, key)
	return nil
}

// MockSummaryCache is a mock implementation of redis.SummaryCacheInterface.
type MockSummaryCache struct {
	mu        sync.Mutex
	summaries map[string]*domain.DashboardSummary

	InvalidateCallCount int32
}

// NewMockSummaryCache creates a new mock summary cache.
func NewMockSummaryCache() *MockSummaryCache {
	return &MockSummaryCache{summaries: make(map[string]*domain.DashboardSummary)}
}

func (m *MockSummaryCache) GetSummary(ctx context.Context, sessionID string) (*domain.DashboardSummary, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.summaries[sessionID], nil
}

func (m *MockSummaryCache) SetSummary(ctx context.Context, sessionID string, summary *domain.DashboardSummary) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.summaries[sessionID] = summary
	return nil
}

func (m *MockSummaryCache) InvalidateSummary(ctx context.Context, sessionID string) error {
	atomic.AddInt32(&m.InvalidateCallCount, 1)
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.summaries, sessionID)
	return nil
}

// ──────────────────────────────────────────────
// FIXTURES
// ──────────────────────────────────────────────

func testSession() *domain.Session {
	return &domain.Session{
		ID:        "sess-1",
		AuthToken: "upstream-token",
		UserID:    "admin-1",
		Name:      "Asha",
		Email:     "asha@example.com",
		Role:      domain.RoleAdmin,
	}
}

func newTestActivity() (*ActivityService, *MockActivityRepository, *MockPublisher) {
	repo := NewMockActivityRepository()
	pub := &MockPublisher{}
	return NewActivityService(repo, NewNotificationService(pub), nil), repo, pub
}
