package app

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"cabadmin/internal/domain"
	"cabadmin/internal/endpoint"
	"cabadmin/internal/gateway"
	"cabadmin/internal/handler"
	"cabadmin/internal/service"
)

// ──────────────────────────────────────────────
// FAKE REMOTE SERVICES
// ──────────────────────────────────────────────

// fakeServices serves the user, booking and common service routes used by the tests.
type fakeServices struct {
	mu       sync.Mutex
	users    []domain.User
	bookings []domain.Booking
	search   []domain.CabCandidate

	requests []string
	updated  map[string]domain.Booking
	uploads  []gateway.UploadImageRequest
}

func newFakeServices() *fakeServices {
	return &fakeServices{updated: make(map[string]domain.Booking)}
}

func (f *fakeServices) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.requests = append(f.requests, r.Method+" "+r.URL.Path)

	switch {
	case r.Method == http.MethodPost && r.URL.Path == "/users/login":
		var req gateway.LoginRequest
		_ = json.NewDecoder(r.Body).Decode(&req)
		if req.Username != "admin" || req.Password != gateway.PasswordDigest("secret") {
			envelope(w, http.StatusOK, 401, "Invalid credentials", nil)
			return
		}
		envelope(w, http.StatusOK, gateway.SuccessCode, "success", []domain.User{
			{ID: "admin-1", Name: "Asha", Email: "asha@example.com", Role: domain.RoleAdmin, Token: "upstream-token"},
		})

	case r.Method == http.MethodGet && r.URL.Path == "/users/all":
		envelope(w, http.StatusOK, gateway.SuccessCode, "success", f.users)

	case r.Method == http.MethodDelete && strings.HasPrefix(r.URL.Path, "/users/"):
		id := strings.TrimPrefix(r.URL.Path, "/users/")
		kept := f.users[:0]
		for _, u := range f.users {
			if u.ID != id {
				kept = append(kept, u)
			}
		}
		f.users = kept
		envelope(w, http.StatusOK, gateway.SuccessCode, "success", nil)

	case r.Method == http.MethodGet && r.URL.Path == "/cab/booking/find/all":
		envelope(w, http.StatusOK, gateway.SuccessCode, "success", f.bookings)

	case r.Method == http.MethodPost && r.URL.Path == "/cab/registration/search":
		envelope(w, http.StatusOK, gateway.SuccessCode, "success", f.search)

	case r.Method == http.MethodPut && strings.HasPrefix(r.URL.Path, "/cab/booking/update/"):
		var b domain.Booking
		_ = json.NewDecoder(r.Body).Decode(&b)
		f.updated[strings.TrimPrefix(r.URL.Path, "/cab/booking/update/")] = b
		envelope(w, http.StatusOK, gateway.SuccessCode, "Booking updated", nil)

	case r.Method == http.MethodPost && r.URL.Path == "/common/uploadBase64Image":
		var req gateway.UploadImageRequest
		body, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(body, &req)
		f.uploads = append(f.uploads, req)
		envelope(w, http.StatusOK, gateway.SuccessCode, "success", map[string]string{"imageUrl": "https://cdn.example.com/1.jpg"})

	default:
		envelope(w, http.StatusNotFound, 404, "not found", nil)
	}
}

func (f *fakeServices) sawRequest(req string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, r := range f.requests {
		if r == req {
			return true
		}
	}
	return false
}

func envelope(w http.ResponseWriter, status, code int, message string, data any) {
	raw, _ := json.Marshal(data)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(gateway.Envelope{ResponseCode: code, ResponseMessage: message, ResponseData: raw})
}

// ──────────────────────────────────────────────
// IN-MEMORY STORES
// ──────────────────────────────────────────────

type memStore struct {
	mu            sync.Mutex
	sessions      map[string]domain.Session
	modifications map[string][]byte
	locks         map[string]bool
	summaries     map[string]*domain.DashboardSummary
	responses     map[string][]byte
}

func newMemStore() *memStore {
	return &memStore{
		sessions:      make(map[string]domain.Session),
		modifications: make(map[string][]byte),
		locks:         make(map[string]bool),
		summaries:     make(map[string]*domain.DashboardSummary),
		responses:     make(map[string][]byte),
	}
}

func (m *memStore) Create(ctx context.Context, s *domain.Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[s.ID] = *s
	return nil
}

func (m *memStore) Get(ctx context.Context, id string) (*domain.Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.sessions[id]
	if !ok {
		return nil, nil
	}
	return &s, nil
}

func (m *memStore) UpdateProfile(ctx context.Context, id string, u *domain.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	s := m.sessions[id]
	s.Name, s.Email, s.Phone, s.ImageURL = u.Name, u.Email, u.Phone, u.ImageURL
	m.sessions[id] = s
	return nil
}

func (m *memStore) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, id)
	return nil
}

func (m *memStore) GetModification(ctx context.Context, id string) (*domain.Modification, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	data, ok := m.modifications[id]
	if !ok {
		return nil, nil
	}
	var mod domain.Modification
	if err := json.Unmarshal(data, &mod); err != nil {
		return nil, err
	}
	return &mod, nil
}

func (m *memStore) SetModification(ctx context.Context, mod *domain.Modification) error {
	data, err := json.Marshal(mod)
	if err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.modifications[mod.ID] = data
	return nil
}

func (m *memStore) DeleteModification(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.modifications, id)
	return nil
}

func (m *memStore) AcquireLock(ctx context.Context, key string, ttl time.Duration) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.locks[key] {
		return false, nil
	}
	m.locks[key] = true
	return true, nil
}

func (m *memStore) ReleaseLock(ctx context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.locks, key)
	return nil
}

func (m *memStore) GetSummary(ctx context.Context, sessionID string) (*domain.DashboardSummary, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.summaries[sessionID], nil
}

func (m *memStore) SetSummary(ctx context.Context, sessionID string, s *domain.DashboardSummary) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.summaries[sessionID] = s
	return nil
}

func (m *memStore) InvalidateSummary(ctx context.Context, sessionID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.summaries, sessionID)
	return nil
}

func (m *memStore) GetResponse(ctx context.Context, key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.responses[key], nil
}

func (m *memStore) SetResponse(ctx context.Context, key string, data []byte, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.responses[key] = data
	return nil
}

// ──────────────────────────────────────────────
// FIXTURES
// ──────────────────────────────────────────────

// newTestServer wires the real services and handlers against the fake remote services.
func newTestServer(t *testing.T, fake *fakeServices) http.Handler {
	t.Helper()
	srv := httptest.NewServer(fake)
	t.Cleanup(srv.Close)

	client := gateway.NewClient(endpoint.NewRegistry(srv.URL, srv.URL, srv.URL), srv.Client())
	upstream := service.GatewayUpstream(client)
	store := newMemStore()

	activity := service.NewActivityService(nil, service.NewNotificationService(nil), store)
	auth := service.NewAuthService(upstream, store, service.NewSessionTokens("test-secret", 0), activity)

	return NewRouter(RouterDeps{
		AuthHandler:         handler.NewAuthHandler(auth),
		DashboardHandler:    handler.NewDashboardHandler(service.NewDashboardService(upstream, store, activity)),
		UserHandler:         handler.NewUserHandler(service.NewUserService(upstream, activity)),
		CabHandler:          handler.NewCabHandler(service.NewCabService(upstream, activity)),
		BookingHandler:      handler.NewBookingHandler(service.NewBookingService(upstream, activity), activity),
		ModificationHandler: handler.NewModificationHandler(service.NewModificationService(upstream, store, store, activity)),
		OfferHandler:        handler.NewOfferHandler(service.NewOfferService(upstream, activity)),
		ImageHandler:        handler.NewImageHandler(service.NewImageService(upstream)),
		ProfileHandler:      handler.NewProfileHandler(service.NewProfileService(upstream, store, activity)),
		Authenticator:       auth,
		ResponseCache:       store,
	})
}
