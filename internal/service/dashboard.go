package service

import (
	"context"

	"github.com/sirupsen/logrus"

	"cabadmin/internal/domain"
	"cabadmin/internal/redis"
)

const recentActivityLimit = 10

// DashboardService computes the landing page totals from the remote collections.
type DashboardService struct {
	upstream UpstreamFor
	cache    redis.SummaryCacheInterface
	activity *ActivityService
}

// NewDashboardService creates a new DashboardService. cache may be nil.
func NewDashboardService(upstream UpstreamFor, cache redis.SummaryCacheInterface, activity *ActivityService) *DashboardService {
	return &DashboardService{
		upstream: upstream,
		cache:    cache,
		activity: activity,
	}
}

// Dashboard is the landing page content.
type Dashboard struct {
	Summary        *domain.DashboardSummary `json:"summary"`
	RecentActivity []*domain.Activity       `json:"recentActivity"`
}

// Get returns the dashboard for the session.
func (s *DashboardService) Get(ctx context.Context, session *domain.Session) (*Dashboard, error) {
	summary, err := s.summary(ctx, session)
	if err != nil {
		return nil, err
	}

	recent, err := s.activity.Recent(ctx, recentActivityLimit)
	if err != nil {
		logrus.WithError(err).Warn("failed to load recent activity")
		recent = []*domain.Activity{}
	}
	return &Dashboard{Summary: summary, RecentActivity: recent}, nil
}

func (s *DashboardService) summary(ctx context.Context, session *domain.Session) (*domain.DashboardSummary, error) {
	if s.cache != nil {
		if cached, err := s.cache.GetSummary(ctx, session.ID); err == nil && cached != nil {
			return cached, nil
		}
	}

	up := s.upstream(session.AuthToken)
	users, err := up.ListUsers(ctx)
	if err != nil {
		return nil, err
	}
	cabs, err := up.ListCabs(ctx)
	if err != nil {
		return nil, err
	}
	bookings, err := up.ListBookings(ctx)
	if err != nil {
		return nil, err
	}
	offers, err := up.ListOffers(ctx)
	if err != nil {
		return nil, err
	}

	summary := Summarize(users, cabs, bookings, offers)
	if s.cache != nil {
		if err := s.cache.SetSummary(ctx, session.ID, summary); err != nil {
			logrus.WithError(err).Debug("failed to cache dashboard summary")
		}
	}
	return summary, nil
}

// Summarize counts the collections. Revenue is the sum of fares of completed bookings.
func Summarize(users []domain.User, cabs []domain.CabRegistration, bookings []domain.Booking, offers []domain.Offer) *domain.DashboardSummary {
	summary := &domain.DashboardSummary{
		Users:            len(users),
		UsersByRole:      make(map[domain.Role]int),
		Cabs:             len(cabs),
		CabsByStatus:     make(map[domain.CabStatus]int),
		Bookings:         len(bookings),
		BookingsByStatus: make(map[domain.BookingStatus]int),
		Offers:           len(offers),
	}
	for _, u := range users {
		summary.UsersByRole[u.Role]++
	}
	for _, c := range cabs {
		summary.CabsByStatus[c.Status]++
	}
	for _, b := range bookings {
		summary.BookingsByStatus[b.BookingStatus]++
		if b.BookingStatus == domain.BookingStatusCompleted && b.Fare != nil {
			summary.CompletedRevenue += *b.Fare
		}
	}
	return summary
}
