package service

import (
	"context"
	"testing"

	"cabadmin/internal/domain"
)

func TestSummarize(t *testing.T) {
	t.Parallel()

	summary := Summarize(
		[]domain.User{{Role: domain.RoleAdmin}, {Role: domain.RoleUser}, {Role: domain.RoleUser}},
		[]domain.CabRegistration{{Status: domain.CabStatusActive}, {Status: domain.CabStatusInactive}},
		[]domain.Booking{
			{BookingStatus: domain.BookingStatusCompleted, Fare: domain.Float(100)},
			{BookingStatus: domain.BookingStatusCompleted, Fare: nil},
			{BookingStatus: domain.BookingStatusPending, Fare: domain.Float(900)},
		},
		[]domain.Offer{{}},
	)

	if summary.Users != 3 || summary.UsersByRole[domain.RoleUser] != 2 {
		t.Errorf("unexpected user totals: %+v", summary)
	}
	if summary.CabsByStatus[domain.CabStatusActive] != 1 {
		t.Errorf("unexpected cab totals: %+v", summary.CabsByStatus)
	}
	if summary.BookingsByStatus[domain.BookingStatusCompleted] != 2 {
		t.Errorf("unexpected booking totals: %+v", summary.BookingsByStatus)
	}
	if summary.CompletedRevenue != 100 {
		t.Errorf("expected revenue 100, got %v", summary.CompletedRevenue)
	}
	if summary.Offers != 1 {
		t.Errorf("expected 1 offer, got %d", summary.Offers)
	}
}

func TestDashboard_CachesAndInvalidates(t *testing.T) {
	t.Parallel()

	up := NewMockUpstream()
	up.AddUser(domain.User{ID: "1", Role: domain.RoleAdmin})
	cache := NewMockSummaryCache()
	repo := NewMockActivityRepository()
	activity := NewActivityService(repo, NewNotificationService(nil), cache)
	svc := NewDashboardService(up.For(), cache, activity)
	ctx := context.Background()
	sess := testSession()

	first, err := svc.Get(ctx, sess)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first.Summary.Users != 1 {
		t.Fatalf("expected 1 user, got %d", first.Summary.Users)
	}

	up.AddUser(domain.User{ID: "2", Role: domain.RoleUser})
	cached, _ := svc.Get(ctx, sess)
	if cached.Summary.Users != 1 {
		t.Errorf("expected cached total, got %d", cached.Summary.Users)
	}

	activity.Record(ctx, sess, Change{Event: EventCabRegistered, Entity: "cab", EntityID: "c1"})
	fresh, _ := svc.Get(ctx, sess)
	if fresh.Summary.Users != 2 {
		t.Errorf("expected refreshed total after a change, got %d", fresh.Summary.Users)
	}
	if len(fresh.RecentActivity) != 1 || fresh.RecentActivity[0].ActorID != "admin-1" {
		t.Errorf("expected recent activity by the session user, got %+v", fresh.RecentActivity)
	}
}

func TestNavigation_HidesUsersFromSupport(t *testing.T) {
	t.Parallel()

	for _, item := range Navigation(domain.RoleSupport) {
		if item.Section == SectionUsers {
			t.Error("support staff should not see user management")
		}
	}
	if CanAccess(domain.RoleSupport, SectionUsers) {
		t.Error("support staff should not access user management")
	}
	if !CanAccess(domain.RoleSupport, SectionBookings) {
		t.Error("support staff should access bookings")
	}
	if !CanAccess(domain.RoleManager, SectionUsers) {
		t.Error("managers should access user management")
	}
	if len(Navigation(domain.RoleUser)) != 0 {
		t.Error("customers have no dashboard navigation")
	}
	if len(Navigation(domain.RoleSuperAdmin)) != len(navigation) {
		t.Error("super admins see every section")
	}
}
