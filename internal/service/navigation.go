package service

import (
	"slices"

	"cabadmin/internal/domain"
)

// Section is an area of the dashboard.
type Section string

const (
	SectionDashboard Section = "dashboard"
	SectionUsers     Section = "users"
	SectionCabs      Section = "cabs"
	SectionBookings  Section = "bookings"
	SectionOffers    Section = "offers"
	SectionProfile   Section = "profile"
	SectionAccount   Section = "account"
)

// NavItem is an entry of the sidebar.
type NavItem struct {
	Section Section `json:"section"`
	Label   string  `json:"label"`
	Path    string  `json:"path"`
}

var navigation = []struct {
	item  NavItem
	roles []domain.Role // empty means every dashboard role
}{
	{item: NavItem{SectionDashboard, "Dashboard", "/v1/dashboard"}},
	{item: NavItem{SectionUsers, "Users", "/v1/users"}, roles: []domain.Role{domain.RoleSuperAdmin, domain.RoleAdmin, domain.RoleManager}},
	{item: NavItem{SectionCabs, "Cabs", "/v1/cabs"}},
	{item: NavItem{SectionBookings, "Bookings", "/v1/bookings"}},
	{item: NavItem{SectionOffers, "Offers", "/v1/offers"}},
	{item: NavItem{SectionProfile, "Profile Settings", "/v1/profile"}},
	{item: NavItem{SectionAccount, "Account Settings", "/v1/account/password"}},
}

// Navigation returns the sidebar entries visible to role.
func Navigation(role domain.Role) []NavItem {
	var items []NavItem
	for _, n := range navigation {
		if allowed(role, n.roles) {
			items = append(items, n.item)
		}
	}
	return items
}

// CanAccess reports whether role may use section.
func CanAccess(role domain.Role, section Section) bool {
	for _, n := range navigation {
		if n.item.Section == section {
			return allowed(role, n.roles)
		}
	}
	return false
}

func allowed(role domain.Role, roles []domain.Role) bool {
	if !role.CanUseDashboard() {
		return false
	}
	return len(roles) == 0 || slices.Contains(roles, role)
}
