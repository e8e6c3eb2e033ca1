package domain

// DashboardSummary holds the totals shown on the dashboard landing page.
type DashboardSummary struct {
	Users            int                   `json:"users"`
	UsersByRole      map[Role]int          `json:"usersByRole"`
	Cabs             int                   `json:"cabs"`
	CabsByStatus     map[CabStatus]int     `json:"cabsByStatus"`
	Bookings         int                   `json:"bookings"`
	BookingsByStatus map[BookingStatus]int `json:"bookingsByStatus"`
	CompletedRevenue float64               `json:"completedRevenue"`
	Offers           int                   `json:"offers"`
}
