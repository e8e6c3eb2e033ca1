package domain

// Role represents the role of an account in the user service.
type Role string

const (
	RoleSuperAdmin Role = "SUPER_ADMIN"
	RoleAdmin      Role = "ADMIN"
	RoleCabOwner   Role = "CABOWNER"
	RoleUser       Role = "USER"
	RoleManager    Role = "MANAGER"
	RoleSupport    Role = "SUPPORT"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleSuperAdmin, RoleAdmin, RoleCabOwner, RoleUser, RoleManager, RoleSupport:
		return true
	}
	return false
}

// CanUseDashboard reports whether accounts with this role may sign in to the dashboard.
func (r Role) CanUseDashboard() bool {
	switch r {
	case RoleSuperAdmin, RoleAdmin, RoleManager, RoleSupport:
		return true
	}
	return false
}

// User is an account record held by the user service.
type User struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Role      Role   `json:"role"`
	Verified  bool   `json:"verified"`
	ImageURL  string `json:"imageUrl,omitempty"`
	CreatedAt string `json:"createdAt,omitempty"`
	// Token is only present on login responses.
	Token string `json:"token,omitempty"`
}
