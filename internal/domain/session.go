package domain

import "time"

// Session is the server-side record of a signed-in administrator.
// It is populated on login, rewritten on profile update and removed on logout.
type Session struct {
	ID        string
	AuthToken string
	UserID    string
	Name      string
	Email     string
	Phone     string
	Role      Role
	ImageURL  string
	CreatedAt time.Time
}

// Authenticated reports whether the session carries an upstream auth token.
func (s *Session) Authenticated() bool {
	return s != nil && s.AuthToken != ""
}
