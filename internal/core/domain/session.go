package domain

import "time"

// Session is the identity derived from a bearer token on each request.
// It is reconstructed per request from the token's claims; the server keeps
// no session table.
type Session struct {
	UserID    string
	Email     string
	Role      string
	Token     string
	TokenID   string
	ExpiresAt time.Time
}

// DashboardRoot returns the dashboard area a session of this role belongs to.
func (s Session) DashboardRoot() string {
	if s.Role == RoleAdmin {
		return "/v1/admin/dashboard"
	}
	return "/v1/client/dashboard"
}
