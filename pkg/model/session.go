package model

import "time"

// Session is the client's record of being authenticated: the bearer token
// sent on API calls plus the role and expiry extracted from it at login.
type Session struct {
	Token    string    `json:"token"`
	Role     UserRole  `json:"role"`
	TokenExp time.Time `json:"tokenExp,omitempty"`
}

// IsAuthenticated reports whether a token is present.
func (s *Session) IsAuthenticated() bool {
	return s.Token != ""
}

// IsExpired reports whether the token's expiry time has passed.
// A zero expiry (token without an exp claim) is treated as not expired.
func (s *Session) IsExpired() bool {
	if s.TokenExp.IsZero() {
		return false
	}
	return time.Now().After(s.TokenExp)
}

// IsAdmin reports whether the session has admin role.
func (s *Session) IsAdmin() bool {
	return s.Role == RoleAdmin
}
