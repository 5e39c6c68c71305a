package model

// UserRole represents the role of a Cinevo account.
type UserRole string

const (
	// RoleUser is a standard moviegoer account.
	RoleUser UserRole = "user"
	// RoleAdmin can manage the movie catalog and read sales reports.
	RoleAdmin UserRole = "admin"
)

// UserProfile is the currently loaded account profile, fetched from the API
// after login. Other packages only read it; the state store owns it.
type UserProfile struct {
	Email    string   `json:"email"`
	Fullname string   `json:"fullname,omitempty"`
	Phone    string   `json:"phone,omitempty"`
	Role     UserRole `json:"role"`
}

// IsAdmin returns true if the profile has admin role.
func (u *UserProfile) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// IsZero reports whether the profile is the empty default (nobody loaded).
func (u *UserProfile) IsZero() bool {
	return u.Email == "" && u.Fullname == "" && u.Phone == "" && u.Role == ""
}
