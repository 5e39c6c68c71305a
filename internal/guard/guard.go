// Package guard decides whether the current session may run a command.
// It is a pure predicate over session state: it never fetches data and
// never mutates anything, so the navigation layer can evaluate it
// synchronously before every guarded command.
package guard

import "github.com/cinevo/cinevo-cli/pkg/model"

// Fallback paths for denied checks.
const (
	// LoginPath is where unauthenticated attempts are sent.
	LoginPath = "/login"
	// HomePath is where authenticated-but-unauthorized attempts are sent.
	HomePath = "/"
)

// Requirements describes what a command demands of the session.
type Requirements struct {
	// Auth requires a live (present, unexpired) token.
	Auth bool
	// Role additionally requires a specific role. Implies Auth.
	Role model.UserRole
}

// Decision is the outcome of a check: allow, or redirect to a fallback path.
type Decision struct {
	Path string
}

// Allowed reports whether the check passed.
func (d Decision) Allowed() bool {
	return d.Path == ""
}

// Allow is the passing decision.
var Allow = Decision{}

// RedirectTo builds a redirect decision.
func RedirectTo(path string) Decision {
	return Decision{Path: path}
}

// Check evaluates the requirements against the session. A missing or expired
// token redirects to the login page; a role mismatch redirects home.
func Check(sess model.Session, req Requirements) Decision {
	if !req.Auth && req.Role == "" {
		return Allow
	}
	if !sess.IsAuthenticated() || sess.IsExpired() {
		return RedirectTo(LoginPath)
	}
	if req.Role != "" && sess.Role != req.Role {
		return RedirectTo(HomePath)
	}
	return Allow
}
