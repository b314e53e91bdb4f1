// Package guard holds the route-level predicates over the session store.
package guard

import "github.com/towtu/genesis-frontend/internal/session"

const (
	LoginPath     = "/login"
	DashboardPath = "/dashboard"
)

// Decision is the outcome of a guard check. RedirectTo is set only when
// access is denied.
type Decision struct {
	Allow      bool
	RedirectTo string
}

// RequireAuthenticated gates protected paths: without a session the user
// is sent to login.
func RequireAuthenticated(sessions session.Source) Decision {
	if sessions.Current().Empty() {
		return Decision{RedirectTo: LoginPath}
	}
	return Decision{Allow: true}
}

// RequirePublic gates login/register: with a live session the user is
// sent to the dashboard instead.
func RequirePublic(sessions session.Source) Decision {
	if sessions.Current().Empty() {
		return Decision{Allow: true}
	}
	return Decision{RedirectTo: DashboardPath}
}
