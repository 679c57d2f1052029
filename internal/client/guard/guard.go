// Package guard decides whether the current session may enter a given
// role area. Readiness comes from a live identity check against the
// backend, never from a timer or a cached flag alone.
package guard

import (
	"context"
	"errors"

	"github.com/guptaRishi00/waflow/internal/client/api"
	"github.com/guptaRishi00/waflow/internal/client/session"
	"github.com/guptaRishi00/waflow/internal/common"
)

// Routes the guard can redirect to.
const (
	RouteLogin             = "/login"
	RouteCustomerDashboard = "/customer"
	RouteAgentDashboard    = "/agent"
	RouteManagerDashboard  = "/manager"
)

// IdentityAPI is the slice of the REST client the guard needs.
type IdentityAPI interface {
	Me(ctx context.Context) (*api.User, error)
}

// Decision is the outcome of a guard check. When Allow is false, Redirect
// names the route to send the user to instead.
type Decision struct {
	Allow    bool
	Redirect string
}

type Guard struct {
	session *session.Store
	api     IdentityAPI
}

func NewGuard(s *session.Store, a IdentityAPI) *Guard {
	return &Guard{session: s, api: a}
}

// DashboardRoute maps a role onto its home route. Unknown roles go back
// to login.
func DashboardRoute(role string) string {
	switch role {
	case "customer":
		return RouteCustomerDashboard
	case "agent":
		return RouteAgentDashboard
	case "manager":
		return RouteManagerDashboard
	default:
		return RouteLogin
	}
}

// Check validates the session against the backend and compares the
// confirmed role with the requested area. A stale or missing session
// redirects to login; a valid session for the wrong area redirects to
// the user's own dashboard.
func (g *Guard) Check(ctx context.Context, area string) Decision {
	if !g.session.LoggedIn() {
		return Decision{Redirect: RouteLogin}
	}

	user, err := g.api.Me(ctx)
	if err != nil {
		if errors.Is(err, common.ErrorUnauthorized) {
			_ = g.session.Clear()
			return Decision{Redirect: RouteLogin}
		}
		// Backend unreachable: keep the session but do not let the
		// user through on stale identity.
		return Decision{Redirect: RouteLogin}
	}

	if user.Role != area {
		return Decision{Redirect: DashboardRoute(user.Role)}
	}

	return Decision{Allow: true}
}
