package cli

import (
	"context"
	"log"

	"github.com/guptaRishi00/waflow/internal/client/guard"
)

// Dashboard verifies the session against the backend and enters the role
// area the confirmed identity belongs to.
func (a *App) Dashboard(ctx context.Context) error {
	role := a.session.Current().User.Role

	decision := a.guard.Check(ctx, role)
	if decision.Allow {
		log.Printf("Entering %s", guard.DashboardRoute(role))
		return nil
	}

	if decision.Redirect == guard.RouteLogin {
		log.Println("Session is no longer valid, please log in again")
		return a.Login(ctx)
	}

	log.Printf("Redirected to %s", decision.Redirect)
	return nil
}
