package guard

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guptaRishi00/waflow/internal/client/api"
	"github.com/guptaRishi00/waflow/internal/client/session"
	"github.com/guptaRishi00/waflow/internal/common"
)

type fakeIdentityAPI struct {
	user *api.User
	err  error
}

func (f *fakeIdentityAPI) Me(ctx context.Context) (*api.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.user, nil
}

func loggedInStore(t *testing.T, role string) *session.Store {
	t.Helper()
	s, err := session.NewStoreAt(filepath.Join(t.TempDir(), "session.json"))
	require.NoError(t, err)
	require.NoError(t, s.Save(session.Session{
		Access: "token", Refresh: "refresh",
		User: api.User{ID: "u1", Role: role},
	}))
	return s
}

func TestCheck_NoSessionRedirectsToLogin(t *testing.T) {
	s, err := session.NewStoreAt(filepath.Join(t.TempDir(), "session.json"))
	require.NoError(t, err)

	g := NewGuard(s, &fakeIdentityAPI{})
	d := g.Check(context.Background(), "customer")
	assert.False(t, d.Allow)
	assert.Equal(t, RouteLogin, d.Redirect)
}

func TestCheck_ValidSessionAndMatchingRole(t *testing.T) {
	s := loggedInStore(t, "customer")
	g := NewGuard(s, &fakeIdentityAPI{user: &api.User{ID: "u1", Role: "customer"}})

	d := g.Check(context.Background(), "customer")
	assert.True(t, d.Allow)
}

func TestCheck_RoleMismatchRedirectsToOwnDashboard(t *testing.T) {
	s := loggedInStore(t, "customer")
	g := NewGuard(s, &fakeIdentityAPI{user: &api.User{ID: "u1", Role: "customer"}})

	d := g.Check(context.Background(), "agent")
	assert.False(t, d.Allow)
	assert.Equal(t, RouteCustomerDashboard, d.Redirect)
}

func TestCheck_StaleTokenClearsSession(t *testing.T) {
	s := loggedInStore(t, "customer")
	g := NewGuard(s, &fakeIdentityAPI{err: fmt.Errorf("%w: token expired", common.ErrorUnauthorized)})

	d := g.Check(context.Background(), "customer")
	assert.False(t, d.Allow)
	assert.Equal(t, RouteLogin, d.Redirect)
	assert.False(t, s.LoggedIn())
}

func TestCheck_BackendUnreachableDoesNotClearSession(t *testing.T) {
	s := loggedInStore(t, "customer")
	g := NewGuard(s, &fakeIdentityAPI{err: fmt.Errorf("connection refused")})

	d := g.Check(context.Background(), "customer")
	assert.False(t, d.Allow)
	assert.Equal(t, RouteLogin, d.Redirect)
	assert.True(t, s.LoggedIn())
}

func TestDashboardRoute(t *testing.T) {
	assert.Equal(t, RouteCustomerDashboard, DashboardRoute("customer"))
	assert.Equal(t, RouteAgentDashboard, DashboardRoute("agent"))
	assert.Equal(t, RouteManagerDashboard, DashboardRoute("manager"))
	assert.Equal(t, RouteLogin, DashboardRoute("unknown"))
}
