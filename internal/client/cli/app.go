// Package cli is the interactive terminal client for Waflow. It drives the
// REST API through a small REPL: agents manage applications and reviews,
// customers track their own registration and upload documents.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"

	"github.com/guptaRishi00/waflow/internal/client/api"
	"github.com/guptaRishi00/waflow/internal/client/config"
	"github.com/guptaRishi00/waflow/internal/client/dispatcher"
	"github.com/guptaRishi00/waflow/internal/client/guard"
	"github.com/guptaRishi00/waflow/internal/client/poller"
	"github.com/guptaRishi00/waflow/internal/client/session"
)

type App struct {
	config     *config.Config
	session    *session.Store
	api        *api.Client
	dispatcher *dispatcher.Dispatcher
	guard      *guard.Guard
	poller     *poller.Poller
	reader     *bufio.Reader
}

func NewApp(c *config.Config) (*App, error) {
	store, err := session.NewStore()
	if err != nil {
		return nil, err
	}

	client := api.NewClient(c.ServerEndpointAddr, c.RequestTimeout, store)

	app := &App{
		config:     c,
		session:    store,
		api:        client,
		dispatcher: dispatcher.New(client),
		guard:      guard.NewGuard(store, client),
		reader:     bufio.NewReader(os.Stdin),
	}
	feed := &notificationFeed{api: client, session: store}
	app.poller = poller.New(feed, func(n int) {
		printlnFn(fmt.Sprintf("* %d new notification(s), type 'notifications' to view", n))
	})

	return app, nil
}

// notificationFeed resolves the polling route from the logged-in user at
// call time, so the poller keeps working across logins.
type notificationFeed struct {
	api     *api.Client
	session *session.Store
}

func (f *notificationFeed) Notifications(ctx context.Context) ([]api.Notification, error) {
	user := f.session.Current().User
	return f.api.Notifications(ctx, user.Role, user.ID)
}

func (f *notificationFeed) MarkNotificationRead(ctx context.Context, id string) error {
	return f.api.MarkNotificationRead(ctx, id)
}

func (f *notificationFeed) ClearAllNotifications(ctx context.Context) (int64, error) {
	return f.api.ClearAllNotifications(ctx)
}

func (a *App) Run(ctx context.Context) {
	a.Root(ctx)
}

func (a *App) isLoggedIn() bool {
	return a.session.LoggedIn()
}
