// Package poller keeps a local copy of the user's notifications fresh by
// polling the backend on an interval. All mutations go to the server first;
// local state only mirrors confirmed outcomes.
package poller

import (
	"context"
	"sync"
	"time"

	"github.com/guptaRishi00/waflow/internal/client/api"
)

// NotificationAPI is the slice of the REST client the poller needs.
type NotificationAPI interface {
	Notifications(ctx context.Context) ([]api.Notification, error)
	MarkNotificationRead(ctx context.Context, id string) error
	ClearAllNotifications(ctx context.Context) (int64, error)
}

// ToastFunc is called when a poll finds more unread notifications than the
// previous one. It never fires on the first successful poll; the initial
// load primes the baseline instead of announcing old news.
type ToastFunc func(newUnread int)

type Poller struct {
	api     NotificationAPI
	onToast ToastFunc

	mu     sync.RWMutex
	list   []api.Notification
	unread int
	primed bool
}

func New(a NotificationAPI, onToast ToastFunc) *Poller {
	return &Poller{api: a, onToast: onToast}
}

// Run polls on the interval until ctx is cancelled. An immediate first
// poll primes the baseline.
func (p *Poller) Run(ctx context.Context, interval time.Duration) {
	_ = p.Poll(ctx)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			_ = p.Poll(ctx)
		case <-ctx.Done():
			return
		}
	}
}

// Poll fetches the list once and updates the local mirror. Failed polls
// leave the previous state untouched.
func (p *Poller) Poll(ctx context.Context) error {
	list, err := p.api.Notifications(ctx)
	if err != nil {
		return err
	}

	unread := countUnread(list)

	p.mu.Lock()
	prevUnread, primed := p.unread, p.primed
	p.list = list
	p.unread = unread
	p.primed = true
	p.mu.Unlock()

	if primed && unread > prevUnread && p.onToast != nil {
		p.onToast(unread - prevUnread)
	}
	return nil
}

// Notifications returns the last fetched list.
func (p *Poller) Notifications() []api.Notification {
	p.mu.RLock()
	defer p.mu.RUnlock()
	out := make([]api.Notification, len(p.list))
	copy(out, p.list)
	return out
}

// Unread returns the unread count of the last fetch, adjusted by confirmed
// local mutations since.
func (p *Poller) Unread() int {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.unread
}

// MarkRead persists the status flip, then mirrors it locally: the one
// notification changes status and the unread count drops by exactly one.
func (p *Poller) MarkRead(ctx context.Context, id string) error {
	if err := p.api.MarkNotificationRead(ctx, id); err != nil {
		return err
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	for i := range p.list {
		if p.list[i].ID == id && p.list[i].Status == api.NotificationUnread {
			p.list[i].Status = "Read"
			p.unread--
			break
		}
	}
	return nil
}

// ClearAll marks everything read on the server, then locally.
func (p *Poller) ClearAll(ctx context.Context) error {
	if _, err := p.api.ClearAllNotifications(ctx); err != nil {
		return err
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	for i := range p.list {
		if p.list[i].Status == api.NotificationUnread {
			p.list[i].Status = "Read"
		}
	}
	p.unread = 0
	return nil
}

func countUnread(list []api.Notification) int {
	n := 0
	for _, item := range list {
		if item.Status == api.NotificationUnread {
			n++
		}
	}
	return n
}
