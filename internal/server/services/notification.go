package services

import (
	"context"
	"database/sql"

	"github.com/guptaRishi00/waflow/internal/common"
	"github.com/guptaRishi00/waflow/internal/server/models"
	"github.com/guptaRishi00/waflow/internal/server/repositories/repomanager"
)

// NotificationService reads and mutates a user's notification list. Every
// mutation persists; clients never fake state locally only to have it
// reappear on the next poll.
type NotificationService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewNotificationService(db *sql.DB, m repomanager.RepositoryManager) *NotificationService {
	return &NotificationService{db: db, repomanager: m}
}

// List returns the recipient's notifications, newest first. Users see only
// their own list regardless of role.
func (s *NotificationService) List(ctx context.Context, actor Actor, recipientID string) ([]*models.Notification, error) {
	if actor.ID != recipientID {
		return nil, common.ErrorForbidden
	}
	return s.repomanager.Notifications(s.db).ListByRecipient(ctx, recipientID)
}

func (s *NotificationService) MarkRead(ctx context.Context, actor Actor, id string) error {
	return s.setStatus(ctx, actor, id, models.NotificationRead)
}

func (s *NotificationService) MarkUnread(ctx context.Context, actor Actor, id string) error {
	return s.setStatus(ctx, actor, id, models.NotificationUnread)
}

func (s *NotificationService) Archive(ctx context.Context, actor Actor, id string) error {
	return s.setStatus(ctx, actor, id, models.NotificationArchived)
}

func (s *NotificationService) Delete(ctx context.Context, actor Actor, id string) error {
	if _, err := s.owned(ctx, actor, id); err != nil {
		return err
	}
	return s.repomanager.Notifications(s.db).Delete(ctx, id)
}

// ClearAll marks every unread notification of the actor as read and returns
// how many were flipped.
func (s *NotificationService) ClearAll(ctx context.Context, actor Actor) (int64, error) {
	return s.repomanager.Notifications(s.db).MarkAllRead(ctx, actor.ID)
}

func (s *NotificationService) setStatus(ctx context.Context, actor Actor, id string, status models.NotificationStatus) error {
	if _, err := s.owned(ctx, actor, id); err != nil {
		return err
	}
	return s.repomanager.Notifications(s.db).UpdateStatus(ctx, id, status)
}

func (s *NotificationService) owned(ctx context.Context, actor Actor, id string) (*models.Notification, error) {
	n, err := s.repomanager.Notifications(s.db).GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if n.RecipientID != actor.ID {
		return nil, common.ErrorForbidden
	}
	return n, nil
}
