// Package notifications provides persistence for user notifications.
package notifications

import (
	"context"

	"github.com/guptaRishi00/waflow/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, n *models.Notification) (*models.Notification, error)
	GetByID(ctx context.Context, id string) (*models.Notification, error)
	ListByRecipient(ctx context.Context, recipientID string) ([]*models.Notification, error)
	UpdateStatus(ctx context.Context, id string, status models.NotificationStatus) error
	Delete(ctx context.Context, id string) error
	// MarkAllRead flips every unread notification of the recipient to Read
	// and returns the number of rows changed.
	MarkAllRead(ctx context.Context, recipientID string) (int64, error)
}
