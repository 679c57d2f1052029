package notifications

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/guptaRishi00/waflow/internal/common"
	"github.com/guptaRishi00/waflow/internal/dbx"
	"github.com/guptaRishi00/waflow/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, n *models.Notification) (*models.Notification, error) {
	query := `
		INSERT INTO notifications (recipient_id, title, message, category, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at
	`
	err := r.db.QueryRowContext(ctx, query,
		n.RecipientID, n.Title, n.Message, n.Category, n.Status).
		Scan(&n.ID, &n.CreatedAt, &n.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return n, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*models.Notification, error) {
	query := `
		SELECT id, recipient_id, title, message, category, status, created_at, updated_at
		FROM notifications
		WHERE id = $1
	`
	n := &models.Notification{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&n.ID, &n.RecipientID, &n.Title, &n.Message, &n.Category, &n.Status,
		&n.CreatedAt, &n.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return n, nil
}

// ListByRecipient returns the recipient's notifications, newest first.
func (r *PostgresRepository) ListByRecipient(ctx context.Context, recipientID string) ([]*models.Notification, error) {
	query := `
		SELECT id, recipient_id, title, message, category, status, created_at, updated_at
		FROM notifications
		WHERE recipient_id = $1
		ORDER BY created_at DESC
	`
	rows, err := r.db.QueryContext(ctx, query, recipientID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []*models.Notification
	for rows.Next() {
		var n models.Notification
		if err := rows.Scan(&n.ID, &n.RecipientID, &n.Title, &n.Message, &n.Category,
			&n.Status, &n.CreatedAt, &n.UpdatedAt); err != nil {
			return nil, err
		}
		result = append(result, &n)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *PostgresRepository) UpdateStatus(ctx context.Context, id string, status models.NotificationStatus) error {
	query := `
		UPDATE notifications SET status = $2, updated_at = now()
		WHERE id = $1
	`
	res, err := r.db.ExecContext(ctx, query, id, status)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected error: %w", err)
	}
	if n == 0 {
		return common.ErrorNotFound
	}
	return nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	query := `
		DELETE FROM notifications
		WHERE id = $1
	`
	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *PostgresRepository) MarkAllRead(ctx context.Context, recipientID string) (int64, error) {
	query := `
		UPDATE notifications SET status = $2, updated_at = now()
		WHERE recipient_id = $1 AND status = $3
	`
	res, err := r.db.ExecContext(ctx, query, recipientID, models.NotificationRead, models.NotificationUnread)
	if err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("rows affected error: %w", err)
	}
	return n, nil
}
