package documents

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

const selectColumns = `id, application_id, COALESCE(step_id::text, ''), customer_id, doc_type, name,
	storage_key, content_type, size, status, uploaded_by, created_at, updated_at`

func (r *PostgresRepository) Create(ctx context.Context, doc *models.Document) (*models.Document, error) {
	query := `
		INSERT INTO documents (application_id, step_id, customer_id, doc_type, name, storage_key, content_type, size, status, uploaded_by)
		VALUES ($1, NULLIF($2, '')::uuid, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id, created_at, updated_at
	`
	err := r.db.QueryRowContext(ctx, query,
		doc.ApplicationID, doc.StepID, doc.CustomerID, doc.Type, doc.Name,
		doc.StorageKey, doc.ContentType, doc.Size, doc.Status, doc.UploadedBy).
		Scan(&doc.ID, &doc.CreatedAt, &doc.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return doc, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*models.Document, error) {
	query := `SELECT ` + selectColumns + ` FROM documents WHERE id = $1`

	doc := &models.Document{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&doc.ID, &doc.ApplicationID, &doc.StepID, &doc.CustomerID, &doc.Type, &doc.Name,
		&doc.StorageKey, &doc.ContentType, &doc.Size, &doc.Status, &doc.UploadedBy,
		&doc.CreatedAt, &doc.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return doc, nil
}

func (r *PostgresRepository) ListByCustomer(ctx context.Context, customerID string) ([]*models.Document, error) {
	query := `SELECT ` + selectColumns + ` FROM documents WHERE customer_id = $1 ORDER BY created_at`
	return r.list(ctx, query, customerID)
}

func (r *PostgresRepository) ListByApplication(ctx context.Context, applicationID string) ([]*models.Document, error) {
	query := `SELECT ` + selectColumns + ` FROM documents WHERE application_id = $1 ORDER BY created_at`
	return r.list(ctx, query, applicationID)
}

func (r *PostgresRepository) ListByStep(ctx context.Context, stepID string) ([]*models.Document, error) {
	query := `SELECT ` + selectColumns + ` FROM documents WHERE step_id = $1 ORDER BY created_at`
	return r.list(ctx, query, stepID)
}

func (r *PostgresRepository) UpdateStatus(ctx context.Context, id string, status models.DocumentStatus) error {
	query := `
		UPDATE documents SET status = $2, updated_at = now()
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

func (r *PostgresRepository) list(ctx context.Context, query string, args ...any) ([]*models.Document, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []*models.Document
	for rows.Next() {
		var doc models.Document
		if err := rows.Scan(&doc.ID, &doc.ApplicationID, &doc.StepID, &doc.CustomerID,
			&doc.Type, &doc.Name, &doc.StorageKey, &doc.ContentType, &doc.Size,
			&doc.Status, &doc.UploadedBy, &doc.CreatedAt, &doc.UpdatedAt); err != nil {
			return nil, err
		}
		result = append(result, &doc)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
