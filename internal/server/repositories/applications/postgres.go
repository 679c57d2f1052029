package applications

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/guptaRishi00/waflow/internal/common"
	"github.com/guptaRishi00/waflow/internal/dbx"
	"github.com/guptaRishi00/waflow/internal/server/models"
	"github.com/guptaRishi00/waflow/internal/workflow"
)

// PostgresRepository implements application storage over a dbx.DBTX
// (*sql.DB or *sql.Tx). Steps and notes are loaded by their own repositories.
type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const selectColumns = `id, customer_id, COALESCE(agent_id::text, ''), jurisdiction, legal_type, status, created_at, updated_at`

func (r *PostgresRepository) Create(ctx context.Context, app *models.Application) (*models.Application, error) {
	query := `
		INSERT INTO applications (customer_id, agent_id, jurisdiction, legal_type, status)
		VALUES ($1, NULLIF($2, '')::uuid, $3, $4, $5)
		RETURNING id, created_at, updated_at
	`
	err := r.db.QueryRowContext(ctx, query,
		app.CustomerID, app.AgentID, app.Jurisdiction, app.LegalType, app.Status).
		Scan(&app.ID, &app.CreatedAt, &app.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return app, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*models.Application, error) {
	query := `SELECT ` + selectColumns + ` FROM applications WHERE id = $1`

	app := &models.Application{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&app.ID, &app.CustomerID, &app.AgentID, &app.Jurisdiction, &app.LegalType,
		&app.Status, &app.CreatedAt, &app.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return app, nil
}

func (r *PostgresRepository) ListByCustomer(ctx context.Context, customerID string) ([]*models.Application, error) {
	query := `SELECT ` + selectColumns + ` FROM applications WHERE customer_id = $1 ORDER BY created_at`
	return r.list(ctx, query, customerID)
}

func (r *PostgresRepository) ListAll(ctx context.Context) ([]*models.Application, error) {
	query := `SELECT ` + selectColumns + ` FROM applications ORDER BY created_at`
	return r.list(ctx, query)
}

// UpdateStatus sets the derived overall status and bumps updated_at.
func (r *PostgresRepository) UpdateStatus(ctx context.Context, id string, status workflow.ApplicationStatus) error {
	query := `
		UPDATE applications SET status = $2, updated_at = now()
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

func (r *PostgresRepository) list(ctx context.Context, query string, args ...any) ([]*models.Application, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []*models.Application
	for rows.Next() {
		var app models.Application
		if err := rows.Scan(&app.ID, &app.CustomerID, &app.AgentID, &app.Jurisdiction,
			&app.LegalType, &app.Status, &app.CreatedAt, &app.UpdatedAt); err != nil {
			return nil, err
		}
		result = append(result, &app)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
