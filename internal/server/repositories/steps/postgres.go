package steps

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

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// CreateBatch inserts the step template rows for a new application.
func (r *PostgresRepository) CreateBatch(ctx context.Context, steps []*models.WorkflowStep) error {
	query := `
		INSERT INTO workflow_steps (application_id, step_index, name, status)
		VALUES ($1, $2, $3, $4)
		RETURNING id, updated_at
	`
	for _, s := range steps {
		err := r.db.QueryRowContext(ctx, query, s.ApplicationID, s.StepIndex, s.Name, s.Status).
			Scan(&s.ID, &s.UpdatedAt)
		if err != nil {
			return fmt.Errorf("db error: %w", err)
		}
	}
	return nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*models.WorkflowStep, error) {
	query := `
		SELECT id, application_id, step_index, name, status, updated_at
		FROM workflow_steps
		WHERE id = $1
	`
	step := &models.WorkflowStep{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&step.ID, &step.ApplicationID, &step.StepIndex, &step.Name, &step.Status, &step.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return step, nil
}

// ListByApplication returns the application's steps in workflow order.
func (r *PostgresRepository) ListByApplication(ctx context.Context, applicationID string) ([]*models.WorkflowStep, error) {
	query := `
		SELECT id, application_id, step_index, name, status, updated_at
		FROM workflow_steps
		WHERE application_id = $1
		ORDER BY step_index
	`
	rows, err := r.db.QueryContext(ctx, query, applicationID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []*models.WorkflowStep
	for rows.Next() {
		var s models.WorkflowStep
		if err := rows.Scan(&s.ID, &s.ApplicationID, &s.StepIndex, &s.Name, &s.Status, &s.UpdatedAt); err != nil {
			return nil, err
		}
		result = append(result, &s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *PostgresRepository) UpdateStatus(ctx context.Context, id string, status workflow.StepStatus) error {
	query := `
		UPDATE workflow_steps SET status = $2, updated_at = now()
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
