package notes

import (
	"context"
	"fmt"

	"github.com/guptaRishi00/waflow/internal/dbx"
	"github.com/guptaRishi00/waflow/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, note *models.Note) (*models.Note, error) {
	query := `
		INSERT INTO notes (application_id, step_id, author_id, author_role, message)
		VALUES ($1, NULLIF($2, '')::uuid, $3, $4, $5)
		RETURNING id, created_at
	`
	err := r.db.QueryRowContext(ctx, query,
		note.ApplicationID, note.StepID, note.AuthorID, note.AuthorRole, note.Message).
		Scan(&note.ID, &note.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return note, nil
}

func (r *PostgresRepository) ListByApplication(ctx context.Context, applicationID string) ([]*models.Note, error) {
	query := `
		SELECT id, application_id, COALESCE(step_id::text, ''), author_id, author_role, message, created_at
		FROM notes
		WHERE application_id = $1
		ORDER BY created_at
	`
	rows, err := r.db.QueryContext(ctx, query, applicationID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []*models.Note
	for rows.Next() {
		var n models.Note
		if err := rows.Scan(&n.ID, &n.ApplicationID, &n.StepID, &n.AuthorID,
			&n.AuthorRole, &n.Message, &n.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, &n)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
