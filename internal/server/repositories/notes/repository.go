// Package notes provides persistence for the append-only application notes.
package notes

import (
	"context"

	"github.com/guptaRishi00/waflow/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, note *models.Note) (*models.Note, error)
	ListByApplication(ctx context.Context, applicationID string) ([]*models.Note, error)
}
