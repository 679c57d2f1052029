// Package applications provides persistence for registration applications.
package applications

import (
	"context"

	"github.com/guptaRishi00/waflow/internal/server/models"
	"github.com/guptaRishi00/waflow/internal/workflow"
)

type Repository interface {
	Create(ctx context.Context, app *models.Application) (*models.Application, error)
	GetByID(ctx context.Context, id string) (*models.Application, error)
	ListByCustomer(ctx context.Context, customerID string) ([]*models.Application, error)
	ListAll(ctx context.Context) ([]*models.Application, error)
	UpdateStatus(ctx context.Context, id string, status workflow.ApplicationStatus) error
}
