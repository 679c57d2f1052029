// Package steps provides persistence for the ordered workflow steps of an
// application.
package steps

import (
	"context"

	"github.com/guptaRishi00/waflow/internal/server/models"
	"github.com/guptaRishi00/waflow/internal/workflow"
)

type Repository interface {
	CreateBatch(ctx context.Context, steps []*models.WorkflowStep) error
	GetByID(ctx context.Context, id string) (*models.WorkflowStep, error)
	ListByApplication(ctx context.Context, applicationID string) ([]*models.WorkflowStep, error)
	UpdateStatus(ctx context.Context, id string, status workflow.StepStatus) error
}
