// Package documents provides persistence for document metadata. The file
// content itself lives in object storage under Document.StorageKey.
package documents

import (
	"context"

	"github.com/guptaRishi00/waflow/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, doc *models.Document) (*models.Document, error)
	GetByID(ctx context.Context, id string) (*models.Document, error)
	ListByCustomer(ctx context.Context, customerID string) ([]*models.Document, error)
	ListByApplication(ctx context.Context, applicationID string) ([]*models.Document, error)
	ListByStep(ctx context.Context, stepID string) ([]*models.Document, error)
	UpdateStatus(ctx context.Context, id string, status models.DocumentStatus) error
}
