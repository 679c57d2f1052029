// Package users provides persistence for user accounts.
package users

import (
	"context"

	"github.com/guptaRishi00/waflow/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByID(ctx context.Context, id string) (*models.User, error)
	ListByRole(ctx context.Context, role models.Role) ([]*models.User, error)
}
