// Package repomanager vends repository implementations bound to a DBTX so
// services can run several repositories inside one transaction.
package repomanager

import (
	"context"
	"database/sql"

	"github.com/guptaRishi00/waflow/internal/dbx"
	"github.com/guptaRishi00/waflow/internal/server/repositories/applications"
	"github.com/guptaRishi00/waflow/internal/server/repositories/documents"
	"github.com/guptaRishi00/waflow/internal/server/repositories/notes"
	"github.com/guptaRishi00/waflow/internal/server/repositories/notifications"
	"github.com/guptaRishi00/waflow/internal/server/repositories/refreshtokens"
	"github.com/guptaRishi00/waflow/internal/server/repositories/steps"
	"github.com/guptaRishi00/waflow/internal/server/repositories/users"
)

// RepositoryManager returns repositories bound to the given DBTX, which is
// either the root *sql.DB or a *sql.Tx inside dbx.WithTx.
type RepositoryManager interface {
	Users(db dbx.DBTX) users.Repository
	RefreshTokens(db dbx.DBTX) refreshtokens.Repository
	Applications(db dbx.DBTX) applications.Repository
	Steps(db dbx.DBTX) steps.Repository
	Documents(db dbx.DBTX) documents.Repository
	Notes(db dbx.DBTX) notes.Repository
	Notifications(db dbx.DBTX) notifications.Repository

	RunMigrations(ctx context.Context, db *sql.DB) error
}
