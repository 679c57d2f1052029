package services

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"strings"

	"github.com/guptaRishi00/waflow/internal/common"
	"github.com/guptaRishi00/waflow/internal/dbx"
	"github.com/guptaRishi00/waflow/internal/server/models"
	"github.com/guptaRishi00/waflow/internal/server/repositories/repomanager"
)

// blockingStatuses are document statuses that close a step for further
// uploads. The comparison is case-insensitive.
var blockingStatuses = []string{"approved", "under review", "uploaded"}

// DocumentService stores document metadata in Postgres and blobs in object
// storage, and enforces the per-step upload gate.
type DocumentService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	store       *ObjectStore
}

func NewDocumentService(db *sql.DB, m repomanager.RepositoryManager, store *ObjectStore) *DocumentService {
	return &DocumentService{db: db, repomanager: m, store: store}
}

// UploadBlocked reports whether an existing document already closes the
// step for new uploads.
func UploadBlocked(existing []*models.Document) bool {
	for _, doc := range existing {
		status := strings.ToLower(strings.TrimSpace(string(doc.Status)))
		for _, blocked := range blockingStatuses {
			if status == blocked {
				return true
			}
		}
	}
	return false
}

// Upload stores a new document for a step after checking the upload gate.
// The blob is written to object storage first; metadata is committed only
// if that succeeds.
func (s *DocumentService) Upload(ctx context.Context, actor Actor, doc *models.Document, body io.Reader) (*models.Document, error) {
	if doc.Name == "" || doc.ApplicationID == "" {
		return nil, common.ErrorValidation
	}

	app, err := s.repomanager.Applications(s.db).GetByID(ctx, doc.ApplicationID)
	if err != nil {
		return nil, err
	}
	if !actor.IsStaff() && app.CustomerID != actor.ID {
		return nil, common.ErrorForbidden
	}

	if doc.StepID != "" {
		existing, err := s.repomanager.Documents(s.db).ListByStep(ctx, doc.StepID)
		if err != nil {
			return nil, err
		}
		if UploadBlocked(existing) {
			return nil, common.ErrUploadBlocked
		}
	}

	doc.CustomerID = app.CustomerID
	doc.UploadedBy = actor.ID
	doc.Status = models.DocumentUploaded
	doc.StorageKey = RandomStorageKey()

	if err := s.store.Put(ctx, doc.StorageKey, doc.ContentType, body); err != nil {
		return nil, fmt.Errorf("error storing document: %w", err)
	}

	created, err := s.repomanager.Documents(s.db).Create(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("error creating document: %w", err)
	}

	return created, nil
}

// ListByCustomer returns a customer's documents. Customers see only their own.
func (s *DocumentService) ListByCustomer(ctx context.Context, actor Actor, customerID string) ([]*models.Document, error) {
	if !actor.IsStaff() && actor.ID != customerID {
		return nil, common.ErrorForbidden
	}
	return s.repomanager.Documents(s.db).ListByCustomer(ctx, customerID)
}

// ListByApplication returns an application's documents with the same scoping
// rule as the application itself.
func (s *DocumentService) ListByApplication(ctx context.Context, actor Actor, applicationID string) ([]*models.Document, error) {
	app, err := s.repomanager.Applications(s.db).GetByID(ctx, applicationID)
	if err != nil {
		return nil, err
	}
	if !actor.IsStaff() && app.CustomerID != actor.ID {
		return nil, common.ErrorForbidden
	}
	return s.repomanager.Documents(s.db).ListByApplication(ctx, applicationID)
}

// Review sets a document to Approved or Rejected and notifies the customer.
// Staff only.
func (s *DocumentService) Review(ctx context.Context, actor Actor, id string, status models.DocumentStatus) (*models.Document, error) {
	if !actor.IsStaff() {
		return nil, common.ErrorForbidden
	}
	if status != models.DocumentApproved && status != models.DocumentRejected {
		return nil, common.ErrorValidation
	}

	doc, err := s.repomanager.Documents(s.db).GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if err := s.repomanager.Documents(tx).UpdateStatus(ctx, id, status); err != nil {
			return err
		}
		_, err := s.repomanager.Notifications(tx).Create(ctx, &models.Notification{
			RecipientID: doc.CustomerID,
			Title:       fmt.Sprintf("Document %q %s", doc.Name, strings.ToLower(string(status))),
			Message:     fmt.Sprintf("Your document %q was %s by an agent.", doc.Name, strings.ToLower(string(status))),
			Category:    "document",
			Status:      models.NotificationUnread,
		})
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("error reviewing document: %w", err)
	}

	doc.Status = status
	return doc, nil
}

// DownloadURL returns a presigned GET URL for the document blob.
func (s *DocumentService) DownloadURL(ctx context.Context, actor Actor, id string) (string, error) {
	doc, err := s.repomanager.Documents(s.db).GetByID(ctx, id)
	if err != nil {
		return "", err
	}
	if !actor.IsStaff() && doc.CustomerID != actor.ID {
		return "", common.ErrorForbidden
	}
	return s.store.PresignedGetURL(ctx, doc.StorageKey)
}
