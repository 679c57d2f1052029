package models

import "time"

// DocumentStatus tracks the review state of an uploaded document.
type DocumentStatus string

const (
	DocumentUploaded    DocumentStatus = "Uploaded"
	DocumentUnderReview DocumentStatus = "Under Review"
	DocumentApproved    DocumentStatus = "Approved"
	DocumentRejected    DocumentStatus = "Rejected"
	DocumentPending     DocumentStatus = "Pending"
)

// Document is the metadata record for a file held in object storage.
// StorageKey is the object key of the blob; the content is never stored
// in the database.
type Document struct {
	ID            string
	ApplicationID string
	StepID        string
	CustomerID    string
	Type          string
	Name          string
	StorageKey    string
	ContentType   string
	Size          int64
	Status        DocumentStatus
	UploadedBy    string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
