// Package panels holds the display logic of the document and notes panels.
package panels

import (
	"strings"

	"github.com/guptaRishi00/waflow/internal/client/api"
)

// uploadBlockingStatuses mirrors the server's upload gate so the control is
// hidden before a doomed request is ever sent. The server remains the
// authority; a race still gets a conflict response.
var uploadBlockingStatuses = []string{"approved", "under review", "uploaded"}

// DocumentRow is one row of the per-step document panel.
type DocumentRow struct {
	ID       string
	Name     string
	Status   string
	Uploaded string
}

// CanUpload reports whether the upload control for stepID should be shown,
// given the documents already attached to the application.
func CanUpload(docs []api.Document, stepID string) bool {
	for _, d := range docs {
		if d.StepID != stepID {
			continue
		}
		status := strings.ToLower(strings.TrimSpace(d.Status))
		for _, blocked := range uploadBlockingStatuses {
			if status == blocked {
				return false
			}
		}
	}
	return true
}

// StepDocuments filters the application's documents down to one step.
func StepDocuments(docs []api.Document, stepID string) []DocumentRow {
	var out []DocumentRow
	for _, d := range docs {
		if d.StepID != stepID {
			continue
		}
		out = append(out, DocumentRow{
			ID:       d.ID,
			Name:     d.Name,
			Status:   d.Status,
			Uploaded: d.CreatedAt.Format("2006-01-02 15:04"),
		})
	}
	return out
}
