// Package models defines server-side data models persisted in the database.
package models

import (
	"time"

	"github.com/guptaRishi00/waflow/internal/workflow"
)

// Application is a business-registration case owned by one customer and
// worked by an assigned agent. Its overall status is derived from its steps.
type Application struct {
	ID           string
	CustomerID   string
	AgentID      string
	Jurisdiction string
	LegalType    string
	Status       workflow.ApplicationStatus
	Steps        []*WorkflowStep
	Notes        []*Note
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// WorkflowStep is one ordered step of an application. StepIndex fixes the
// position; status changes go through the workflow transition table.
type WorkflowStep struct {
	ID            string
	ApplicationID string
	StepIndex     int
	Name          string
	Status        workflow.StepStatus
	UpdatedAt     time.Time
}

// Note is an append-only free-text message attached to an application,
// optionally linked to a single step.
type Note struct {
	ID            string
	ApplicationID string
	StepID        string
	AuthorID      string
	AuthorRole    Role
	Message       string
	CreatedAt     time.Time
}
