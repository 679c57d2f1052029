package services

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/guptaRishi00/waflow/internal/common"
	"github.com/guptaRishi00/waflow/internal/dbx"
	"github.com/guptaRishi00/waflow/internal/server/models"
	"github.com/guptaRishi00/waflow/internal/server/repositories/repomanager"
	"github.com/guptaRishi00/waflow/internal/workflow"
)

// ApplicationService owns the registration workflow: application creation
// with the step template, step status transitions, overall status derivation
// and notes. All transition legality is decided here, never by clients.
type ApplicationService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewApplicationService(db *sql.DB, m repomanager.RepositoryManager) *ApplicationService {
	return &ApplicationService{db: db, repomanager: m}
}

// Create opens a new application for customerID with the full step template,
// all steps Started. Staff only.
func (s *ApplicationService) Create(ctx context.Context, actor Actor, customerID, jurisdiction, legalType string) (*models.Application, error) {
	if !actor.IsStaff() {
		return nil, common.ErrorForbidden
	}

	if _, err := s.repomanager.Users(s.db).GetByID(ctx, customerID); err != nil {
		return nil, err
	}

	app := &models.Application{
		CustomerID:   customerID,
		AgentID:      actor.ID,
		Jurisdiction: jurisdiction,
		LegalType:    legalType,
		Status:       workflow.ApplicationNew,
	}

	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		created, err := s.repomanager.Applications(tx).Create(ctx, app)
		if err != nil {
			return err
		}

		steps := make([]*models.WorkflowStep, 0, len(workflow.CanonicalStepNames))
		for i, name := range workflow.CanonicalStepNames {
			steps = append(steps, &models.WorkflowStep{
				ApplicationID: created.ID,
				StepIndex:     i,
				Name:          name,
				Status:        workflow.StatusStarted,
			})
		}
		if err := s.repomanager.Steps(tx).CreateBatch(ctx, steps); err != nil {
			return err
		}
		app.Steps = steps
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("error creating application: %w", err)
	}

	return app, nil
}

// Get loads an application with its steps and notes. Customers may only
// load their own.
func (s *ApplicationService) Get(ctx context.Context, actor Actor, id string) (*models.Application, error) {
	app, err := s.repomanager.Applications(s.db).GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !actor.IsStaff() && app.CustomerID != actor.ID {
		return nil, common.ErrorForbidden
	}

	if app.Steps, err = s.repomanager.Steps(s.db).ListByApplication(ctx, app.ID); err != nil {
		return nil, err
	}
	if app.Notes, err = s.repomanager.Notes(s.db).ListByApplication(ctx, app.ID); err != nil {
		return nil, err
	}
	return app, nil
}

// List returns the applications visible to the actor: staff see all,
// customers only their own.
func (s *ApplicationService) List(ctx context.Context, actor Actor) ([]*models.Application, error) {
	if actor.IsStaff() {
		return s.repomanager.Applications(s.db).ListAll(ctx)
	}
	return s.repomanager.Applications(s.db).ListByCustomer(ctx, actor.ID)
}

// UpdateStepStatus moves one step to a new status. The target may arrive in
// either status vocabulary. The transition must be legal per the workflow
// table and the step must not be locked by an unsatisfied predecessor.
// On success the owning application's overall status is re-derived and the
// customer is notified, all in one transaction. The refreshed application
// is returned so clients can replace local state wholesale.
func (s *ApplicationService) UpdateStepStatus(ctx context.Context, actor Actor, stepID string, rawStatus string) (*models.Application, error) {
	target, ok := workflow.Normalize(rawStatus)
	if !ok {
		return nil, fmt.Errorf("%w: unknown status %q", common.ErrorValidation, rawStatus)
	}

	step, err := s.repomanager.Steps(s.db).GetByID(ctx, stepID)
	if err != nil {
		return nil, err
	}

	app, err := s.repomanager.Applications(s.db).GetByID(ctx, step.ApplicationID)
	if err != nil {
		return nil, err
	}
	if !actor.IsStaff() && app.CustomerID != actor.ID {
		return nil, common.ErrorForbidden
	}

	steps, err := s.repomanager.Steps(s.db).ListByApplication(ctx, step.ApplicationID)
	if err != nil {
		return nil, err
	}

	if step.StepIndex > 0 {
		prev := steps[step.StepIndex-1]
		if !workflow.Satisfied(prev.Status) {
			return nil, fmt.Errorf("%w: %q requires %q first", common.ErrStepLocked, step.Name, prev.Name)
		}
	}

	if !workflow.CanTransition(step.Status, target) {
		return nil, fmt.Errorf("%w: %s -> %s", common.ErrInvalidTransition, step.Status, target)
	}

	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if err := s.repomanager.Steps(tx).UpdateStatus(ctx, stepID, target); err != nil {
			return err
		}

		statuses := make([]workflow.StepStatus, len(steps))
		for i, st := range steps {
			statuses[i] = st.Status
			if st.ID == stepID {
				statuses[i] = target
			}
		}
		overall := workflow.DeriveOverallStatus(statuses)
		if overall != app.Status {
			if err := s.repomanager.Applications(tx).UpdateStatus(ctx, app.ID, overall); err != nil {
				return err
			}
		}

		_, err := s.repomanager.Notifications(tx).Create(ctx, &models.Notification{
			RecipientID: app.CustomerID,
			Title:       fmt.Sprintf("Step %q is now %s", step.Name, target),
			Message:     fmt.Sprintf("Your application step %q moved to %s.", step.Name, target),
			Category:    "workflow",
			Status:      models.NotificationUnread,
		})
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("error updating step: %w", err)
	}

	return s.Get(ctx, actor, app.ID)
}

// AddNote appends a free-text note to an application, optionally linked to
// one step. Customers may only write to their own application.
func (s *ApplicationService) AddNote(ctx context.Context, actor Actor, applicationID, stepID, message string) (*models.Note, error) {
	if message == "" {
		return nil, common.ErrorValidation
	}

	app, err := s.repomanager.Applications(s.db).GetByID(ctx, applicationID)
	if err != nil {
		return nil, err
	}
	if !actor.IsStaff() && app.CustomerID != actor.ID {
		return nil, common.ErrorForbidden
	}

	note := &models.Note{
		ApplicationID: applicationID,
		StepID:        stepID,
		AuthorID:      actor.ID,
		AuthorRole:    actor.Role,
		Message:       message,
	}

	var created *models.Note
	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		created, err = s.repomanager.Notes(tx).Create(ctx, note)
		if err != nil {
			return err
		}

		// Notify the other party of the conversation.
		recipient := app.CustomerID
		if !actor.IsStaff() {
			recipient = app.AgentID
		}
		if recipient == "" || recipient == actor.ID {
			return nil
		}
		_, err = s.repomanager.Notifications(tx).Create(ctx, &models.Notification{
			RecipientID: recipient,
			Title:       "New note on application",
			Message:     message,
			Category:    "note",
			Status:      models.NotificationUnread,
		})
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("error adding note: %w", err)
	}

	return created, nil
}
