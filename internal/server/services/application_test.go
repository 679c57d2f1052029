package services

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guptaRishi00/waflow/internal/common"
	"github.com/guptaRishi00/waflow/internal/server/models"
	"github.com/guptaRishi00/waflow/internal/workflow"
)

func agentActor() Actor    { return Actor{ID: "agent-1", Role: models.RoleAgent} }
func customerActor() Actor { return Actor{ID: "cust-1", Role: models.RoleCustomer} }

func stepFixture(id, appID string, index int, name string, status workflow.StepStatus) *models.WorkflowStep {
	return &models.WorkflowStep{ID: id, ApplicationID: appID, StepIndex: index, Name: name, Status: status}
}

func sqlMockExpectTx(t *testing.T, mock sqlmock.Sqlmock) {
	t.Helper()
	mock.ExpectBegin()
	mock.ExpectCommit()
}

func workflowFixture(t *testing.T) (*ApplicationService, *fakeAppsRepo, *fakeStepsRepo, *fakeNotifsRepo, *fakeRepoManager, sqlmock.Sqlmock) {
	t.Helper()
	db, mock := newSQLMockDB(t)

	app := &models.Application{ID: "app-1", CustomerID: "cust-1", AgentID: "agent-1", Status: workflow.ApplicationInProgress}
	steps := []*models.WorkflowStep{
		stepFixture("s0", "app-1", 0, "Application Submission", workflow.StatusApproved),
		stepFixture("s1", "app-1", 1, "KYC & Background Check", workflow.StatusSubmittedForReview),
		stepFixture("s2", "app-1", 2, "Trade Name Reservation", workflow.StatusStarted),
	}
	byID := map[string]*models.WorkflowStep{}
	for _, s := range steps {
		byID[s.ID] = s
	}

	apps := &fakeAppsRepo{byID: map[string]*models.Application{"app-1": app}}
	stepsRepo := &fakeStepsRepo{byID: byID, byApplication: map[string][]*models.WorkflowStep{"app-1": steps}}
	notifs := &fakeNotifsRepo{}
	rm := &fakeRepoManager{apps: apps, steps: stepsRepo, notifs: notifs, notes: &fakeNotesRepo{},
		users: &fakeUsersRepo{byID: map[string]*models.User{"cust-1": {ID: "cust-1", Role: models.RoleCustomer}}}}

	return NewApplicationService(db, rm), apps, stepsRepo, notifs, rm, mock
}

func TestUpdateStepStatus_LegalTransition(t *testing.T) {
	svc, apps, steps, notifs, _, mock := workflowFixture(t)

	// one transaction: step update + app status + notification
	sqlMockExpectTx(t, mock)

	app, err := svc.UpdateStepStatus(context.Background(), agentActor(), "s1", "Approved")
	require.NoError(t, err)
	require.NotNil(t, app)

	assert.Equal(t, workflow.StatusApproved, steps.statusUpdates["s1"])
	require.Len(t, notifs.created, 1)
	assert.Equal(t, "cust-1", notifs.created[0].RecipientID)
	// s0 approved, s1 approved, s2 started -> overall stays In Progress,
	// so no redundant status update is issued
	assert.Empty(t, apps.statusUpdates)
}

func TestUpdateStepStatus_IllegalTransition(t *testing.T) {
	svc, _, steps, _, _, _ := workflowFixture(t)

	_, err := svc.UpdateStepStatus(context.Background(), agentActor(), "s2", "Approved")
	assert.True(t, errors.Is(err, common.ErrInvalidTransition), "got %v", err)
	assert.Empty(t, steps.statusUpdates)
}

func TestUpdateStepStatus_LockedByPredecessor(t *testing.T) {
	svc, _, steps, _, rm, _ := workflowFixture(t)
	// Make s1 unsatisfied so s2 is locked.
	rmSteps := rm.steps.(*fakeStepsRepo)
	rmSteps.byID["s1"].Status = workflow.StatusStarted
	rmSteps.byApplication["app-1"][1].Status = workflow.StatusStarted

	_, err := svc.UpdateStepStatus(context.Background(), agentActor(), "s2", "Submitted for Review")
	assert.True(t, errors.Is(err, common.ErrStepLocked), "got %v", err)
	assert.Empty(t, steps.statusUpdates)
}

func TestUpdateStepStatus_UnknownStatus(t *testing.T) {
	svc, _, _, _, _, _ := workflowFixture(t)

	_, err := svc.UpdateStepStatus(context.Background(), agentActor(), "s1", "banana")
	assert.True(t, errors.Is(err, common.ErrorValidation), "got %v", err)
}

func TestUpdateStepStatus_LegacyVocabularyAccepted(t *testing.T) {
	svc, _, steps, _, _, mock := workflowFixture(t)
	sqlMockExpectTx(t, mock)

	_, err := svc.UpdateStepStatus(context.Background(), customerActor(), "s1", "awaiting")
	require.NoError(t, err)
	assert.Equal(t, workflow.StatusAwaitingResponse, steps.statusUpdates["s1"])
}

func TestUpdateStepStatus_CustomerCannotTouchForeignApplication(t *testing.T) {
	svc, _, _, _, _, _ := workflowFixture(t)

	_, err := svc.UpdateStepStatus(context.Background(), Actor{ID: "other", Role: models.RoleCustomer}, "s1", "Approved")
	assert.True(t, errors.Is(err, common.ErrorForbidden), "got %v", err)
}

func TestUpdateStepStatus_CompletionDerivesCompleted(t *testing.T) {
	svc, apps, _, _, rm, mock := workflowFixture(t)
	rmSteps := rm.steps.(*fakeStepsRepo)
	rmSteps.byApplication["app-1"][2].Status = workflow.StatusSkipped
	sqlMockExpectTx(t, mock)

	_, err := svc.UpdateStepStatus(context.Background(), agentActor(), "s1", "Approved")
	require.NoError(t, err)
	assert.Equal(t, workflow.ApplicationCompleted, apps.statusUpdates["app-1"])
}

func TestCreate_BuildsStepTemplate(t *testing.T) {
	svc, apps, _, _, _, mock := workflowFixture(t)
	sqlMockExpectTx(t, mock)

	app, err := svc.Create(context.Background(), agentActor(), "cust-1", "Dubai", "LLC")
	require.NoError(t, err)
	require.Len(t, apps.created, 1)
	require.Len(t, app.Steps, len(workflow.CanonicalStepNames))
	for i, s := range app.Steps {
		assert.Equal(t, i, s.StepIndex)
		assert.Equal(t, workflow.StatusStarted, s.Status)
	}
	assert.Equal(t, workflow.ApplicationNew, app.Status)
}

func TestCreate_CustomerForbidden(t *testing.T) {
	svc, _, _, _, _, _ := workflowFixture(t)

	_, err := svc.Create(context.Background(), customerActor(), "cust-1", "Dubai", "LLC")
	assert.True(t, errors.Is(err, common.ErrorForbidden))
}

func TestAddNote_NotifiesAgentWhenCustomerWrites(t *testing.T) {
	svc, _, _, notifs, _, mock := workflowFixture(t)
	sqlMockExpectTx(t, mock)

	note, err := svc.AddNote(context.Background(), customerActor(), "app-1", "", "please advise")
	require.NoError(t, err)
	assert.Equal(t, "note-created", note.ID)
	require.Len(t, notifs.created, 1)
	assert.Equal(t, "agent-1", notifs.created[0].RecipientID)
}

func TestAddNote_EmptyMessageRejected(t *testing.T) {
	svc, _, _, _, _, _ := workflowFixture(t)

	_, err := svc.AddNote(context.Background(), customerActor(), "app-1", "", "")
	assert.True(t, errors.Is(err, common.ErrorValidation))
}
