package services

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/guptaRishi00/waflow/internal/common"
	"github.com/guptaRishi00/waflow/internal/dbx"
	"github.com/guptaRishi00/waflow/internal/server/models"
	appsrepo "github.com/guptaRishi00/waflow/internal/server/repositories/applications"
	docsrepo "github.com/guptaRishi00/waflow/internal/server/repositories/documents"
	notesrepo "github.com/guptaRishi00/waflow/internal/server/repositories/notes"
	notifrepo "github.com/guptaRishi00/waflow/internal/server/repositories/notifications"
	refreshrepo "github.com/guptaRishi00/waflow/internal/server/repositories/refreshtokens"
	stepsrepo "github.com/guptaRishi00/waflow/internal/server/repositories/steps"
	usersrepo "github.com/guptaRishi00/waflow/internal/server/repositories/users"
	"github.com/guptaRishi00/waflow/internal/workflow"
)

// --- helpers ---

func newSQLMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db, mock
}

func errNotFound() error { return common.ErrorNotFound }

// --- repo fakes ---

type fakeUsersRepo struct {
	byID      map[string]*models.User
	byEmail   map[string]*models.User
	createErr error
	created   []*models.User
}

func (f *fakeUsersRepo) Create(ctx context.Context, u *models.User) (*models.User, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	u.ID = "created-id"
	u.CreatedAt = time.Now()
	f.created = append(f.created, u)
	return u, nil
}

func (f *fakeUsersRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	if u, ok := f.byEmail[email]; ok {
		return u, nil
	}
	return nil, errNotFound()
}

func (f *fakeUsersRepo) GetByID(ctx context.Context, id string) (*models.User, error) {
	if u, ok := f.byID[id]; ok {
		return u, nil
	}
	return nil, errNotFound()
}

func (f *fakeUsersRepo) ListByRole(ctx context.Context, role models.Role) ([]*models.User, error) {
	var out []*models.User
	for _, u := range f.byID {
		if u.Role == role {
			out = append(out, u)
		}
	}
	return out, nil
}

type fakeRefreshRepo struct {
	tokens    map[string]*models.RefreshToken
	createErr error
}

func (f *fakeRefreshRepo) Create(ctx context.Context, userID, token string, validity time.Duration) error {
	if f.createErr != nil {
		return f.createErr
	}
	if f.tokens == nil {
		f.tokens = map[string]*models.RefreshToken{}
	}
	f.tokens[token] = &models.RefreshToken{UserID: userID, Token: token, Expires: time.Now().Add(validity)}
	return nil
}

func (f *fakeRefreshRepo) Find(ctx context.Context, token string) (*models.RefreshToken, error) {
	if t, ok := f.tokens[token]; ok {
		return t, nil
	}
	return nil, errNotFound()
}

func (f *fakeRefreshRepo) Delete(ctx context.Context, token string) error {
	delete(f.tokens, token)
	return nil
}

type fakeAppsRepo struct {
	byID          map[string]*models.Application
	statusUpdates map[string]workflow.ApplicationStatus
	created       []*models.Application
}

func (f *fakeAppsRepo) Create(ctx context.Context, app *models.Application) (*models.Application, error) {
	app.ID = "app-created"
	f.created = append(f.created, app)
	return app, nil
}

func (f *fakeAppsRepo) GetByID(ctx context.Context, id string) (*models.Application, error) {
	if a, ok := f.byID[id]; ok {
		return a, nil
	}
	return nil, errNotFound()
}

func (f *fakeAppsRepo) ListByCustomer(ctx context.Context, customerID string) ([]*models.Application, error) {
	var out []*models.Application
	for _, a := range f.byID {
		if a.CustomerID == customerID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (f *fakeAppsRepo) ListAll(ctx context.Context) ([]*models.Application, error) {
	var out []*models.Application
	for _, a := range f.byID {
		out = append(out, a)
	}
	return out, nil
}

func (f *fakeAppsRepo) UpdateStatus(ctx context.Context, id string, status workflow.ApplicationStatus) error {
	if f.statusUpdates == nil {
		f.statusUpdates = map[string]workflow.ApplicationStatus{}
	}
	f.statusUpdates[id] = status
	return nil
}

type fakeStepsRepo struct {
	byID          map[string]*models.WorkflowStep
	byApplication map[string][]*models.WorkflowStep
	statusUpdates map[string]workflow.StepStatus
}

func (f *fakeStepsRepo) CreateBatch(ctx context.Context, steps []*models.WorkflowStep) error {
	for _, s := range steps {
		s.ID = "step-" + s.Name
	}
	return nil
}

func (f *fakeStepsRepo) GetByID(ctx context.Context, id string) (*models.WorkflowStep, error) {
	if s, ok := f.byID[id]; ok {
		return s, nil
	}
	return nil, errNotFound()
}

func (f *fakeStepsRepo) ListByApplication(ctx context.Context, applicationID string) ([]*models.WorkflowStep, error) {
	return f.byApplication[applicationID], nil
}

func (f *fakeStepsRepo) UpdateStatus(ctx context.Context, id string, status workflow.StepStatus) error {
	if f.statusUpdates == nil {
		f.statusUpdates = map[string]workflow.StepStatus{}
	}
	f.statusUpdates[id] = status
	return nil
}

type fakeDocsRepo struct {
	byID     map[string]*models.Document
	byStep   map[string][]*models.Document
	byApp    map[string][]*models.Document
	created  []*models.Document
	statusOf map[string]models.DocumentStatus
}

func (f *fakeDocsRepo) Create(ctx context.Context, doc *models.Document) (*models.Document, error) {
	doc.ID = "doc-created"
	f.created = append(f.created, doc)
	return doc, nil
}

func (f *fakeDocsRepo) GetByID(ctx context.Context, id string) (*models.Document, error) {
	if d, ok := f.byID[id]; ok {
		return d, nil
	}
	return nil, errNotFound()
}

func (f *fakeDocsRepo) ListByCustomer(ctx context.Context, customerID string) ([]*models.Document, error) {
	return nil, nil
}

func (f *fakeDocsRepo) ListByApplication(ctx context.Context, applicationID string) ([]*models.Document, error) {
	return f.byApp[applicationID], nil
}

func (f *fakeDocsRepo) ListByStep(ctx context.Context, stepID string) ([]*models.Document, error) {
	return f.byStep[stepID], nil
}

func (f *fakeDocsRepo) UpdateStatus(ctx context.Context, id string, status models.DocumentStatus) error {
	if f.statusOf == nil {
		f.statusOf = map[string]models.DocumentStatus{}
	}
	f.statusOf[id] = status
	return nil
}

type fakeNotesRepo struct {
	created []*models.Note
}

func (f *fakeNotesRepo) Create(ctx context.Context, note *models.Note) (*models.Note, error) {
	note.ID = "note-created"
	note.CreatedAt = time.Now()
	f.created = append(f.created, note)
	return note, nil
}

func (f *fakeNotesRepo) ListByApplication(ctx context.Context, applicationID string) ([]*models.Note, error) {
	return f.created, nil
}

type fakeNotifsRepo struct {
	byID        map[string]*models.Notification
	created     []*models.Notification
	statusOf    map[string]models.NotificationStatus
	deleted     []string
	clearedRows int64
}

func (f *fakeNotifsRepo) Create(ctx context.Context, n *models.Notification) (*models.Notification, error) {
	n.ID = "notif-created"
	f.created = append(f.created, n)
	return n, nil
}

func (f *fakeNotifsRepo) GetByID(ctx context.Context, id string) (*models.Notification, error) {
	if n, ok := f.byID[id]; ok {
		return n, nil
	}
	return nil, errNotFound()
}

func (f *fakeNotifsRepo) ListByRecipient(ctx context.Context, recipientID string) ([]*models.Notification, error) {
	var out []*models.Notification
	for _, n := range f.byID {
		if n.RecipientID == recipientID {
			out = append(out, n)
		}
	}
	return out, nil
}

func (f *fakeNotifsRepo) UpdateStatus(ctx context.Context, id string, status models.NotificationStatus) error {
	if f.statusOf == nil {
		f.statusOf = map[string]models.NotificationStatus{}
	}
	f.statusOf[id] = status
	return nil
}

func (f *fakeNotifsRepo) Delete(ctx context.Context, id string) error {
	f.deleted = append(f.deleted, id)
	return nil
}

func (f *fakeNotifsRepo) MarkAllRead(ctx context.Context, recipientID string) (int64, error) {
	return f.clearedRows, nil
}

// --- fake repomanager ---

type fakeRepoManager struct {
	users   usersrepo.Repository
	refresh refreshrepo.Repository
	apps    appsrepo.Repository
	steps   stepsrepo.Repository
	docs    docsrepo.Repository
	notes   notesrepo.Repository
	notifs  notifrepo.Repository
}

func (m *fakeRepoManager) Users(dbx.DBTX) usersrepo.Repository          { return m.users }
func (m *fakeRepoManager) RefreshTokens(dbx.DBTX) refreshrepo.Repository { return m.refresh }
func (m *fakeRepoManager) Applications(dbx.DBTX) appsrepo.Repository    { return m.apps }
func (m *fakeRepoManager) Steps(dbx.DBTX) stepsrepo.Repository          { return m.steps }
func (m *fakeRepoManager) Documents(dbx.DBTX) docsrepo.Repository       { return m.docs }
func (m *fakeRepoManager) Notes(dbx.DBTX) notesrepo.Repository          { return m.notes }
func (m *fakeRepoManager) Notifications(dbx.DBTX) notifrepo.Repository  { return m.notifs }

func (m *fakeRepoManager) RunMigrations(ctx context.Context, db *sql.DB) error { return nil }
