// Package httpapi exposes the server's REST surface. Handlers translate
// JSON requests into service calls and service errors into HTTP statuses.
package httpapi

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/guptaRishi00/waflow/internal/logging"
	"github.com/guptaRishi00/waflow/internal/server/models"
	"github.com/guptaRishi00/waflow/internal/server/services"
)

// UserAPI is the slice of the user service the handlers need.
type UserAPI interface {
	Login(ctx context.Context, email, password string) (*models.User, *services.TokenPair, error)
	RefreshToken(ctx context.Context, refreshToken string) (*services.TokenPair, error)
	Logout(ctx context.Context, refreshToken string) error
	CreateCustomer(ctx context.Context, actor services.Actor, user *models.User, password string) (*models.User, error)
	GetByID(ctx context.Context, actor services.Actor, id string) (*models.User, error)
	ListByRole(ctx context.Context, actor services.Actor, role models.Role) ([]*models.User, error)
}

type ApplicationAPI interface {
	Create(ctx context.Context, actor services.Actor, customerID, jurisdiction, legalType string) (*models.Application, error)
	Get(ctx context.Context, actor services.Actor, id string) (*models.Application, error)
	List(ctx context.Context, actor services.Actor) ([]*models.Application, error)
	UpdateStepStatus(ctx context.Context, actor services.Actor, stepID, rawStatus string) (*models.Application, error)
	AddNote(ctx context.Context, actor services.Actor, applicationID, stepID, message string) (*models.Note, error)
}

type DocumentAPI interface {
	Upload(ctx context.Context, actor services.Actor, doc *models.Document, body io.Reader) (*models.Document, error)
	ListByCustomer(ctx context.Context, actor services.Actor, customerID string) ([]*models.Document, error)
	ListByApplication(ctx context.Context, actor services.Actor, applicationID string) ([]*models.Document, error)
	Review(ctx context.Context, actor services.Actor, id string, status models.DocumentStatus) (*models.Document, error)
	DownloadURL(ctx context.Context, actor services.Actor, id string) (string, error)
}

type NotificationAPI interface {
	List(ctx context.Context, actor services.Actor, recipientID string) ([]*models.Notification, error)
	MarkRead(ctx context.Context, actor services.Actor, id string) error
	MarkUnread(ctx context.Context, actor services.Actor, id string) error
	Archive(ctx context.Context, actor services.Actor, id string) error
	Delete(ctx context.Context, actor services.Actor, id string) error
	ClearAll(ctx context.Context, actor services.Actor) (int64, error)
}

type Server struct {
	address       string
	logger        logging.Logger
	users         UserAPI
	applications  ApplicationAPI
	documents     DocumentAPI
	notifications NotificationAPI
	jwtSecret     []byte
}

func NewServer(addr string, l logging.Logger, us UserAPI, as ApplicationAPI, ds DocumentAPI, ns NotificationAPI, secretKey string) *Server {
	return &Server{
		address:       addr,
		logger:        l.With("module", "http_server"),
		users:         us,
		applications:  as,
		documents:     ds,
		notifications: ns,
		jwtSecret:     []byte(secretKey),
	}
}

// Run serves the API until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:    s.address,
		Handler: s.Router(),
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}
