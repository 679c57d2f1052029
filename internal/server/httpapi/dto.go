package httpapi

import (
	"time"

	"github.com/guptaRishi00/waflow/internal/server/models"
	"github.com/guptaRishi00/waflow/internal/workflow"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type refreshRequest struct {
	RefreshToken string `json:"refreshToken"`
}

type createApplicationRequest struct {
	CustomerID   string `json:"customerId"`
	Jurisdiction string `json:"jurisdiction"`
	LegalType    string `json:"legalType"`
}

type stepStatusRequest struct {
	Status string `json:"status"`
}

type noteRequest struct {
	StepID  string `json:"stepId,omitempty"`
	Message string `json:"message"`
}

type reviewRequest struct {
	Status string `json:"status"`
}

type createCustomerRequest struct {
	Email       string `json:"email"`
	Password    string `json:"password"`
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	Phone       string `json:"phone"`
	Nationality string `json:"nationality"`
}

type userResponse struct {
	ID          string    `json:"id"`
	Role        string    `json:"role"`
	Email       string    `json:"email"`
	FirstName   string    `json:"firstName"`
	LastName    string    `json:"lastName"`
	Phone       string    `json:"phone,omitempty"`
	Nationality string    `json:"nationality,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

type loginResponse struct {
	User         userResponse `json:"user"`
	AccessToken  string       `json:"accessToken"`
	RefreshToken string       `json:"refreshToken"`
}

type tokenResponse struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

type actionResponse struct {
	Label  string `json:"label"`
	Target string `json:"target"`
}

type stepResponse struct {
	ID               string           `json:"id"`
	ApplicationID    string           `json:"applicationId"`
	StepIndex        int              `json:"stepIndex"`
	Name             string           `json:"name"`
	Status           string           `json:"status"`
	UpdatedAt        time.Time        `json:"updatedAt"`
	AvailableActions []actionResponse `json:"availableActions"`
}

type noteResponse struct {
	ID            string    `json:"id"`
	ApplicationID string    `json:"applicationId"`
	StepID        string    `json:"stepId,omitempty"`
	AuthorID      string    `json:"authorId"`
	AuthorRole    string    `json:"authorRole"`
	Message       string    `json:"message"`
	CreatedAt     time.Time `json:"createdAt"`
}

type applicationResponse struct {
	ID           string         `json:"id"`
	CustomerID   string         `json:"customerId"`
	AgentID      string         `json:"agentId,omitempty"`
	Jurisdiction string         `json:"jurisdiction"`
	LegalType    string         `json:"legalType"`
	Status       string         `json:"status"`
	CreatedAt    time.Time      `json:"createdAt"`
	UpdatedAt    time.Time      `json:"updatedAt"`
	Steps        []stepResponse `json:"steps,omitempty"`
	Notes        []noteResponse `json:"notes,omitempty"`
}

type documentResponse struct {
	ID            string    `json:"id"`
	CustomerID    string    `json:"customerId"`
	ApplicationID string    `json:"applicationId"`
	StepID        string    `json:"stepId,omitempty"`
	Name          string    `json:"name"`
	Type          string    `json:"type,omitempty"`
	Status        string    `json:"status"`
	UploadedBy    string    `json:"uploadedBy"`
	CreatedAt     time.Time `json:"createdAt"`
}

type notificationResponse struct {
	ID          string    `json:"id"`
	RecipientID string    `json:"recipientId"`
	Title       string    `json:"title"`
	Message     string    `json:"message"`
	Category    string    `json:"category"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
}

type clearAllResponse struct {
	Updated int64 `json:"updated"`
}

type downloadResponse struct {
	URL string `json:"url"`
}

func toUserResponse(u *models.User) userResponse {
	return userResponse{
		ID:          u.ID,
		Role:        string(u.Role),
		Email:       u.Email,
		FirstName:   u.FirstName,
		LastName:    u.LastName,
		Phone:       u.Phone,
		Nationality: u.Nationality,
		CreatedAt:   u.CreatedAt,
	}
}

func toStepResponse(s *models.WorkflowStep) stepResponse {
	actions := workflow.Transitions(s.Status)
	out := stepResponse{
		ID:               s.ID,
		ApplicationID:    s.ApplicationID,
		StepIndex:        s.StepIndex,
		Name:             s.Name,
		Status:           string(s.Status),
		UpdatedAt:        s.UpdatedAt,
		AvailableActions: make([]actionResponse, 0, len(actions)),
	}
	for _, a := range actions {
		out.AvailableActions = append(out.AvailableActions, actionResponse{Label: a.Label, Target: string(a.Target)})
	}
	return out
}

func toNoteResponse(n *models.Note) noteResponse {
	return noteResponse{
		ID:            n.ID,
		ApplicationID: n.ApplicationID,
		StepID:        n.StepID,
		AuthorID:      n.AuthorID,
		AuthorRole:    string(n.AuthorRole),
		Message:       n.Message,
		CreatedAt:     n.CreatedAt,
	}
}

func toApplicationResponse(a *models.Application) applicationResponse {
	out := applicationResponse{
		ID:           a.ID,
		CustomerID:   a.CustomerID,
		AgentID:      a.AgentID,
		Jurisdiction: a.Jurisdiction,
		LegalType:    a.LegalType,
		Status:       string(a.Status),
		CreatedAt:    a.CreatedAt,
		UpdatedAt:    a.UpdatedAt,
	}
	for _, s := range a.Steps {
		out.Steps = append(out.Steps, toStepResponse(s))
	}
	for _, n := range a.Notes {
		out.Notes = append(out.Notes, toNoteResponse(n))
	}
	return out
}

func toDocumentResponse(d *models.Document) documentResponse {
	return documentResponse{
		ID:            d.ID,
		CustomerID:    d.CustomerID,
		ApplicationID: d.ApplicationID,
		StepID:        d.StepID,
		Name:          d.Name,
		Type:          d.Type,
		Status:        string(d.Status),
		UploadedBy:    d.UploadedBy,
		CreatedAt:     d.CreatedAt,
	}
}

func toNotificationResponse(n *models.Notification) notificationResponse {
	return notificationResponse{
		ID:          n.ID,
		RecipientID: n.RecipientID,
		Title:       n.Title,
		Message:     n.Message,
		Category:    n.Category,
		Status:      string(n.Status),
		CreatedAt:   n.CreatedAt,
	}
}
