package api

import "time"

// User mirrors the server's user payload.
type User struct {
	ID          string    `json:"id"`
	Role        string    `json:"role"`
	Email       string    `json:"email"`
	FirstName   string    `json:"firstName"`
	LastName    string    `json:"lastName"`
	Phone       string    `json:"phone,omitempty"`
	Nationality string    `json:"nationality,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Action is one legal transition the server advertises for a step.
type Action struct {
	Label  string `json:"label"`
	Target string `json:"target"`
}

type WorkflowStep struct {
	ID               string    `json:"id"`
	ApplicationID    string    `json:"applicationId"`
	StepIndex        int       `json:"stepIndex"`
	Name             string    `json:"name"`
	Status           string    `json:"status"`
	UpdatedAt        time.Time `json:"updatedAt"`
	AvailableActions []Action  `json:"availableActions"`
}

type Note struct {
	ID            string    `json:"id"`
	ApplicationID string    `json:"applicationId"`
	StepID        string    `json:"stepId,omitempty"`
	AuthorID      string    `json:"authorId"`
	AuthorRole    string    `json:"authorRole"`
	Message       string    `json:"message"`
	CreatedAt     time.Time `json:"createdAt"`
}

type Application struct {
	ID           string         `json:"id"`
	CustomerID   string         `json:"customerId"`
	AgentID      string         `json:"agentId,omitempty"`
	Jurisdiction string         `json:"jurisdiction"`
	LegalType    string         `json:"legalType"`
	Status       string         `json:"status"`
	CreatedAt    time.Time      `json:"createdAt"`
	UpdatedAt    time.Time      `json:"updatedAt"`
	Steps        []WorkflowStep `json:"steps,omitempty"`
	Notes        []Note         `json:"notes,omitempty"`
}

type Document struct {
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

type Notification struct {
	ID          string    `json:"id"`
	RecipientID string    `json:"recipientId"`
	Title       string    `json:"title"`
	Message     string    `json:"message"`
	Category    string    `json:"category"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
}

// NotificationUnread is the status value of a not-yet-read notification.
const NotificationUnread = "Unread"

type TokenPair struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// LoginResult is the server's login payload: identity plus token pair.
type LoginResult struct {
	User         User   `json:"user"`
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// NewCustomer is the create-customer request payload.
type NewCustomer struct {
	Email       string `json:"email"`
	Password    string `json:"password"`
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	Phone       string `json:"phone"`
	Nationality string `json:"nationality"`
}
