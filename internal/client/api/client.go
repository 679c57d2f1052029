// Package api is the REST client for the Waflow backend. It owns the wire
// formats, bearer auth and the translation of HTTP statuses back into the
// shared sentinel errors.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"

	"github.com/guptaRishi00/waflow/internal/common"
)

// TokenSource provides the current access token for outgoing requests.
// The session store implements it.
type TokenSource interface {
	AccessToken() string
}

type Client struct {
	baseURL string
	http    *http.Client
	tokens  TokenSource
}

func NewClient(baseURL string, timeout time.Duration, tokens TokenSource) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
		tokens:  tokens,
	}
}

// errorBody is the uniform error payload the server writes.
type errorBody struct {
	Error string `json:"error"`
}

// do runs one request and decodes the JSON response into out (when out is
// non-nil). Non-2xx statuses come back as sentinel errors carrying the
// server's message.
func (c *Client) do(ctx context.Context, method, path string, body io.Reader, contentType string, out any) error {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return err
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if c.tokens != nil {
		if token := c.tokens.AccessToken(); token != "" {
			req.Header.Set(common.AuthorizationHeaderName, common.BearerPrefix+token)
		}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return errorFromResponse(resp)
	}

	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func (c *Client) doJSON(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return err
		}
		body = bytes.NewReader(b)
	}
	return c.do(ctx, method, path, body, "application/json", out)
}

func errorFromResponse(resp *http.Response) error {
	var eb errorBody
	_ = json.NewDecoder(resp.Body).Decode(&eb)
	msg := eb.Error
	if msg == "" {
		msg = resp.Status
	}

	var sentinel error
	switch resp.StatusCode {
	case http.StatusNotFound:
		sentinel = common.ErrorNotFound
	case http.StatusUnauthorized:
		sentinel = common.ErrorUnauthorized
	case http.StatusForbidden:
		sentinel = common.ErrorForbidden
	case http.StatusConflict:
		sentinel = common.ErrorConflict
	case http.StatusBadRequest:
		sentinel = common.ErrorValidation
	default:
		sentinel = common.ErrorInternal
	}
	return fmt.Errorf("%w: %s", sentinel, msg)
}

// --- auth ---

func (c *Client) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	var out LoginResult
	err := c.doJSON(ctx, http.MethodPost, "/api/auth/login", map[string]string{"email": email, "password": password}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Refresh(ctx context.Context, refreshToken string) (*TokenPair, error) {
	var out TokenPair
	err := c.doJSON(ctx, http.MethodPost, "/api/auth/refresh", map[string]string{"refreshToken": refreshToken}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Logout(ctx context.Context, refreshToken string) error {
	return c.doJSON(ctx, http.MethodPost, "/api/auth/logout", map[string]string{"refreshToken": refreshToken}, nil)
}

// --- users ---

func (c *Client) Me(ctx context.Context) (*User, error) {
	var out User
	if err := c.doJSON(ctx, http.MethodGet, "/api/user/me", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) GetUser(ctx context.Context, id string) (*User, error) {
	var out User
	if err := c.doJSON(ctx, http.MethodGet, "/api/user/"+id, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Customers(ctx context.Context) ([]User, error) {
	var out []User
	if err := c.doJSON(ctx, http.MethodGet, "/api/user/customers", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) Agents(ctx context.Context) ([]User, error) {
	var out []User
	if err := c.doJSON(ctx, http.MethodGet, "/api/user/agents", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreateCustomer(ctx context.Context, in NewCustomer) (*User, error) {
	var out User
	if err := c.doJSON(ctx, http.MethodPost, "/api/user/create-customer", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// --- applications ---

func (c *Client) Applications(ctx context.Context) ([]Application, error) {
	var out []Application
	if err := c.doJSON(ctx, http.MethodGet, "/api/application", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) Application(ctx context.Context, id string) (*Application, error) {
	var out Application
	if err := c.doJSON(ctx, http.MethodGet, "/api/application/"+id, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateApplication(ctx context.Context, customerID, jurisdiction, legalType string) (*Application, error) {
	in := map[string]string{"customerId": customerID, "jurisdiction": jurisdiction, "legalType": legalType}
	var out Application
	if err := c.doJSON(ctx, http.MethodPost, "/api/application", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateStepStatus asks the server to move one step and returns the whole
// refreshed application.
func (c *Client) UpdateStepStatus(ctx context.Context, stepID, status string) (*Application, error) {
	var out Application
	err := c.doJSON(ctx, http.MethodPatch, "/api/application/step-status/"+stepID, map[string]string{"status": status}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) AddNote(ctx context.Context, applicationID, stepID, message string) (*Note, error) {
	in := map[string]string{"stepId": stepID, "message": message}
	var out Note
	if err := c.doJSON(ctx, http.MethodPost, "/api/application/note/"+applicationID, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// --- documents ---

// UploadDocument sends a multipart upload for one step's document.
func (c *Client) UploadDocument(ctx context.Context, applicationID, stepID, docType, filename string, content io.Reader) (*Document, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	part, err := mw.CreateFormFile("file", filename)
	if err != nil {
		return nil, err
	}
	if _, err := io.Copy(part, content); err != nil {
		return nil, err
	}
	for field, value := range map[string]string{
		"applicationId": applicationID,
		"stepId":        stepID,
		"type":          docType,
	} {
		if err := mw.WriteField(field, value); err != nil {
			return nil, err
		}
	}
	if err := mw.Close(); err != nil {
		return nil, err
	}

	var out Document
	if err := c.do(ctx, http.MethodPost, "/api/document/create-document", &buf, mw.FormDataContentType(), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DocumentsByApplication(ctx context.Context, applicationID string) ([]Document, error) {
	var out []Document
	if err := c.doJSON(ctx, http.MethodGet, "/api/document/application/"+applicationID, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) DocumentsByCustomer(ctx context.Context, customerID string) ([]Document, error) {
	var out []Document
	if err := c.doJSON(ctx, http.MethodGet, "/api/document/customer/"+customerID, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) ReviewDocument(ctx context.Context, id, status string) (*Document, error) {
	var out Document
	if err := c.doJSON(ctx, http.MethodPatch, "/api/document/review/"+id, map[string]string{"status": status}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DocumentDownloadURL(ctx context.Context, id string) (string, error) {
	var out struct {
		URL string `json:"url"`
	}
	if err := c.doJSON(ctx, http.MethodGet, "/api/document/download/"+id, nil, &out); err != nil {
		return "", err
	}
	return out.URL, nil
}

// --- notifications ---

// Notifications lists the notifications addressed to the given recipient.
// Customers and staff poll different routes.
func (c *Client) Notifications(ctx context.Context, role, recipientID string) ([]Notification, error) {
	base := "/api/notification/customer/"
	if role == "agent" || role == "manager" {
		base = "/api/notification/agent/"
	}

	var out []Notification
	if err := c.doJSON(ctx, http.MethodGet, base+recipientID, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) MarkNotificationRead(ctx context.Context, id string) error {
	return c.doJSON(ctx, http.MethodPatch, "/api/notification/read/"+id, nil, nil)
}

func (c *Client) MarkNotificationUnread(ctx context.Context, id string) error {
	return c.doJSON(ctx, http.MethodPatch, "/api/notification/unread/"+id, nil, nil)
}

func (c *Client) ArchiveNotification(ctx context.Context, id string) error {
	return c.doJSON(ctx, http.MethodPatch, "/api/notification/archive/"+id, nil, nil)
}

func (c *Client) DeleteNotification(ctx context.Context, id string) error {
	return c.doJSON(ctx, http.MethodDelete, "/api/notification/"+id, nil, nil)
}

func (c *Client) ClearAllNotifications(ctx context.Context) (int64, error) {
	var out struct {
		Updated int64 `json:"updated"`
	}
	if err := c.doJSON(ctx, http.MethodPatch, "/api/notification/clear-all", nil, &out); err != nil {
		return 0, err
	}
	return out.Updated, nil
}
