package httpapi

import (
	"fmt"
	"net/http"

	"github.com/gorilla/mux"
)

// Router builds the full route table. Everything under /api requires a
// bearer token except the login and refresh endpoints.
func (s *Server) Router() *mux.Router {
	r := mux.NewRouter()

	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintln(w, "OK")
	}).Methods(http.MethodGet)

	r.HandleFunc("/api/auth/login", s.handleLogin).Methods(http.MethodPost)
	r.HandleFunc("/api/auth/refresh", s.handleRefresh).Methods(http.MethodPost)

	api := r.PathPrefix("/api").Subrouter()
	api.Use(s.authMiddleware)

	api.HandleFunc("/auth/logout", s.handleLogout).Methods(http.MethodPost)

	api.HandleFunc("/application", s.handleListApplications).Methods(http.MethodGet)
	api.HandleFunc("/application", s.handleCreateApplication).Methods(http.MethodPost)
	api.HandleFunc("/application/step-status/{id}", s.handleUpdateStepStatus).Methods(http.MethodPatch)
	// legacy path, same semantics as step-status
	api.HandleFunc("/application/step/{id}", s.handleUpdateStepStatus).Methods(http.MethodPatch)
	api.HandleFunc("/application/note/{id}", s.handleAddNote).Methods(http.MethodPost)
	api.HandleFunc("/application/{id}", s.handleGetApplication).Methods(http.MethodGet)

	api.HandleFunc("/document/create-document", s.handleUploadDocument).Methods(http.MethodPost)
	api.HandleFunc("/document/customer/{id}", s.handleListDocumentsByCustomer).Methods(http.MethodGet)
	api.HandleFunc("/document/application/{id}", s.handleListDocumentsByApplication).Methods(http.MethodGet)
	api.HandleFunc("/document/review/{id}", s.handleReviewDocument).Methods(http.MethodPatch)
	api.HandleFunc("/document/download/{id}", s.handleDownloadDocument).Methods(http.MethodGet)

	api.HandleFunc("/notification/customer/{id}", s.handleListNotifications).Methods(http.MethodGet)
	api.HandleFunc("/notification/agent/{id}", s.handleListNotifications).Methods(http.MethodGet)
	api.HandleFunc("/notification/read/{id}", s.handleMarkNotificationRead).Methods(http.MethodPatch)
	api.HandleFunc("/notification/unread/{id}", s.handleMarkNotificationUnread).Methods(http.MethodPatch)
	api.HandleFunc("/notification/archive/{id}", s.handleArchiveNotification).Methods(http.MethodPatch)
	api.HandleFunc("/notification/clear-all", s.handleClearAllNotifications).Methods(http.MethodPatch)
	api.HandleFunc("/notification/{id}", s.handleDeleteNotification).Methods(http.MethodDelete)

	api.HandleFunc("/user/me", s.handleMe).Methods(http.MethodGet)
	api.HandleFunc("/user/customers", s.handleListCustomers).Methods(http.MethodGet)
	api.HandleFunc("/user/agents", s.handleListAgents).Methods(http.MethodGet)
	api.HandleFunc("/user/create-customer", s.handleCreateCustomer).Methods(http.MethodPost)
	api.HandleFunc("/user/{id}", s.handleGetUser).Methods(http.MethodGet)

	return r
}
