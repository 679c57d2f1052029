package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/guptaRishi00/waflow/internal/common"
)

func (s *Server) handleCreateApplication(w http.ResponseWriter, r *http.Request) {
	var req createApplicationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.CustomerID == "" {
		writeError(w, common.ErrorValidation)
		return
	}

	app, err := s.applications.Create(r.Context(), actorFrom(r), req.CustomerID, req.Jurisdiction, req.LegalType)
	if err != nil {
		writeError(w, err)
		return
	}

	s.logger.Info(r.Context(), "application created", "application", app.ID, "customer", app.CustomerID)
	writeJSON(w, http.StatusCreated, toApplicationResponse(app))
}

func (s *Server) handleGetApplication(w http.ResponseWriter, r *http.Request) {
	app, err := s.applications.Get(r.Context(), actorFrom(r), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toApplicationResponse(app))
}

func (s *Server) handleListApplications(w http.ResponseWriter, r *http.Request) {
	apps, err := s.applications.List(r.Context(), actorFrom(r))
	if err != nil {
		writeError(w, err)
		return
	}

	out := make([]applicationResponse, 0, len(apps))
	for _, a := range apps {
		out = append(out, toApplicationResponse(a))
	}
	writeJSON(w, http.StatusOK, out)
}

// handleUpdateStepStatus is the single mutation endpoint for step state.
// The response carries the whole refreshed application so clients replace
// their copy instead of patching it.
func (s *Server) handleUpdateStepStatus(w http.ResponseWriter, r *http.Request) {
	var req stepStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Status == "" {
		writeError(w, common.ErrorValidation)
		return
	}

	stepID := mux.Vars(r)["id"]
	app, err := s.applications.UpdateStepStatus(r.Context(), actorFrom(r), stepID, req.Status)
	if err != nil {
		writeError(w, err)
		return
	}

	s.logger.Info(r.Context(), "step status updated", "step", stepID, "status", req.Status)
	writeJSON(w, http.StatusOK, toApplicationResponse(app))
}

func (s *Server) handleAddNote(w http.ResponseWriter, r *http.Request) {
	var req noteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, common.ErrorValidation)
		return
	}

	note, err := s.applications.AddNote(r.Context(), actorFrom(r), mux.Vars(r)["id"], req.StepID, req.Message)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, toNoteResponse(note))
}
