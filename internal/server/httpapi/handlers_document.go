package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/guptaRishi00/waflow/internal/common"
	"github.com/guptaRishi00/waflow/internal/server/models"
)

// maxUploadBytes caps a single document upload at 32 MiB.
const maxUploadBytes = 32 << 20

// handleUploadDocument accepts a multipart form with a "file" part plus
// applicationId, stepId and type fields.
func (s *Server) handleUploadDocument(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		writeError(w, common.ErrorValidation)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, common.ErrorValidation)
		return
	}
	defer file.Close()

	doc := &models.Document{
		ApplicationID: r.FormValue("applicationId"),
		StepID:        r.FormValue("stepId"),
		Type:          r.FormValue("type"),
		Name:          header.Filename,
		ContentType:   header.Header.Get("Content-Type"),
		Size:          header.Size,
	}

	created, err := s.documents.Upload(r.Context(), actorFrom(r), doc, file)
	if err != nil {
		writeError(w, err)
		return
	}

	s.logger.Info(r.Context(), "document uploaded", "document", created.ID, "step", created.StepID)
	writeJSON(w, http.StatusCreated, toDocumentResponse(created))
}

func (s *Server) handleListDocumentsByCustomer(w http.ResponseWriter, r *http.Request) {
	docs, err := s.documents.ListByCustomer(r.Context(), actorFrom(r), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toDocumentResponses(docs))
}

func (s *Server) handleListDocumentsByApplication(w http.ResponseWriter, r *http.Request) {
	docs, err := s.documents.ListByApplication(r.Context(), actorFrom(r), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toDocumentResponses(docs))
}

func (s *Server) handleReviewDocument(w http.ResponseWriter, r *http.Request) {
	var req reviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Status == "" {
		writeError(w, common.ErrorValidation)
		return
	}

	doc, err := s.documents.Review(r.Context(), actorFrom(r), mux.Vars(r)["id"], models.DocumentStatus(req.Status))
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toDocumentResponse(doc))
}

func (s *Server) handleDownloadDocument(w http.ResponseWriter, r *http.Request) {
	url, err := s.documents.DownloadURL(r.Context(), actorFrom(r), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, downloadResponse{URL: url})
}

func toDocumentResponses(docs []*models.Document) []documentResponse {
	out := make([]documentResponse, 0, len(docs))
	for _, d := range docs {
		out = append(out, toDocumentResponse(d))
	}
	return out
}
