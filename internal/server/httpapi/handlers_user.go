package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/guptaRishi00/waflow/internal/common"
	"github.com/guptaRishi00/waflow/internal/server/models"
)

func (s *Server) handleMe(w http.ResponseWriter, r *http.Request) {
	actor := actorFrom(r)
	user, err := s.users.GetByID(r.Context(), actor, actor.ID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toUserResponse(user))
}

func (s *Server) handleGetUser(w http.ResponseWriter, r *http.Request) {
	user, err := s.users.GetByID(r.Context(), actorFrom(r), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toUserResponse(user))
}

func (s *Server) handleListCustomers(w http.ResponseWriter, r *http.Request) {
	s.listUsersByRole(w, r, models.RoleCustomer)
}

func (s *Server) handleListAgents(w http.ResponseWriter, r *http.Request) {
	s.listUsersByRole(w, r, models.RoleAgent)
}

func (s *Server) listUsersByRole(w http.ResponseWriter, r *http.Request, role models.Role) {
	users, err := s.users.ListByRole(r.Context(), actorFrom(r), role)
	if err != nil {
		writeError(w, err)
		return
	}

	out := make([]userResponse, 0, len(users))
	for _, u := range users {
		out = append(out, toUserResponse(u))
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleCreateCustomer(w http.ResponseWriter, r *http.Request) {
	var req createCustomerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, common.ErrorValidation)
		return
	}

	user := &models.User{
		Email:       req.Email,
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Phone:       req.Phone,
		Nationality: req.Nationality,
	}

	created, err := s.users.CreateCustomer(r.Context(), actorFrom(r), user, req.Password)
	if err != nil {
		writeError(w, err)
		return
	}

	s.logger.Info(r.Context(), "customer created", "user", created.ID)
	writeJSON(w, http.StatusCreated, toUserResponse(created))
}
