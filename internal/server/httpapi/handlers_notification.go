package httpapi

import (
	"context"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/guptaRishi00/waflow/internal/server/services"
)

func (s *Server) handleListNotifications(w http.ResponseWriter, r *http.Request) {
	actor := actorFrom(r)
	notifs, err := s.notifications.List(r.Context(), actor, mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}

	out := make([]notificationResponse, 0, len(notifs))
	for _, n := range notifs {
		out = append(out, toNotificationResponse(n))
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleMarkNotificationRead(w http.ResponseWriter, r *http.Request) {
	s.notificationMutation(w, r, s.notifications.MarkRead)
}

func (s *Server) handleMarkNotificationUnread(w http.ResponseWriter, r *http.Request) {
	s.notificationMutation(w, r, s.notifications.MarkUnread)
}

func (s *Server) handleArchiveNotification(w http.ResponseWriter, r *http.Request) {
	s.notificationMutation(w, r, s.notifications.Archive)
}

func (s *Server) handleDeleteNotification(w http.ResponseWriter, r *http.Request) {
	s.notificationMutation(w, r, s.notifications.Delete)
}

func (s *Server) handleClearAllNotifications(w http.ResponseWriter, r *http.Request) {
	n, err := s.notifications.ClearAll(r.Context(), actorFrom(r))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, clearAllResponse{Updated: n})
}

func (s *Server) notificationMutation(w http.ResponseWriter, r *http.Request, op func(ctx context.Context, actor services.Actor, id string) error) {
	if err := op(r.Context(), actorFrom(r), mux.Vars(r)["id"]); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
