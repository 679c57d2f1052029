package httpapi

import (
	"context"
	"net/http"
	"strings"

	"github.com/guptaRishi00/waflow/internal/common"
	"github.com/guptaRishi00/waflow/internal/server/auth"
	"github.com/guptaRishi00/waflow/internal/server/models"
	"github.com/guptaRishi00/waflow/internal/server/services"
)

type ctxKey string

const actorKey ctxKey = "actor"

// authMiddleware validates the bearer token and stores the Actor in the
// request context. Requests without a valid token never reach a handler.
func (s *Server) authMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get(common.AuthorizationHeaderName)
		if !strings.HasPrefix(header, common.BearerPrefix) {
			writeError(w, common.ErrorUnauthorized)
			return
		}

		claims, err := auth.ParseToken(strings.TrimPrefix(header, common.BearerPrefix), s.jwtSecret)
		if err != nil {
			writeError(w, err)
			return
		}

		actor := services.Actor{ID: claims.UserID, Role: models.Role(claims.Role)}
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), actorKey, actor)))
	})
}

// actorFrom returns the Actor the auth middleware stored.
func actorFrom(r *http.Request) services.Actor {
	actor, _ := r.Context().Value(actorKey).(services.Actor)
	return actor
}
