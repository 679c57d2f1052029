package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/guptaRishi00/waflow/internal/common"
)

// writeJSON writes v as a JSON body with the given status code.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError maps a service error onto an HTTP status and writes the
// uniform {"error": ...} body clients parse.
func writeError(w http.ResponseWriter, err error) {
	writeJSON(w, statusFromError(err), map[string]string{"error": publicMessage(err)})
}

func statusFromError(err error) int {
	switch {
	case errors.Is(err, common.ErrorNotFound):
		return http.StatusNotFound
	case errors.Is(err, common.ErrorUnauthorized),
		errors.Is(err, common.ErrInvalidToken),
		errors.Is(err, common.ErrTokenExpired),
		errors.Is(err, common.ErrRefreshTokenExpired):
		return http.StatusUnauthorized
	case errors.Is(err, common.ErrorForbidden):
		return http.StatusForbidden
	case errors.Is(err, common.ErrInvalidTransition),
		errors.Is(err, common.ErrStepLocked),
		errors.Is(err, common.ErrUploadBlocked),
		errors.Is(err, common.ErrAlreadyExists):
		return http.StatusConflict
	case errors.Is(err, common.ErrorValidation):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// publicMessage hides internals behind a generic message for 5xx errors.
func publicMessage(err error) string {
	if statusFromError(err) == http.StatusInternalServerError {
		return "internal error"
	}
	return err.Error()
}
