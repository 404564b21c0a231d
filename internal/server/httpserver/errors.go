package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/dmitrijs2005/bloglist/internal/common"
)

const (
	msgTokenMissing       = "token missing or invalid"
	msgTokenInvalid       = "token invalid"
	msgTokenExpired       = "token expired"
	msgUserNotFound       = "user not found"
	msgInvalidCredentials = "invalid username or password"
	msgDuplicateUsername  = "expected `username` to be unique"
	msgMalformedID        = "malformed id"
	msgNotFound           = "not found"
	msgInternal           = "internal error"
	msgUnknownEndpoint    = "unknown endpoint"
)

type errorResponse struct {
	Error string `json:"error"`
}

// mapError is the single place where failures become HTTP statuses.
// notFound overrides the 404 message when non-empty.
func mapError(err error, notFound string) (int, string) {
	switch {
	case errors.Is(err, common.ErrValidation):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, common.ErrMalformedID):
		return http.StatusBadRequest, msgMalformedID
	case errors.Is(err, common.ErrDuplicateUsername):
		return http.StatusBadRequest, msgDuplicateUsername

	case errors.Is(err, common.ErrMissingToken),
		errors.Is(err, common.ErrInvalidSignature),
		errors.Is(err, common.ErrMalformedToken):
		return http.StatusUnauthorized, msgTokenMissing
	case errors.Is(err, common.ErrTokenExpired):
		return http.StatusUnauthorized, msgTokenExpired
	case errors.Is(err, common.ErrInvalidToken), errors.Is(err, common.ErrForbidden):
		return http.StatusUnauthorized, msgTokenInvalid
	case errors.Is(err, common.ErrUnknownPrincipal):
		return http.StatusUnauthorized, msgUserNotFound
	case errors.Is(err, common.ErrInvalidCredentials):
		return http.StatusUnauthorized, msgInvalidCredentials

	case errors.Is(err, common.ErrorNotFound):
		if notFound != "" {
			return http.StatusNotFound, notFound
		}
		return http.StatusNotFound, msgNotFound
	}

	return http.StatusInternalServerError, msgInternal
}

// authFailureReason labels 401 outcomes for the auth failure counter.
func authFailureReason(err error) string {
	switch {
	case errors.Is(err, common.ErrMissingToken):
		return "missing_token"
	case errors.Is(err, common.ErrInvalidSignature):
		return "invalid_signature"
	case errors.Is(err, common.ErrMalformedToken):
		return "malformed_token"
	case errors.Is(err, common.ErrTokenExpired):
		return "token_expired"
	case errors.Is(err, common.ErrInvalidToken):
		return "invalid_token"
	case errors.Is(err, common.ErrUnknownPrincipal):
		return "unknown_principal"
	case errors.Is(err, common.ErrForbidden):
		return "forbidden"
	case errors.Is(err, common.ErrInvalidCredentials):
		return "invalid_credentials"
	}
	return ""
}

func (s *HTTPServer) writeError(w http.ResponseWriter, r *http.Request, err error, notFound string) {
	status, msg := mapError(err, notFound)

	if reason := authFailureReason(err); reason != "" {
		s.metrics.AuthFailure(reason)
	}
	if status == http.StatusInternalServerError {
		s.logger.Error(r.Context(), "request failed", "path", r.URL.Path, "error", err.Error())
	}

	writeJSON(w, status, errorResponse{Error: msg})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
