// Package common defines the sentinel errors shared by the storage, service,
// auth and transport layers of the blog list server. Callers wrap them with
// fmt.Errorf("...: %w") and match with errors.Is; the HTTP layer is the only
// place that turns them into status codes.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound        = errors.New("not found")
	ErrDuplicateUsername = errors.New("duplicate username")

	// Service-level errors.
	ErrorInternal         = errors.New("internal error")
	ErrValidation         = errors.New("validation failed")
	ErrMalformedID        = errors.New("malformed id")
	ErrInvalidCredentials = errors.New("invalid username or password")

	// Authentication pipeline errors.
	ErrMissingToken     = errors.New("token missing")
	ErrInvalidSignature = errors.New("token signature invalid")
	ErrMalformedToken   = errors.New("token malformed")
	ErrTokenExpired     = errors.New("token expired")
	ErrInvalidToken     = errors.New("invalid token")
	ErrUnknownPrincipal = errors.New("unknown principal")

	// Authorization errors.
	ErrForbidden = errors.New("forbidden")
)
