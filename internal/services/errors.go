package services

import "errors"

// Error kinds surfaced by the core services. Callers match them with
// errors.Is; the HTTP layer maps them to status codes.
var (
	// ErrValidation indicates a missing or empty required input.
	ErrValidation = errors.New("validation failed")
	// ErrAuth indicates a credential mismatch on login.
	ErrAuth = errors.New("invalid credentials")
	// ErrNotAuthenticated indicates a mutating action attempted without a session.
	ErrNotAuthenticated = errors.New("not authenticated")
	// ErrEmailRegistered indicates a registration attempt with an email that
	// already has an account.
	ErrEmailRegistered = errors.New("email already registered")
	// ErrNotFound indicates a lookup that matched nothing.
	ErrNotFound = errors.New("not found")
)
