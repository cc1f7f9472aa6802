package service

import "errors"

// The original frontend collapsed every failure into a null/empty sentinel.
// Internally we keep the taxonomy distinguishable so handlers can map status
// codes and logs can tell an authorization miss from a backend outage; the
// user-facing message stays generic either way.
var (
	ErrNotAuthenticated = errors.New("not authenticated")

	// ErrNotFound covers both a missing row and a row owned by someone
	// else. The two are deliberately indistinguishable to callers so the
	// API does not leak which ids exist.
	ErrNotFound = errors.New("not found")

	// ErrValidation marks rejected input; its message is safe to echo back.
	ErrValidation = errors.New("invalid input")

	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailTaken         = errors.New("email is already registered")
)
