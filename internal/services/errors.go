package services

import "errors"

// Sentinel errors mapped to HTTP statuses by the handlers.
var (
	ErrValidationFailed   = errors.New("validation failed")
	ErrNotFound           = errors.New("resource not found")
	ErrConflict           = errors.New("resource already exists")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrPreconditionFailed = errors.New("precondition failed")

	// ErrProviderNotConfigured signals a route whose AI provider key is
	// absent and which has no template fallback.
	ErrProviderNotConfigured = errors.New("ai provider not configured")

	// ErrProviderFailed signals an upstream AI failure with no fallback.
	ErrProviderFailed = errors.New("ai provider request failed")
)
