// Package common defines shared constants and sentinel errors used across
// the tunedeck server layers. Callers should use errors.Is to match these
// values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrNotFound = errors.New("not found")
	ErrConflict = errors.New("conflict")

	// Service-level errors (generic/internal flow control).
	ErrInternal     = errors.New("internal error")
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")

	// Auth errors (invalid, malformed, expired or unknown token).
	ErrInvalidToken = errors.New("invalid token")

	// Export dispatch errors (queue publish failed, nothing was persisted).
	ErrDispatch = errors.New("dispatch failed")

	// Cache-level errors. Both stay inside the cache layer and must never
	// reach the end caller.
	ErrCacheMiss        = errors.New("cache miss")
	ErrCacheUnavailable = errors.New("cache unavailable")
)
