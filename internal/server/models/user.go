// Package models defines the persistent and wire-level data structures used
// by the tunedeck server.
package models

import "time"

// User is a registered account. The identifier is immutable; the password
// hash changes only through the explicit credential-change flow.
type User struct {
	ID           string
	Username     string
	FullName     string
	PasswordHash string
	CreatedAt    time.Time
}
