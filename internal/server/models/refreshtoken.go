package models

import "time"

// RefreshToken is a long-lived opaque credential persisted per session.
// It stays valid until explicitly revoked (logout); it is not rotated when
// a new access token is minted from it.
type RefreshToken struct {
	Token    string
	UserID   string
	IssuedAt time.Time
}
