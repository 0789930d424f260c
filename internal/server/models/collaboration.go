package models

// Collaboration grants a user write access to a playlist they do not own.
// The (PlaylistID, UserID) pair is unique; ownership is never represented
// as a collaboration row.
type Collaboration struct {
	PlaylistID string
	UserID     string
}
