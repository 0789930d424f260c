// Package collaborations declares the repository contract for delegated
// playlist write access.
package collaborations

import "context"

// Repository defines operations on collaboration rows. A row is the
// (playlist, user) pair granting collaborator access; ownership is never
// stored here.
type Repository interface {
	// Add grants userID collaborator access to playlistID. A duplicate pair
	// results in common.ErrConflict.
	Add(ctx context.Context, playlistID, userID string) error

	// Remove revokes collaborator access. Returns common.ErrNotFound when no
	// such collaboration exists.
	Remove(ctx context.Context, playlistID, userID string) error

	// Exists reports whether the (playlist, user) collaboration is present.
	Exists(ctx context.Context, playlistID, userID string) (bool, error)
}
