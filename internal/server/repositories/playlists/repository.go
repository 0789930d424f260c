// Package playlists declares the repository contract for playlists and
// their ordered song entries.
package playlists

import (
	"context"

	"github.com/dmitrijs2005/tunedeck/internal/server/models"
)

// Repository defines operations on playlists and playlist-song entries.
type Repository interface {
	Create(ctx context.Context, playlist *models.Playlist) error

	// GetByID returns the playlist with the given identifier, or
	// common.ErrNotFound when absent.
	GetByID(ctx context.Context, id string) (*models.Playlist, error)

	// ListForUser returns every playlist the user owns plus every playlist
	// they collaborate on.
	ListForUser(ctx context.Context, userID string) ([]models.Playlist, error)

	// Delete removes a playlist; the schema cascades to song entries and
	// collaborations. Returns common.ErrNotFound when absent.
	Delete(ctx context.Context, id string) error

	// AddSong appends a song to a playlist, preserving insertion order.
	// A duplicate (playlist, song) pair results in common.ErrConflict.
	AddSong(ctx context.Context, playlistID, songID string) error

	// RemoveSong deletes a song entry. Returns common.ErrNotFound when the
	// song is not in the playlist.
	RemoveSong(ctx context.Context, playlistID, songID string) error

	// ListSongs returns the playlist's songs in insertion order.
	ListSongs(ctx context.Context, playlistID string) ([]models.SongSummary, error)
}
