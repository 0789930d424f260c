// Package songs declares the repository contract for the shared song catalog.
package songs

import (
	"context"

	"github.com/dmitrijs2005/tunedeck/internal/server/models"
)

// Repository defines CRUD operations on catalog songs.
type Repository interface {
	Create(ctx context.Context, song *models.Song) error

	// GetByID returns the song with the given identifier, or
	// common.ErrNotFound when absent.
	GetByID(ctx context.Context, id string) (*models.Song, error)

	// List returns song summaries, optionally filtered by a title and/or
	// performer substring (case-insensitive). Empty filters match everything.
	List(ctx context.Context, title, performer string) ([]models.SongSummary, error)

	// Update replaces all mutable fields of a song. Returns
	// common.ErrNotFound when the song does not exist.
	Update(ctx context.Context, song *models.Song) error

	// Delete removes a song. Returns common.ErrNotFound when absent.
	Delete(ctx context.Context, id string) error
}
