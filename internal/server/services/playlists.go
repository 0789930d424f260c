package services

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/tunedeck/internal/dbx"
	"github.com/dmitrijs2005/tunedeck/internal/server/cache"
	"github.com/dmitrijs2005/tunedeck/internal/server/models"
	"github.com/dmitrijs2005/tunedeck/internal/server/repositories/repomanager"
	"github.com/google/uuid"
)

// PlaylistService orchestrates authorization checks, cached reads and
// persistence mutations for playlists.
//
// Every mutation invalidates the playlist's cache entry strictly after the
// persistent write commits, and never when it fails. A read racing a write
// can still repopulate the cache with pre-write data for up to the cache
// TTL; that window is accepted, not locked away.
type PlaylistService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	access      *AccessService
	cache       *cache.SongCache
}

// NewPlaylistService builds a PlaylistService.
func NewPlaylistService(db *sql.DB, m repomanager.RepositoryManager, access *AccessService, songCache *cache.SongCache) *PlaylistService {
	return &PlaylistService{
		db:          db,
		repomanager: m,
		access:      access,
		cache:       songCache,
	}
}

// Create stores a new playlist owned by ownerID.
func (s *PlaylistService) Create(ctx context.Context, ownerID, name string) (*models.Playlist, error) {
	playlist := &models.Playlist{
		ID:      uuid.NewString(),
		Name:    name,
		OwnerID: ownerID,
	}

	repo := s.repomanager.Playlists(s.db)
	if err := repo.Create(ctx, playlist); err != nil {
		return nil, fmt.Errorf("error creating playlist: %w", err)
	}
	return playlist, nil
}

// ListForUser returns the playlists the user owns or collaborates on.
func (s *PlaylistService) ListForUser(ctx context.Context, userID string) ([]models.Playlist, error) {
	return s.repomanager.Playlists(s.db).ListForUser(ctx, userID)
}

// Delete removes a playlist. Only the owner may delete; the schema cascades
// to song entries and collaborations.
func (s *PlaylistService) Delete(ctx context.Context, userID, playlistID string) error {
	if err := s.access.RequireAtLeast(ctx, models.LevelOwner, userID, playlistID); err != nil {
		return err
	}

	if err := s.repomanager.Playlists(s.db).Delete(ctx, playlistID); err != nil {
		return err
	}

	s.cache.Invalidate(ctx, playlistID)
	return nil
}

// AddSong appends a catalog song to the playlist. Requires at least
// collaborator access; the song must exist in the catalog.
func (s *PlaylistService) AddSong(ctx context.Context, userID, playlistID, songID string) error {
	if err := s.access.RequireAtLeast(ctx, models.LevelCollaborator, userID, playlistID); err != nil {
		return err
	}

	// existence check and insert share one transaction so the entry can
	// never reference a song deleted in between
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if _, err := s.repomanager.Songs(tx).GetByID(ctx, songID); err != nil {
			return err
		}
		return s.repomanager.Playlists(tx).AddSong(ctx, playlistID, songID)
	})
	if err != nil {
		return err
	}

	s.cache.Invalidate(ctx, playlistID)
	return nil
}

// RemoveSong deletes a song entry from the playlist. Requires at least
// collaborator access.
func (s *PlaylistService) RemoveSong(ctx context.Context, userID, playlistID, songID string) error {
	if err := s.access.RequireAtLeast(ctx, models.LevelCollaborator, userID, playlistID); err != nil {
		return err
	}

	if err := s.repomanager.Playlists(s.db).RemoveSong(ctx, playlistID, songID); err != nil {
		return err
	}

	s.cache.Invalidate(ctx, playlistID)
	return nil
}

// GetSongs returns the playlist's songs in insertion order, served through
// the cache. Authorization is resolved before the cache is consulted.
func (s *PlaylistService) GetSongs(ctx context.Context, userID, playlistID string) ([]models.SongSummary, error) {
	if err := s.access.RequireAtLeast(ctx, models.LevelCollaborator, userID, playlistID); err != nil {
		return nil, err
	}

	return s.cache.GetSongs(ctx, playlistID, func(ctx context.Context) ([]models.SongSummary, error) {
		return s.repomanager.Playlists(s.db).ListSongs(ctx, playlistID)
	})
}

// AddCollaborator grants userID collaborator access. Only the owner may
// manage collaborations; the target user must exist.
func (s *PlaylistService) AddCollaborator(ctx context.Context, actorID, playlistID, userID string) error {
	if err := s.access.RequireAtLeast(ctx, models.LevelOwner, actorID, playlistID); err != nil {
		return err
	}

	if _, err := s.repomanager.Users(s.db).GetByID(ctx, userID); err != nil {
		return err
	}

	if err := s.repomanager.Collaborations(s.db).Add(ctx, playlistID, userID); err != nil {
		return err
	}

	s.cache.Invalidate(ctx, playlistID)
	return nil
}

// RemoveCollaborator revokes collaborator access. The owner may remove
// anyone; a collaborator may remove only themselves.
func (s *PlaylistService) RemoveCollaborator(ctx context.Context, actorID, playlistID, userID string) error {
	if actorID != userID {
		if err := s.access.RequireAtLeast(ctx, models.LevelOwner, actorID, playlistID); err != nil {
			return err
		}
	} else if _, err := s.repomanager.Playlists(s.db).GetByID(ctx, playlistID); err != nil {
		// self-removal only needs the playlist to exist; the delete below
		// reports whether a collaboration was actually present
		return err
	}

	if err := s.repomanager.Collaborations(s.db).Remove(ctx, playlistID, userID); err != nil {
		return err
	}

	s.cache.Invalidate(ctx, playlistID)
	return nil
}
