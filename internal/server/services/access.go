package services

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/tunedeck/internal/common"
	"github.com/dmitrijs2005/tunedeck/internal/server/models"
	"github.com/dmitrijs2005/tunedeck/internal/server/repositories/repomanager"
)

// AccessService resolves what a user may do with a playlist. It is the only
// authority on playlist access: callers must consult it before touching the
// cache or mutating anything, and never infer access from cache state.
type AccessService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

// NewAccessService builds an AccessService.
func NewAccessService(db *sql.DB, m repomanager.RepositoryManager) *AccessService {
	return &AccessService{db: db, repomanager: m}
}

// ResolveAccess returns the user's access level on the playlist. The result
// levels are mutually exclusive: LevelOwner iff the user is the stored
// owner, LevelCollaborator iff a collaboration row exists and the user is
// not the owner, LevelNone otherwise. A missing playlist surfaces
// common.ErrNotFound.
func (s *AccessService) ResolveAccess(ctx context.Context, userID, playlistID string) (models.AccessLevel, error) {
	playlist, err := s.repomanager.Playlists(s.db).GetByID(ctx, playlistID)
	if err != nil {
		return models.LevelNone, err
	}

	if playlist.OwnerID == userID {
		return models.LevelOwner, nil
	}

	collaborator, err := s.repomanager.Collaborations(s.db).Exists(ctx, playlistID, userID)
	if err != nil {
		return models.LevelNone, err
	}
	if collaborator {
		return models.LevelCollaborator, nil
	}

	return models.LevelNone, nil
}

// RequireAtLeast fails with common.ErrForbidden when the user's resolved
// access is below level.
func (s *AccessService) RequireAtLeast(ctx context.Context, level models.AccessLevel, userID, playlistID string) error {
	resolved, err := s.ResolveAccess(ctx, userID, playlistID)
	if err != nil {
		return err
	}
	if resolved < level {
		return common.ErrForbidden
	}
	return nil
}
