package services

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/tunedeck/internal/server/models"
	"github.com/dmitrijs2005/tunedeck/internal/server/repositories/repomanager"
	"github.com/google/uuid"
)

// SongService manages the shared song catalog.
type SongService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

// NewSongService builds a SongService.
func NewSongService(db *sql.DB, m repomanager.RepositoryManager) *SongService {
	return &SongService{db: db, repomanager: m}
}

func (s *SongService) Create(ctx context.Context, song *models.Song) (*models.Song, error) {
	song.ID = uuid.NewString()

	repo := s.repomanager.Songs(s.db)
	if err := repo.Create(ctx, song); err != nil {
		return nil, fmt.Errorf("error creating song: %w", err)
	}
	return song, nil
}

func (s *SongService) Get(ctx context.Context, id string) (*models.Song, error) {
	return s.repomanager.Songs(s.db).GetByID(ctx, id)
}

// List returns catalog summaries filtered by optional title and performer
// substrings.
func (s *SongService) List(ctx context.Context, title, performer string) ([]models.SongSummary, error) {
	return s.repomanager.Songs(s.db).List(ctx, title, performer)
}

func (s *SongService) Update(ctx context.Context, song *models.Song) error {
	return s.repomanager.Songs(s.db).Update(ctx, song)
}

func (s *SongService) Delete(ctx context.Context, id string) error {
	return s.repomanager.Songs(s.db).Delete(ctx, id)
}
