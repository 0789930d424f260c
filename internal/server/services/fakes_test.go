package services

import (
	"context"
	"database/sql"
	"io"
	"log/slog"
	"slices"

	"github.com/dmitrijs2005/tunedeck/internal/common"
	"github.com/dmitrijs2005/tunedeck/internal/dbx"
	"github.com/dmitrijs2005/tunedeck/internal/logging"
	"github.com/dmitrijs2005/tunedeck/internal/server/models"
	"github.com/dmitrijs2005/tunedeck/internal/server/repositories/collaborations"
	"github.com/dmitrijs2005/tunedeck/internal/server/repositories/playlists"
	"github.com/dmitrijs2005/tunedeck/internal/server/repositories/refreshtokens"
	"github.com/dmitrijs2005/tunedeck/internal/server/repositories/songs"
	"github.com/dmitrijs2005/tunedeck/internal/server/repositories/users"
)

func discardLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

// In-memory fakes shared by the service tests. They implement the
// repository interfaces over plain maps and ignore the DBTX handle.

type fakeRepoManager struct {
	users          *fakeUsersRepo
	refreshTokens  *fakeRefreshTokensRepo
	songs          *fakeSongsRepo
	playlists      *fakePlaylistsRepo
	collaborations *fakeCollaborationsRepo
}

func newFakeRepoManager() *fakeRepoManager {
	return &fakeRepoManager{
		users:          &fakeUsersRepo{byID: map[string]*models.User{}},
		refreshTokens:  &fakeRefreshTokensRepo{tokens: map[string]*models.RefreshToken{}},
		songs:          &fakeSongsRepo{byID: map[string]*models.Song{}},
		playlists:      &fakePlaylistsRepo{byID: map[string]*models.Playlist{}, entries: map[string][]models.SongSummary{}},
		collaborations: &fakeCollaborationsRepo{pairs: map[[2]string]bool{}},
	}
}

func (f *fakeRepoManager) RunMigrations(ctx context.Context, db *sql.DB) error { return nil }
func (f *fakeRepoManager) Users(db dbx.DBTX) users.Repository                  { return f.users }
func (f *fakeRepoManager) RefreshTokens(db dbx.DBTX) refreshtokens.Repository  { return f.refreshTokens }
func (f *fakeRepoManager) Songs(db dbx.DBTX) songs.Repository                  { return f.songs }
func (f *fakeRepoManager) Playlists(db dbx.DBTX) playlists.Repository          { return f.playlists }
func (f *fakeRepoManager) Collaborations(db dbx.DBTX) collaborations.Repository {
	return f.collaborations
}

type fakeUsersRepo struct {
	byID map[string]*models.User
	err  error
}

func (f *fakeUsersRepo) Create(ctx context.Context, u *models.User) (*models.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, existing := range f.byID {
		if existing.Username == u.Username {
			return nil, common.ErrConflict
		}
	}
	f.byID[u.ID] = u
	return u, nil
}

func (f *fakeUsersRepo) GetByID(ctx context.Context, id string) (*models.User, error) {
	if u, ok := f.byID[id]; ok {
		return u, nil
	}
	return nil, common.ErrNotFound
}

func (f *fakeUsersRepo) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	for _, u := range f.byID {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, common.ErrNotFound
}

type fakeRefreshTokensRepo struct {
	tokens map[string]*models.RefreshToken
	err    error
}

func (f *fakeRefreshTokensRepo) Create(ctx context.Context, userID, token string) error {
	if f.err != nil {
		return f.err
	}
	f.tokens[token] = &models.RefreshToken{Token: token, UserID: userID}
	return nil
}

func (f *fakeRefreshTokensRepo) Find(ctx context.Context, token string) (*models.RefreshToken, error) {
	if t, ok := f.tokens[token]; ok {
		return t, nil
	}
	return nil, common.ErrNotFound
}

func (f *fakeRefreshTokensRepo) Delete(ctx context.Context, token string) error {
	delete(f.tokens, token)
	return nil
}

type fakeSongsRepo struct {
	byID map[string]*models.Song
}

func (f *fakeSongsRepo) Create(ctx context.Context, s *models.Song) error {
	f.byID[s.ID] = s
	return nil
}

func (f *fakeSongsRepo) GetByID(ctx context.Context, id string) (*models.Song, error) {
	if s, ok := f.byID[id]; ok {
		return s, nil
	}
	return nil, common.ErrNotFound
}

func (f *fakeSongsRepo) List(ctx context.Context, title, performer string) ([]models.SongSummary, error) {
	result := make([]models.SongSummary, 0, len(f.byID))
	for _, s := range f.byID {
		result = append(result, models.SongSummary{ID: s.ID, Title: s.Title, Performer: s.Performer})
	}
	return result, nil
}

func (f *fakeSongsRepo) Update(ctx context.Context, s *models.Song) error {
	if _, ok := f.byID[s.ID]; !ok {
		return common.ErrNotFound
	}
	f.byID[s.ID] = s
	return nil
}

func (f *fakeSongsRepo) Delete(ctx context.Context, id string) error {
	if _, ok := f.byID[id]; !ok {
		return common.ErrNotFound
	}
	delete(f.byID, id)
	return nil
}

type fakePlaylistsRepo struct {
	byID    map[string]*models.Playlist
	entries map[string][]models.SongSummary
}

func (f *fakePlaylistsRepo) Create(ctx context.Context, p *models.Playlist) error {
	f.byID[p.ID] = p
	f.entries[p.ID] = []models.SongSummary{}
	return nil
}

func (f *fakePlaylistsRepo) GetByID(ctx context.Context, id string) (*models.Playlist, error) {
	if p, ok := f.byID[id]; ok {
		return p, nil
	}
	return nil, common.ErrNotFound
}

func (f *fakePlaylistsRepo) ListForUser(ctx context.Context, userID string) ([]models.Playlist, error) {
	result := make([]models.Playlist, 0)
	for _, p := range f.byID {
		if p.OwnerID == userID {
			result = append(result, *p)
		}
	}
	return result, nil
}

func (f *fakePlaylistsRepo) Delete(ctx context.Context, id string) error {
	if _, ok := f.byID[id]; !ok {
		return common.ErrNotFound
	}
	delete(f.byID, id)
	delete(f.entries, id)
	return nil
}

func (f *fakePlaylistsRepo) AddSong(ctx context.Context, playlistID, songID string) error {
	for _, e := range f.entries[playlistID] {
		if e.ID == songID {
			return common.ErrConflict
		}
	}
	f.entries[playlistID] = append(f.entries[playlistID], models.SongSummary{ID: songID})
	return nil
}

func (f *fakePlaylistsRepo) RemoveSong(ctx context.Context, playlistID, songID string) error {
	entries := f.entries[playlistID]
	for i, e := range entries {
		if e.ID == songID {
			f.entries[playlistID] = slices.Delete(entries, i, i+1)
			return nil
		}
	}
	return common.ErrNotFound
}

func (f *fakePlaylistsRepo) ListSongs(ctx context.Context, playlistID string) ([]models.SongSummary, error) {
	result := make([]models.SongSummary, 0)
	result = append(result, f.entries[playlistID]...)
	return result, nil
}

type fakeCollaborationsRepo struct {
	pairs map[[2]string]bool
}

func (f *fakeCollaborationsRepo) Add(ctx context.Context, playlistID, userID string) error {
	key := [2]string{playlistID, userID}
	if f.pairs[key] {
		return common.ErrConflict
	}
	f.pairs[key] = true
	return nil
}

func (f *fakeCollaborationsRepo) Remove(ctx context.Context, playlistID, userID string) error {
	key := [2]string{playlistID, userID}
	if !f.pairs[key] {
		return common.ErrNotFound
	}
	delete(f.pairs, key)
	return nil
}

func (f *fakeCollaborationsRepo) Exists(ctx context.Context, playlistID, userID string) (bool, error) {
	return f.pairs[[2]string{playlistID, userID}], nil
}
