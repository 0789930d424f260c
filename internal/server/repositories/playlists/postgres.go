package playlists

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/tunedeck/internal/common"
	"github.com/dmitrijs2005/tunedeck/internal/dbx"
	"github.com/dmitrijs2005/tunedeck/internal/server/models"
)

// PostgresRepository implements playlist storage over dbx.DBTX.
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, playlist *models.Playlist) error {
	query := `
		INSERT INTO playlists (id, name, owner_id)
		VALUES ($1, $2, $3)
	`
	if _, err := r.db.ExecContext(ctx, query,
		playlist.ID, playlist.Name, playlist.OwnerID); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*models.Playlist, error) {
	query := `
		SELECT id, name, owner_id FROM playlists
		WHERE id = $1
	`
	playlist := &models.Playlist{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&playlist.ID, &playlist.Name, &playlist.OwnerID)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return playlist, nil
}

func (r *PostgresRepository) ListForUser(ctx context.Context, userID string) ([]models.Playlist, error) {
	// owned playlists plus playlists shared through a collaboration row
	query := `
		SELECT p.id, p.name, p.owner_id, u.username
		FROM playlists p
		JOIN users u ON u.id = p.owner_id
		LEFT JOIN collaborations c ON c.playlist_id = p.id
		WHERE p.owner_id = $1 OR c.user_id = $1
		GROUP BY p.id, p.name, p.owner_id, u.username
		ORDER BY p.name
	`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	result := make([]models.Playlist, 0)
	for rows.Next() {
		var item models.Playlist
		if err := rows.Scan(&item.ID, &item.Name, &item.OwnerID, &item.Owner); err != nil {
			return nil, err
		}
		result = append(result, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	query := `
		DELETE FROM playlists
		WHERE id = $1
	`
	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected error: %w", err)
	}
	if n == 0 {
		return common.ErrNotFound
	}
	return nil
}

func (r *PostgresRepository) AddSong(ctx context.Context, playlistID, songID string) error {
	query := `
		INSERT INTO playlist_songs (playlist_id, song_id)
		VALUES ($1, $2)
	`
	if _, err := r.db.ExecContext(ctx, query, playlistID, songID); err != nil {
		if dbx.IsUniqueViolation(err) {
			return common.ErrConflict
		}
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *PostgresRepository) RemoveSong(ctx context.Context, playlistID, songID string) error {
	query := `
		DELETE FROM playlist_songs
		WHERE playlist_id = $1 AND song_id = $2
	`
	res, err := r.db.ExecContext(ctx, query, playlistID, songID)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected error: %w", err)
	}
	if n == 0 {
		return common.ErrNotFound
	}
	return nil
}

func (r *PostgresRepository) ListSongs(ctx context.Context, playlistID string) ([]models.SongSummary, error) {
	query := `
		SELECT s.id, s.title, s.performer
		FROM playlist_songs ps
		JOIN songs s ON s.id = ps.song_id
		WHERE ps.playlist_id = $1
		ORDER BY ps.position
	`
	rows, err := r.db.QueryContext(ctx, query, playlistID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	result := make([]models.SongSummary, 0)
	for rows.Next() {
		var item models.SongSummary
		if err := rows.Scan(&item.ID, &item.Title, &item.Performer); err != nil {
			return nil, err
		}
		result = append(result, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
