package songs

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/tunedeck/internal/common"
	"github.com/dmitrijs2005/tunedeck/internal/dbx"
	"github.com/dmitrijs2005/tunedeck/internal/server/models"
)

// PostgresRepository implements song catalog storage over dbx.DBTX.
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, song *models.Song) error {
	query := `
		INSERT INTO songs (id, title, year, genre, performer, duration)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	if _, err := r.db.ExecContext(ctx, query,
		song.ID, song.Title, song.Year, song.Genre, song.Performer, song.Duration); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*models.Song, error) {
	query := `
		SELECT id, title, year, genre, performer, duration FROM songs
		WHERE id = $1
	`
	song := &models.Song{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&song.ID, &song.Title, &song.Year, &song.Genre, &song.Performer, &song.Duration)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return song, nil
}

func (r *PostgresRepository) List(ctx context.Context, title, performer string) ([]models.SongSummary, error) {
	query := `
		SELECT id, title, performer FROM songs
		WHERE title ILIKE '%' || $1 || '%' AND performer ILIKE '%' || $2 || '%'
		ORDER BY title
	`
	rows, err := r.db.QueryContext(ctx, query, title, performer)
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

func (r *PostgresRepository) Update(ctx context.Context, song *models.Song) error {
	query := `
		UPDATE songs
		SET title = $2, year = $3, genre = $4, performer = $5, duration = $6
		WHERE id = $1
	`
	res, err := r.db.ExecContext(ctx, query,
		song.ID, song.Title, song.Year, song.Genre, song.Performer, song.Duration)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return requireOneRow(res)
}

func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	query := `
		DELETE FROM songs
		WHERE id = $1
	`
	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return requireOneRow(res)
}

// requireOneRow maps a zero-row mutation to common.ErrNotFound.
func requireOneRow(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected error: %w", err)
	}
	if n == 0 {
		return common.ErrNotFound
	}
	return nil
}
