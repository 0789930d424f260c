package collaborations

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/tunedeck/internal/common"
	"github.com/dmitrijs2005/tunedeck/internal/dbx"
)

// PostgresRepository implements collaboration storage over dbx.DBTX.
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Add(ctx context.Context, playlistID, userID string) error {
	query := `
		INSERT INTO collaborations (playlist_id, user_id)
		VALUES ($1, $2)
	`
	if _, err := r.db.ExecContext(ctx, query, playlistID, userID); err != nil {
		if dbx.IsUniqueViolation(err) {
			return common.ErrConflict
		}
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *PostgresRepository) Remove(ctx context.Context, playlistID, userID string) error {
	query := `
		DELETE FROM collaborations
		WHERE playlist_id = $1 AND user_id = $2
	`
	res, err := r.db.ExecContext(ctx, query, playlistID, userID)
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

func (r *PostgresRepository) Exists(ctx context.Context, playlistID, userID string) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM collaborations
			WHERE playlist_id = $1 AND user_id = $2
		)
	`
	var exists bool
	if err := r.db.QueryRowContext(ctx, query, playlistID, userID).Scan(&exists); err != nil {
		return false, fmt.Errorf("db error: %w", err)
	}
	return exists, nil
}
