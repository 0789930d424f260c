// Package repomanager provides a concrete RepositoryManager for PostgreSQL,
// wiring together repository constructors and database migrations (via goose).
package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/tunedeck/internal/dbx"
	"github.com/dmitrijs2005/tunedeck/internal/server/migrations"
	"github.com/dmitrijs2005/tunedeck/internal/server/repositories/collaborations"
	"github.com/dmitrijs2005/tunedeck/internal/server/repositories/playlists"
	"github.com/dmitrijs2005/tunedeck/internal/server/repositories/refreshtokens"
	"github.com/dmitrijs2005/tunedeck/internal/server/repositories/songs"
	"github.com/dmitrijs2005/tunedeck/internal/server/repositories/users"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

// PostgresRepositoryManager vends PostgreSQL-backed repository
// implementations and exposes a schema migration hook.
type PostgresRepositoryManager struct{}

// NewPostgresRepositoryManager constructs a PostgreSQL-backed RepositoryManager.
func NewPostgresRepositoryManager() *PostgresRepositoryManager {
	return &PostgresRepositoryManager{}
}

// Users returns a users.Repository bound to the provided DBTX.
func (m *PostgresRepositoryManager) Users(db dbx.DBTX) users.Repository {
	return users.NewPostgresRepository(db)
}

// RefreshTokens returns a refreshtokens.Repository bound to the provided DBTX.
func (m *PostgresRepositoryManager) RefreshTokens(db dbx.DBTX) refreshtokens.Repository {
	return refreshtokens.NewPostgresRepository(db)
}

// Songs returns a songs.Repository bound to the provided DBTX.
func (m *PostgresRepositoryManager) Songs(db dbx.DBTX) songs.Repository {
	return songs.NewPostgresRepository(db)
}

// Playlists returns a playlists.Repository bound to the provided DBTX.
func (m *PostgresRepositoryManager) Playlists(db dbx.DBTX) playlists.Repository {
	return playlists.NewPostgresRepository(db)
}

// Collaborations returns a collaborations.Repository bound to the provided DBTX.
func (m *PostgresRepositoryManager) Collaborations(db dbx.DBTX) collaborations.Repository {
	return collaborations.NewPostgresRepository(db)
}

// gooseUpContext is a seam for testing goose.UpContext.
var gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
	return goose.UpContext(ctx, db, dir, opts...)
}

// RunMigrations sets up goose with the embedded migrations and runs them
// against the provided database connection.
func (m *PostgresRepositoryManager) RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("pgx"); err != nil {
		return err
	}
	if err := gooseUpContext(ctx, db, "."); err != nil {
		return err
	}
	return nil
}
