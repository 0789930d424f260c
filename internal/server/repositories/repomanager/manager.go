package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/tunedeck/internal/dbx"
	"github.com/dmitrijs2005/tunedeck/internal/server/repositories/collaborations"
	"github.com/dmitrijs2005/tunedeck/internal/server/repositories/playlists"
	"github.com/dmitrijs2005/tunedeck/internal/server/repositories/refreshtokens"
	"github.com/dmitrijs2005/tunedeck/internal/server/repositories/songs"
	"github.com/dmitrijs2005/tunedeck/internal/server/repositories/users"
)

// RepositoryManager vends repository implementations bound to a DBTX, so
// services can run several repositories against one shared transaction.
type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	RefreshTokens(db dbx.DBTX) refreshtokens.Repository
	Songs(db dbx.DBTX) songs.Repository
	Playlists(db dbx.DBTX) playlists.Repository
	Collaborations(db dbx.DBTX) collaborations.Repository
}
