package services

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/tunedeck/internal/common"
	"github.com/dmitrijs2005/tunedeck/internal/server/cache"
	"github.com/dmitrijs2005/tunedeck/internal/server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type playlistFixture struct {
	svc  *PlaylistService
	rm   *fakeRepoManager
	mock sqlmock.Sqlmock
}

// newPlaylistFixture wires a PlaylistService over the in-memory fakes. The
// sqlmock handle only serves transaction begin/commit; the repositories
// behind it are fakes that ignore the handle.
func newPlaylistFixture(t *testing.T) *playlistFixture {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	rm := newFakeRepoManager()
	songCache := cache.NewSongCache(cache.NewMemoryStore(), time.Minute, discardLogger())
	access := NewAccessService(db, rm)

	return &playlistFixture{
		svc:  NewPlaylistService(db, rm, access, songCache),
		rm:   rm,
		mock: mock,
	}
}

func (f *playlistFixture) seedPlaylist(t *testing.T, ownerID string) *models.Playlist {
	t.Helper()
	p, err := f.svc.Create(context.Background(), ownerID, "roadtrip")
	require.NoError(t, err)
	return p
}

func (f *playlistFixture) seedSong(t *testing.T, title string) *models.Song {
	t.Helper()
	song := &models.Song{ID: "s-" + title, Title: title, Performer: "The Band"}
	require.NoError(t, f.rm.songs.Create(context.Background(), song))
	return song
}

func TestPlaylistCreateAndList(t *testing.T) {
	f := newPlaylistFixture(t)
	ctx := context.Background()

	p := f.seedPlaylist(t, "owner")
	assert.NotEmpty(t, p.ID)

	listed, err := f.svc.ListForUser(ctx, "owner")
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, p.ID, listed[0].ID)

	other, err := f.svc.ListForUser(ctx, "other")
	require.NoError(t, err)
	assert.Empty(t, other)
}

func TestAddSong_OwnerThenFreshRead(t *testing.T) {
	f := newPlaylistFixture(t)
	ctx := context.Background()

	p := f.seedPlaylist(t, "owner")
	song := f.seedSong(t, "first")

	// warm the cache with the empty list
	songs, err := f.svc.GetSongs(ctx, "owner", p.ID)
	require.NoError(t, err)
	assert.Empty(t, songs)

	f.mock.ExpectBegin()
	f.mock.ExpectCommit()
	require.NoError(t, f.svc.AddSong(ctx, "owner", p.ID, song.ID))

	// the mutation must be visible to the next read despite the warm cache
	songs, err = f.svc.GetSongs(ctx, "owner", p.ID)
	require.NoError(t, err)
	require.Len(t, songs, 1)
	assert.Equal(t, song.ID, songs[0].ID)

	assert.NoError(t, f.mock.ExpectationsWereMet())
}

func TestAddSong_CollaboratorAllowed(t *testing.T) {
	f := newPlaylistFixture(t)
	ctx := context.Background()

	p := f.seedPlaylist(t, "owner")
	song := f.seedSong(t, "shared")
	require.NoError(t, f.rm.collaborations.Add(ctx, p.ID, "collab"))

	f.mock.ExpectBegin()
	f.mock.ExpectCommit()
	require.NoError(t, f.svc.AddSong(ctx, "collab", p.ID, song.ID))

	songs, err := f.svc.GetSongs(ctx, "collab", p.ID)
	require.NoError(t, err)
	assert.Len(t, songs, 1)
}

func TestAddSong_StrangerForbidden(t *testing.T) {
	f := newPlaylistFixture(t)
	ctx := context.Background()

	p := f.seedPlaylist(t, "owner")
	song := f.seedSong(t, "private")

	err := f.svc.AddSong(ctx, "stranger", p.ID, song.ID)
	assert.ErrorIs(t, err, common.ErrForbidden)

	// no transaction may have been opened
	assert.NoError(t, f.mock.ExpectationsWereMet())
}

func TestAddSong_MissingSong(t *testing.T) {
	f := newPlaylistFixture(t)
	ctx := context.Background()

	p := f.seedPlaylist(t, "owner")

	f.mock.ExpectBegin()
	f.mock.ExpectRollback()
	err := f.svc.AddSong(ctx, "owner", p.ID, "no-such-song")
	assert.ErrorIs(t, err, common.ErrNotFound)

	assert.NoError(t, f.mock.ExpectationsWereMet())
}

func TestAddSong_Duplicate(t *testing.T) {
	f := newPlaylistFixture(t)
	ctx := context.Background()

	p := f.seedPlaylist(t, "owner")
	song := f.seedSong(t, "once")

	f.mock.ExpectBegin()
	f.mock.ExpectCommit()
	require.NoError(t, f.svc.AddSong(ctx, "owner", p.ID, song.ID))

	f.mock.ExpectBegin()
	f.mock.ExpectRollback()
	err := f.svc.AddSong(ctx, "owner", p.ID, song.ID)
	assert.ErrorIs(t, err, common.ErrConflict)
}

func TestRemoveSong(t *testing.T) {
	f := newPlaylistFixture(t)
	ctx := context.Background()

	p := f.seedPlaylist(t, "owner")
	song := f.seedSong(t, "removable")

	f.mock.ExpectBegin()
	f.mock.ExpectCommit()
	require.NoError(t, f.svc.AddSong(ctx, "owner", p.ID, song.ID))

	require.NoError(t, f.svc.RemoveSong(ctx, "owner", p.ID, song.ID))

	songs, err := f.svc.GetSongs(ctx, "owner", p.ID)
	require.NoError(t, err)
	assert.Empty(t, songs)

	err = f.svc.RemoveSong(ctx, "owner", p.ID, song.ID)
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestGetSongs_StrangerForbidden(t *testing.T) {
	f := newPlaylistFixture(t)

	p := f.seedPlaylist(t, "owner")

	_, err := f.svc.GetSongs(context.Background(), "stranger", p.ID)
	assert.ErrorIs(t, err, common.ErrForbidden)
}

func TestGetSongs_MissingPlaylist(t *testing.T) {
	f := newPlaylistFixture(t)

	_, err := f.svc.GetSongs(context.Background(), "owner", "missing")
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestDelete_OwnerOnly(t *testing.T) {
	f := newPlaylistFixture(t)
	ctx := context.Background()

	p := f.seedPlaylist(t, "owner")
	require.NoError(t, f.rm.collaborations.Add(ctx, p.ID, "collab"))

	err := f.svc.Delete(ctx, "collab", p.ID)
	assert.ErrorIs(t, err, common.ErrForbidden)

	require.NoError(t, f.svc.Delete(ctx, "owner", p.ID))

	// after deletion even the former owner resolves to nothing
	_, err = f.svc.GetSongs(ctx, "owner", p.ID)
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestCollaborations(t *testing.T) {
	f := newPlaylistFixture(t)
	ctx := context.Background()

	p := f.seedPlaylist(t, "owner")
	_, err := f.rm.users.Create(ctx, &models.User{ID: "collab", Username: "collab"})
	require.NoError(t, err)

	t.Run("only the owner may grant", func(t *testing.T) {
		err := f.svc.AddCollaborator(ctx, "collab", p.ID, "collab")
		assert.ErrorIs(t, err, common.ErrForbidden)
	})

	t.Run("target user must exist", func(t *testing.T) {
		err := f.svc.AddCollaborator(ctx, "owner", p.ID, "ghost")
		assert.ErrorIs(t, err, common.ErrNotFound)
	})

	t.Run("grant then duplicate", func(t *testing.T) {
		require.NoError(t, f.svc.AddCollaborator(ctx, "owner", p.ID, "collab"))
		err := f.svc.AddCollaborator(ctx, "owner", p.ID, "collab")
		assert.ErrorIs(t, err, common.ErrConflict)
	})

	t.Run("collaborator may read after grant", func(t *testing.T) {
		_, err := f.svc.GetSongs(ctx, "collab", p.ID)
		assert.NoError(t, err)
	})

	t.Run("collaborator may remove only themselves", func(t *testing.T) {
		err := f.svc.RemoveCollaborator(ctx, "collab", p.ID, "owner")
		assert.ErrorIs(t, err, common.ErrForbidden)

		require.NoError(t, f.svc.RemoveCollaborator(ctx, "collab", p.ID, "collab"))

		_, err = f.svc.GetSongs(ctx, "collab", p.ID)
		assert.ErrorIs(t, err, common.ErrForbidden)
	})

	t.Run("owner may remove anyone", func(t *testing.T) {
		require.NoError(t, f.svc.AddCollaborator(ctx, "owner", p.ID, "collab"))
		require.NoError(t, f.svc.RemoveCollaborator(ctx, "owner", p.ID, "collab"))
	})
}
