package httpapi

import (
	"net/http"

	"github.com/dmitrijs2005/tunedeck/internal/logging"
	"github.com/dmitrijs2005/tunedeck/internal/server/models"
	"github.com/dmitrijs2005/tunedeck/internal/server/services"
	"github.com/gorilla/mux"
)

// API bundles the constructed services behind the HTTP handlers.
type API struct {
	users     *services.UserService
	tokens    *services.TokenService
	songs     *services.SongService
	playlists *services.PlaylistService
	exports   *services.ExportService
	logger    logging.Logger
}

// NewAPI builds the handler set over already-constructed services.
func NewAPI(users *services.UserService, tokens *services.TokenService, songs *services.SongService,
	playlists *services.PlaylistService, exports *services.ExportService, logger logging.Logger) *API {
	return &API{
		users:     users,
		tokens:    tokens,
		songs:     songs,
		playlists: playlists,
		exports:   exports,
		logger:    logger.With("module", "httpapi"),
	}
}

func (a *API) postUser(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Username string `json:"username"`
		Password string `json:"password"`
		FullName string `json:"fullname"`
	}
	if err := decodeBody(r, &req); err != nil || req.Username == "" || req.Password == "" {
		respondBadRequest(w, "username and password are required")
		return
	}

	user, err := a.users.Register(r.Context(), req.Username, req.Password, req.FullName)
	if err != nil {
		respondError(r.Context(), w, a.logger, err)
		return
	}
	respondSuccess(w, http.StatusCreated, "", map[string]string{"userId": user.ID})
}

func (a *API) postAuthentication(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := decodeBody(r, &req); err != nil || req.Username == "" || req.Password == "" {
		respondBadRequest(w, "username and password are required")
		return
	}

	userID, err := a.users.VerifyCredential(r.Context(), req.Username, req.Password)
	if err != nil {
		respondError(r.Context(), w, a.logger, err)
		return
	}

	pair, err := a.tokens.Issue(r.Context(), userID)
	if err != nil {
		respondError(r.Context(), w, a.logger, err)
		return
	}
	respondSuccess(w, http.StatusCreated, "", map[string]string{
		"accessToken":  pair.AccessToken,
		"refreshToken": pair.RefreshToken,
	})
}

func (a *API) putAuthentication(w http.ResponseWriter, r *http.Request) {
	var req struct {
		RefreshToken string `json:"refreshToken"`
	}
	if err := decodeBody(r, &req); err != nil || req.RefreshToken == "" {
		respondBadRequest(w, "refreshToken is required")
		return
	}

	accessToken, err := a.tokens.Refresh(r.Context(), req.RefreshToken)
	if err != nil {
		respondError(r.Context(), w, a.logger, err)
		return
	}
	respondSuccess(w, http.StatusOK, "", map[string]string{"accessToken": accessToken})
}

func (a *API) deleteAuthentication(w http.ResponseWriter, r *http.Request) {
	var req struct {
		RefreshToken string `json:"refreshToken"`
	}
	if err := decodeBody(r, &req); err != nil || req.RefreshToken == "" {
		respondBadRequest(w, "refreshToken is required")
		return
	}

	if err := a.tokens.Revoke(r.Context(), req.RefreshToken); err != nil {
		respondError(r.Context(), w, a.logger, err)
		return
	}
	respondSuccess(w, http.StatusOK, "refresh token revoked", nil)
}

type songPayload struct {
	Title     string `json:"title"`
	Year      int    `json:"year"`
	Genre     string `json:"genre"`
	Performer string `json:"performer"`
	Duration  int    `json:"duration"`
}

func (a *API) postSong(w http.ResponseWriter, r *http.Request) {
	var req songPayload
	if err := decodeBody(r, &req); err != nil || req.Title == "" || req.Performer == "" {
		respondBadRequest(w, "title and performer are required")
		return
	}

	song, err := a.songs.Create(r.Context(), &models.Song{
		Title:     req.Title,
		Year:      req.Year,
		Genre:     req.Genre,
		Performer: req.Performer,
		Duration:  req.Duration,
	})
	if err != nil {
		respondError(r.Context(), w, a.logger, err)
		return
	}
	respondSuccess(w, http.StatusCreated, "", map[string]string{"songId": song.ID})
}

func (a *API) getSongs(w http.ResponseWriter, r *http.Request) {
	title := r.URL.Query().Get("title")
	performer := r.URL.Query().Get("performer")

	songs, err := a.songs.List(r.Context(), title, performer)
	if err != nil {
		respondError(r.Context(), w, a.logger, err)
		return
	}
	respondSuccess(w, http.StatusOK, "", map[string]any{"songs": songs})
}

func (a *API) getSong(w http.ResponseWriter, r *http.Request) {
	song, err := a.songs.Get(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		respondError(r.Context(), w, a.logger, err)
		return
	}
	respondSuccess(w, http.StatusOK, "", map[string]any{"song": song})
}

func (a *API) putSong(w http.ResponseWriter, r *http.Request) {
	var req songPayload
	if err := decodeBody(r, &req); err != nil || req.Title == "" || req.Performer == "" {
		respondBadRequest(w, "title and performer are required")
		return
	}

	err := a.songs.Update(r.Context(), &models.Song{
		ID:        mux.Vars(r)["id"],
		Title:     req.Title,
		Year:      req.Year,
		Genre:     req.Genre,
		Performer: req.Performer,
		Duration:  req.Duration,
	})
	if err != nil {
		respondError(r.Context(), w, a.logger, err)
		return
	}
	respondSuccess(w, http.StatusOK, "song updated", nil)
}

func (a *API) deleteSong(w http.ResponseWriter, r *http.Request) {
	if err := a.songs.Delete(r.Context(), mux.Vars(r)["id"]); err != nil {
		respondError(r.Context(), w, a.logger, err)
		return
	}
	respondSuccess(w, http.StatusOK, "song deleted", nil)
}

func (a *API) postPlaylist(w http.ResponseWriter, r *http.Request) {
	userID, _ := userIDFrom(r.Context())

	var req struct {
		Name string `json:"name"`
	}
	if err := decodeBody(r, &req); err != nil || req.Name == "" {
		respondBadRequest(w, "name is required")
		return
	}

	playlist, err := a.playlists.Create(r.Context(), userID, req.Name)
	if err != nil {
		respondError(r.Context(), w, a.logger, err)
		return
	}
	respondSuccess(w, http.StatusCreated, "", map[string]string{"playlistId": playlist.ID})
}

func (a *API) getPlaylists(w http.ResponseWriter, r *http.Request) {
	userID, _ := userIDFrom(r.Context())

	playlists, err := a.playlists.ListForUser(r.Context(), userID)
	if err != nil {
		respondError(r.Context(), w, a.logger, err)
		return
	}
	respondSuccess(w, http.StatusOK, "", map[string]any{"playlists": playlists})
}

func (a *API) deletePlaylist(w http.ResponseWriter, r *http.Request) {
	userID, _ := userIDFrom(r.Context())

	if err := a.playlists.Delete(r.Context(), userID, mux.Vars(r)["id"]); err != nil {
		respondError(r.Context(), w, a.logger, err)
		return
	}
	respondSuccess(w, http.StatusOK, "playlist deleted", nil)
}

func (a *API) postPlaylistSong(w http.ResponseWriter, r *http.Request) {
	userID, _ := userIDFrom(r.Context())

	var req struct {
		SongID string `json:"songId"`
	}
	if err := decodeBody(r, &req); err != nil || req.SongID == "" {
		respondBadRequest(w, "songId is required")
		return
	}

	if err := a.playlists.AddSong(r.Context(), userID, mux.Vars(r)["id"], req.SongID); err != nil {
		respondError(r.Context(), w, a.logger, err)
		return
	}
	respondSuccess(w, http.StatusCreated, "song added to playlist", nil)
}

func (a *API) getPlaylistSongs(w http.ResponseWriter, r *http.Request) {
	userID, _ := userIDFrom(r.Context())

	songs, err := a.playlists.GetSongs(r.Context(), userID, mux.Vars(r)["id"])
	if err != nil {
		respondError(r.Context(), w, a.logger, err)
		return
	}
	respondSuccess(w, http.StatusOK, "", map[string]any{"songs": songs})
}

func (a *API) deletePlaylistSong(w http.ResponseWriter, r *http.Request) {
	userID, _ := userIDFrom(r.Context())

	var req struct {
		SongID string `json:"songId"`
	}
	if err := decodeBody(r, &req); err != nil || req.SongID == "" {
		respondBadRequest(w, "songId is required")
		return
	}

	if err := a.playlists.RemoveSong(r.Context(), userID, mux.Vars(r)["id"], req.SongID); err != nil {
		respondError(r.Context(), w, a.logger, err)
		return
	}
	respondSuccess(w, http.StatusOK, "song removed from playlist", nil)
}

type collaborationPayload struct {
	PlaylistID string `json:"playlistId"`
	UserID     string `json:"userId"`
}

func (a *API) postCollaboration(w http.ResponseWriter, r *http.Request) {
	actorID, _ := userIDFrom(r.Context())

	var req collaborationPayload
	if err := decodeBody(r, &req); err != nil || req.PlaylistID == "" || req.UserID == "" {
		respondBadRequest(w, "playlistId and userId are required")
		return
	}

	if err := a.playlists.AddCollaborator(r.Context(), actorID, req.PlaylistID, req.UserID); err != nil {
		respondError(r.Context(), w, a.logger, err)
		return
	}
	respondSuccess(w, http.StatusCreated, "collaborator added", nil)
}

func (a *API) deleteCollaboration(w http.ResponseWriter, r *http.Request) {
	actorID, _ := userIDFrom(r.Context())

	var req collaborationPayload
	if err := decodeBody(r, &req); err != nil || req.PlaylistID == "" || req.UserID == "" {
		respondBadRequest(w, "playlistId and userId are required")
		return
	}

	if err := a.playlists.RemoveCollaborator(r.Context(), actorID, req.PlaylistID, req.UserID); err != nil {
		respondError(r.Context(), w, a.logger, err)
		return
	}
	respondSuccess(w, http.StatusOK, "collaborator removed", nil)
}

func (a *API) postExport(w http.ResponseWriter, r *http.Request) {
	userID, _ := userIDFrom(r.Context())

	var req struct {
		TargetEmail string `json:"targetEmail"`
	}
	if err := decodeBody(r, &req); err != nil || req.TargetEmail == "" {
		respondBadRequest(w, "targetEmail is required")
		return
	}

	jobID, err := a.exports.RequestExport(r.Context(), userID, mux.Vars(r)["id"], req.TargetEmail)
	if err != nil {
		respondError(r.Context(), w, a.logger, err)
		return
	}
	respondSuccess(w, http.StatusCreated, "export request accepted", map[string]string{"jobId": jobID})
}
