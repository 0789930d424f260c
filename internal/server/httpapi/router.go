package httpapi

import (
	"net/http"

	"github.com/gorilla/mux"
)

// Router wires every endpoint. Account, authentication and catalog routes
// are public; everything touching playlists requires a bearer token.
func (a *API) Router() *mux.Router {
	r := mux.NewRouter()

	r.HandleFunc("/users", a.postUser).Methods(http.MethodPost)

	r.HandleFunc("/authentications", a.postAuthentication).Methods(http.MethodPost)
	r.HandleFunc("/authentications", a.putAuthentication).Methods(http.MethodPut)
	r.HandleFunc("/authentications", a.deleteAuthentication).Methods(http.MethodDelete)

	r.HandleFunc("/songs", a.postSong).Methods(http.MethodPost)
	r.HandleFunc("/songs", a.getSongs).Methods(http.MethodGet)
	r.HandleFunc("/songs/{id}", a.getSong).Methods(http.MethodGet)
	r.HandleFunc("/songs/{id}", a.putSong).Methods(http.MethodPut)
	r.HandleFunc("/songs/{id}", a.deleteSong).Methods(http.MethodDelete)

	protected := r.NewRoute().Subrouter()
	protected.Use(a.authMiddleware)

	protected.HandleFunc("/playlists", a.postPlaylist).Methods(http.MethodPost)
	protected.HandleFunc("/playlists", a.getPlaylists).Methods(http.MethodGet)
	protected.HandleFunc("/playlists/{id}", a.deletePlaylist).Methods(http.MethodDelete)
	protected.HandleFunc("/playlists/{id}/songs", a.postPlaylistSong).Methods(http.MethodPost)
	protected.HandleFunc("/playlists/{id}/songs", a.getPlaylistSongs).Methods(http.MethodGet)
	protected.HandleFunc("/playlists/{id}/songs", a.deletePlaylistSong).Methods(http.MethodDelete)

	protected.HandleFunc("/collaborations", a.postCollaboration).Methods(http.MethodPost)
	protected.HandleFunc("/collaborations", a.deleteCollaboration).Methods(http.MethodDelete)

	protected.HandleFunc("/exports/playlists/{id}", a.postExport).Methods(http.MethodPost)

	return r
}
