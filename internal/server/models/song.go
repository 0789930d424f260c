package models

// Song is a catalog entry shared by all users.
type Song struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Year      int    `json:"year"`
	Genre     string `json:"genre"`
	Performer string `json:"performer"`
	Duration  int    `json:"duration"`
}

// SongSummary is the short projection returned by playlist reads. It is also
// the value shape stored in the playlist cache, so field tags are part of the
// cache encoding.
type SongSummary struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Performer string `json:"performer"`
}
