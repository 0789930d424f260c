package models

// Playlist groups songs under a single owning user. The owner never changes;
// deleting a playlist cascades to its song entries and collaborations.
type Playlist struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	OwnerID string `json:"-"`

	// Username of the owner, populated by list queries for display.
	Owner string `json:"username,omitempty"`
}

// AccessLevel is the resolved permission of a user on a playlist.
// Levels are ordered: LevelNone < LevelCollaborator < LevelOwner.
type AccessLevel int

const (
	LevelNone AccessLevel = iota
	LevelCollaborator
	LevelOwner
)

func (l AccessLevel) String() string {
	switch l {
	case LevelOwner:
		return "owner"
	case LevelCollaborator:
		return "collaborator"
	default:
		return "none"
	}
}
