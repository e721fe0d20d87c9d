package player

// Track is one playable entry handed to the session layer. The path points
// at an audio file on disk; title and artist are display metadata supplied
// by whoever built the traversal (playlist entries or ad-hoc file lists).
type Track struct {
	Path   string
	Title  string
	Artist string
}

// Display renders the track for banners and status lines.
func (t Track) Display() string {
	if t.Artist == "" {
		return t.Title
	}
	return t.Title + " - " + t.Artist
}
