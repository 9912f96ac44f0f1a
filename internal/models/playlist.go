package models

// Playlist is a named collection of videos.
type Playlist struct {
	ID   int64  `json:"id" db:"id"`
	Name string `json:"playlistName" db:"playlist_name"`
}

// VideoPlaylistLink joins a video to a playlist.
type VideoPlaylistLink struct {
	PlaylistID int64 `json:"playlistId" db:"playlist_id"`
	VideoID    int64 `json:"videoId" db:"video_id"`
}
