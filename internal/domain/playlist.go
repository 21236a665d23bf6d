package domain

import "time"

// Connection is one upstream Spotify account the watcher polls with.
// Created by external configuration, read-only here.
type Connection struct {
	ID          int64
	Credentials Credentials
}

// Credentials are the client-credentials pair for a Connection.
type Credentials struct {
	ClientID     string
	ClientSecret string
}

// TrackedPlaylist ties a stored playlist row to its external Spotify
// playlist and the last snapshot observed for it. LastState is nil until
// the first successful poll.
type TrackedPlaylist struct {
	ID           int64
	ConnectionID int64
	ExternalID   string
	LastState    *Snapshot
}

// Snapshot is a point-in-time capture of a playlist: its ordered items
// plus the display metadata the digest renderer needs. Only the items'
// AddedAt timestamps matter for diffing.
type Snapshot struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url,omitempty"`
	ExternalURL string `json:"external_url,omitempty"`
	Items       []Item `json:"items"`
}

// Item is a single playlist entry with its insertion timestamp.
type Item struct {
	AddedAt     time.Time   `json:"added_at"`
	Title       string      `json:"title"`
	ExternalURL string      `json:"external_url,omitempty"`
	Artists     []ArtistRef `json:"artists,omitempty"`
	Album       AlbumRef    `json:"album"`
}

// ArtistRef is display metadata for one artist on an item.
type ArtistRef struct {
	Name        string `json:"name"`
	ExternalURL string `json:"external_url,omitempty"`
}

// AlbumRef is display metadata for an item's album.
type AlbumRef struct {
	Name        string `json:"name"`
	ExternalURL string `json:"external_url,omitempty"`
	ImageURL    string `json:"image_url,omitempty"`
}

// MailConfig is the single-row SMTP configuration read from the store.
type MailConfig struct {
	Sender   string
	Host     string
	Port     int
	Password string
}
