package service

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"github.com/nanomoomug/spotify-notify-playlist-update/internal/domain"
)

type ConnectionStore interface {
	List(ctx context.Context) ([]domain.Connection, error)
}

type PlaylistStore interface {
	ListByConnection(ctx context.Context, connectionID int64) ([]domain.TrackedPlaylist, error)
	SaveSnapshot(ctx context.Context, playlistID int64, snapshot *domain.Snapshot) error
}

type SubscriberStore interface {
	ListEmails(ctx context.Context, playlistID int64) ([]string, error)
}

type MailConfigStore interface {
	GetMailConfig(ctx context.Context) (*domain.MailConfig, error)
}

// PlaylistSource fetches the current snapshot of one external playlist.
type PlaylistSource interface {
	Fetch(ctx context.Context, externalID string) (*domain.Snapshot, error)
}

// SourceFactory opens a PlaylistSource for one connection's credentials.
type SourceFactory interface {
	Open(creds domain.Credentials) PlaylistSource
}

// Notifier renders and delivers one digest message to all recipients.
type Notifier interface {
	Send(ctx context.Context, cfg domain.MailConfig, recipients []string, playlist *domain.Snapshot, newItems []domain.Item) error
}

// Publisher emits playlist-update events to a broker. Optional.
type Publisher interface {
	PublishUpdate(ctx context.Context, playlist domain.TrackedPlaylist, snapshot *domain.Snapshot, newItems []domain.Item) error
	Close() error
}
