// Package spotify fetches playlist snapshots from the Spotify Web API
// using the client-credentials flow.
package spotify

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/zmb3/spotify/v2"
	spotifyauth "github.com/zmb3/spotify/v2/auth"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"

	"github.com/nanomoomug/spotify-notify-playlist-update/internal/domain"
)

// Config holds Spotify source configuration.
type Config struct {
	Timeout time.Duration
}

// Factory opens authenticated sessions, one per stored connection.
type Factory struct {
	timeout time.Duration
	logger  *slog.Logger
}

func NewFactory(cfg Config, logger *slog.Logger) *Factory {
	return &Factory{
		timeout: cfg.Timeout,
		logger:  logger.With("source", "spotify"),
	}
}

// Open builds a session for one connection's credentials. The access token
// is fetched lazily on the first request.
func (f *Factory) Open(creds domain.Credentials) *Session {
	authCfg := &clientcredentials.Config{
		ClientID:     creds.ClientID,
		ClientSecret: creds.ClientSecret,
		TokenURL:     spotifyauth.TokenURL,
	}

	ctx := context.WithValue(context.Background(), oauth2.HTTPClient, &http.Client{
		Timeout: f.timeout,
	})

	return &Session{
		client: spotify.New(authCfg.Client(ctx)),
		logger: f.logger,
	}
}

// Session is an authenticated Spotify client for one connection.
type Session struct {
	client *spotify.Client
	logger *slog.Logger
}

// Fetch retrieves the current snapshot of one playlist. A single blocking
// call, no internal retry; retries happen at the cycle level. Connectivity
// failures come back classified as network errors so the scheduler picks
// the short backoff.
func (s *Session) Fetch(ctx context.Context, externalID string) (*domain.Snapshot, error) {
	playlist, err := s.client.GetPlaylist(ctx, spotify.ID(externalID))
	if err != nil {
		return nil, classify(err)
	}

	return s.toSnapshot(playlist), nil
}

func classify(err error) error {
	var netErr net.Error
	if errors.As(err, &netErr) || errors.Is(err, context.DeadlineExceeded) {
		return domain.Classify(domain.KindNetwork, err)
	}
	return err
}
