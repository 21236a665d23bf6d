package spotify

import (
	"context"
	"errors"
	"log/slog"
	"net/url"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zmb3/spotify/v2"

	"github.com/nanomoomug/spotify-notify-playlist-update/internal/domain"
)

func testSession() *Session {
	return &Session{
		logger: slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError})),
	}
}

func playlistFixture() *spotify.FullPlaylist {
	return &spotify.FullPlaylist{
		SimplePlaylist: spotify.SimplePlaylist{
			Name:        "Morning Mix",
			Description: "wake up songs",
			ExternalURLs: map[string]string{
				"spotify": "https://open.spotify.com/playlist/abc",
			},
			Images: []spotify.Image{
				{URL: "https://img/large"},
				{URL: "https://img/medium"},
				{URL: "https://img/small"},
			},
		},
		Tracks: spotify.PlaylistTrackPage{
			Tracks: []spotify.PlaylistTrack{
				{
					AddedAt: "2024-03-01T12:00:00Z",
					Track: spotify.FullTrack{
						SimpleTrack: spotify.SimpleTrack{
							Name: "Track One",
							ExternalURLs: map[string]string{
								"spotify": "https://open.spotify.com/track/1",
							},
							Artists: []spotify.SimpleArtist{
								{
									Name: "First Artist",
									ExternalURLs: map[string]string{
										"spotify": "https://open.spotify.com/artist/1",
									},
								},
								{Name: "Second Artist"},
							},
						},
						Album: spotify.SimpleAlbum{
							Name: "The Album",
							ExternalURLs: map[string]string{
								"spotify": "https://open.spotify.com/album/1",
							},
							Images: []spotify.Image{
								{URL: "https://img/album-large"},
								{URL: "https://img/album-small"},
							},
						},
					},
				},
				{
					AddedAt: "2024-03-01T12:05:00Z",
					Track: spotify.FullTrack{
						SimpleTrack: spotify.SimpleTrack{Name: "Track Two"},
					},
				},
			},
		},
	}
}

func TestToSnapshot_MapsMetadata(t *testing.T) {
	snap := testSession().toSnapshot(playlistFixture())

	assert.Equal(t, "Morning Mix", snap.Name)
	assert.Equal(t, "wake up songs", snap.Description)
	assert.Equal(t, "https://img/medium", snap.ImageURL)
	assert.Equal(t, "https://open.spotify.com/playlist/abc", snap.ExternalURL)
}

func TestToSnapshot_MapsItemsInOrder(t *testing.T) {
	snap := testSession().toSnapshot(playlistFixture())

	require.Len(t, snap.Items, 2)

	first := snap.Items[0]
	assert.Equal(t, "Track One", first.Title)
	assert.Equal(t, time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC), first.AddedAt)
	assert.Equal(t, "https://open.spotify.com/track/1", first.ExternalURL)
	require.Len(t, first.Artists, 2)
	assert.Equal(t, "First Artist", first.Artists[0].Name)
	assert.Equal(t, "https://open.spotify.com/artist/1", first.Artists[0].ExternalURL)
	assert.Empty(t, first.Artists[1].ExternalURL)
	assert.Equal(t, "The Album", first.Album.Name)
	assert.Equal(t, "https://img/album-small", first.Album.ImageURL)

	assert.Equal(t, "Track Two", snap.Items[1].Title)
}

func TestToSnapshot_SkipsUnparsableTimestamps(t *testing.T) {
	pl := playlistFixture()
	pl.Tracks.Tracks[0].AddedAt = "not-a-date"

	snap := testSession().toSnapshot(pl)

	require.Len(t, snap.Items, 1)
	assert.Equal(t, "Track Two", snap.Items[0].Title)
}

func TestToSnapshot_SingleImageFallsBack(t *testing.T) {
	pl := playlistFixture()
	pl.Images = []spotify.Image{{URL: "https://img/only"}}

	snap := testSession().toSnapshot(pl)

	assert.Equal(t, "https://img/only", snap.ImageURL)
}

func TestClassify_TransportErrorsAreNetwork(t *testing.T) {
	err := classify(&url.Error{Op: "Get", URL: "https://api.spotify.com", Err: errors.New("connection refused")})
	assert.Equal(t, domain.KindNetwork, domain.KindOf(err))

	err = classify(context.DeadlineExceeded)
	assert.Equal(t, domain.KindNetwork, domain.KindOf(err))
}

func TestClassify_ProviderErrorsStayUnclassified(t *testing.T) {
	err := classify(spotify.Error{Status: 404, Message: "Invalid playlist Id"})
	assert.Equal(t, domain.KindUnclassified, domain.KindOf(err))
}
