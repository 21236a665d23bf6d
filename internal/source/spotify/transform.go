package spotify

import (
	"time"

	"github.com/zmb3/spotify/v2"

	"github.com/nanomoomug/spotify-notify-playlist-update/internal/domain"
)

func (s *Session) toSnapshot(playlist *spotify.FullPlaylist) *domain.Snapshot {
	snap := &domain.Snapshot{
		Name:        playlist.Name,
		Description: playlist.Description,
		ImageURL:    coverImage(playlist.Images),
		ExternalURL: playlist.ExternalURLs["spotify"],
		Items:       make([]domain.Item, 0, len(playlist.Tracks.Tracks)),
	}

	for _, entry := range playlist.Tracks.Tracks {
		addedAt, err := time.Parse(spotify.TimestampLayout, entry.AddedAt)
		if err != nil {
			s.logger.Warn("failed to parse added_at",
				"track", entry.Track.Name,
				"added_at", entry.AddedAt,
			)
			continue
		}

		item := domain.Item{
			AddedAt:     addedAt,
			Title:       entry.Track.Name,
			ExternalURL: entry.Track.ExternalURLs["spotify"],
			Album: domain.AlbumRef{
				Name:        entry.Track.Album.Name,
				ExternalURL: entry.Track.Album.ExternalURLs["spotify"],
				ImageURL:    thumbnailImage(entry.Track.Album.Images),
			},
		}

		for _, artist := range entry.Track.Artists {
			item.Artists = append(item.Artists, domain.ArtistRef{
				Name:        artist.Name,
				ExternalURL: artist.ExternalURLs["spotify"],
			})
		}

		snap.Items = append(snap.Items, item)
	}

	return snap
}

// coverImage picks the medium rendition when available. Spotify orders
// images largest first.
func coverImage(images []spotify.Image) string {
	if len(images) > 1 {
		return images[1].URL
	}
	if len(images) == 1 {
		return images[0].URL
	}
	return ""
}

// thumbnailImage picks the smallest rendition.
func thumbnailImage(images []spotify.Image) string {
	if len(images) == 0 {
		return ""
	}
	return images[len(images)-1].URL
}
