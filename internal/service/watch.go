package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/nanomoomug/spotify-notify-playlist-update/internal/diff"
	"github.com/nanomoomug/spotify-notify-playlist-update/internal/domain"
)

// WatchService runs one poll cycle: enumerate connections and playlists,
// fetch, diff, persist, notify. Snapshots are always persisted before a
// notification is attempted, so a failed send never causes the same items
// to be reported again.
type WatchService struct {
	connections ConnectionStore
	playlists   PlaylistStore
	subscribers SubscriberStore
	mailConfig  MailConfigStore
	sources     SourceFactory
	notifier    Notifier
	publisher   Publisher
	logger      *slog.Logger
}

func NewWatchService(
	connections ConnectionStore,
	playlists PlaylistStore,
	subscribers SubscriberStore,
	mailConfig MailConfigStore,
	sources SourceFactory,
	notifier Notifier,
	publisher Publisher,
	logger *slog.Logger,
) *WatchService {
	return &WatchService{
		connections: connections,
		playlists:   playlists,
		subscribers: subscribers,
		mailConfig:  mailConfig,
		sources:     sources,
		notifier:    notifier,
		publisher:   publisher,
		logger:      logger,
	}
}

// CheckForUpdates executes one full cycle over every connection and
// playlist, strictly sequentially. Fetch, persistence and mail transport
// failures abort the remainder of the cycle and surface to the scheduler
// for backoff selection; missing or unreadable notification data only
// skips the affected notification.
func (s *WatchService) CheckForUpdates(ctx context.Context) (*domain.CycleStats, error) {
	startTime := time.Now()
	s.logger.Info("checking for updates")

	stats := &domain.CycleStats{}

	connections, err := s.connections.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list connections: %w", err)
	}

	for _, conn := range connections {
		stats.Connections++
		source := s.sources.Open(conn.Credentials)

		playlists, err := s.playlists.ListByConnection(ctx, conn.ID)
		if err != nil {
			return nil, fmt.Errorf("list playlists for connection %d: %w", conn.ID, err)
		}

		for _, playlist := range playlists {
			stats.Playlists++
			if err := s.checkPlaylist(ctx, source, playlist, stats); err != nil {
				return nil, err
			}
		}
	}

	stats.Duration = time.Since(startTime)

	s.logger.Info("finished checking for updates",
		"connections", stats.Connections,
		"playlists", stats.Playlists,
		"updated", stats.Updated,
		"new_items", stats.NewItems,
		"notified", stats.Notified,
		"skipped", stats.Skipped,
		"errors", stats.Errors,
		"duration", stats.Duration,
	)

	return stats, nil
}

func (s *WatchService) checkPlaylist(ctx context.Context, source PlaylistSource, playlist domain.TrackedPlaylist, stats *domain.CycleStats) error {
	current, err := source.Fetch(ctx, playlist.ExternalID)
	if err != nil {
		return fmt.Errorf("fetch playlist %s: %w", playlist.ExternalID, err)
	}

	newItems := diff.NewItems(playlist.LastState, current)

	// Persist before notifying. A notification failure after this point
	// cannot resurface the same diff on the next cycle.
	if err := s.playlists.SaveSnapshot(ctx, playlist.ID, current); err != nil {
		return fmt.Errorf("save snapshot for playlist %d: %w", playlist.ID, err)
	}

	if len(newItems) == 0 {
		return nil
	}

	stats.Updated++
	stats.NewItems += len(newItems)
	s.logger.Info("playlist was updated",
		"playlist_id", playlist.ID,
		"external_id", playlist.ExternalID,
		"new_items", len(newItems),
	)

	if s.publisher != nil {
		if err := s.publisher.PublishUpdate(ctx, playlist, current, newItems); err != nil {
			stats.Errors++
			s.logger.Error("failed to publish update event",
				"playlist_id", playlist.ID,
				"error", err,
			)
		}
	}

	return s.notify(ctx, playlist, current, newItems, stats)
}

func (s *WatchService) notify(ctx context.Context, playlist domain.TrackedPlaylist, snapshot *domain.Snapshot, newItems []domain.Item, stats *domain.CycleStats) error {
	mailCfg, err := s.mailConfig.GetMailConfig(ctx)
	if err != nil {
		stats.Skipped++
		if errors.Is(err, domain.ErrNoMailConfig) {
			s.logger.Error("no mail configuration in store, skipping notification",
				"playlist_id", playlist.ID,
				"kind", domain.KindConfigData,
			)
		} else {
			s.logger.Error("failed to read mail configuration, skipping notification",
				"playlist_id", playlist.ID,
				"kind", domain.KindConfigData,
				"error", err,
			)
		}
		return nil
	}

	recipients, err := s.subscribers.ListEmails(ctx, playlist.ID)
	if err != nil {
		stats.Skipped++
		s.logger.Error("failed to resolve subscribers, skipping notification",
			"playlist_id", playlist.ID,
			"kind", domain.KindConfigData,
			"error", err,
		)
		return nil
	}

	if len(recipients) == 0 {
		stats.Skipped++
		s.logger.Info("playlist has no subscribers, skipping notification",
			"playlist_id", playlist.ID,
		)
		return nil
	}

	if err := s.notifier.Send(ctx, *mailCfg, recipients, snapshot, newItems); err != nil {
		return fmt.Errorf("send notification for playlist %d: %w", playlist.ID, err)
	}

	stats.Notified++
	return nil
}
