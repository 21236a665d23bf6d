package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/nanomoomug/spotify-notify-playlist-update/internal/domain"
)

type PlaylistStore struct {
	db *sqlx.DB
}

func NewPlaylistStore(db *sqlx.DB) *PlaylistStore {
	return &PlaylistStore{db: db}
}

// ListByConnection returns the tracked playlists of one connection. A NULL
// last_state_json decodes to a nil LastState, meaning the playlist has
// never been polled.
func (s *PlaylistStore) ListByConnection(ctx context.Context, connectionID int64) ([]domain.TrackedPlaylist, error) {
	query := `
		SELECT id, connection_id, spotify_playlist_id, last_state_json
		FROM playlists
		WHERE connection_id = $1
		ORDER BY id`

	rows, err := s.db.QueryContext(ctx, query, connectionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var playlists []domain.TrackedPlaylist
	for rows.Next() {
		var pl domain.TrackedPlaylist
		var stateJSON sql.NullString
		if err := rows.Scan(&pl.ID, &pl.ConnectionID, &pl.ExternalID, &stateJSON); err != nil {
			return nil, err
		}
		if stateJSON.Valid {
			var snap domain.Snapshot
			if err := json.Unmarshal([]byte(stateJSON.String), &snap); err != nil {
				return nil, fmt.Errorf("decode snapshot for playlist %d: %w", pl.ID, err)
			}
			pl.LastState = &snap
		}
		playlists = append(playlists, pl)
	}

	return playlists, rows.Err()
}

// SaveSnapshot replaces the stored snapshot of a playlist. Called once per
// successful fetch, before any notification is attempted.
func (s *PlaylistStore) SaveSnapshot(ctx context.Context, playlistID int64, snapshot *domain.Snapshot) error {
	data, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}

	res, err := s.db.ExecContext(ctx,
		`UPDATE playlists SET last_state_json = $1 WHERE id = $2`,
		string(data), playlistID,
	)
	if err != nil {
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("playlist %d not found", playlistID)
	}
	return nil
}
