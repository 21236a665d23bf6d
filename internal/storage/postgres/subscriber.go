package postgres

import (
	"context"

	"github.com/jmoiron/sqlx"
)

type SubscriberStore struct {
	db *sqlx.DB
}

func NewSubscriberStore(db *sqlx.DB) *SubscriberStore {
	return &SubscriberStore{db: db}
}

// ListEmails resolves the subscriber addresses of a playlist through its
// group memberships.
func (s *SubscriberStore) ListEmails(ctx context.Context, playlistID int64) ([]string, error) {
	query := `
		SELECT m.email FROM playlists p
		INNER JOIN playlist_groups pg ON p.id = pg.playlist_id
		INNER JOIN group_members gm ON pg.group_id = gm.group_id
		INNER JOIN members m ON m.id = gm.member_id
		WHERE p.id = $1`

	var emails []string
	err := s.db.SelectContext(ctx, &emails, query, playlistID)
	return emails, err
}
