package postgres

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/nanomoomug/spotify-notify-playlist-update/internal/domain"
)

type ConnectionStore struct {
	db *sqlx.DB
}

func NewConnectionStore(db *sqlx.DB) *ConnectionStore {
	return &ConnectionStore{db: db}
}

// List returns every configured upstream connection with its credentials,
// in insertion order.
func (s *ConnectionStore) List(ctx context.Context) ([]domain.Connection, error) {
	query := `SELECT id, client_id, client_secret FROM connection_credentials ORDER BY id`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var connections []domain.Connection
	for rows.Next() {
		var conn domain.Connection
		if err := rows.Scan(&conn.ID, &conn.Credentials.ClientID, &conn.Credentials.ClientSecret); err != nil {
			return nil, err
		}
		connections = append(connections, conn)
	}

	return connections, rows.Err()
}
