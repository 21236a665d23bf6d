package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"github.com/nanomoomug/spotify-notify-playlist-update/internal/domain"
)

type ConfigStore struct {
	db *sqlx.DB
}

func NewConfigStore(db *sqlx.DB) *ConfigStore {
	return &ConfigStore{db: db}
}

// GetMailConfig reads the single global mail configuration row. Returns
// domain.ErrNoMailConfig when the row is absent; callers treat that as a
// reportable configuration gap, not a store failure.
func (s *ConfigStore) GetMailConfig(ctx context.Context) (*domain.MailConfig, error) {
	query := `SELECT email_sender, email_host, email_port, email_password FROM global_config`

	var cfg domain.MailConfig
	err := s.db.QueryRowContext(ctx, query).Scan(&cfg.Sender, &cfg.Host, &cfg.Port, &cfg.Password)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNoMailConfig
	}
	if err != nil {
		return nil, err
	}
	return &cfg, nil
}
