// Package notify renders and delivers playlist update digests.
package notify

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/wneessen/go-mail"

	"github.com/nanomoomug/spotify-notify-playlist-update/internal/domain"
)

// Mailer delivers one digest message per detected update over SMTP with
// implicit TLS. A fresh session is opened and closed per send.
type Mailer struct {
	logger *slog.Logger
}

func NewMailer(logger *slog.Logger) *Mailer {
	return &Mailer{logger: logger}
}

// Send renders the digest and delivers it to all recipients as a single
// message. The send succeeds or fails as one unit; partial delivery is not
// distinguished.
func (m *Mailer) Send(ctx context.Context, cfg domain.MailConfig, recipients []string, playlist *domain.Snapshot, newItems []domain.Item) error {
	body, err := RenderDigest(playlist, newItems)
	if err != nil {
		return err
	}

	msg := mail.NewMsg()
	if err := msg.From(cfg.Sender); err != nil {
		return fmt.Errorf("set sender: %w", err)
	}
	if err := msg.To(recipients...); err != nil {
		return fmt.Errorf("set recipients: %w", err)
	}
	msg.Subject(Subject(playlist))
	msg.SetBodyString(mail.TypeTextHTML, body)

	client, err := mail.NewClient(cfg.Host,
		mail.WithPort(cfg.Port),
		mail.WithSSL(),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(cfg.Sender),
		mail.WithPassword(cfg.Password),
	)
	if err != nil {
		return fmt.Errorf("create smtp client: %w", err)
	}

	if err := client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("send digest: %w", err)
	}

	m.logger.Info("sent update digest",
		"playlist", playlist.Name,
		"recipients", len(recipients),
		"new_items", len(newItems),
	)

	return nil
}
