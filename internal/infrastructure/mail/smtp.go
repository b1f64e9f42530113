package mail

import (
	"context"
	"fmt"
	netmail "net/mail"
	"net/smtp"
	"strings"

	"go.uber.org/zap"

	"content-manager-api/config"
)

// Mailer sends plain-text mail over SMTP with optional AUTH. Delivery is
// best effort at the call sites, failures never fail the originating request
// except where the mail is the point of the operation.
type Mailer struct {
	logger *zap.Logger
	cfg    config.Mail

	// send is swappable for tests.
	send func(addr string, a smtp.Auth, from string, to []string, msg []byte) error
}

func New(logger *zap.Logger, cfg config.Mail) *Mailer {
	return &Mailer{
		logger: logger,
		cfg:    cfg,
		send:   smtp.SendMail,
	}
}

func (m *Mailer) Send(ctx context.Context, to, subject, body string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if m.cfg.Host == "" {
		return fmt.Errorf("smtp not configured")
	}

	var auth smtp.Auth
	if m.cfg.Username != "" {
		auth = smtp.PlainAuth("", m.cfg.Username, m.cfg.Password, m.cfg.Host)
	}

	msg := strings.Join([]string{
		"From: " + m.cfg.From,
		"To: " + to,
		"Subject: " + subject,
		"MIME-Version: 1.0",
		"Content-Type: text/plain; charset=\"utf-8\"",
		"",
		body,
	}, "\r\n")

	// The envelope sender must be a bare address even when From carries
	// a display name.
	from := m.cfg.From
	if parsed, err := netmail.ParseAddress(from); err == nil {
		from = parsed.Address
	}

	addr := m.cfg.Host + ":" + m.cfg.Port
	if err := m.send(addr, auth, from, []string{to}, []byte(msg)); err != nil {
		return fmt.Errorf("smtp send: %w", err)
	}

	m.logger.Info("mail sent", zap.String("to", to), zap.String("subject", subject))

	return nil
}
