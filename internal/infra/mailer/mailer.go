package mailer

import (
	"context"
	"log/slog"

	"venueserv/internal/pkg/config"
	"venueserv/internal/pkg/errs"
	"venueserv/internal/usecase/commands"

	"gopkg.in/gomail.v2"
)

// SMTPNotifier delivers booking notifications over SMTP. When disabled it
// logs the message instead of dialing, which keeps local development working
// without credentials.
type SMTPNotifier struct {
	cfg config.MailConfig
}

func NewSMTPNotifier(cfg config.MailConfig) *SMTPNotifier {
	return &SMTPNotifier{cfg: cfg}
}

func (n *SMTPNotifier) Send(_ context.Context, msg commands.Email) error {
	if !n.cfg.Enabled {
		slog.Info("mail delivery disabled, skipping", "to", msg.To, "subject", msg.Subject)
		return nil
	}

	m := gomail.NewMessage()
	m.SetHeader("From", n.cfg.From)
	m.SetHeader("To", msg.To)
	m.SetHeader("Subject", msg.Subject)
	m.SetBody("text/html", msg.HTML)

	d := gomail.NewDialer(n.cfg.Host, n.cfg.Port, n.cfg.Username, n.cfg.Password)
	if err := d.DialAndSend(m); err != nil {
		return errs.Wrap(err, "smtp send")
	}
	return nil
}
