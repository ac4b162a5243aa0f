// Package mail delivers outbound notifications. Providers are selected by
// configuration; the smtp provider talks to a relay, the log provider writes
// the message to the application log for development.
package mail

import (
	"fmt"
	"log/slog"
	"net/smtp"
	"strings"

	"github.com/itparc/asset-management/internal"
)

type Mailer interface {
	Send(to, subject, body string) error
}

func NewMailer(cfg internal.MailConfig, logger *slog.Logger) Mailer {
	switch cfg.Provider {
	case "smtp":
		return &smtpMailer{cfg: cfg}
	case "noop":
		return noopMailer{}
	default:
		return &logMailer{logger: logger}
	}
}

type smtpMailer struct {
	cfg internal.MailConfig
}

func (m *smtpMailer) Send(to, subject, body string) error {
	addr := fmt.Sprintf("%s:%d", m.cfg.Host, m.cfg.Port)

	var auth smtp.Auth
	if m.cfg.Username != "" {
		auth = smtp.PlainAuth("", m.cfg.Username, m.cfg.Password, m.cfg.Host)
	}

	var msg strings.Builder
	fmt.Fprintf(&msg, "From: %s\r\n", m.cfg.From)
	fmt.Fprintf(&msg, "To: %s\r\n", to)
	fmt.Fprintf(&msg, "Subject: %s\r\n", subject)
	msg.WriteString("MIME-Version: 1.0\r\nContent-Type: text/plain; charset=\"utf-8\"\r\n\r\n")
	msg.WriteString(body)

	if err := smtp.SendMail(addr, auth, m.cfg.From, []string{to}, []byte(msg.String())); err != nil {
		return fmt.Errorf("send mail to %s: %w", to, err)
	}
	return nil
}

type logMailer struct {
	logger *slog.Logger
}

func (m *logMailer) Send(to, subject, body string) error {
	m.logger.Info("outbound mail", "to", to, "subject", subject, "body", body)
	return nil
}

type noopMailer struct{}

func (noopMailer) Send(to, subject, body string) error {
	return nil
}
