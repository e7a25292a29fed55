package mailer

import (
	"log/slog"

	"gopkg.in/gomail.v2"
)

// Mailer delivers transactional mail (verification codes, password resets).
type Mailer interface {
	Send(to, subject, body string) error
}

type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

// SMTPMailer sends through a configured SMTP relay.
type SMTPMailer struct {
	cfg SMTPConfig
}

func NewSMTP(cfg SMTPConfig) *SMTPMailer {
	return &SMTPMailer{cfg: cfg}
}

func (m *SMTPMailer) Send(to, subject, body string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.cfg.From)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", body)

	d := gomail.NewDialer(m.cfg.Host, m.cfg.Port, m.cfg.Username, m.cfg.Password)
	return d.DialAndSend(msg)
}

// LogMailer stands in when SMTP is unconfigured (local dev, tests): the mail
// is logged instead of sent.
type LogMailer struct{}

func NewLog() *LogMailer { return &LogMailer{} }

func (m *LogMailer) Send(to, subject, body string) error {
	slog.Info("mail (not sent, SMTP unconfigured)", "to", to, "subject", subject)
	return nil
}
