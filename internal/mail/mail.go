package mail

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"

	"go.uber.org/zap"

	"github.com/Zachkp/pillar-dev/internal/apperr"
	"github.com/Zachkp/pillar-dev/internal/config"
	"github.com/Zachkp/pillar-dev/internal/contact"
)

// SendFunc has the signature of smtp.SendMail.
type SendFunc func(addr string, a smtp.Auth, from string, to []string, msg []byte) error

// Mailer notifies the site owner of a contact submission by email.
type Mailer struct {
	cfg    config.SMTPConfig
	send   SendFunc
	logger *zap.Logger
}

func NewMailer(cfg config.SMTPConfig, logger *zap.Logger) *Mailer {
	return &Mailer{cfg: cfg, send: smtp.SendMail, logger: logger}
}

// WithSendFunc replaces the SMTP transport.
func (m *Mailer) WithSendFunc(fn SendFunc) *Mailer {
	m.send = fn
	return m
}

// Submit sends the notification, making Mailer a contact.Submitter.
func (m *Mailer) Submit(ctx context.Context, sub contact.Submission) error {
	if !m.cfg.Enabled() {
		return apperr.NewConfig("SMTP credentials not configured")
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	auth := smtp.PlainAuth("", m.cfg.User, m.cfg.Pass, m.cfg.Host)
	addr := m.cfg.Host + ":" + m.cfg.Port
	if err := m.send(addr, auth, m.cfg.User, []string{m.cfg.ToEmail}, Compose(m.cfg.User, m.cfg.ToEmail, sub)); err != nil {
		m.logger.Error("Error sending email", zap.String("message_id", sub.ID), zap.Error(err))
		return apperr.NewBackend("sending contact email", err)
	}

	m.logger.Info("Email sent", zap.String("message_id", sub.ID))
	return nil
}

// Compose builds the notification message. Header values are stripped of
// line breaks so visitor input cannot inject headers.
func Compose(from, to string, sub contact.Submission) []byte {
	d := sub.Draft
	subject := fmt.Sprintf("Portfolio Contact: %s - %s", oneLine(d.Name), oneLine(d.Subject))
	body := fmt.Sprintf(`
New contact form submission from your portfolio:

Name: %s
Email: %s
Subject: %s
Message:
%s

---
Sent from your portfolio contact form (message %s)
`, d.Name, d.Email, d.Subject, d.Message, sub.ID)

	return []byte("To: " + to + "\r\n" +
		"Subject: " + subject + "\r\n" +
		"From: " + from + "\r\n" +
		"Reply-To: " + oneLine(d.Email) + "\r\n" +
		"\r\n" +
		body + "\r\n")
}

func oneLine(s string) string {
	return strings.NewReplacer("\r", " ", "\n", " ").Replace(s)
}
