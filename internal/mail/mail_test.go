package mail

import (
	"context"
	"errors"
	"net/smtp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Zachkp/pillar-dev/internal/apperr"
	"github.com/Zachkp/pillar-dev/internal/config"
	"github.com/Zachkp/pillar-dev/internal/contact"
)

func testSubmission() contact.Submission {
	return contact.Submission{
		ID: "msg-1",
		Draft: contact.Draft{
			Name:    "Ayu",
			Email:   "ayu@example.com",
			Subject: "Collab",
			Message: "Hello there",
		},
	}
}

func smtpConfig() config.SMTPConfig {
	return config.SMTPConfig{
		Host:    "smtp.example.com",
		Port:    "587",
		User:    "site@example.com",
		Pass:    "secret",
		ToEmail: "owner@example.com",
	}
}

func TestMailerSends(t *testing.T) {
	var gotAddr, gotFrom string
	var gotTo []string
	var gotMsg []byte

	m := NewMailer(smtpConfig(), zap.NewNop()).WithSendFunc(func(addr string, _ smtp.Auth, from string, to []string, msg []byte) error {
		gotAddr, gotFrom, gotTo, gotMsg = addr, from, to, msg
		return nil
	})

	require.NoError(t, m.Submit(context.Background(), testSubmission()))
	assert.Equal(t, "smtp.example.com:587", gotAddr)
	assert.Equal(t, "site@example.com", gotFrom)
	assert.Equal(t, []string{"owner@example.com"}, gotTo)

	msg := string(gotMsg)
	assert.Contains(t, msg, "Subject: Portfolio Contact: Ayu - Collab\r\n")
	assert.Contains(t, msg, "Reply-To: ayu@example.com\r\n")
	assert.Contains(t, msg, "Hello there")
	assert.Contains(t, msg, "msg-1")
}

func TestMailerWithoutCredentials(t *testing.T) {
	cfg := smtpConfig()
	cfg.Pass = ""
	m := NewMailer(cfg, zap.NewNop()).WithSendFunc(func(string, smtp.Auth, string, []string, []byte) error {
		t.Fatal("send must not be called")
		return nil
	})

	err := m.Submit(context.Background(), testSubmission())
	assert.True(t, apperr.Is(err, apperr.CodeConfig))
}

func TestMailerSendFailure(t *testing.T) {
	boom := errors.New("535 authentication failed")
	m := NewMailer(smtpConfig(), zap.NewNop()).WithSendFunc(func(string, smtp.Auth, string, []string, []byte) error {
		return boom
	})

	err := m.Submit(context.Background(), testSubmission())
	assert.True(t, apperr.Is(err, apperr.CodeBackend))
	assert.ErrorIs(t, err, boom)
}

func TestComposeStripsHeaderInjection(t *testing.T) {
	sub := testSubmission()
	sub.Draft.Subject = "Hi\r\nBcc: victim@example.com"

	msg := string(Compose("a@example.com", "b@example.com", sub))
	headers := msg[:strings.Index(msg, "\r\n\r\n")]
	assert.NotContains(t, headers, "\r\nBcc:")
	assert.Contains(t, headers, "Subject: Portfolio Contact: Ayu - Hi  Bcc: victim@example.com")
}
