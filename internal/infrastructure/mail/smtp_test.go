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

	"content-manager-api/config"
)

func TestSend(t *testing.T) {
	var gotAddr, gotFrom string
	var gotTo []string
	var gotMsg []byte

	m := New(zap.NewNop(), config.Mail{
		Host: "smtp.example.org",
		Port: "587",
		From: "Website Team <noreply@example.org>",
	})
	m.send = func(addr string, _ smtp.Auth, from string, to []string, msg []byte) error {
		gotAddr, gotFrom, gotTo, gotMsg = addr, from, to, msg
		return nil
	}

	err := m.Send(context.Background(), "jane@example.org", "Reset your password", "click the link")
	require.NoError(t, err)

	assert.Equal(t, "smtp.example.org:587", gotAddr)
	assert.Equal(t, "noreply@example.org", gotFrom, "envelope sender is the bare address")
	assert.Equal(t, []string{"jane@example.org"}, gotTo)

	msg := string(gotMsg)
	assert.Contains(t, msg, "From: Website Team <noreply@example.org>\r\n")
	assert.Contains(t, msg, "Subject: Reset your password\r\n")
	assert.True(t, strings.HasSuffix(msg, "\r\n\r\nclick the link") || strings.Contains(msg, "\r\n\r\nclick the link"))
}

func TestSend_NotConfigured(t *testing.T) {
	m := New(zap.NewNop(), config.Mail{})
	err := m.Send(context.Background(), "jane@example.org", "s", "b")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "smtp not configured")
}

func TestSend_CanceledContext(t *testing.T) {
	m := New(zap.NewNop(), config.Mail{Host: "smtp.example.org", Port: "587"})
	m.send = func(string, smtp.Auth, string, []string, []byte) error {
		t.Fatal("must not reach the wire with a canceled context")
		return nil
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := m.Send(ctx, "jane@example.org", "s", "b")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSend_TransportError(t *testing.T) {
	m := New(zap.NewNop(), config.Mail{Host: "smtp.example.org", Port: "587", From: "noreply@example.org"})
	m.send = func(string, smtp.Auth, string, []string, []byte) error {
		return errors.New("connection refused")
	}

	err := m.Send(context.Background(), "jane@example.org", "s", "b")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "smtp send")
}
