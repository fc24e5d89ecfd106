package mailer

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

type captureSender struct {
	sent chan Message
	err  error
}

func newCaptureSender(err error) *captureSender {
	return &captureSender{sent: make(chan Message, 1), err: err}
}

func (s *captureSender) Send(ctx context.Context, msg Message) error {
	s.sent <- msg
	return s.err
}

func waitForMessage(t *testing.T, sender *captureSender) Message {
	t.Helper()
	select {
	case msg := <-sender.sent:
		return msg
	case <-time.After(2 * time.Second):
		t.Fatal("no message dispatched")
		return Message{}
	}
}

func TestSendWelcomeDispatchesAsync(t *testing.T) {
	sender := newCaptureSender(nil)
	svc := NewService(sender, zap.NewNop())

	svc.SendWelcome("alice@example.com", "Alice")

	msg := waitForMessage(t, sender)
	assert.Equal(t, "alice@example.com", msg.To)
	assert.Contains(t, msg.Subject, "Welcome")
	assert.Contains(t, msg.Subject, "Alice")
	assert.Contains(t, msg.Body, "Alice")
}

func TestSendGoodbyeDispatchesAsync(t *testing.T) {
	sender := newCaptureSender(nil)
	svc := NewService(sender, zap.NewNop())

	svc.SendGoodbye("alice@example.com", "Alice")

	msg := waitForMessage(t, sender)
	assert.Equal(t, "alice@example.com", msg.To)
	assert.Contains(t, msg.Subject, "hope to see you back")
}

func TestSendFailureIsLoggedNotPropagated(t *testing.T) {
	core, logs := observer.New(zap.ErrorLevel)
	sender := newCaptureSender(errors.New("smtp down"))
	svc := NewService(sender, zap.New(core))

	// The caller returns immediately and never sees the failure.
	svc.SendWelcome("alice@example.com", "Alice")
	waitForMessage(t, sender)

	require.Eventually(t, func() bool {
		return logs.FilterMessage("failed to send email").Len() == 1
	}, 2*time.Second, 10*time.Millisecond)
}

func TestNilSenderIsNoop(t *testing.T) {
	svc := NewService(nil, zap.NewNop())
	svc.SendWelcome("alice@example.com", "Alice")
	svc.SendGoodbye("alice@example.com", "Alice")
}
