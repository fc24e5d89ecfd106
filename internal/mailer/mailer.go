// Package mailer is the outbound notification collaborator. Delivery is
// best-effort: sends run on their own goroutine and a failure is logged,
// never surfaced to the request that triggered it.
package mailer

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
)

// Message is one transactional email.
type Message struct {
	To      string
	ToName  string
	Subject string
	Body    string
}

// Sender delivers a single message. Implementations must be safe for
// concurrent use.
type Sender interface {
	Send(ctx context.Context, msg Message) error
}

const sendTimeout = 10 * time.Second

// Service builds the account-lifecycle messages and dispatches them
// asynchronously through a Sender.
type Service struct {
	sender Sender
	logger *zap.Logger
}

func NewService(sender Sender, logger *zap.Logger) *Service {
	return &Service{sender: sender, logger: logger}
}

// SendWelcome fires the signup greeting. Returns immediately.
func (s *Service) SendWelcome(email, name string) {
	s.dispatch(Message{
		To:      email,
		ToName:  name,
		Subject: fmt.Sprintf("Welcome to the Task Manager API, %s", name),
		Body:    fmt.Sprintf("Hi %s, we're happy to have you on board", name),
	})
}

// SendGoodbye fires the account-deletion farewell. Returns immediately.
func (s *Service) SendGoodbye(email, name string) {
	s.dispatch(Message{
		To:      email,
		ToName:  name,
		Subject: fmt.Sprintf("We hope to see you back soon, %s", name),
		Body:    fmt.Sprintf("We hope you enjoyed the app, %s. Come back soon!", name),
	})
}

func (s *Service) dispatch(msg Message) {
	if s.sender == nil {
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), sendTimeout)
		defer cancel()
		if err := s.sender.Send(ctx, msg); err != nil {
			s.logger.Error("failed to send email",
				zap.String("to", msg.To),
				zap.String("subject", msg.Subject),
				zap.Error(err))
		}
	}()
}
