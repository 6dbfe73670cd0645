package client

import (
	"context"
	"fmt"
	"os/exec"
	"time"

	"go.uber.org/zap"
)

// Mailer sends password recovery mail to users
type Mailer interface {
	Send(ctx context.Context, receiver, subject, message string) error
}

// commandMailer shells out to a mail helper program. The helper receives the
// sender address, its app password, the receiver, the subject and the body
// as separate arguments.
type commandMailer struct {
	command  string
	sender   string
	password string
	timeout  time.Duration
	logger   *zap.Logger
}

// NewCommandMailer creates a Mailer backed by an external helper command
func NewCommandMailer(command, sender, password string, logger *zap.Logger) Mailer {
	return &commandMailer{
		command:  command,
		sender:   sender,
		password: password,
		timeout:  30 * time.Second,
		logger:   logger,
	}
}

// Send runs the helper command. Arguments are passed as argv, never through
// a shell.
func (m *commandMailer) Send(ctx context.Context, receiver, subject, message string) error {
	ctx, cancel := context.WithTimeout(ctx, m.timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, m.command, m.sender, m.password, receiver, subject, message)
	output, err := cmd.CombinedOutput()
	if err != nil {
		m.logger.Error("Mail helper failed",
			zap.String("receiver", receiver),
			zap.ByteString("output", output),
			zap.Error(err),
		)
		return fmt.Errorf("failed to send mail: %w", err)
	}

	m.logger.Info("Mail sent", zap.String("receiver", receiver))
	return nil
}

// MockMailer implements Mailer for testing
type MockMailer struct {
	SendFunc func(ctx context.Context, receiver, subject, message string) error

	// Sent records every delivered message when SendFunc is not set
	Sent []SentMail
}

// SentMail is one recorded delivery
type SentMail struct {
	Receiver string
	Subject  string
	Message  string
}

// Send records the mail or delegates to SendFunc
func (m *MockMailer) Send(ctx context.Context, receiver, subject, message string) error {
	if m.SendFunc != nil {
		return m.SendFunc(ctx, receiver, subject, message)
	}
	m.Sent = append(m.Sent, SentMail{Receiver: receiver, Subject: subject, Message: message})
	return nil
}

// Ensure MockMailer implements Mailer
var _ Mailer = (*MockMailer)(nil)
