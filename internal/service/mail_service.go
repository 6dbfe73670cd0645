package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"coboard-api/internal/client"
	"coboard-api/internal/dto"
	"coboard-api/internal/metrics"
	"coboard-api/internal/response"
)

// recoverySubject is the subject line of every recovery mail
const recoverySubject = "Your Password Recovery"

// MailService defines the interface for password recovery mail
type MailService interface {
	SendPasswordRecovery(ctx context.Context, req *dto.SendMailRequest) error
}

// mailServiceImpl is the implementation of MailService
type mailServiceImpl struct {
	mailer  client.Mailer
	metrics *metrics.Metrics
	logger  *zap.Logger
}

// NewMailService creates a new instance of MailService
func NewMailService(mailer client.Mailer, m *metrics.Metrics, logger *zap.Logger) MailService {
	return &mailServiceImpl{
		mailer:  mailer,
		metrics: m,
		logger:  logger,
	}
}

// SendPasswordRecovery mails a user their current password
func (s *mailServiceImpl) SendPasswordRecovery(ctx context.Context, req *dto.SendMailRequest) error {
	message := fmt.Sprintf("Your current password: %s", req.PW)

	if err := s.mailer.Send(ctx, req.ReceiverEmail, recoverySubject, message); err != nil {
		s.metrics.IncrementMailErrors()
		return response.NewAppError(response.ErrCodeInternal, "Failed to send mail", err.Error())
	}

	s.metrics.IncrementMailSent()
	s.logger.Info("Recovery mail sent", zap.String("receiver", req.ReceiverEmail))
	return nil
}
