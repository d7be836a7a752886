package usecase

import (
	"context"

	"go-agency-backend/config"
	"go-agency-backend/internal/domain"
	"go-agency-backend/pkg/logger"
	"go-agency-backend/pkg/mailer"
	"go-agency-backend/pkg/validation"
)

// MailTransport is the outbound mail collaborator. Verify performs a
// connectivity/auth check without sending; Send transmits one message.
type MailTransport interface {
	Verify(ctx context.Context) error
	Send(ctx context.Context, msg *mailer.Message) error
}

type contactUsecase struct {
	transport MailTransport
	cfg       *config.Config
}

// NewContactUsecase creates a new contact usecase
func NewContactUsecase(transport MailTransport, cfg *config.Config) domain.ContactUsecase {
	return &contactUsecase{
		transport: transport,
		cfg:       cfg,
	}
}

// SendContactMessage re-validates the submission, verifies the mail
// transport and relays the composed email. Client-side validation is never
// trusted as the sole gate.
func (uc *contactUsecase) SendContactMessage(ctx context.Context, sub *validation.ContactSubmission, meta domain.RequestMeta) error {
	if fieldErrors := validation.ValidateContact(sub); len(fieldErrors) > 0 {
		return &domain.ValidationError{Fields: fieldErrors}
	}

	if !uc.cfg.MailConfigured() {
		logger.Log.Error("SMTP configuration incomplete, rejecting contact submission")
		return domain.ErrMailNotConfigured
	}

	if err := uc.transport.Verify(ctx); err != nil {
		// Cause stays in the server log; the client gets a generic message.
		logger.Log.Error("SMTP verification failed", "error", err)
		return domain.ErrMailConnection
	}

	content, err := mailer.ComposeContactEmail(mailer.ContactEmailData{
		Submission: *sub,
		SiteName:   uc.cfg.SiteName,
		SiteDomain: uc.cfg.SiteDomain,
		UserAgent:  meta.UserAgent,
		IP:         meta.IP,
	})
	if err != nil {
		return &domain.SendError{Err: err}
	}

	msg := &mailer.Message{
		From:     uc.cfg.SMTPFrom,
		FromName: uc.cfg.SMTPFromName,
		To:       uc.cfg.SMTPTo,
		// Replies must reach the submitter directly, not the sending account.
		ReplyTo: sub.Email,
		Subject: content.Subject,
		Text:    content.Text,
		HTML:    content.HTML,
	}

	if err := uc.transport.Send(ctx, msg); err != nil {
		logger.Log.Error("contact email dispatch failed", "error", err)
		return &domain.SendError{Err: err}
	}

	logger.Log.Info("contact form email sent", "to", uc.cfg.SMTPTo, "reply_to", sub.Email)
	return nil
}
