package domain

import (
	"context"
	"errors"

	"go-agency-backend/pkg/validation"
)

// RequestMeta carries best-effort request context attached to the outbound
// email. Missing values degrade to a placeholder in the email body, never
// to an error.
type RequestMeta struct {
	UserAgent string
	IP        string
}

var (
	// ErrMailNotConfigured means mandatory SMTP settings are absent. The
	// client must only ever see a generic message for this.
	ErrMailNotConfigured = errors.New("mail service is not configured")

	// ErrMailConnection means the transport could not be verified before
	// sending. The underlying cause is logged server-side only.
	ErrMailConnection = errors.New("mail server connection failed")
)

// ValidationError carries the per-field error map from server-side
// re-validation. The submission is rejected as a whole; there is no
// partial acceptance.
type ValidationError struct {
	Fields validation.FieldErrors
}

func (e *ValidationError) Error() string {
	return "contact submission failed validation"
}

// SendError wraps a dispatch failure that happened after the transport was
// verified. Its cause is considered safe to surface for diagnostics.
type SendError struct {
	Err error
}

func (e *SendError) Error() string {
	return "failed to send contact email: " + e.Err.Error()
}

func (e *SendError) Unwrap() error {
	return e.Err
}

// ContactUsecase defines the contact submission pipeline. The call is
// synchronous: it returns only once the email has been dispatched or the
// send definitively failed.
type ContactUsecase interface {
	SendContactMessage(ctx context.Context, sub *validation.ContactSubmission, meta RequestMeta) error
}
