package contactform

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"sync"
	"time"

	"go-agency-backend/pkg/analytics"
	"go-agency-backend/pkg/validation"
)

// Status is the controller's UI state. Idle always also means "editing".
type Status string

const (
	StatusIdle       Status = "idle"
	StatusSubmitting Status = "submitting"
	StatusSuccess    Status = "success"
	StatusError      Status = "error"
)

const formName = "contact_form"

// fallbackErrorMessage is shown when the endpoint gives nothing usable back.
const fallbackErrorMessage = "Error al enviar el formulario"

var (
	// ErrSubmissionInFlight is returned when Submit is triggered while a
	// previous submission is still running. The duplicate attempt is
	// ignored entirely: exactly one request goes out per accepted submit.
	ErrSubmissionInFlight = errors.New("contactform: submission already in flight")

	// ErrInvalidFields means local validation rejected the form. The
	// controller stays idle and per-field errors are populated.
	ErrInvalidFields = errors.New("contactform: fields failed validation")

	// ErrSubmissionFailed means the endpoint rejected the submission or
	// the network call failed. The typed values are preserved for retry.
	ErrSubmissionFailed = errors.New("contactform: submission failed")
)

// Config wires a Controller to its collaborators.
type Config struct {
	// Endpoint is the absolute URL of the contact API.
	Endpoint string
	// HTTPClient defaults to a client with a bounded timeout.
	HTTPClient *http.Client
	// Tracker receives fire-and-forget analytics events. May be nil.
	Tracker analytics.Tracker
}

// Controller drives the contact form: it holds field state, validates
// before submission, issues the network request and interprets the
// response. Safe for use from concurrent event handlers.
type Controller struct {
	endpoint string
	client   *http.Client
	tracker  analytics.Tracker

	mu           sync.Mutex
	status       Status
	fields       validation.ContactSubmission
	fieldErrors  validation.FieldErrors
	errorMessage string
}

func New(cfg Config) *Controller {
	client := cfg.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: 15 * time.Second}
	}
	return &Controller{
		endpoint: cfg.Endpoint,
		client:   client,
		tracker:  cfg.Tracker,
		status:   StatusIdle,
	}
}

// Status returns the current UI state.
func (c *Controller) Status() Status {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.status
}

// Fields returns the current field values.
func (c *Controller) Fields() validation.ContactSubmission {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.fields
}

// SetFields replaces the field values and clears previous field errors.
// Edits are never blocked, but edits made while a submission is in flight
// are irrelevant until the next submit attempt.
func (c *Controller) SetFields(fields validation.ContactSubmission) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.fields = fields
	c.fieldErrors = nil
}

// FieldErrors returns per-field validation messages from the last rejected
// submit attempt.
func (c *Controller) FieldErrors() validation.FieldErrors {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.fieldErrors
}

// ErrorMessage returns the human-readable message of the last failure.
func (c *Controller) ErrorMessage() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.errorMessage
}

// Reset returns the controller to the empty idle form ("send another
// message"). Intended from the success state but harmless elsewhere.
func (c *Controller) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.status = StatusIdle
	c.fields = validation.ContactSubmission{}
	c.fieldErrors = nil
	c.errorMessage = ""
}

// apiResponse mirrors the endpoint's JSON envelope.
type apiResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Error   string `json:"error"`
}

// Submit validates the current fields and relays them to the endpoint.
// Re-entry while a submission is in flight is rejected without side
// effects. From the error state a new submit is allowed directly.
func (c *Controller) Submit(ctx context.Context) error {
	c.mu.Lock()
	if c.status == StatusSubmitting {
		c.mu.Unlock()
		return ErrSubmissionInFlight
	}

	sub := c.fields
	if fieldErrors := validation.ValidateContact(&sub); len(fieldErrors) > 0 {
		// No state transition: submission blocked, user keeps editing.
		c.status = StatusIdle
		c.fieldErrors = fieldErrors
		c.mu.Unlock()
		analytics.TrackFormSubmission(c.tracker, formName, false)
		return ErrInvalidFields
	}

	c.status = StatusSubmitting
	c.fieldErrors = nil
	c.errorMessage = ""
	c.mu.Unlock()

	ok, message := c.post(ctx, &sub)

	c.mu.Lock()
	if ok {
		c.status = StatusSuccess
		c.fields = validation.ContactSubmission{}
		c.mu.Unlock()
		analytics.TrackFormSubmission(c.tracker, formName, true)
		analytics.TrackLead(c.tracker, formName)
		return nil
	}

	// Field values are kept so the user can retry without retyping.
	c.status = StatusError
	c.errorMessage = message
	c.mu.Unlock()
	analytics.TrackFormSubmission(c.tracker, formName, false)
	return ErrSubmissionFailed
}

// post performs the network call and interprets the response. It returns
// whether the submission was accepted plus an error message otherwise.
func (c *Controller) post(ctx context.Context, sub *validation.ContactSubmission) (bool, string) {
	body, err := json.Marshal(sub)
	if err != nil {
		return false, fallbackErrorMessage
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return false, fallbackErrorMessage
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		// Network failure or timeout: generic error with retry affordance.
		return false, fallbackErrorMessage
	}
	defer resp.Body.Close()

	var parsed apiResponse
	_ = json.NewDecoder(resp.Body).Decode(&parsed)

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return true, ""
	}

	switch {
	case parsed.Error != "":
		return false, parsed.Error
	case parsed.Message != "":
		return false, parsed.Message
	default:
		return false, fallbackErrorMessage
	}
}
