package validation_test

import (
	"testing"

	"go-agency-backend/pkg/validation"

	"github.com/stretchr/testify/assert"
)

func validSubmission() validation.ContactSubmission {
	return validation.ContactSubmission{
		Name:             "Ana Ruiz",
		Company:          "Acme",
		Email:            "ana@acme.com",
		Phone:            "+34 600 000 000",
		Message:          "Necesito una web nueva para mi negocio",
		WantsConsultancy: true,
	}
}

func TestValidateContact(t *testing.T) {
	t.Run("accepts a fully valid submission", func(t *testing.T) {
		sub := validSubmission()
		assert.Empty(t, validation.ValidateContact(&sub))
	})

	t.Run("collects errors for every invalid field in one pass", func(t *testing.T) {
		sub := validSubmission()
		sub.Name = "A"
		sub.Message = "corto"
		errs := validation.ValidateContact(&sub)
		assert.Len(t, errs, 2)
		assert.Equal(t, "El nombre debe tener al menos 2 caracteres", errs["name"])
		assert.Equal(t, "El mensaje debe tener al menos 10 caracteres", errs["message"])
	})

	t.Run("rejects overlong fields", func(t *testing.T) {
		long := make([]byte, 101)
		for i := range long {
			long[i] = 'a'
		}
		sub := validSubmission()
		sub.Company = string(long)
		errs := validation.ValidateContact(&sub)
		assert.Equal(t, "El nombre de la empresa es demasiado largo", errs["company"])
	})
}

func TestValidateContactEmailBoundaries(t *testing.T) {
	t.Run("minimal well-formed address validates", func(t *testing.T) {
		sub := validSubmission()
		sub.Email = "a@b.co"
		assert.Empty(t, validation.ValidateContact(&sub))
	})

	t.Run("malformed address rejected with email-specific error", func(t *testing.T) {
		sub := validSubmission()
		sub.Email = "not-an-email"
		errs := validation.ValidateContact(&sub)
		assert.Equal(t, "Por favor, introduce un correo electrónico válido", errs["email"])
	})

	t.Run("empty address rejected with email-specific error", func(t *testing.T) {
		sub := validSubmission()
		sub.Email = ""
		errs := validation.ValidateContact(&sub)
		assert.Equal(t, "El correo electrónico es obligatorio", errs["email"])
	})
}

func TestValidateContactPhoneOptionality(t *testing.T) {
	t.Run("omitting phone entirely is valid", func(t *testing.T) {
		sub := validSubmission()
		sub.Phone = ""
		assert.Empty(t, validation.ValidateContact(&sub))
	})

	t.Run("letters are rejected", func(t *testing.T) {
		sub := validSubmission()
		sub.Phone = "abc"
		errs := validation.ValidateContact(&sub)
		assert.Equal(t, "Por favor, introduce un número de teléfono válido", errs["phone"])
	})

	t.Run("international format with spaces is accepted", func(t *testing.T) {
		sub := validSubmission()
		sub.Phone = "+34 600 000 000"
		assert.Empty(t, validation.ValidateContact(&sub))
	})
}

// Rejection carries no hidden state: the same invalid payload must produce
// the exact same field errors every time.
func TestValidateContactIdempotentRejection(t *testing.T) {
	sub := validation.ContactSubmission{
		Name:    "A",
		Company: "B",
		Email:   "nope",
		Phone:   "abc",
		Message: "corto",
	}

	first := validation.ValidateContact(&sub)
	second := validation.ValidateContact(&sub)

	assert.NotEmpty(t, first)
	assert.Equal(t, first, second)
}

func TestValidateNewsletter(t *testing.T) {
	t.Run("valid email accepted", func(t *testing.T) {
		sub := validation.NewsletterSubscription{Email: "ana@acme.com"}
		assert.Empty(t, validation.ValidateNewsletter(&sub))
	})

	t.Run("invalid email rejected", func(t *testing.T) {
		sub := validation.NewsletterSubscription{Email: "nope"}
		errs := validation.ValidateNewsletter(&sub)
		assert.Equal(t, "Por favor, introduce un correo electrónico válido", errs["email"])
	})
}

func TestValidateDemoRequest(t *testing.T) {
	valid := validation.DemoRequest{
		Name:    "Ana Ruiz",
		Email:   "ana@acme.com",
		Company: "Acme",
		Service: "astrapa",
	}

	t.Run("valid request accepted", func(t *testing.T) {
		req := valid
		assert.Empty(t, validation.ValidateDemoRequest(&req))
	})

	t.Run("unknown service rejected", func(t *testing.T) {
		req := valid
		req.Service = "something-else"
		errs := validation.ValidateDemoRequest(&req)
		assert.Equal(t, "Por favor, selecciona un servicio", errs["service"])
	})

	t.Run("optional fields may be empty", func(t *testing.T) {
		req := valid
		req.Phone = ""
		req.PreferredDate = ""
		req.Message = ""
		assert.Empty(t, validation.ValidateDemoRequest(&req))
	})
}
