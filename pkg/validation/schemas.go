package validation

// ContactSubmission is a contact form submission as received from the site.
// It is constructed from untrusted input, validated, turned into an outbound
// email and discarded. It is never stored.
type ContactSubmission struct {
	Name             string `json:"name" validate:"required,min=2,max=100"`
	Company          string `json:"company" validate:"required,min=2,max=100"`
	Email            string `json:"email" validate:"required,email"`
	Phone            string `json:"phone,omitempty" validate:"omitempty,phone_chars"`
	Message          string `json:"message" validate:"required,min=10,max=1000"`
	WantsConsultancy bool   `json:"wantsConsultancy,omitempty"`
}

var contactMessages = map[string]map[string]string{
	"name": {
		"required": "El nombre debe tener al menos 2 caracteres",
		"min":      "El nombre debe tener al menos 2 caracteres",
		"max":      "El nombre es demasiado largo",
	},
	"company": {
		"required": "El nombre de la empresa debe tener al menos 2 caracteres",
		"min":      "El nombre de la empresa debe tener al menos 2 caracteres",
		"max":      "El nombre de la empresa es demasiado largo",
	},
	"email": {
		"required": "El correo electrónico es obligatorio",
		"email":    "Por favor, introduce un correo electrónico válido",
	},
	"phone": {
		"phone_chars": "Por favor, introduce un número de teléfono válido",
	},
	"message": {
		"required": "El mensaje debe tener al menos 10 caracteres",
		"min":      "El mensaje debe tener al menos 10 caracteres",
		"max":      "El mensaje es demasiado largo",
	},
}

// ValidateContact checks a submission against the contact schema.
// A submission is either fully valid or rejected outright; there is no
// partial acceptance.
func ValidateContact(sub *ContactSubmission) FieldErrors {
	return collectFieldErrors(validate.Struct(sub), contactMessages)
}

// NewsletterSubscription is a newsletter signup request.
type NewsletterSubscription struct {
	Email string `json:"email" validate:"required,email"`
}

var newsletterMessages = map[string]map[string]string{
	"email": {
		"required": "Por favor, introduce un correo electrónico válido",
		"email":    "Por favor, introduce un correo electrónico válido",
	},
}

// ValidateNewsletter checks a newsletter signup against its schema.
func ValidateNewsletter(sub *NewsletterSubscription) FieldErrors {
	return collectFieldErrors(validate.Struct(sub), newsletterMessages)
}

// DemoRequest is a request for a product demo of one of the service pillars.
type DemoRequest struct {
	Name          string `json:"name" validate:"required,min=2"`
	Email         string `json:"email" validate:"required,email"`
	Company       string `json:"company" validate:"required,min=2"`
	Phone         string `json:"phone,omitempty" validate:"omitempty,phone_chars"`
	Service       string `json:"service" validate:"required,oneof=world-web astrapa thor other"`
	PreferredDate string `json:"preferredDate,omitempty"`
	Message       string `json:"message,omitempty"`
}

var demoRequestMessages = map[string]map[string]string{
	"name": {
		"required": "El nombre debe tener al menos 2 caracteres",
		"min":      "El nombre debe tener al menos 2 caracteres",
	},
	"email": {
		"required": "Por favor, introduce un correo electrónico válido",
		"email":    "Por favor, introduce un correo electrónico válido",
	},
	"company": {
		"required": "El nombre de la empresa es obligatorio",
		"min":      "El nombre de la empresa es obligatorio",
	},
	"phone": {
		"phone_chars": "Por favor, introduce un número de teléfono válido",
	},
	"service": {
		"required": "Por favor, selecciona un servicio",
		"oneof":    "Por favor, selecciona un servicio",
	},
}

// ValidateDemoRequest checks a demo request against its schema.
func ValidateDemoRequest(req *DemoRequest) FieldErrors {
	return collectFieldErrors(validate.Struct(req), demoRequestMessages)
}
