package mailer

import (
	"bytes"
	"fmt"
	"html/template"
	"time"

	texttemplate "text/template"

	"go-agency-backend/pkg/validation"
)

// ContactEmailData is everything needed to render a contact notification.
type ContactEmailData struct {
	Submission validation.ContactSubmission
	SiteName   string
	SiteDomain string
	Timestamp  time.Time // zero value means "now"
	UserAgent  string    // best-effort, from request headers
	IP         string    // best-effort, forwarded or real IP
}

// EmailContent is a rendered email ready to hand to the transport.
type EmailContent struct {
	Subject string
	HTML    string
	Text    string
}

const metadataPlaceholder = "No disponible"

// contactEmailHTML is the fixed visual template for contact notifications.
const contactEmailHTML = `<!DOCTYPE html>
<html>
<head>
  <style>
    body {
      font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, 'Helvetica Neue', Arial, sans-serif;
      line-height: 1.6;
      color: #333;
      max-width: 600px;
      margin: 0 auto;
      padding: 20px;
    }
    .header {
      background: linear-gradient(135deg, #4FC2D1 0%, #7df9ff 100%);
      color: white;
      padding: 30px;
      border-radius: 10px 10px 0 0;
      text-align: center;
    }
    .header h1 {
      margin: 0;
      font-size: 24px;
    }
    .content {
      background: #f9f9f9;
      padding: 30px;
      border-radius: 0 0 10px 10px;
    }
    .field {
      margin-bottom: 20px;
      padding: 15px;
      background: white;
      border-radius: 5px;
      border-left: 4px solid #4FC2D1;
    }
    .field-label {
      font-weight: bold;
      color: #4FC2D1;
      text-transform: uppercase;
      font-size: 12px;
      margin-bottom: 5px;
    }
    .field-value {
      color: #333;
      font-size: 16px;
    }
    .message-box {
      background: white;
      padding: 20px;
      border-radius: 5px;
      border-left: 4px solid #4FC2D1;
      margin-top: 20px;
      white-space: pre-wrap;
      word-wrap: break-word;
    }
    .badge {
      display: inline-block;
      background: #F59E0B;
      color: white;
      padding: 5px 15px;
      border-radius: 20px;
      font-size: 14px;
      font-weight: bold;
      margin-top: 10px;
    }
    .footer {
      text-align: center;
      margin-top: 30px;
      padding-top: 20px;
      border-top: 2px solid #e0e0e0;
      color: #666;
      font-size: 14px;
    }
    .metadata {
      font-size: 12px;
      color: #999;
      margin-top: 20px;
      padding: 15px;
      background: #f5f5f5;
      border-radius: 5px;
    }
  </style>
</head>
<body>
  <div class="header">
    <h1>⚡ Nuevo Contacto - {{.SiteName}}</h1>
  </div>
  <div class="content">
    <div class="field">
      <div class="field-label">👤 Nombre</div>
      <div class="field-value">{{.Submission.Name}}</div>
    </div>

    <div class="field">
      <div class="field-label">🏢 Empresa</div>
      <div class="field-value">{{.Submission.Company}}</div>
    </div>

    <div class="field">
      <div class="field-label">📧 Email</div>
      <div class="field-value">
        <a href="mailto:{{.Submission.Email}}" style="color: #4FC2D1; text-decoration: none;">{{.Submission.Email}}</a>
      </div>
    </div>

    {{if .Submission.Phone}}
    <div class="field">
      <div class="field-label">📱 Teléfono</div>
      <div class="field-value">
        <a href="tel:{{.Submission.Phone}}" style="color: #4FC2D1; text-decoration: none;">{{.Submission.Phone}}</a>
      </div>
    </div>
    {{end}}

    {{if .Submission.WantsConsultancy}}<div class="badge">✨ Solicita Consultoría Gratuita</div>{{end}}

    <div class="message-box">
      <div class="field-label">💬 Mensaje</div>
      <div style="margin-top: 10px;">{{.Submission.Message}}</div>
    </div>

    <div class="metadata">
      <strong>📊 Metadata:</strong><br>
      <strong>Origen:</strong> Formulario de contacto web<br>
      <strong>Fecha:</strong> {{.LocalDate}}<br>
      <strong>User Agent:</strong> {{.UserAgent}}<br>
      <strong>IP:</strong> {{.IP}}
    </div>
  </div>
  <div class="footer">
    <p>Este correo fue generado automáticamente desde <strong>{{.SiteDomain}}</strong></p>
    <p style="color: #999; font-size: 12px;">{{.SiteName}} - Desarrollo de Software de Vanguardia</p>
  </div>
</body>
</html>
`

// contactEmailText is the plain-text equivalent carrying the same fields.
const contactEmailText = `Nuevo Contacto - {{.SiteName}}
=============================

Nombre: {{.Submission.Name}}
Empresa: {{.Submission.Company}}
Email: {{.Submission.Email}}
{{if .Submission.Phone}}Teléfono: {{.Submission.Phone}}
{{end}}{{if .Submission.WantsConsultancy}}
✨ Solicita Consultoría Gratuita
{{end}}
Mensaje:
{{.Submission.Message}}

---
Metadata:
- Origen: Formulario de contacto web
- Fecha: {{.ISODate}}
- User Agent: {{.UserAgent}}
- IP: {{.IP}}
`

var (
	contactHTMLTmpl = template.Must(template.New("contact_html").Parse(contactEmailHTML))
	contactTextTmpl = texttemplate.Must(texttemplate.New("contact_text").Parse(contactEmailText))

	// Madrid time for the human-readable date in the HTML body. Falls back
	// to UTC on hosts without tzdata.
	madrid = loadMadrid()
)

func loadMadrid() *time.Location {
	loc, err := time.LoadLocation("Europe/Madrid")
	if err != nil {
		return time.UTC
	}
	return loc
}

type contactEmailContext struct {
	Submission validation.ContactSubmission
	SiteName   string
	SiteDomain string
	LocalDate  string
	ISODate    string
	UserAgent  string
	IP         string
}

// ComposeContactEmail renders subject, HTML and plain-text bodies for a
// validated submission. It is a pure function of its input and performs no
// network I/O, so it can be tested in isolation.
func ComposeContactEmail(data ContactEmailData) (EmailContent, error) {
	ts := data.Timestamp
	if ts.IsZero() {
		ts = time.Now()
	}

	tctx := contactEmailContext{
		Submission: data.Submission,
		SiteName:   data.SiteName,
		SiteDomain: data.SiteDomain,
		LocalDate:  ts.In(madrid).Format("02/01/2006, 15:04:05"),
		ISODate:    ts.UTC().Format(time.RFC3339),
		UserAgent:  orPlaceholder(data.UserAgent),
		IP:         orPlaceholder(data.IP),
	}

	var html bytes.Buffer
	if err := contactHTMLTmpl.Execute(&html, tctx); err != nil {
		return EmailContent{}, fmt.Errorf("mailer: render html: %w", err)
	}

	var text bytes.Buffer
	if err := contactTextTmpl.Execute(&text, tctx); err != nil {
		return EmailContent{}, fmt.Errorf("mailer: render text: %w", err)
	}

	return EmailContent{
		Subject: fmt.Sprintf("🚀 Nuevo contacto de %s - %s", data.Submission.Name, data.Submission.Company),
		HTML:    html.String(),
		Text:    text.String(),
	}, nil
}

func orPlaceholder(v string) string {
	if v == "" {
		return metadataPlaceholder
	}
	return v
}
