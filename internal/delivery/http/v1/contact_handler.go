package v1

import (
	"errors"
	"net/http"
	"strings"

	"go-agency-backend/internal/delivery/http/response"
	"go-agency-backend/internal/domain"
	"go-agency-backend/pkg/apperror"
	"go-agency-backend/pkg/validation"

	"github.com/gin-gonic/gin"
)

type ContactHandler struct {
	contactUC domain.ContactUsecase
}

// NewContactHandler registers the contact routes (public, no auth required)
func NewContactHandler(public *gin.RouterGroup, contactUC domain.ContactUsecase) {
	handler := &ContactHandler{
		contactUC: contactUC,
	}

	// Public Routes - NO authentication required
	public.POST("/contact", handler.SubmitContact)
}

// SubmitContact godoc
// @Summary      Submit Contact Form
// @Description  Validate a contact form submission and relay it by email. This is a public endpoint.
// @Tags         contact
// @Accept       json
// @Produce      json
// @Param        contact  body      validation.ContactSubmission  true  "Contact Form Data"
// @Success      200      {object}  response.Response
// @Failure      400      {object}  response.Response
// @Failure      500      {object}  response.Response
// @Router       /contact [post]
func (h *ContactHandler) SubmitContact(c *gin.Context) {
	var sub validation.ContactSubmission
	if err := c.ShouldBindJSON(&sub); err != nil {
		// Malformed body, distinct from field validation.
		c.Error(apperror.BadRequest("Cuerpo de la solicitud inválido"))
		return
	}

	meta := domain.RequestMeta{
		UserAgent: c.GetHeader("User-Agent"),
		IP:        submitterIP(c),
	}

	err := h.contactUC.SendContactMessage(c.Request.Context(), &sub, meta)
	if err == nil {
		response.Success(c, http.StatusOK, "Mensaje enviado correctamente")
		return
	}

	var validationErr *domain.ValidationError
	var sendErr *domain.SendError
	switch {
	case errors.As(err, &validationErr):
		c.Error(apperror.ValidationFailed("Datos inválidos", validationErr.Fields))
	case errors.Is(err, domain.ErrMailNotConfigured):
		c.Error(apperror.New(http.StatusInternalServerError, "Servicio de correo no configurado", err))
	case errors.Is(err, domain.ErrMailConnection):
		c.Error(apperror.New(http.StatusInternalServerError, "Error de conexión con el servidor de correo", err))
	case errors.As(err, &sendErr):
		// Dispatch failures happened after auth succeeded; their cause is
		// acceptable to surface for diagnostics.
		response.ErrorWithDiagnostic(c, http.StatusInternalServerError, "Error al procesar la solicitud", sendErr.Err.Error())
	default:
		c.Error(err) // rendered generically by the error middleware
	}
}

// submitterIP extracts the submitting client's address from proxy headers,
// falling back to the connection address. Best-effort: an empty result
// degrades to a placeholder in the email, never an error.
func submitterIP(c *gin.Context) string {
	if fwd := c.GetHeader("X-Forwarded-For"); fwd != "" {
		return strings.TrimSpace(strings.SplitN(fwd, ",", 2)[0])
	}
	if real := c.GetHeader("X-Real-IP"); real != "" {
		return real
	}
	return c.ClientIP()
}
