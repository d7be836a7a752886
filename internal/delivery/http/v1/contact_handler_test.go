package v1_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go-agency-backend/config"
	v1 "go-agency-backend/internal/delivery/http/v1"
	"go-agency-backend/internal/domain"
	"go-agency-backend/pkg/validation"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockContactUsecase struct {
	mock.Mock
}

func (m *MockContactUsecase) SendContactMessage(ctx context.Context, sub *validation.ContactSubmission, meta domain.RequestMeta) error {
	return m.Called(ctx, sub, meta).Error(0)
}

func newTestRouter(uc domain.ContactUsecase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	return v1.NewRouter(v1.RouterDeps{
		ContactUC: uc,
		Config: &config.Config{
			RateLimitWindowSeconds:    60,
			RateLimitContactThreshold: 100,
			RateLimitGlobalThreshold:  1000,
		},
	})
}

const validBody = `{
	"name":             "Ana Ruiz",
	"company":          "Acme",
	"email":            "ana@acme.com",
	"phone":            "+34600000000",
	"message":          "Necesito una web nueva para mi negocio",
	"wantsConsultancy": true
}`

func postContact(router *gin.Engine, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestSubmitContactSuccess(t *testing.T) {
	uc := new(MockContactUsecase)
	uc.On("SendContactMessage", mock.Anything, mock.Anything, mock.Anything).Return(nil)

	w := postContact(newTestRouter(uc), validBody)

	assert.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "Mensaje enviado correctamente", body["message"])

	// The submission and request metadata reach the usecase intact.
	sub := uc.Calls[0].Arguments.Get(1).(*validation.ContactSubmission)
	assert.Equal(t, "Ana Ruiz", sub.Name)
	assert.True(t, sub.WantsConsultancy)
}

func TestSubmitContactMalformedJSON(t *testing.T) {
	uc := new(MockContactUsecase)

	w := postContact(newTestRouter(uc), `{"name": "Ana"`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "Cuerpo de la solicitud inválido", body["error"])
	assert.NotContains(t, body, "details")
	uc.AssertNotCalled(t, "SendContactMessage")
}

func TestSubmitContactValidationFailure(t *testing.T) {
	uc := new(MockContactUsecase)
	uc.On("SendContactMessage", mock.Anything, mock.Anything, mock.Anything).Return(&domain.ValidationError{
		Fields: validation.FieldErrors{
			"name":    "El nombre debe tener al menos 2 caracteres",
			"message": "El mensaje debe tener al menos 10 caracteres",
		},
	})

	w := postContact(newTestRouter(uc), validBody)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "Datos inválidos", body["error"])

	details, ok := body["details"].(map[string]any)
	require.True(t, ok)
	assert.Len(t, details, 2)
	assert.Equal(t, "El nombre debe tener al menos 2 caracteres", details["name"])
}

func TestSubmitContactMailNotConfigured(t *testing.T) {
	uc := new(MockContactUsecase)
	uc.On("SendContactMessage", mock.Anything, mock.Anything, mock.Anything).Return(domain.ErrMailNotConfigured)

	w := postContact(newTestRouter(uc), validBody)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "Servicio de correo no configurado", body["error"])

	// The response must not reveal which credential is missing.
	raw := strings.ToUpper(w.Body.String())
	assert.NotContains(t, raw, "SMTP_USER")
	assert.NotContains(t, raw, "SMTP_PASSWORD")
	assert.NotContains(t, raw, "SMTP_HOST")
}

func TestSubmitContactConnectionFailure(t *testing.T) {
	uc := new(MockContactUsecase)
	uc.On("SendContactMessage", mock.Anything, mock.Anything, mock.Anything).Return(domain.ErrMailConnection)

	w := postContact(newTestRouter(uc), validBody)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "Error de conexión con el servidor de correo", body["error"])
	assert.NotContains(t, body, "message")
}

func TestSubmitContactDispatchFailure(t *testing.T) {
	uc := new(MockContactUsecase)
	uc.On("SendContactMessage", mock.Anything, mock.Anything, mock.Anything).Return(&domain.SendError{
		Err: errors.New("452 mailbox full"),
	})

	w := postContact(newTestRouter(uc), validBody)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "Error al procesar la solicitud", body["error"])
	assert.Equal(t, "452 mailbox full", body["message"])
}

func TestSubmitContactForwardsRequestMeta(t *testing.T) {
	uc := new(MockContactUsecase)
	uc.On("SendContactMessage", mock.Anything, mock.Anything, mock.Anything).Return(nil)
	router := newTestRouter(uc)

	req := httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader(validBody))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", "Mozilla/5.0")
	req.Header.Set("X-Forwarded-For", "203.0.113.7, 10.0.0.1")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	meta := uc.Calls[0].Arguments.Get(2).(domain.RequestMeta)
	assert.Equal(t, "Mozilla/5.0", meta.UserAgent)
	assert.Equal(t, "203.0.113.7", meta.IP)
}

func TestHealthEndpoint(t *testing.T) {
	router := newTestRouter(new(MockContactUsecase))

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}
