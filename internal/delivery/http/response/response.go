package response

import (
	"github.com/gin-gonic/gin"
)

// Response standardizes the API JSON response. Success responses carry
// {success, message}; error responses carry {error} plus optional
// per-field details or a diagnostic message.
type Response struct {
	Success   bool   `json:"success,omitempty"`
	Message   string `json:"message,omitempty"`
	Error     string `json:"error,omitempty"`
	Details   any    `json:"details,omitempty"`
	RequestID string `json:"request_id,omitempty"`
}

// Success sends a success response
func Success(c *gin.Context, code int, message string) {
	c.JSON(code, Response{
		Success:   true,
		Message:   message,
		RequestID: requestID(c),
	})
}

// Error sends an error response with a generic message only
func Error(c *gin.Context, code int, errMsg string) {
	c.JSON(code, Response{
		Error:     errMsg,
		RequestID: requestID(c),
	})
}

// ValidationError sends a 4xx response carrying the per-field error map
func ValidationError(c *gin.Context, code int, errMsg string, details any) {
	c.JSON(code, Response{
		Error:     errMsg,
		Details:   details,
		RequestID: requestID(c),
	})
}

// ErrorWithDiagnostic sends an error response that additionally surfaces
// the underlying failure text. Only use for causes that are safe to expose.
func ErrorWithDiagnostic(c *gin.Context, code int, errMsg, diagnostic string) {
	c.JSON(code, Response{
		Error:     errMsg,
		Message:   diagnostic,
		RequestID: requestID(c),
	})
}

func requestID(c *gin.Context) string {
	reqID, _ := c.Get("RequestID")
	idStr, _ := reqID.(string) // Safe type assertion
	return idStr
}
