// Package apierror provides the error envelope returned on every 4xx/5xx
// response. The desktop shell reads the "message" field verbatim for its
// toasts, so all errors funnel through here and internal details (SQL
// errors, stack traces) never reach the client.
package apierror

// APIError is the canonical envelope for all error responses.
type APIError struct {
	Message string `json:"message"`
}

func New(msg string) *APIError {
	return &APIError{Message: msg}
}

// ValidationError carries per-field failures from validator tags.
type ValidationError struct {
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields"`
}

func NewValidation(fields map[string]string) *ValidationError {
	return &ValidationError{Message: "Error de validacion", Fields: fields}
}
