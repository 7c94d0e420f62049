// Package apierror defines the JSON error envelopes the API returns. Every
// 4xx/5xx body goes through here so clients always see the same shape and
// internals (stack traces, DB errors) never leak.
package apierror

// APIError carries a single human-readable message.
type APIError struct {
	Detail string `json:"detail"`
}

func New(msg string) *APIError { return &APIError{Detail: msg} }

// ValidationError adds the per-field tag map produced by the validator.
type ValidationError struct {
	Detail string            `json:"detail"`
	Fields map[string]string `json:"fields"`
}

func NewValidation(fields map[string]string) *ValidationError {
	return &ValidationError{Detail: "Error de validacion", Fields: fields}
}
