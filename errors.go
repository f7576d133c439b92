package comgate

import (
	"fmt"
	"strings"
)

// ConfigurationError reports credentials missing at client construction.
// It is fatal to that client instance; nothing is retried.
type ConfigurationError struct {
	Missing []string
}

func (e *ConfigurationError) Error() string {
	return "missing configuration: " + strings.Join(e.Missing, ", ")
}

// HTTPError reports a non-2xx gateway response. Body carries the raw
// response body verbatim so gateway-specific error payloads stay
// inspectable.
type HTTPError struct {
	Status int
	Body   string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("HTTP error: %d", e.Status)
}

// ResponseValidationError reports a response body that could not be decoded
// as JSON, or a create-payment response that failed the key and success-code
// checks.
type ResponseValidationError struct {
	Message string
}

func (e *ResponseValidationError) Error() string { return e.Message }
