package response

import "net/http"

// HTTPError is a domain error already translated for the client.
type HTTPError struct {
	StatusCode int
	Message    string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates an HTTPError.
func NewHTTPError(statusCode int, message string) *HTTPError {
	return &HTTPError{StatusCode: statusCode, Message: message}
}

// ErrInternalServerError is what unknown errors are mapped to.
var ErrInternalServerError = NewHTTPError(http.StatusInternalServerError, DefaultErrorMessage)
