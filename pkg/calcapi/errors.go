package calcapi

import "fmt"

// RequestError is a non-2xx answer from the calculation service.
type RequestError struct {
	StatusCode int
	// Message is the service's "error" text, empty when the body had none.
	Message string
}

func (e *RequestError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("Server error: %d", e.StatusCode)
}
