package backend

import "fmt"

// RequestError is a non-success HTTP status from the backend. Message holds
// the backend-supplied error text when the response carried one.
type RequestError struct {
	StatusCode int
	Message    string
	Endpoint   string
}

func (e *RequestError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("backend error: %s (status: %d, endpoint: %s)", e.Message, e.StatusCode, e.Endpoint)
	}
	return fmt.Sprintf("backend error: status %d (endpoint: %s)", e.StatusCode, e.Endpoint)
}

// TransportError is a network or decode failure that happened before a
// usable status was obtained.
type TransportError struct {
	Endpoint string
	Err      error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("backend unreachable (endpoint: %s): %v", e.Endpoint, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}
