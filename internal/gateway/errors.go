package gateway

import (
	"fmt"
	"net/http"
)

// FallbackMessage is used when a failed response carries no message of its own
const FallbackMessage = "API call failed"

// RemoteCallError is returned for every failed remote call: transport errors,
// non-2xx statuses, unparseable bodies and server-reported errors alike.
type RemoteCallError struct {
	Action  string // empty for the read entry point
	Status  int    // HTTP status, 0 when no response was received
	Message string // user-facing message, never empty
	Err     error  // underlying cause, if any
}

// Error returns the user-facing message
func (e *RemoteCallError) Error() string {
	return e.Message
}

// Unwrap exposes the underlying cause
func (e *RemoteCallError) Unwrap() error {
	return e.Err
}

// newTransportError wraps a network-level failure
func newTransportError(action string, err error) *RemoteCallError {
	return &RemoteCallError{
		Action:  action,
		Message: fmt.Sprintf("network error: %v", err),
		Err:     err,
	}
}

// newDecodeError reports a body that is not JSON
func newDecodeError(action string, status int, err error) *RemoteCallError {
	text := http.StatusText(status)
	if text == "" {
		text = "unknown status"
	}
	return &RemoteCallError{
		Action:  action,
		Status:  status,
		Message: fmt.Sprintf("invalid response from server (HTTP %d %s)", status, text),
		Err:     err,
	}
}

// newServerError builds the error for a decoded failure body. The server's
// message takes precedence over its error text.
func newServerError(action string, status int, body Envelope) *RemoteCallError {
	message := body.Message()
	if message == "" {
		message = body.ErrorText()
	}
	if message == "" {
		message = FallbackMessage
	}
	return &RemoteCallError{
		Action:  action,
		Status:  status,
		Message: message,
	}
}
