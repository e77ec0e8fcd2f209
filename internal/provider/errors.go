package provider

import (
	"errors"
	"fmt"
)

var (
	// ErrTransport matches every failure where the HTTP exchange did not complete.
	ErrTransport = errors.New("transport error")
	// ErrNoChoices is returned when a successful response carries no answer.
	ErrNoChoices = errors.New("response contained no choices")
)

// TransportError is a network-level failure (DNS, connect, reset).
type TransportError struct {
	URL string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("request to %s failed: %v", e.URL, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

func (e *TransportError) Is(target error) bool { return target == ErrTransport }

// TimeoutError is a transport failure caused by the configured deadline.
type TimeoutError struct {
	URL     string
	Timeout string
	Err     error
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("request to %s timed out after %s: %v", e.URL, e.Timeout, e.Err)
}

func (e *TimeoutError) Unwrap() error { return e.Err }

func (e *TimeoutError) Is(target error) bool { return target == ErrTransport }

// APIError reports a completed exchange with a non-success status.
type APIError struct {
	StatusCode int
	Status     string
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("request failed (%d %s): is your API key (GPTPIPE_API_KEY / GPTPIPE_KEY) valid and does it have enough credits?",
		e.StatusCode, statusText(e))
}

func statusText(e *APIError) string {
	if e.Status != "" {
		return e.Status
	}
	return "error"
}

// DecodeError means the response body was not a chat completion.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("received unexpected response content: %v", e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }
