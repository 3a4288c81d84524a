package predict

import (
	"context"
	"errors"
	"fmt"
)

// Kind classifies why a prediction request failed.
type Kind int

const (
	KindUnknown Kind = iota
	// KindNetworkUnreachable: the request was sent but no response arrived.
	KindNetworkUnreachable
	// KindTimeout: no response within the configured bound.
	KindTimeout
	// KindServerRejected: the service answered with a non-success status.
	KindServerRejected
	// KindMalformedResponse: success status but the body is unusable.
	KindMalformedResponse
	// KindCanceled: the caller abandoned the request.
	KindCanceled
)

func (k Kind) String() string {
	switch k {
	case KindNetworkUnreachable:
		return "network_unreachable"
	case KindTimeout:
		return "timeout"
	case KindServerRejected:
		return "server_rejected"
	case KindMalformedResponse:
		return "malformed_response"
	case KindCanceled:
		return "canceled"
	default:
		return "unknown"
	}
}

// Error is returned by every failing Predict call.
type Error struct {
	Kind Kind
	// Status is the HTTP status code for KindServerRejected and
	// KindMalformedResponse, 0 otherwise.
	Status int
	// Message is human readable and safe to show to the user.
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

// KindOf classifies err. Errors that did not come from this package map to
// KindCanceled or KindTimeout for context errors and KindUnknown otherwise.
func KindOf(err error) Kind {
	if err == nil {
		return KindUnknown
	}
	var pe *Error
	if errors.As(err, &pe) {
		return pe.Kind
	}
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return KindTimeout
	case errors.Is(err, context.Canceled):
		return KindCanceled
	}
	return KindUnknown
}

// MessageOf returns the user-facing message for err.
func MessageOf(err error) string {
	if err == nil {
		return ""
	}
	var pe *Error
	if errors.As(err, &pe) && pe.Message != "" {
		return pe.Message
	}
	return err.Error()
}
