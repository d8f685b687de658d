package gateway

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/url"
	"os"
)

// Kind is the caller-facing error taxonomy. Callers only distinguish which
// operation failed; the Cause is kept for diagnostics.
type Kind int

const (
	// KindFetchFailed indicates the vehicle list could not be loaded
	KindFetchFailed Kind = iota
	// KindUpdateFailed indicates a vehicle patch was not accepted
	KindUpdateFailed
)

// String returns a human-readable name for the error kind
func (k Kind) String() string {
	switch k {
	case KindFetchFailed:
		return "FetchFailed"
	case KindUpdateFailed:
		return "UpdateFailed"
	default:
		return fmt.Sprintf("Kind(%d)", k)
	}
}

// Cause records what went wrong underneath a GatewayError
type Cause int

const (
	// CauseNetwork indicates a transport-level failure (refused, unreachable, reset)
	CauseNetwork Cause = iota
	// CauseTimeout indicates the request deadline passed
	CauseTimeout
	// CauseStatus indicates the server answered with a non-2xx status
	CauseStatus
	// CauseDecode indicates the response body was not a vehicle list
	CauseDecode
	// CauseRequest indicates the request could not be built
	CauseRequest
)

// String returns a human-readable name for the cause
func (c Cause) String() string {
	switch c {
	case CauseNetwork:
		return "network"
	case CauseTimeout:
		return "timeout"
	case CauseStatus:
		return "http status"
	case CauseDecode:
		return "decode"
	case CauseRequest:
		return "request"
	default:
		return fmt.Sprintf("Cause(%d)", c)
	}
}

// GatewayError is returned by every failing Client call
type GatewayError struct {
	Kind       Kind   // Which operation failed
	Cause      Cause  // Underlying failure class
	Method     string // HTTP method of the failed request
	URL        string // Request URL
	StatusCode int    // HTTP status code (CauseStatus only)
	Err        error  // Underlying error (if any)
}

// Error implements the error interface
func (e *GatewayError) Error() string {
	msg := fmt.Sprintf("%s: %s %s", e.Kind, e.Method, e.URL)
	if e.Cause == CauseStatus {
		msg = fmt.Sprintf("%s: status %d", msg, e.StatusCode)
	} else {
		msg = fmt.Sprintf("%s: %s error", msg, e.Cause)
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

// Unwrap returns the underlying error for error chain inspection
func (e *GatewayError) Unwrap() error {
	return e.Err
}

// ClassifyTransport separates timeouts from other transport failures
func ClassifyTransport(err error) Cause {
	if err == nil {
		return CauseNetwork
	}
	if os.IsTimeout(err) || errors.Is(err, os.ErrDeadlineExceeded) || errors.Is(err, context.DeadlineExceeded) {
		return CauseTimeout
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return CauseTimeout
	}
	var urlErr *url.Error
	if errors.As(err, &urlErr) && urlErr.Timeout() {
		return CauseTimeout
	}
	return CauseNetwork
}

func newTransportError(kind Kind, method, rawURL string, err error) *GatewayError {
	return &GatewayError{
		Kind:   kind,
		Cause:  ClassifyTransport(err),
		Method: method,
		URL:    rawURL,
		Err:    err,
	}
}

func newStatusError(kind Kind, method, rawURL string, statusCode int, body string) *GatewayError {
	var err error
	if body != "" {
		err = errors.New(body)
	}
	return &GatewayError{
		Kind:       kind,
		Cause:      CauseStatus,
		Method:     method,
		URL:        rawURL,
		StatusCode: statusCode,
		Err:        err,
	}
}

func newDecodeError(kind Kind, method, rawURL string, err error) *GatewayError {
	return &GatewayError{
		Kind:   kind,
		Cause:  CauseDecode,
		Method: method,
		URL:    rawURL,
		Err:    err,
	}
}

func newRequestError(kind Kind, method, rawURL string, err error) *GatewayError {
	return &GatewayError{
		Kind:   kind,
		Cause:  CauseRequest,
		Method: method,
		URL:    rawURL,
		Err:    err,
	}
}

// IsFetchFailed reports whether err is a failed vehicle list load
func IsFetchFailed(err error) bool {
	var gwErr *GatewayError
	return errors.As(err, &gwErr) && gwErr.Kind == KindFetchFailed
}

// IsUpdateFailed reports whether err is a failed vehicle patch
func IsUpdateFailed(err error) bool {
	var gwErr *GatewayError
	return errors.As(err, &gwErr) && gwErr.Kind == KindUpdateFailed
}

// ShortMessage returns a concise, operator-facing description of err
func ShortMessage(err error) string {
	var gwErr *GatewayError
	if !errors.As(err, &gwErr) {
		return err.Error()
	}

	action := "loading vehicles"
	if gwErr.Kind == KindUpdateFailed {
		action = "saving vehicle"
	}

	switch gwErr.Cause {
	case CauseTimeout:
		return fmt.Sprintf("Timed out %s", action)
	case CauseStatus:
		return fmt.Sprintf("Server error %s (HTTP %d)", action, gwErr.StatusCode)
	case CauseDecode:
		return fmt.Sprintf("Unreadable response %s", action)
	case CauseRequest:
		return fmt.Sprintf("Invalid request %s", action)
	default:
		return fmt.Sprintf("Network error %s", action)
	}
}
