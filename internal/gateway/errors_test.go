package gateway

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/url"
	"strings"
	"syscall"
	"testing"
)

// timeoutError implements net.Error with Timeout() == true
type timeoutError struct{}

func (timeoutError) Error() string   { return "i/o timeout" }
func (timeoutError) Timeout() bool   { return true }
func (timeoutError) Temporary() bool { return true }

func TestClassifyTransport(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Cause
	}{
		{
			name: "wrapped timeout",
			err:  &url.Error{Op: "Get", URL: "http://api.test", Err: &net.OpError{Op: "dial", Net: "tcp", Err: timeoutError{}}},
			want: CauseTimeout,
		},
		{
			name: "deadline exceeded",
			err:  fmt.Errorf("read: %w", context.DeadlineExceeded),
			want: CauseTimeout,
		},
		{
			name: "connection refused",
			err:  &url.Error{Op: "Get", URL: "http://api.test", Err: &net.OpError{Op: "dial", Net: "tcp", Err: syscall.ECONNREFUSED}},
			want: CauseNetwork,
		},
		{
			name: "dns failure",
			err:  &net.DNSError{Err: "no such host", Name: "api.invalid", IsNotFound: true},
			want: CauseNetwork,
		},
		{
			name: "nil",
			err:  nil,
			want: CauseNetwork,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ClassifyTransport(tt.err); got != tt.want {
				t.Errorf("ClassifyTransport() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestGatewayError_Unwrap(t *testing.T) {
	root := errors.New("connection reset")
	err := newTransportError(KindUpdateFailed, "PATCH", "http://api.test/vehicles/a1", root)

	if !errors.Is(err, root) {
		t.Error("errors.Is should find the underlying error")
	}

	wrapped := fmt.Errorf("submit: %w", err)
	if !IsUpdateFailed(wrapped) {
		t.Error("IsUpdateFailed should see through wrapping")
	}
}

func TestGatewayError_Error(t *testing.T) {
	err := newStatusError(KindFetchFailed, "GET", "http://api.test/vehicles", 503, "")
	msg := err.Error()

	for _, want := range []string{"FetchFailed", "GET", "http://api.test/vehicles", "503"} {
		if !strings.Contains(msg, want) {
			t.Errorf("Error() = %q, should contain %q", msg, want)
		}
	}
}

func TestShortMessage(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{newStatusError(KindFetchFailed, "GET", "u", 500, ""), "Server error loading vehicles (HTTP 500)"},
		{newTransportError(KindUpdateFailed, "PATCH", "u", timeoutError{}), "Timed out saving vehicle"},
		{newDecodeError(KindFetchFailed, "GET", "u", errors.New("bad")), "Unreadable response loading vehicles"},
		{newTransportError(KindUpdateFailed, "PATCH", "u", syscall.ECONNREFUSED), "Network error saving vehicle"},
		{errors.New("plain"), "plain"},
	}

	for _, tt := range tests {
		if got := ShortMessage(tt.err); got != tt.want {
			t.Errorf("ShortMessage(%v) = %q, want %q", tt.err, got, tt.want)
		}
	}
}

func TestKindString(t *testing.T) {
	if KindFetchFailed.String() != "FetchFailed" || KindUpdateFailed.String() != "UpdateFailed" {
		t.Errorf("unexpected kind names: %s, %s", KindFetchFailed, KindUpdateFailed)
	}
	if Kind(42).String() != "Kind(42)" {
		t.Errorf("Kind(42).String() = %s", Kind(42))
	}
}
