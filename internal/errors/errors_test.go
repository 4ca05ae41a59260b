package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestValidationError(t *testing.T) {
	err := NewValidationError("message", "cannot be empty")

	if !IsValidationError(err) {
		t.Error("IsValidationError = false, want true")
	}
	if !errors.Is(err, ErrEmptyMessage) {
		t.Error("errors.Is(err, ErrEmptyMessage) = false, want true")
	}

	other := NewValidationError("date", "missing")
	if errors.Is(other, ErrEmptyMessage) {
		t.Error("non-message validation error matched ErrEmptyMessage")
	}
}

func TestAPIError(t *testing.T) {
	err := NewAPIError(500, "/api/chat", "AI service error").WithBody(`{"detail":"boom"}`)

	if got := GetHTTPStatus(err); got != 500 {
		t.Errorf("GetHTTPStatus = %d, want 500", got)
	}
	if got := GetEndpoint(err); got != "/api/chat" {
		t.Errorf("GetEndpoint = %q, want /api/chat", got)
	}
	if got := GetResponseBody(err); got != `{"detail":"boom"}` {
		t.Errorf("GetResponseBody = %q", got)
	}
	if !IsAPIError(err) {
		t.Error("IsAPIError = false, want true")
	}

	// Classifiers see through wrapping
	wrapped := fmt.Errorf("sending chat: %w", err)
	if got := GetHTTPStatus(wrapped); got != 500 {
		t.Errorf("GetHTTPStatus(wrapped) = %d, want 500", got)
	}
}

func TestNetworkError(t *testing.T) {
	cause := errors.New("connection refused")
	err := NewNetworkError("/api/weather", cause)

	if !IsNetworkError(err) {
		t.Error("IsNetworkError = false, want true")
	}
	if !errors.Is(err, cause) {
		t.Error("NetworkError does not unwrap to its cause")
	}
	if got := GetEndpoint(err); got != "/api/weather" {
		t.Errorf("GetEndpoint = %q, want /api/weather", got)
	}
	if GetHTTPStatus(err) != 0 {
		t.Error("GetHTTPStatus on network error should be 0")
	}
}

func TestTimeoutError(t *testing.T) {
	err := NewTimeoutError("/api/news")

	if !IsTimeoutError(err) {
		t.Error("IsTimeoutError = false, want true")
	}
	if IsNetworkError(err) {
		t.Error("timeout error misclassified as network error")
	}
	if got := GetEndpoint(err); got != "/api/news" {
		t.Errorf("GetEndpoint = %q, want /api/news", got)
	}
}

func TestParseError(t *testing.T) {
	err := NewParseError("missing temperature field", "temperature")

	if !errors.Is(err, ErrInvalidResponse) {
		t.Error("ParseError should match ErrInvalidResponse")
	}
	if IsAPIError(err) {
		t.Error("parse error misclassified as API error")
	}
}

func TestErrorMessages(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			"api error with status",
			NewAPIError(404, "/api/chat/history/u1", "not found"),
			"API error [404] at /api/chat/history/u1: not found",
		},
		{
			"validation error with field",
			NewValidationError("mood", "unknown value"),
			"validation failed for mood: unknown value",
		},
		{
			"timeout with endpoint",
			NewTimeoutError("/api/chat"),
			"request to /api/chat timed out",
		},
		{
			"timeout without endpoint",
			NewTimeoutError(""),
			"request timed out",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}
